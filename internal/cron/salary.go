package cron

import (
	"context"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/service"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.uber.org/zap"
)

// SalaryRecalculationJob 夜間重算未付計件薪資
type SalaryRecalculationJob struct {
	logger        *zap.Logger
	trace         *telemetry.Trace
	salaryService *service.SalaryService
	timeout       time.Duration
}

func NewSalaryRecalculationJob(logger *zap.Logger, trace *telemetry.Trace, salaryService *service.SalaryService) *SalaryRecalculationJob {
	return &SalaryRecalculationJob{
		logger:        logger,
		trace:         trace,
		salaryService: salaryService,
		timeout:       5 * time.Minute,
	}
}

func (j *SalaryRecalculationJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	ctx, span := j.trace.StartSpanForLayer(ctx, core.SpanSalaryRecalculationJob)
	res, err := j.salaryService.RecalculateAll(ctx)
	j.trace.EndSpan(span, err)
	if err != nil {
		j.logger.Error("salary recalculation failed", zap.Error(err))
		return
	}
	j.logger.Info("salary recalculation finished",
		zap.Int("scanned", res.Scanned),
		zap.Int("updated", res.Updated),
	)
}
