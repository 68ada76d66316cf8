package cron

import (
	"context"

	"github.com/jainam30/mohil-enterprise/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewSalaryRecalculationJob)

type Cron struct {
	logger    *zap.Logger
	conf      *config.Configuration
	server    *cron.Cron
	salaryJob *SalaryRecalculationJob
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, salaryJob *SalaryRecalculationJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	return &Cron{
		logger:    logger,
		conf:      conf,
		server:    server,
		salaryJob: salaryJob,
	}
}

func (c *Cron) Run() error {
	if spec := c.conf.Cron.SalaryRecalcSpec; spec != "" && spec != "off" {
		if _, err := c.server.AddFunc(spec, c.salaryJob.Run); err != nil {
			return err
		}
		c.logger.Info("cron registered", zap.String("job", "salary-recalculation"), zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

// Stop 等待執行中的 job 結束或 ctx 逾時
func (c *Cron) Stop(ctx context.Context) error {
	done := c.server.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
