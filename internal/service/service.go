package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/database/store"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"

	"github.com/google/wire"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var ProviderSet = wire.NewSet(
	NewHealthService,
	NewAuthService,
	NewWorkerService,
	NewEmployeeService,
	NewProductService,
	NewProductionService,
	NewAssignmentService,
	NewSalaryService,
	NewReportService,
	NewDashboardService,
)

// storeError 把 repository 的錯誤轉成對外錯誤碼；未預期的錯誤記在目前的 span 上
func storeError(ctx context.Context, err error, entity, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return cErr.NotFound(entity + " not found")
	case errors.Is(err, store.ErrDuplicate):
		return cErr.Conflict(entity + " already exists")
	}
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, op)
	return cErr.DatabaseError("database " + op + " error").WithCause(err)
}

// containsFold 不分大小寫的子字串比對，任一欄位命中即可
func containsFold(search string, fields ...string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), search) {
			return true
		}
	}
	return false
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
