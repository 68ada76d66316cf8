package repository

import (
	"context"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
)

// Models AutoMigrate 的全部資料表
var Models = []any{
	&model.Worker{},
	&model.Employee{},
	&model.Product{},
	&model.Operation{},
	&model.Production{},
	&model.WorkerAssignment{},
	&model.WorkerSalary{},
	&model.EmployeeSalary{},
	&model.User{},
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}

// NewStore 以關聯式資料庫實作全部資源
func NewStore(db *gorm.DB, tr *telemetry.Trace) *store.Store {
	return &store.Store{
		Workers:          NewWorkerRepository(db, tr),
		Employees:        NewEmployeeRepository(db, tr),
		Products:         NewProductRepository(db, tr),
		Operations:       NewOperationRepository(db, tr),
		Productions:      NewProductionRepository(db, tr),
		Assignments:      NewAssignmentRepository(db, tr),
		WorkerSalaries:   NewWorkerSalaryRepository(db, tr),
		EmployeeSalaries: NewEmployeeSalaryRepository(db, tr),
		Users:            NewUserRepository(db, tr),
		Ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}
