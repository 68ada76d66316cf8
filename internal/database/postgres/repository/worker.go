package repository

import (
	"context"

	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
)

type WorkerRepository struct {
	table[model.Worker]
}

func NewWorkerRepository(db *gorm.DB, tr *telemetry.Trace) *WorkerRepository {
	return &WorkerRepository{table: newTable[model.Worker](tr, db)}
}

func (repository *WorkerRepository) Create(ctx context.Context, worker *model.Worker) error {
	model.Stamp(&worker.ID, &worker.CreatedAt, &worker.UpdatedAt)
	return repository.insert(ctx, worker)
}

func (repository *WorkerRepository) GetByID(ctx context.Context, id string) (*model.Worker, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *WorkerRepository) List(ctx context.Context) ([]*model.Worker, error) {
	return repository.find(ctx, nil, newestFirst)
}

func (repository *WorkerRepository) Update(ctx context.Context, worker *model.Worker) error {
	model.Touch(&worker.UpdatedAt)
	return repository.replace(ctx, worker)
}

func (repository *WorkerRepository) Delete(ctx context.Context, id string) error {
	return repository.deleteByID(ctx, id)
}

func (repository *WorkerRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx)
}

type EmployeeRepository struct {
	table[model.Employee]
}

func NewEmployeeRepository(db *gorm.DB, tr *telemetry.Trace) *EmployeeRepository {
	return &EmployeeRepository{table: newTable[model.Employee](tr, db)}
}

func (repository *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	model.Stamp(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	return repository.insert(ctx, employee)
}

func (repository *EmployeeRepository) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *EmployeeRepository) List(ctx context.Context) ([]*model.Employee, error) {
	return repository.find(ctx, nil, newestFirst)
}

func (repository *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	model.Touch(&employee.UpdatedAt)
	return repository.replace(ctx, employee)
}

func (repository *EmployeeRepository) Count(ctx context.Context) (int64, error) {
	return repository.count(ctx)
}
