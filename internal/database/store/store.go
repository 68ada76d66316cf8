// Package store 定義資料服務邊界：各資料表的 repository 介面與共用錯誤。
// MongoDB 與 Postgres 兩種實作都必須把後端錯誤轉成 ErrNotFound / ErrDuplicate。
package store

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type WorkerStore interface {
	Create(ctx context.Context, worker *model.Worker) error
	GetByID(ctx context.Context, id string) (*model.Worker, error)
	// List 依 createdAt 由新到舊
	List(ctx context.Context) ([]*model.Worker, error)
	Update(ctx context.Context, worker *model.Worker) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type EmployeeStore interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Count(ctx context.Context) (int64, error)
}

type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Count(ctx context.Context) (int64, error)
}

type OperationStore interface {
	Create(ctx context.Context, operation *model.Operation) error
	GetByID(ctx context.Context, id string) (*model.Operation, error)
	ListByProduct(ctx context.Context, productID string) ([]*model.Operation, error)
	Update(ctx context.Context, operation *model.Operation) error
	Delete(ctx context.Context, id string) error
}

type ProductionStore interface {
	Create(ctx context.Context, production *model.Production) error
	GetByID(ctx context.Context, id string) (*model.Production, error)
	List(ctx context.Context) ([]*model.Production, error)
	Update(ctx context.Context, production *model.Production) error
	Count(ctx context.Context) (int64, error)
}

// AssignmentQuery 等值條件，空字串代表不限
type AssignmentQuery struct {
	WorkerID     string
	ProductionID string
	OperationID  string
	Date         string
	DateFrom     string
	DateTo       string
}

type AssignmentStore interface {
	// Upsert 以 (workerId, productionId, operationId) 為鍵，存在則覆寫件數與名稱
	Upsert(ctx context.Context, assignment *model.WorkerAssignment) error
	GetByKey(ctx context.Context, key model.AssignmentKey) (*model.WorkerAssignment, error)
	// List 依 date、createdAt 由新到舊
	List(ctx context.Context, query AssignmentQuery) ([]*model.WorkerAssignment, error)
}

type SalaryQuery struct {
	WorkerID     string
	ProductionID string
	Paid         *bool
	DateFrom     string
	DateTo       string
}

type WorkerSalaryStore interface {
	// Upsert 以 (workerId, productionId, operationId) 為鍵；不覆寫已發放欄位
	Upsert(ctx context.Context, salary *model.WorkerSalary) error
	GetByID(ctx context.Context, id string) (*model.WorkerSalary, error)
	GetByKey(ctx context.Context, key model.AssignmentKey) (*model.WorkerSalary, error)
	List(ctx context.Context, query SalaryQuery) ([]*model.WorkerSalary, error)
	// MarkPaid 只寫入 paid / paidDate / paidBy，且限未發放；不符合時回傳 ErrNotFound
	MarkPaid(ctx context.Context, id string, paidAt time.Time, paidBy string) error
	// UpdateTotal 只在未發放且件數、單價仍與讀取時相同時寫入 totalAmount，回傳是否寫入
	UpdateTotal(ctx context.Context, salary *model.WorkerSalary, totalAmount float64) (bool, error)
}

type EmployeeSalaryQuery struct {
	EmployeeID string
	Month      string
	Paid       *bool
}

type EmployeeSalaryStore interface {
	Create(ctx context.Context, salary *model.EmployeeSalary) error
	GetByID(ctx context.Context, id string) (*model.EmployeeSalary, error)
	List(ctx context.Context, query EmployeeSalaryQuery) ([]*model.EmployeeSalary, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time, paidBy string) error
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListByRole(ctx context.Context, role core.Role) ([]*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// Store 資料服務的全部資源
type Store struct {
	Workers          WorkerStore
	Employees        EmployeeStore
	Products         ProductStore
	Operations       OperationStore
	Productions      ProductionStore
	Assignments      AssignmentStore
	WorkerSalaries   WorkerSalaryStore
	EmployeeSalaries EmployeeSalaryStore
	Users            UserStore
	// Ping 供 readiness 檢查
	Ping func(ctx context.Context) error
}

// RateLimiter 固定視窗計數
type RateLimiter interface {
	// Consume 消耗一次配額，超限時回傳 ErrRateLimited
	Consume(ctx context.Context, scope, subject string, limit int64, window time.Duration) (remaining int64, ttl time.Duration, err error)
	// Remaining 不消耗，查詢剩餘次數；視窗未開始時為 limit
	Remaining(ctx context.Context, scope, subject string, limit int64) (int64, error)
	Reset(ctx context.Context, scope, subject string) error
}

var ErrRateLimited = errors.New("rate limit exceeded")

// IdempotencyGuard 重複送出保護
type IdempotencyGuard interface {
	// Reserve 第一次回傳 true；key 仍有效時回傳 false
	Reserve(ctx context.Context, userID, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, userID, key string) error
}

// ImageStorage 物件儲存（S3 相容）
type ImageStorage interface {
	Enabled() bool
	Upload(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	PresignedURL(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
