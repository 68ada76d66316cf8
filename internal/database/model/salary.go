package model

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
)

// WorkerSalary 依指派推導的應付計件薪資；(workerId, productionId, operationId) 唯一
type WorkerSalary struct {
	ID             string     `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	WorkerID       string     `json:"workerId" bson:"workerId" gorm:"column:worker_id;not null;uniqueIndex:uniq_worker_salary_key"`
	WorkerName     string     `json:"workerName" bson:"workerName"`
	ProductionID   string     `json:"productionId" bson:"productionId" gorm:"column:production_id;not null;uniqueIndex:uniq_worker_salary_key"`
	ProductionName string     `json:"productionName" bson:"productionName"`
	OperationID    string     `json:"operationId" bson:"operationId" gorm:"column:operation_id;not null;uniqueIndex:uniq_worker_salary_key"`
	OperationName  string     `json:"operationName" bson:"operationName"`
	Date           string     `json:"date" bson:"date" gorm:"index"`
	PiecesDone     int64      `json:"piecesDone" bson:"piecesDone"`
	AmountPerPiece float64    `json:"amountPerPiece" bson:"amountPerPiece"`
	TotalAmount    float64    `json:"totalAmount" bson:"totalAmount"`
	Paid           bool       `json:"paid" bson:"paid" gorm:"index"`
	PaidDate       *time.Time `json:"paidDate,omitempty" bson:"paidDate,omitempty"`
	PaidBy         string     `json:"paidBy,omitempty" bson:"paidBy,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (WorkerSalary) TableName() string { return string(core.CollectionWorkerSalaries) }

func (s WorkerSalary) Key() AssignmentKey {
	return AssignmentKey{WorkerID: s.WorkerID, ProductionID: s.ProductionID, OperationID: s.OperationID}
}

// EmployeeSalary 員工月薪；(employeeId, month) 唯一
type EmployeeSalary struct {
	ID           string     `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	EmployeeID   string     `json:"employeeId" bson:"employeeId" gorm:"column:employee_id;not null;uniqueIndex:uniq_employee_month"`
	EmployeeName string     `json:"employeeName" bson:"employeeName"`
	Month        string     `json:"month" bson:"month" gorm:"not null;uniqueIndex:uniq_employee_month"`
	Amount       float64    `json:"amount" bson:"amount"`
	Paid         bool       `json:"paid" bson:"paid"`
	PaidDate     *time.Time `json:"paidDate,omitempty" bson:"paidDate,omitempty"`
	PaidBy       string     `json:"paidBy,omitempty" bson:"paidBy,omitempty"`
	CreatedBy    string     `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

func (EmployeeSalary) TableName() string { return string(core.CollectionEmployeeSalaries) }
