package model

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
)

// WorkerAssignment 一位工人在一張生產單的一道工序上的完成件數（production_operations）
// (workerId, productionId, operationId) 唯一
type WorkerAssignment struct {
	ID             string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	WorkerID       string    `json:"workerId" bson:"workerId" gorm:"column:worker_id;not null;uniqueIndex:uniq_assignment_key"`
	WorkerName     string    `json:"workerName" bson:"workerName"`
	ProductionID   string    `json:"productionId" bson:"productionId" gorm:"column:production_id;not null;uniqueIndex:uniq_assignment_key"`
	ProductionName string    `json:"productionName" bson:"productionName"`
	OperationID    string    `json:"operationId" bson:"operationId" gorm:"column:operation_id;not null;uniqueIndex:uniq_assignment_key"`
	OperationName  string    `json:"operationName" bson:"operationName"`
	ProductID      string    `json:"productId,omitempty" bson:"productId,omitempty" gorm:"column:product_id"`
	PiecesDone     int64     `json:"piecesDone" bson:"piecesDone"`
	Date           string    `json:"date" bson:"date" gorm:"index"`
	CreatedBy      string    `json:"createdBy" bson:"createdBy"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (WorkerAssignment) TableName() string { return string(core.CollectionProductionOperations) }

// AssignmentKey 指派與薪資共用的唯一鍵
type AssignmentKey struct {
	WorkerID     string
	ProductionID string
	OperationID  string
}

func (a WorkerAssignment) Key() AssignmentKey {
	return AssignmentKey{WorkerID: a.WorkerID, ProductionID: a.ProductionID, OperationID: a.OperationID}
}
