package model

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
)

// Production 一張裁剪生產單（production_cutting）
type Production struct {
	ID            string                `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name          string                `json:"name" bson:"name" gorm:"not null"`
	ProductionID  string                `json:"productionId" bson:"productionId" gorm:"column:production_id;not null;uniqueIndex"`
	PONumber      string                `json:"poNumber" bson:"poNumber" gorm:"column:po_number"`
	ProductID     string                `json:"productId,omitempty" bson:"productId,omitempty" gorm:"column:product_id;index"`
	Color         string                `json:"color" bson:"color"`
	TotalFabric   float64               `json:"totalFabric" bson:"totalFabric"`
	Average       float64               `json:"average" bson:"average"`
	TotalQuantity int64                 `json:"totalQuantity" bson:"totalQuantity"`
	CutDate       string                `json:"cutDate,omitempty" bson:"cutDate,omitempty"`
	Operations    []ProductionOperation `json:"operations" bson:"operations" gorm:"type:text;serializer:json"`
	CreatedBy     string                `json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time             `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt     time.Time             `json:"updatedAt" bson:"updatedAt"`
}

func (Production) TableName() string { return string(core.CollectionProductions) }

// FindOperation 依明細 id 找工序，回傳索引；找不到為 -1
func (p *Production) FindOperation(operationID string) int {
	for i := range p.Operations {
		if p.Operations[i].ID == operationID {
			return i
		}
	}
	return -1
}

// ProductionOperation 生產單內的工序明細，可變的指派狀態
type ProductionOperation struct {
	ID                 string  `json:"id" bson:"id"`
	Name               string  `json:"name" bson:"name"`
	OperationID        string  `json:"operationId,omitempty" bson:"operationId,omitempty"`
	RatePerPiece       float64 `json:"ratePerPiece" bson:"ratePerPiece"`
	IsCompleted        bool    `json:"isCompleted" bson:"isCompleted"`
	AssignedWorkerID   string  `json:"assignedWorkerId,omitempty" bson:"assignedWorkerId,omitempty"`
	AssignedWorkerName string  `json:"assignedWorkerName,omitempty" bson:"assignedWorkerName,omitempty"`
	PiecesDone         int64   `json:"piecesDone" bson:"piecesDone"`
}
