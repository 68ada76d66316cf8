package model

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
)

type Product struct {
	ID              string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name            string    `json:"name" bson:"name" gorm:"not null"`
	ProductID       string    `json:"productId" bson:"productId" gorm:"column:product_id;not null;uniqueIndex"`
	DesignNo        string    `json:"designNo" bson:"designNo"`
	Color           string    `json:"color" bson:"color"`
	PatternImageKey string    `json:"patternImageKey,omitempty" bson:"patternImageKey,omitempty"`
	MaterialCost    float64   `json:"materialCost" bson:"materialCost"`
	ThreadCost      float64   `json:"threadCost" bson:"threadCost"`
	OtherCosts      float64   `json:"otherCosts" bson:"otherCosts"`
	CreatedBy       string    `json:"createdBy" bson:"createdBy"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (Product) TableName() string { return string(core.CollectionProducts) }

// UnitRawMaterialCost 每件原物料成本
func (p Product) UnitRawMaterialCost() float64 {
	return p.MaterialCost + p.ThreadCost + p.OtherCosts
}

// Operation 產品層級的工序與計件單價
type Operation struct {
	ID             string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	ProductID      string    `json:"productId" bson:"productId" gorm:"column:product_id;not null;uniqueIndex:uniq_operations_product_code"`
	Name           string    `json:"name" bson:"name" gorm:"not null"`
	OperationID    string    `json:"operationId" bson:"operationId" gorm:"column:operation_id;not null;uniqueIndex:uniq_operations_product_code"`
	AmountPerPiece float64   `json:"amountPerPiece" bson:"amountPerPiece"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (Operation) TableName() string { return string(core.CollectionOperations) }
