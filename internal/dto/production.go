package dto

import (
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/pkg/request"
)

// 生產單工序明細；更新時帶 id 代表保留既有明細
type ProductionOperationDto struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name" binding:"required,min=1"`
	OperationID  string  `json:"operationId,omitempty"`
	RatePerPiece float64 `json:"ratePerPiece" binding:"gte=0"`
}

type CreateProductionDto struct {
	Name          string  `json:"name" binding:"required,min=3"`
	ProductionID  string  `json:"productionId" binding:"required,min=3"`
	PONumber      string  `json:"poNumber" binding:"required,min=1"`
	ProductID     string  `json:"productId,omitempty"`
	Color         string  `json:"color" binding:"required,min=1"`
	TotalFabric   float64 `json:"totalFabric" binding:"gte=0"`
	Average       float64 `json:"average" binding:"gte=0"`
	TotalQuantity int64   `json:"totalQuantity" binding:"required,gte=1"`
	CutDate       string  `json:"cutDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	// productId 有帶時可省略，改為複製產品工序
	Operations []ProductionOperationDto `json:"operations,omitempty" binding:"omitempty,dive"`
}

func (CreateProductionDto) GetMessages() request.ValidatorMessages {
	return productionMessages()
}

type UpdateProductionDto struct {
	Name          *string                  `json:"name,omitempty" binding:"omitempty,min=3"`
	ProductionID  *string                  `json:"productionId,omitempty" binding:"omitempty,min=3"`
	PONumber      *string                  `json:"poNumber,omitempty" binding:"omitempty,min=1"`
	Color         *string                  `json:"color,omitempty" binding:"omitempty,min=1"`
	TotalFabric   *float64                 `json:"totalFabric,omitempty" binding:"omitempty,gte=0"`
	Average       *float64                 `json:"average,omitempty" binding:"omitempty,gte=0"`
	TotalQuantity *int64                   `json:"totalQuantity,omitempty" binding:"omitempty,gte=1"`
	CutDate       *string                  `json:"cutDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Operations    []ProductionOperationDto `json:"operations,omitempty" binding:"omitempty,dive"`
}

func (UpdateProductionDto) GetMessages() request.ValidatorMessages {
	return productionMessages()
}

// 指派工人到生產單工序
type AssignWorkerDto struct {
	WorkerID   string `json:"workerId" binding:"required"`
	PiecesDone *int64 `json:"piecesDone" binding:"required,gte=0"`
	Date       string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (AssignWorkerDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"WorkerID.required":   "worker is required",
		"PiecesDone.required": "pieces done is required",
		"PiecesDone.gte":      "pieces done must be 0 or more",
		"Date.datetime":       "date must be YYYY-MM-DD",
	}
}

type AssignmentResultDto struct {
	Production *model.Production       `json:"production"`
	Assignment *model.WorkerAssignment `json:"assignment"`
	Salary     *model.WorkerSalary     `json:"salary"`
}

// 單一工序進度
type OperationProgressDto struct {
	ID              string  `json:"id"`
	OperationName   string  `json:"operationName"`
	TotalPieces     int64   `json:"totalPieces"`
	CompletedPieces int64   `json:"completedPieces"`
	Percentage      float64 `json:"percentage"`
	IsCompleted     bool    `json:"isCompleted"`
}

type ProductionProgressDto struct {
	ID           string                 `json:"id"`
	ProductionID string                 `json:"productionId"`
	Name         string                 `json:"name"`
	Operations   []OperationProgressDto `json:"operations"`
	// 各工序百分比的平均
	Percentage float64 `json:"percentage"`
}

func productionMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":                 "production name is required",
		"Name.min":                      "production name must be at least 3 characters",
		"ProductionID.required":         "production ID is required",
		"ProductionID.min":              "production ID must be at least 3 characters",
		"PONumber.required":             "PO number is required",
		"PONumber.min":                  "PO number is required",
		"Color.required":                "color is required",
		"Color.min":                     "color is required",
		"TotalFabric.gte":               "total fabric must be 0 or more",
		"Average.gte":                   "average must be 0 or more",
		"TotalQuantity.required":        "total quantity is required",
		"TotalQuantity.gte":             "total quantity must be at least 1",
		"CutDate.datetime":              "cut date must be YYYY-MM-DD",
		"Operations.*.Name.required":    "operation name is required",
		"Operations.*.Name.min":         "operation name is required",
		"Operations.*.RatePerPiece.gte": "rate per piece must be 0 or more",
	}
}
