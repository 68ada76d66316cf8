package dto

import "github.com/jainam30/mohil-enterprise/internal/core"

// 工序成本列
type OperationCostDto struct {
	ID              string  `json:"id"`
	OperationName   string  `json:"operationName"`
	RatePerPiece    float64 `json:"ratePerPiece"`
	PlannedCost     float64 `json:"plannedCost"`
	CompletedPieces int64   `json:"completedPieces"`
	AccruedCost     float64 `json:"accruedCost"`
	Percentage      float64 `json:"percentage"`
}

type ReportPeriodDto struct {
	Period           core.ReportPeriod `json:"period"`
	From             string            `json:"from"`
	To               string            `json:"to"`
	Pieces           int64             `json:"pieces"`
	OperationExpense float64           `json:"operationExpense"`
}

type ProductionReportDto struct {
	ID               string             `json:"id"`
	ProductionID     string             `json:"productionId"`
	Name             string             `json:"name"`
	PONumber         string             `json:"poNumber"`
	TotalQuantity    int64              `json:"totalQuantity"`
	OperationExpense float64            `json:"operationExpense"`
	RawMaterialCost  float64            `json:"rawMaterialCost"`
	TotalExpense     float64            `json:"totalExpense"`
	Percentage       float64            `json:"percentage"`
	Operations       []OperationCostDto `json:"operations"`
	Window           ReportPeriodDto    `json:"window"`
}

type ProductionReportQueryDto struct {
	Period string `form:"period" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

type WorkerReportQueryDto struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// 工人績效
type WorkerPerformanceDto struct {
	WorkerID             string  `json:"workerId"`
	WorkerName           string  `json:"workerName"`
	TotalPiecesCompleted int64   `json:"totalPiecesCompleted"`
	TotalOperations      int     `json:"totalOperations"`
	Earnings             float64 `json:"earnings"`
}
