package dto

type ProductionPercentageDto struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type DashboardDto struct {
	Workers     int64                     `json:"workers"`
	Products    int64                     `json:"products"`
	Productions int64                     `json:"productions"`
	TodayPieces int64                     `json:"todayPieces"`
	Progress    []ProductionPercentageDto `json:"progress"`
	// 僅 admin
	Employees     *int64   `json:"employees,omitempty"`
	PendingSalary *float64 `json:"pendingSalary,omitempty"`
}
