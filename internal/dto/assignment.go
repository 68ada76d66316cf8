package dto

import "github.com/jainam30/mohil-enterprise/internal/database/model"

// 指派列表篩選；空字串或 all 代表不篩選
type AssignmentFilterDto struct {
	Worker     string `form:"worker"`
	Operation  string `form:"operation"`
	Production string `form:"production"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// 篩選下拉選單
type AssignmentOptionsDto struct {
	Workers     []string `json:"workers"`
	Operations  []string `json:"operations"`
	Productions []string `json:"productions"`
}

// 某日的生產紀錄
type DailyProductionDto struct {
	Date        string                    `json:"date"`
	TotalPieces int64                     `json:"totalPieces"`
	Assignments []*model.WorkerAssignment `json:"assignments"`
}
