package dto

import "github.com/jainam30/mohil-enterprise/internal/pkg/request"

type WorkerSalaryQueryDto struct {
	WorkerID     string `form:"workerId"`
	ProductionID string `form:"productionId"`
	Paid         *bool  `form:"paid"`
	From         string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To           string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

type RecalculateResultDto struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
}

// 員工月薪
type CreateEmployeeSalaryDto struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Month      string `json:"month" binding:"required,datetime=2006-01"`
	// 未帶時使用員工月薪
	Amount *float64 `json:"amount,omitempty" binding:"omitempty,gte=0"`
}

func (CreateEmployeeSalaryDto) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"EmployeeID.required": "employee is required",
		"Month.required":      "month is required",
		"Month.datetime":      "month must be YYYY-MM",
		"Amount.gte":          "amount must be 0 or more",
	}
}

type EmployeeSalaryQueryDto struct {
	EmployeeID string `form:"employeeId"`
	Month      string `form:"month" binding:"omitempty,datetime=2006-01"`
	Paid       *bool  `form:"paid"`
}
