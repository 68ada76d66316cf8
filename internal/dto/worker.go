package dto

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/pkg/request"
)

// 新增工人
type CreateWorkerDto struct {
	Name              string `json:"name" binding:"required,min=3"`
	WorkerID          string `json:"workerId" binding:"required,min=3"`
	Address           string `json:"address" binding:"required,min=5"`
	MobileNumber      string `json:"mobileNumber" binding:"required,min=10"`
	EmergencyNumber   string `json:"emergencyNumber" binding:"required,min=10"`
	IDProof           string `json:"idProof" binding:"required,min=5"`
	BankAccountDetail string `json:"bankAccountDetail" binding:"required,min=5"`
}

func (CreateWorkerDto) GetMessages() request.ValidatorMessages {
	return personMessages("WorkerID", "worker ID")
}

// 更新工人：只更新有帶的欄位
type UpdateWorkerDto struct {
	Name              *string `json:"name,omitempty" binding:"omitempty,min=3"`
	WorkerID          *string `json:"workerId,omitempty" binding:"omitempty,min=3"`
	Address           *string `json:"address,omitempty" binding:"omitempty,min=5"`
	MobileNumber      *string `json:"mobileNumber,omitempty" binding:"omitempty,min=10"`
	EmergencyNumber   *string `json:"emergencyNumber,omitempty" binding:"omitempty,min=10"`
	IDProof           *string `json:"idProof,omitempty" binding:"omitempty,min=5"`
	BankAccountDetail *string `json:"bankAccountDetail,omitempty" binding:"omitempty,min=5"`
}

func (UpdateWorkerDto) GetMessages() request.ValidatorMessages {
	return personMessages("WorkerID", "worker ID")
}

type WorkerResponseDto struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	WorkerID          string    `json:"workerId"`
	Address           string    `json:"address"`
	MobileNumber      string    `json:"mobileNumber"`
	EmergencyNumber   string    `json:"emergencyNumber"`
	IDProof           string    `json:"idProof"`
	BankAccountDetail string    `json:"bankAccountDetail"`
	BankImageURL      string    `json:"bankImageUrl,omitempty"`
	CreatedBy         string    `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// 新增員工（僅 admin）
type CreateEmployeeDto struct {
	Name              string  `json:"name" binding:"required,min=3"`
	EmployeeID        string  `json:"employeeId" binding:"required,min=3"`
	Address           string  `json:"address" binding:"required,min=5"`
	MobileNumber      string  `json:"mobileNumber" binding:"required,min=10"`
	EmergencyNumber   string  `json:"emergencyNumber" binding:"required,min=10"`
	IDProof           string  `json:"idProof" binding:"required,min=5"`
	BankAccountDetail string  `json:"bankAccountDetail" binding:"required,min=5"`
	Salary            float64 `json:"salary" binding:"required,gte=1"`
	// 未帶時預設 true
	IsActive *bool `json:"isActive,omitempty"`
}

func (CreateEmployeeDto) GetMessages() request.ValidatorMessages {
	messages := personMessages("EmployeeID", "employee ID")
	messages["Salary.required"] = "salary is required"
	messages["Salary.gte"] = "salary must be at least 1"
	return messages
}

type UpdateEmployeeDto struct {
	Name              *string  `json:"name,omitempty" binding:"omitempty,min=3"`
	EmployeeID        *string  `json:"employeeId,omitempty" binding:"omitempty,min=3"`
	Address           *string  `json:"address,omitempty" binding:"omitempty,min=5"`
	MobileNumber      *string  `json:"mobileNumber,omitempty" binding:"omitempty,min=10"`
	EmergencyNumber   *string  `json:"emergencyNumber,omitempty" binding:"omitempty,min=10"`
	IDProof           *string  `json:"idProof,omitempty" binding:"omitempty,min=5"`
	BankAccountDetail *string  `json:"bankAccountDetail,omitempty" binding:"omitempty,min=5"`
	Salary            *float64 `json:"salary,omitempty" binding:"omitempty,gte=1"`
	IsActive          *bool    `json:"isActive,omitempty"`
}

func (UpdateEmployeeDto) GetMessages() request.ValidatorMessages {
	messages := personMessages("EmployeeID", "employee ID")
	messages["Salary.gte"] = "salary must be at least 1"
	return messages
}

type EmployeeResponseDto struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	EmployeeID        string    `json:"employeeId"`
	Address           string    `json:"address"`
	MobileNumber      string    `json:"mobileNumber"`
	EmergencyNumber   string    `json:"emergencyNumber"`
	IDProof           string    `json:"idProof"`
	BankAccountDetail string    `json:"bankAccountDetail"`
	BankImageURL      string    `json:"bankImageUrl,omitempty"`
	Salary            float64   `json:"salary"`
	IsActive          bool      `json:"isActive"`
	CreatedBy         string    `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func personMessages(codeField, codeLabel string) request.ValidatorMessages {
	return request.ValidatorMessages{
		"Name.required":              "name is required",
		"Name.min":                   "name must be at least 3 characters",
		codeField + ".required":      codeLabel + " is required",
		codeField + ".min":           codeLabel + " must be at least 3 characters",
		"Address.required":           "address is required",
		"Address.min":                "address must be at least 5 characters",
		"MobileNumber.required":      "mobile number is required",
		"MobileNumber.min":           "mobile number must be at least 10 digits",
		"EmergencyNumber.required":   "emergency number is required",
		"EmergencyNumber.min":        "emergency number must be at least 10 digits",
		"IDProof.required":           "ID proof is required",
		"IDProof.min":                "ID proof must be at least 5 characters",
		"BankAccountDetail.required": "bank account detail is required",
		"BankAccountDetail.min":      "bank account detail must be at least 5 characters",
	}
}
