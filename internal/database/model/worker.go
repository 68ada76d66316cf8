package model

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
)

// Worker 計件工人
type Worker struct {
	ID                string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name              string    `json:"name" bson:"name" gorm:"not null;index"`
	WorkerID          string    `json:"workerId" bson:"workerId" gorm:"column:worker_id;not null;uniqueIndex"`
	Address           string    `json:"address" bson:"address"`
	MobileNumber      string    `json:"mobileNumber" bson:"mobileNumber"`
	EmergencyNumber   string    `json:"emergencyNumber" bson:"emergencyNumber"`
	IDProof           string    `json:"idProof" bson:"idProof" gorm:"column:id_proof"`
	BankAccountDetail string    `json:"bankAccountDetail" bson:"bankAccountDetail"`
	BankImageKey      string    `json:"bankImageKey,omitempty" bson:"bankImageKey,omitempty"`
	CreatedBy         string    `json:"createdBy" bson:"createdBy"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (Worker) TableName() string { return string(core.CollectionWorkers) }

// Employee 月薪員工
type Employee struct {
	ID                string    `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name              string    `json:"name" bson:"name" gorm:"not null"`
	EmployeeID        string    `json:"employeeId" bson:"employeeId" gorm:"column:employee_id;not null;uniqueIndex"`
	Address           string    `json:"address" bson:"address"`
	MobileNumber      string    `json:"mobileNumber" bson:"mobileNumber"`
	EmergencyNumber   string    `json:"emergencyNumber" bson:"emergencyNumber"`
	IDProof           string    `json:"idProof" bson:"idProof" gorm:"column:id_proof"`
	BankAccountDetail string    `json:"bankAccountDetail" bson:"bankAccountDetail"`
	BankImageKey      string    `json:"bankImageKey,omitempty" bson:"bankImageKey,omitempty"`
	Salary            float64   `json:"salary" bson:"salary"`
	IsActive          bool      `json:"isActive" bson:"isActive"`
	CreatedBy         string    `json:"createdBy" bson:"createdBy"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt" gorm:"index"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (Employee) TableName() string { return string(core.CollectionEmployees) }
