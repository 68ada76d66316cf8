package model

import (
	"time"

	"github.com/jainam30/mohil-enterprise/internal/core"
)

// User 後台登入帳號（admin / supervisor）
type User struct {
	ID           string      `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name         string      `json:"name" bson:"name"`
	Email        string      `json:"email" bson:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string      `json:"-" bson:"passwordHash"`
	Role         core.Role   `json:"role" bson:"role" gorm:"type:varchar(20);index"`
	Status       core.Status `json:"status" bson:"status" gorm:"type:varchar(20)"`
	CreatedBy    string      `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	LastLoginAt  *time.Time  `json:"lastLoginAt,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt    time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt" bson:"updatedAt"`
}

func (User) TableName() string { return string(core.CollectionUsers) }
