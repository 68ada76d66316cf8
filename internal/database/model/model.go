// Package model 同時供 MongoDB（bson）與 Postgres（gorm）使用的資料列定義
package model

import (
	"time"

	"github.com/google/uuid"
)

// NewID 產生以時間排序的 UUIDv7
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func nowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Stamp 新資料補上 ID 與建立/更新時間
func Stamp(id *string, createdAt, updatedAt *time.Time) {
	now := nowUTC()
	if *id == "" {
		*id = NewID()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

// Touch 更新時間
func Touch(updatedAt *time.Time) {
	*updatedAt = nowUTC()
}
