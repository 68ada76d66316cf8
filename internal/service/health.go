package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jainam30/mohil-enterprise/internal/database/store"
)

type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool
	store *store.Store
}

func NewHealthService(store *store.Store) *HealthService {
	s := &HealthService{store: store}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

// IsReady 啟動完成且資料服務可連線
func (s *HealthService) IsReady(ctx context.Context) bool {
	if !s.ready.Load() {
		return false
	}
	if s.store == nil || s.store.Ping == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.store.Ping(ctx) == nil
}
