package service

import (
	"context"
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
)

type WorkerService struct {
	trace   *telemetry.Trace
	workers store.WorkerStore
	images  store.ImageStorage
}

func NewWorkerService(trace *telemetry.Trace, st *store.Store, images store.ImageStorage) *WorkerService {
	return &WorkerService{trace: trace, workers: st.Workers, images: images}
}

func (s *WorkerService) Create(ctx context.Context, session core.Session, req *dto.CreateWorkerDto) (*dto.WorkerResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	worker := &model.Worker{
		Name:              strings.TrimSpace(req.Name),
		WorkerID:          strings.TrimSpace(req.WorkerID),
		Address:           req.Address,
		MobileNumber:      req.MobileNumber,
		EmergencyNumber:   req.EmergencyNumber,
		IDProof:           req.IDProof,
		BankAccountDetail: req.BankAccountDetail,
		CreatedBy:         session.UserID(),
	}
	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, storeError(ctx, err, "worker", "CreateWorker")
	}
	return s.toResponse(ctx, worker), nil
}

// List 依建立時間由新到舊；search 比對姓名與工號
func (s *WorkerService) List(ctx context.Context, search string) ([]*dto.WorkerResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	workers, err := s.workers.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "worker", "ListWorkers")
	}
	resp := make([]*dto.WorkerResponseDto, 0, len(workers))
	for _, w := range workers {
		if containsFold(search, w.Name, w.WorkerID) {
			resp = append(resp, s.toResponse(ctx, w))
		}
	}
	return resp, nil
}

func (s *WorkerService) Get(ctx context.Context, id string) (*dto.WorkerResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	worker, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "worker", "GetWorker")
	}
	return s.toResponse(ctx, worker), nil
}

func (s *WorkerService) Update(ctx context.Context, id string, req *dto.UpdateWorkerDto) (*dto.WorkerResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	worker, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "worker", "UpdateWorker")
	}
	setIf(&worker.Name, req.Name)
	setIf(&worker.WorkerID, req.WorkerID)
	setIf(&worker.Address, req.Address)
	setIf(&worker.MobileNumber, req.MobileNumber)
	setIf(&worker.EmergencyNumber, req.EmergencyNumber)
	setIf(&worker.IDProof, req.IDProof)
	setIf(&worker.BankAccountDetail, req.BankAccountDetail)
	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, storeError(ctx, err, "worker", "UpdateWorker")
	}
	return s.toResponse(ctx, worker), nil
}

// Delete 只刪除工人本身；指派與薪資保留原本的工人姓名
func (s *WorkerService) Delete(ctx context.Context, id string) error {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := s.workers.Delete(ctx, id); err != nil {
		return storeError(ctx, err, "worker", "DeleteWorker")
	}
	return nil
}

func (s *WorkerService) UploadBankImage(ctx context.Context, id string, file ImageUpload) (*dto.WorkerResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	worker, err := s.workers.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "worker", "UploadBankImage")
	}
	key, err := uploadImage(ctx, s.images, "workers/"+worker.ID+"/bank", file)
	if err != nil {
		return nil, err
	}
	previous := worker.BankImageKey
	worker.BankImageKey = key
	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, storeError(ctx, err, "worker", "UploadBankImage")
	}
	if previous != "" {
		_ = s.images.Delete(ctx, previous)
	}
	return s.toResponse(ctx, worker), nil
}

func (s *WorkerService) toResponse(ctx context.Context, m *model.Worker) *dto.WorkerResponseDto {
	return &dto.WorkerResponseDto{
		ID:                m.ID,
		Name:              m.Name,
		WorkerID:          m.WorkerID,
		Address:           m.Address,
		MobileNumber:      m.MobileNumber,
		EmergencyNumber:   m.EmergencyNumber,
		IDProof:           m.IDProof,
		BankAccountDetail: m.BankAccountDetail,
		BankImageURL:      presign(ctx, s.images, m.BankImageKey),
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
