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

// EmployeeService 員工不刪除，以 isActive 停用
type EmployeeService struct {
	trace     *telemetry.Trace
	employees store.EmployeeStore
	images    store.ImageStorage
}

func NewEmployeeService(trace *telemetry.Trace, st *store.Store, images store.ImageStorage) *EmployeeService {
	return &EmployeeService{trace: trace, employees: st.Employees, images: images}
}

func (s *EmployeeService) Create(ctx context.Context, session core.Session, req *dto.CreateEmployeeDto) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	active := true
	setIf(&active, req.IsActive)
	employee := &model.Employee{
		Name:              strings.TrimSpace(req.Name),
		EmployeeID:        strings.TrimSpace(req.EmployeeID),
		Address:           req.Address,
		MobileNumber:      req.MobileNumber,
		EmergencyNumber:   req.EmergencyNumber,
		IDProof:           req.IDProof,
		BankAccountDetail: req.BankAccountDetail,
		Salary:            req.Salary,
		IsActive:          active,
		CreatedBy:         session.UserID(),
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, storeError(ctx, err, "employee", "CreateEmployee")
	}
	return s.toResponse(ctx, employee), nil
}

func (s *EmployeeService) List(ctx context.Context, search string) ([]*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "employee", "ListEmployees")
	}
	resp := make([]*dto.EmployeeResponseDto, 0, len(employees))
	for _, e := range employees {
		if containsFold(search, e.Name, e.EmployeeID) {
			resp = append(resp, s.toResponse(ctx, e))
		}
	}
	return resp, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "employee", "GetEmployee")
	}
	return s.toResponse(ctx, employee), nil
}

func (s *EmployeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeDto) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "employee", "UpdateEmployee")
	}
	setIf(&employee.Name, req.Name)
	setIf(&employee.EmployeeID, req.EmployeeID)
	setIf(&employee.Address, req.Address)
	setIf(&employee.MobileNumber, req.MobileNumber)
	setIf(&employee.EmergencyNumber, req.EmergencyNumber)
	setIf(&employee.IDProof, req.IDProof)
	setIf(&employee.BankAccountDetail, req.BankAccountDetail)
	setIf(&employee.Salary, req.Salary)
	setIf(&employee.IsActive, req.IsActive)
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, storeError(ctx, err, "employee", "UpdateEmployee")
	}
	return s.toResponse(ctx, employee), nil
}

func (s *EmployeeService) UploadBankImage(ctx context.Context, id string, file ImageUpload) (*dto.EmployeeResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "employee", "UploadBankImage")
	}
	key, err := uploadImage(ctx, s.images, "employees/"+employee.ID+"/bank", file)
	if err != nil {
		return nil, err
	}
	previous := employee.BankImageKey
	employee.BankImageKey = key
	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, storeError(ctx, err, "employee", "UploadBankImage")
	}
	if previous != "" {
		_ = s.images.Delete(ctx, previous)
	}
	return s.toResponse(ctx, employee), nil
}

func (s *EmployeeService) toResponse(ctx context.Context, m *model.Employee) *dto.EmployeeResponseDto {
	return &dto.EmployeeResponseDto{
		ID:                m.ID,
		Name:              m.Name,
		EmployeeID:        m.EmployeeID,
		Address:           m.Address,
		MobileNumber:      m.MobileNumber,
		EmergencyNumber:   m.EmergencyNumber,
		IDProof:           m.IDProof,
		BankAccountDetail: m.BankAccountDetail,
		BankImageURL:      presign(ctx, s.images, m.BankImageKey),
		Salary:            m.Salary,
		IsActive:          m.IsActive,
		CreatedBy:         m.CreatedBy,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
