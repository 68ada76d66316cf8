package service

import (
	"context"
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/database/store"
	"github.com/jainam30/mohil-enterprise/internal/dto"
	cErr "github.com/jainam30/mohil-enterprise/internal/pkg/error"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"
)

type ProductService struct {
	trace      *telemetry.Trace
	products   store.ProductStore
	operations store.OperationStore
	images     store.ImageStorage
}

func NewProductService(trace *telemetry.Trace, st *store.Store, images store.ImageStorage) *ProductService {
	return &ProductService{trace: trace, products: st.Products, operations: st.Operations, images: images}
}

// Create 建立產品與其工序（至少一道）
func (s *ProductService) Create(ctx context.Context, session core.Session, req *dto.CreateProductDto) (*dto.ProductResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := uniqueOperationIDs(req.Operations); err != nil {
		return nil, err
	}
	product := &model.Product{
		Name:         strings.TrimSpace(req.Name),
		ProductID:    strings.TrimSpace(req.ProductID),
		DesignNo:     req.DesignNo,
		Color:        req.Color,
		MaterialCost: req.MaterialCost,
		ThreadCost:   req.ThreadCost,
		OtherCosts:   req.OtherCosts,
		CreatedBy:    session.UserID(),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, storeError(ctx, err, "product", "CreateProduct")
	}

	operations := make([]*model.Operation, 0, len(req.Operations))
	for _, op := range req.Operations {
		operation := newOperation(product.ID, op)
		if err := s.operations.Create(ctx, operation); err != nil {
			return nil, storeError(ctx, err, "operation", "CreateOperation")
		}
		operations = append(operations, operation)
	}
	return s.toResponse(ctx, product, operations), nil
}

func (s *ProductService) List(ctx context.Context, search string) ([]*dto.ProductResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, storeError(ctx, err, "product", "ListProducts")
	}
	resp := make([]*dto.ProductResponseDto, 0, len(products))
	for _, p := range products {
		if !containsFold(search, p.Name, p.ProductID, p.DesignNo, p.Color) {
			continue
		}
		operations, err := s.operations.ListByProduct(ctx, p.ID)
		if err != nil {
			return nil, storeError(ctx, err, "operation", "ListOperations")
		}
		resp = append(resp, s.toResponse(ctx, p, operations))
	}
	return resp, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*dto.ProductResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "product", "GetProduct")
	}
	operations, err := s.operations.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, storeError(ctx, err, "operation", "ListOperations")
	}
	return s.toResponse(ctx, product, operations), nil
}

// Update operations 非空時以 operationId 對應：同代碼更新、新代碼建立、未列出的刪除
func (s *ProductService) Update(ctx context.Context, id string, req *dto.UpdateProductDto) (*dto.ProductResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if err := uniqueOperationIDs(req.Operations); err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "product", "UpdateProduct")
	}
	setIf(&product.Name, req.Name)
	setIf(&product.ProductID, req.ProductID)
	setIf(&product.DesignNo, req.DesignNo)
	setIf(&product.Color, req.Color)
	setIf(&product.MaterialCost, req.MaterialCost)
	setIf(&product.ThreadCost, req.ThreadCost)
	setIf(&product.OtherCosts, req.OtherCosts)
	if err := s.products.Update(ctx, product); err != nil {
		return nil, storeError(ctx, err, "product", "UpdateProduct")
	}

	existing, err := s.operations.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, storeError(ctx, err, "operation", "ListOperations")
	}
	if len(req.Operations) == 0 {
		return s.toResponse(ctx, product, existing), nil
	}

	byCode := make(map[string]*model.Operation, len(existing))
	for _, op := range existing {
		byCode[op.OperationID] = op
	}
	operations := make([]*model.Operation, 0, len(req.Operations))
	for _, op := range req.Operations {
		if current, ok := byCode[op.OperationID]; ok {
			current.Name = op.Name
			current.AmountPerPiece = op.AmountPerPiece
			if err := s.operations.Update(ctx, current); err != nil {
				return nil, storeError(ctx, err, "operation", "UpdateOperation")
			}
			delete(byCode, op.OperationID)
			operations = append(operations, current)
			continue
		}
		operation := newOperation(product.ID, op)
		if err := s.operations.Create(ctx, operation); err != nil {
			return nil, storeError(ctx, err, "operation", "CreateOperation")
		}
		operations = append(operations, operation)
	}
	for _, stale := range byCode {
		if err := s.operations.Delete(ctx, stale.ID); err != nil {
			return nil, storeError(ctx, err, "operation", "DeleteOperation")
		}
	}
	return s.toResponse(ctx, product, operations), nil
}

// ListOperations getOperationsByProduct
func (s *ProductService) ListOperations(ctx context.Context, productID string) ([]*model.Operation, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, storeError(ctx, err, "product", "ListOperations")
	}
	operations, err := s.operations.ListByProduct(ctx, productID)
	if err != nil {
		return nil, storeError(ctx, err, "operation", "ListOperations")
	}
	return operations, nil
}

// CreateOperation 同一產品內 operationId 不可重複
func (s *ProductService) CreateOperation(ctx context.Context, productID string, req *dto.OperationDto) (*model.Operation, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, storeError(ctx, err, "product", "CreateOperation")
	}
	operation := newOperation(productID, *req)
	if err := s.operations.Create(ctx, operation); err != nil {
		return nil, storeError(ctx, err, "operation", "CreateOperation")
	}
	return operation, nil
}

func (s *ProductService) UploadPatternImage(ctx context.Context, id string, file ImageUpload) (*dto.ProductResponseDto, error) {
	ctx, _, end := s.trace.WithSpan(ctx)
	defer end(nil)

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "product", "UploadPatternImage")
	}
	key, err := uploadImage(ctx, s.images, "products/"+product.ID+"/pattern", file)
	if err != nil {
		return nil, err
	}
	previous := product.PatternImageKey
	product.PatternImageKey = key
	if err := s.products.Update(ctx, product); err != nil {
		return nil, storeError(ctx, err, "product", "UploadPatternImage")
	}
	if previous != "" {
		_ = s.images.Delete(ctx, previous)
	}
	operations, err := s.operations.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, storeError(ctx, err, "operation", "ListOperations")
	}
	return s.toResponse(ctx, product, operations), nil
}

func newOperation(productID string, op dto.OperationDto) *model.Operation {
	return &model.Operation{
		ProductID:      productID,
		Name:           strings.TrimSpace(op.Name),
		OperationID:    strings.TrimSpace(op.OperationID),
		AmountPerPiece: op.AmountPerPiece,
	}
}

func uniqueOperationIDs(ops []dto.OperationDto) error {
	seen := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		code := strings.TrimSpace(op.OperationID)
		if _, dup := seen[code]; dup {
			return cErr.ValidateErr("operation ID " + code + " is used more than once")
		}
		seen[code] = struct{}{}
	}
	return nil
}

func (s *ProductService) toResponse(ctx context.Context, m *model.Product, operations []*model.Operation) *dto.ProductResponseDto {
	if operations == nil {
		operations = []*model.Operation{}
	}
	return &dto.ProductResponseDto{
		ID:              m.ID,
		Name:            m.Name,
		ProductID:       m.ProductID,
		DesignNo:        m.DesignNo,
		Color:           m.Color,
		PatternImageURL: presign(ctx, s.images, m.PatternImageKey),
		MaterialCost:    m.MaterialCost,
		ThreadCost:      m.ThreadCost,
		OtherCosts:      m.OtherCosts,
		Operations:      operations,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
