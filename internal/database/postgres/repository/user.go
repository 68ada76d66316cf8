package repository

import (
	"context"
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"gorm.io/gorm"
)

type UserRepository struct {
	table[model.User]
}

func NewUserRepository(db *gorm.DB, tr *telemetry.Trace) *UserRepository {
	return &UserRepository{table: newTable[model.User](tr, db)}
}

func (repository *UserRepository) Create(ctx context.Context, user *model.User) error {
	model.Stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return repository.insert(ctx, user)
}

func (repository *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return repository.first(ctx, "id = ?", id)
}

func (repository *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return repository.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (repository *UserRepository) ListByRole(ctx context.Context, role core.Role) ([]*model.User, error) {
	return repository.find(ctx, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("role = ?", role)
	}, newestFirst)
}

func (repository *UserRepository) Update(ctx context.Context, user *model.User) error {
	model.Touch(&user.UpdatedAt)
	return repository.replace(ctx, user)
}
