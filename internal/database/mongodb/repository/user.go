package repository

import (
	"context"
	"strings"

	"github.com/jainam30/mohil-enterprise/internal/core"
	"github.com/jainam30/mohil-enterprise/internal/database/model"
	mongoModel "github.com/jainam30/mohil-enterprise/internal/database/mongodb/model"
	"github.com/jainam30/mohil-enterprise/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	collection[model.User]
}

func NewUserRepository(db *mongo.Database, tr *telemetry.Trace) *UserRepository {
	return &UserRepository{
		collection: newCollection[model.User](tr, db.Collection(string(core.CollectionUsers)), mongoModel.UserIndexes),
	}
}

func (repository *UserRepository) Create(ctx context.Context, user *model.User) error {
	model.Stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return repository.insert(ctx, user)
}

func (repository *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return repository.findOne(ctx, bson.M{"_id": id})
}

func (repository *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return repository.findOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))})
}

func (repository *UserRepository) ListByRole(ctx context.Context, role core.Role) ([]*model.User, error) {
	return repository.find(ctx, bson.M{"role": role}, newestFirst)
}

func (repository *UserRepository) Update(ctx context.Context, user *model.User) error {
	model.Touch(&user.UpdatedAt)
	return repository.replace(ctx, user.ID, user)
}
