package repository

import (
	"context"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*model.User, error)
}

type userRepository struct {
	store *database.Persistence
}

func NewUserRepository(store *database.Persistence) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	db, err := conn(ctx, r.store)
	if err != nil {
		return err
	}
	return db.Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	db, err := conn(ctx, r.store)
	if err != nil {
		return err
	}
	return db.Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*model.User, error) {
	return r.findOne(ctx, "google_id = ?", googleID)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := db.Where(query, arg).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
