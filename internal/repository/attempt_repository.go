package repository

import (
	"context"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/model"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.Attempt) error
	FindByID(ctx context.Context, id string) (*model.Attempt, error)
	FindLatestByUser(ctx context.Context, userID string) (*model.Attempt, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]model.Attempt, error)
	FindAllByUser(ctx context.Context, userID string) ([]model.Attempt, error)
	Update(ctx context.Context, attempt *model.Attempt) error
}

type attemptRepository struct {
	store *database.Persistence
}

func NewAttemptRepository(store *database.Persistence) AttemptRepository {
	return &attemptRepository{store: store}
}

func (r *attemptRepository) Create(ctx context.Context, attempt *model.Attempt) error {
	db, err := conn(ctx, r.store)
	if err != nil {
		return err
	}
	return db.Create(attempt).Error
}

func (r *attemptRepository) FindByID(ctx context.Context, id string) (*model.Attempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var attempt model.Attempt
	if err := db.Where("id = ?", id).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindLatestByUser(ctx context.Context, userID string) (*model.Attempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var attempt model.Attempt
	if err := db.Where("user_id = ?", userID).Order("created_at desc").First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]model.Attempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var attempts []model.Attempt
	err = db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&attempts).Error
	return attempts, err
}

// FindAllByUser loads only the columns the analytics fold reads.
func (r *attemptRepository) FindAllByUser(ctx context.Context, userID string) ([]model.Attempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var attempts []model.Attempt
	err = db.Select("id", "user_id", "topic", "score", "created_at").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) Update(ctx context.Context, attempt *model.Attempt) error {
	db, err := conn(ctx, r.store)
	if err != nil {
		return err
	}
	return db.Save(attempt).Error
}
