package repository

import (
	"context"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/model"
)

type QuizAttemptRepository interface {
	Create(ctx context.Context, quiz *model.QuizAttempt) error
	Update(ctx context.Context, quiz *model.QuizAttempt) error
	FindByID(ctx context.Context, id string) (*model.QuizAttempt, error)
	// FindPreviousCompleted returns up to limit completed quizzes of the same
	// user and topic, newest first, leaving out excludeID.
	FindPreviousCompleted(ctx context.Context, userID, topic, excludeID string, limit int) ([]model.QuizAttempt, error)
	FindCompletedByUser(ctx context.Context, userID string, limit int) ([]model.QuizAttempt, error)
	FindAllCompletedChronological(ctx context.Context, userID string) ([]model.QuizAttempt, error)
}

type quizAttemptRepository struct {
	store *database.Persistence
}

func NewQuizAttemptRepository(store *database.Persistence) QuizAttemptRepository {
	return &quizAttemptRepository{store: store}
}

func (r *quizAttemptRepository) Create(ctx context.Context, quiz *model.QuizAttempt) error {
	db, err := conn(ctx, r.store)
	if err != nil {
		return err
	}
	return db.Create(quiz).Error
}

func (r *quizAttemptRepository) Update(ctx context.Context, quiz *model.QuizAttempt) error {
	db, err := conn(ctx, r.store)
	if err != nil {
		return err
	}
	return db.Save(quiz).Error
}

func (r *quizAttemptRepository) FindByID(ctx context.Context, id string) (*model.QuizAttempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var quiz model.QuizAttempt
	if err := db.Where("id = ?", id).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizAttemptRepository) FindPreviousCompleted(ctx context.Context, userID, topic, excludeID string, limit int) ([]model.QuizAttempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var quizzes []model.QuizAttempt
	err = db.Where("user_id = ? AND topic = ? AND completed = ? AND id <> ?", userID, topic, true, excludeID).
		Order("created_at desc").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizAttemptRepository) FindCompletedByUser(ctx context.Context, userID string, limit int) ([]model.QuizAttempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var quizzes []model.QuizAttempt
	err = db.Where("user_id = ? AND completed = ?", userID, true).
		Order("created_at desc").
		Limit(limit).
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizAttemptRepository) FindAllCompletedChronological(ctx context.Context, userID string) ([]model.QuizAttempt, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var quizzes []model.QuizAttempt
	err = db.Where("user_id = ? AND completed = ?", userID, true).
		Order("created_at asc").
		Find(&quizzes).Error
	return quizzes, err
}
