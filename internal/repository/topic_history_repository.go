package repository

import (
	"context"
	"errors"
	"time"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/model"
	"gorm.io/gorm"
)

type TopicHistoryRepository interface {
	// RecordScore folds score into the (user, topic) running average,
	// creating the row on the first scored attempt.
	RecordScore(ctx context.Context, userID, topic string, score float64, at time.Time) (*model.TopicHistory, error)
	FindByUser(ctx context.Context, userID string) ([]model.TopicHistory, error)
}

type topicHistoryRepository struct {
	store *database.Persistence
}

func NewTopicHistoryRepository(store *database.Persistence) TopicHistoryRepository {
	return &topicHistoryRepository{store: store}
}

// RecordScore is a plain read-modify-write. Two concurrent submissions for the
// same pair can lose an update.
func (r *topicHistoryRepository) RecordScore(ctx context.Context, userID, topic string, score float64, at time.Time) (*model.TopicHistory, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}

	var history model.TopicHistory
	err = db.Where("user_id = ? AND topic = ?", userID, topic).First(&history).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		history = model.TopicHistory{
			UserID:          userID,
			Topic:           topic,
			Attempts:        1,
			AvgScore:        score,
			LastAttemptDate: at,
		}
		if err := db.Create(&history).Error; err != nil {
			return nil, err
		}
		return &history, nil
	case err != nil:
		return nil, err
	}

	history.Record(score, at)
	if err := db.Save(&history).Error; err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *topicHistoryRepository) FindByUser(ctx context.Context, userID string) ([]model.TopicHistory, error) {
	db, err := conn(ctx, r.store)
	if err != nil {
		return nil, err
	}
	var histories []model.TopicHistory
	err = db.Where("user_id = ?", userID).Order("topic asc").Find(&histories).Error
	return histories, err
}
