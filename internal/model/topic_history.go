package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TopicHistory is the running mastery aggregate of one user on one topic.
type TopicHistory struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID          string    `json:"userId" gorm:"not null;uniqueIndex:idx_topic_history_user_topic"`
	Topic           string    `json:"topic" gorm:"not null;uniqueIndex:idx_topic_history_user_topic"`
	Attempts        int       `json:"attempts" gorm:"default:1"`
	AvgScore        float64   `json:"avgScore" gorm:"default:0"`
	LastAttemptDate time.Time `json:"lastAttemptDate"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (TopicHistory) TableName() string {
	return "topic_histories"
}

func (h *TopicHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}

// Record folds one more score into the running mean.
func (h *TopicHistory) Record(score float64, at time.Time) {
	h.AvgScore = (h.AvgScore*float64(h.Attempts) + score) / float64(h.Attempts+1)
	h.Attempts++
	h.LastAttemptDate = at
}
