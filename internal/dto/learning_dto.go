package dto

import (
	"time"

	"github.com/lshigami/edulink/internal/model"
)

// LearningContent is what the content generator produces for one topic.
type LearningContent struct {
	Explanation string               `json:"explanation"`
	Example     string               `json:"example"`
	Quiz        []model.QuizQuestion `json:"quiz"`
}

type LearningResponse struct {
	Success   bool            `json:"success" example:"true"`
	Data      LearningContent `json:"data"`
	AttemptID string          `json:"attemptId"`
}

type ChatResponse struct {
	Success bool   `json:"success" example:"true"`
	Reply   string `json:"reply"`
}

// SessionView is an Attempt reshaped for resuming a learning session.
type SessionView struct {
	Topic       string              `json:"topic"`
	Confidence  int                 `json:"confidence"`
	Goal        string              `json:"goal"`
	Content     LearningContent     `json:"content"`
	AttemptID   string              `json:"attemptId"`
	ChatHistory []model.ChatMessage `json:"chatHistory"`
}

type SessionResponse struct {
	Success bool         `json:"success" example:"true"`
	Session *SessionView `json:"session"`
}

// HistoryEntry is an Attempt summary whose Score shows topic mastery
// rather than the single session score.
type HistoryEntry struct {
	ID              string               `json:"id"`
	Topic           string               `json:"topic"`
	LearningGoal    string               `json:"learningGoal"`
	ConfidenceLevel int                  `json:"confidenceLevel"`
	Explanation     string               `json:"explanation"`
	Example         string               `json:"example"`
	Quiz            []model.QuizQuestion `json:"quiz"`
	Score           *float64             `json:"score"`
	CreatedAt       time.Time            `json:"createdAt"`
}

type HistoryResponse struct {
	Success bool           `json:"success" example:"true"`
	History []HistoryEntry `json:"history"`
}
