package dto

import (
	"time"

	"github.com/lshigami/edulink/internal/model"
)

type InlineQuizResult struct {
	Success           bool    `json:"success" example:"true"`
	Score             float64 `json:"score"`
	ForgetProbability int     `json:"forgetProbability"`
	Feedback          string  `json:"feedback"`
	Simulated         bool    `json:"simulated"`
}

// QuizSession is the client view of a QuizAttempt.
type QuizSession struct {
	ID          string                    `json:"id"`
	UserID      string                    `json:"userId"`
	Topic       string                    `json:"topic"`
	Config      model.QuizConfig          `json:"config"`
	Questions   []model.GeneratedQuestion `json:"questions"`
	UserAnswers []int                     `json:"userAnswers"`
	Score       float64                   `json:"score"`
	Completed   bool                      `json:"completed"`
	CreatedAt   time.Time                 `json:"createdAt"`
}

type CreateQuizResponse struct {
	Success bool                      `json:"success" example:"true"`
	QuizID  string                    `json:"quizId"`
	Quiz    []model.GeneratedQuestion `json:"quiz"`
}

// QuizAnalysis compares a finished quiz with earlier ones on the same topic.
type QuizAnalysis struct {
	AvgScore     float64 `json:"avgScore"`
	Improvement  float64 `json:"improvement"`
	HistoryCount int     `json:"historyCount"`
}

type FinishQuizResponse struct {
	Success     bool         `json:"success" example:"true"`
	Score       float64      `json:"score"`
	QuizSession QuizSession  `json:"quizSession"`
	Analysis    QuizAnalysis `json:"analysis"`
}

type QuizHistoryResponse struct {
	Success bool          `json:"success" example:"true"`
	History []QuizSession `json:"history"`
}
