package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizConfig is the generation setting a standalone quiz was created with.
type QuizConfig struct {
	Difficulty       string `json:"difficulty"`
	NumQuestions     int    `json:"numQuestions"`
	Style            string `json:"style"`
	IncludeTrick     bool   `json:"includeTrick,omitempty"`
	IncludeTrueFalse bool   `json:"includeTrueFalse,omitempty"`
}

type GeneratedQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	Explanation  string   `json:"explanation,omitempty"`
}

// QuizAttempt is a configurable quiz, separate from the inline quiz of an
// Attempt. It moves from created to completed when answers are submitted.
type QuizAttempt struct {
	ID          string                                 `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string                                 `json:"userId" gorm:"not null;index:idx_quiz_user_topic"`
	Topic       string                                 `json:"topic" gorm:"index:idx_quiz_user_topic"`
	Config      datatypes.JSONType[QuizConfig]         `json:"config"`
	Questions   datatypes.JSONSlice[GeneratedQuestion] `json:"questions"`
	UserAnswers datatypes.JSONSlice[int]               `json:"userAnswers"`
	Score       float64                                `json:"score" gorm:"default:0"`
	Completed   bool                                   `json:"completed" gorm:"default:false;index"`
	CreatedAt   time.Time                              `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time                              `json:"updatedAt"`
}

func (q *QuizAttempt) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
