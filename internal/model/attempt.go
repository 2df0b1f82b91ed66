package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TransientIDPrefix marks attempt IDs that were never persisted.
const TransientIDPrefix = "temp_"

type ChatSender string

const (
	SenderUser   ChatSender = "user"
	SenderAI     ChatSender = "ai"
	SenderSystem ChatSender = "system"
)

type ChatMessage struct {
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}

// QuizQuestion is one inline question of an Attempt. UserAnswer stays nil
// until the quiz is submitted.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
	UserAnswer   *int     `json:"userAnswer,omitempty"`
}

type Attempt struct {
	ID                string                            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID            string                            `json:"userId" gorm:"not null;index"`
	Topic             string                            `json:"topic" gorm:"index"`
	ConfidenceLevel   int                               `json:"confidenceLevel"`
	LearningGoal      string                            `json:"learningGoal"`
	Explanation       string                            `json:"explanation" gorm:"type:text"`
	Example           string                            `json:"example" gorm:"type:text"`
	Quiz              datatypes.JSONSlice[QuizQuestion] `json:"quiz"`
	Score             *float64                          `json:"score"`
	ForgetProbability *int                              `json:"forgetProbability"`
	ChatHistory       datatypes.JSONSlice[ChatMessage]  `json:"chatHistory"`
	CreatedAt         time.Time                         `json:"createdAt" gorm:"index"`
	UpdatedAt         time.Time                         `json:"updatedAt"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// IsTransientAttemptID reports whether id was issued while the database was offline.
func IsTransientAttemptID(id string) bool {
	return strings.HasPrefix(id, TransientIDPrefix)
}
