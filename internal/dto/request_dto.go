package dto

import "github.com/lshigami/edulink/internal/model"

type GenerateLearningRequest struct {
	Topic           string `json:"topic" binding:"required"`
	ConfidenceLevel int    `json:"confidenceLevel" binding:"required,min=1,max=5"`
	LearningGoal    string `json:"learningGoal" binding:"required"`
	UserID          string `json:"userId"`
}

// ChatTurn is one prior message the client sends back as context.
type ChatTurn struct {
	Sender model.ChatSender `json:"sender"`
	Text   string           `json:"text"`
}

type ChatRequest struct {
	Message   string     `json:"message" binding:"required"`
	Topic     string     `json:"topic"`
	Mode      string     `json:"mode"`
	History   []ChatTurn `json:"history"`
	AttemptID string     `json:"attemptId"`
}

type SubmitInlineQuizRequest struct {
	AttemptID string `json:"attemptId" binding:"required"`
	Answers   []int  `json:"answers" binding:"required"`
}

type QuizConfigRequest struct {
	Difficulty       string `json:"difficulty" example:"Medium"`
	NumQuestions     int    `json:"numQuestions" binding:"omitempty,min=1,max=20" example:"5"`
	Style            string `json:"style" example:"Direct"`
	IncludeTrick     bool   `json:"includeTrick"`
	IncludeTrueFalse bool   `json:"includeTrueFalse"`
}

type CreateQuizRequest struct {
	Topic  string            `json:"topic" binding:"required"`
	Config QuizConfigRequest `json:"config"`
	UserID string            `json:"userId"`
}

type FinishQuizRequest struct {
	QuizID  string `json:"quizId" binding:"required"`
	Answers []int  `json:"answers" binding:"required"`
}

type TimetableRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ReminderRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Topic   string `json:"topic"`
	Channel string `json:"channel"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
