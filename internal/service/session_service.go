package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const DefaultHistoryLimit = 10

type SessionService interface {
	// CreateAttempt persists a new attempt. When the database is degraded the
	// attempt gets a transient ID and nothing is written.
	CreateAttempt(ctx context.Context, attempt *model.Attempt) (*model.Attempt, error)
	GetLastAttempt(ctx context.Context, userID string) (*dto.SessionView, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]dto.HistoryEntry, error)
	GetByID(ctx context.Context, attemptID string) (*dto.SessionView, error)
	AppendChatTurn(ctx context.Context, attemptID, userText, aiText string) error
}

type sessionService struct {
	status      database.PersistenceStatus
	attemptRepo repository.AttemptRepository
	historyRepo repository.TopicHistoryRepository
	now         func() time.Time
}

func NewSessionService(
	status database.PersistenceStatus,
	attemptRepo repository.AttemptRepository,
	historyRepo repository.TopicHistoryRepository,
) SessionService {
	return &sessionService{
		status:      status,
		attemptRepo: attemptRepo,
		historyRepo: historyRepo,
		now:         time.Now,
	}
}

func (s *sessionService) transientID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, s.now().UnixMilli())
}

func (s *sessionService) CreateAttempt(ctx context.Context, attempt *model.Attempt) (*model.Attempt, error) {
	if attempt.UserID == "" {
		attempt.UserID = s.transientID("demo_")
	}

	if s.status.Mode(ctx) == database.ModeDegraded {
		log.Warn().Str("userId", attempt.UserID).Msg("Database not connected, skipping attempt save")
		attempt.ID = s.transientID(model.TransientIDPrefix)
		return attempt, nil
	}

	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		if errors.Is(err, database.ErrUnavailable) {
			attempt.ID = s.transientID(model.TransientIDPrefix)
			return attempt, nil
		}
		log.Error().Err(err).Str("userId", attempt.UserID).Msg("Failed to save attempt")
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	log.Info().Str("attemptId", attempt.ID).Str("topic", attempt.Topic).Msg("Attempt saved")
	return attempt, nil
}

func (s *sessionService) GetLastAttempt(ctx context.Context, userID string) (*dto.SessionView, error) {
	attempt, err := s.attemptRepo.FindLatestByUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err, "find last attempt", "Session not found")
	}
	return toSessionView(attempt), nil
}

func (s *sessionService) GetHistory(ctx context.Context, userID string, limit int) ([]dto.HistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	attempts, err := s.attemptRepo.FindRecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, storeError(err, "find attempt history", "History not found")
	}
	histories, err := s.historyRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, "find topic history", "History not found")
	}

	mastery := make(map[string]float64, len(histories))
	for _, h := range histories {
		mastery[h.Topic] = h.AvgScore
	}

	entries := make([]dto.HistoryEntry, 0, len(attempts))
	for _, a := range attempts {
		entry := dto.HistoryEntry{
			ID:              a.ID,
			Topic:           a.Topic,
			LearningGoal:    a.LearningGoal,
			ConfidenceLevel: a.ConfidenceLevel,
			Explanation:     a.Explanation,
			Example:         a.Example,
			Quiz:            []model.QuizQuestion(a.Quiz),
			CreatedAt:       a.CreatedAt,
		}
		if avg, ok := mastery[a.Topic]; ok {
			rounded := math.Round(avg)
			entry.Score = &rounded
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *sessionService) GetByID(ctx context.Context, attemptID string) (*dto.SessionView, error) {
	if model.IsTransientAttemptID(attemptID) {
		return nil, apperr.NotFound("Session not found", nil)
	}
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return nil, storeError(err, "find attempt", "Session not found")
	}
	return toSessionView(attempt), nil
}

func (s *sessionService) AppendChatTurn(ctx context.Context, attemptID, userText, aiText string) error {
	if attemptID == "" || model.IsTransientAttemptID(attemptID) {
		return nil
	}
	attempt, err := s.attemptRepo.FindByID(ctx, attemptID)
	if err != nil {
		return storeError(err, "find attempt", "Session not found")
	}
	now := s.now()
	attempt.ChatHistory = append(attempt.ChatHistory,
		model.ChatMessage{Sender: model.SenderUser, Text: userText, Timestamp: now},
		model.ChatMessage{Sender: model.SenderAI, Text: aiText, Timestamp: now},
	)
	if err := s.attemptRepo.Update(ctx, attempt); err != nil {
		return storeError(err, "append chat turn", "Session not found")
	}
	return nil
}

func toSessionView(a *model.Attempt) *dto.SessionView {
	chat := []model.ChatMessage(a.ChatHistory)
	if chat == nil {
		chat = []model.ChatMessage{}
	}
	return &dto.SessionView{
		Topic:      a.Topic,
		Confidence: a.ConfidenceLevel,
		Goal:       a.LearningGoal,
		Content: dto.LearningContent{
			Explanation: a.Explanation,
			Example:     a.Example,
			Quiz:        []model.QuizQuestion(a.Quiz),
		},
		AttemptID:   a.ID,
		ChatHistory: chat,
	}
}
