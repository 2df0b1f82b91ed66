package service

import (
	"context"

	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/model"
	"github.com/rs/zerolog/log"
)

// LearningService runs the learn and chat flows on top of the content
// generator and the session store.
type LearningService interface {
	Learn(ctx context.Context, req dto.GenerateLearningRequest) (*dto.LearningResponse, error)
	Chat(ctx context.Context, req dto.ChatRequest) string
}

type learningService struct {
	generator ContentGeneratorService
	sessions  SessionService
}

func NewLearningService(generator ContentGeneratorService, sessions SessionService) LearningService {
	return &learningService{generator: generator, sessions: sessions}
}

func (s *learningService) Learn(ctx context.Context, req dto.GenerateLearningRequest) (*dto.LearningResponse, error) {
	content, err := s.generator.GenerateLearningContent(ctx, req.Topic, req.ConfidenceLevel, req.LearningGoal)
	if err != nil {
		return nil, err
	}

	attempt, err := s.sessions.CreateAttempt(ctx, &model.Attempt{
		UserID:          req.UserID,
		Topic:           req.Topic,
		ConfidenceLevel: req.ConfidenceLevel,
		LearningGoal:    req.LearningGoal,
		Explanation:     content.Explanation,
		Example:         content.Example,
		Quiz:            content.Quiz,
	})
	if err != nil {
		return nil, err
	}

	return &dto.LearningResponse{Success: true, Data: *content, AttemptID: attempt.ID}, nil
}

// Chat always yields a reply. A failed history write is logged, not surfaced.
func (s *learningService) Chat(ctx context.Context, req dto.ChatRequest) string {
	reply := s.generator.GenerateChatResponse(ctx, req.Message, req.Topic, req.Mode, req.History)
	if err := s.sessions.AppendChatTurn(ctx, req.AttemptID, req.Message, reply); err != nil {
		log.Error().Err(err).Str("attemptId", req.AttemptID).Msg("Failed to save chat turn")
	}
	return reply
}
