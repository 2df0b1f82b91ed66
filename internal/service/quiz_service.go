package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	// SimulatedScore is returned for quizzes of attempts that were never saved.
	SimulatedScore      = 80
	simulatedConfidence = 3

	PassingScore = 70

	FeedbackPassed    = "Great job!"
	FeedbackPractice  = "Keep practicing!"
	FeedbackSimulated = "Database offline: Results are simulated."

	DefaultQuizUserID       = "guest"
	DefaultQuizDifficulty   = "Medium"
	DefaultQuizNumQuestions = 5
	DefaultQuizStyle        = "Direct"
	DefaultQuizHistoryLimit = 20

	previousQuizWindow = 5
)

type QuizService interface {
	SubmitInlineQuiz(ctx context.Context, req dto.SubmitInlineQuizRequest) (*dto.InlineQuizResult, error)
	CreateConfiguredQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.CreateQuizResponse, error)
	SubmitConfiguredQuiz(ctx context.Context, req dto.FinishQuizRequest) (*dto.FinishQuizResponse, error)
	GetQuizHistory(ctx context.Context, userID string, limit int) ([]dto.QuizSession, error)
}

type quizService struct {
	attemptRepo repository.AttemptRepository
	quizRepo    repository.QuizAttemptRepository
	historyRepo repository.TopicHistoryRepository
	generator   ContentGeneratorService
	predictor   ForgetPredictorService
	now         func() time.Time
}

func NewQuizService(
	attemptRepo repository.AttemptRepository,
	quizRepo repository.QuizAttemptRepository,
	historyRepo repository.TopicHistoryRepository,
	generator ContentGeneratorService,
	predictor ForgetPredictorService,
) QuizService {
	return &quizService{
		attemptRepo: attemptRepo,
		quizRepo:    quizRepo,
		historyRepo: historyRepo,
		generator:   generator,
		predictor:   predictor,
		now:         time.Now,
	}
}

// ScorePercentage is 100 * correct / total, or 0 for an empty quiz.
func ScorePercentage(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func FeedbackFor(score float64) string {
	if score >= PassingScore {
		return FeedbackPassed
	}
	return FeedbackPractice
}

func (s *quizService) SubmitInlineQuiz(ctx context.Context, req dto.SubmitInlineQuizRequest) (*dto.InlineQuizResult, error) {
	if model.IsTransientAttemptID(req.AttemptID) {
		return &dto.InlineQuizResult{
			Success:           true,
			Score:             SimulatedScore,
			ForgetProbability: s.predictor.Predict(simulatedConfidence, SimulatedScore),
			Feedback:          FeedbackSimulated,
			Simulated:         true,
		}, nil
	}

	attempt, err := s.attemptRepo.FindByID(ctx, req.AttemptID)
	if err != nil {
		return nil, storeError(err, "find attempt", "Attempt not found")
	}

	correct := 0
	for i := range attempt.Quiz {
		if i >= len(req.Answers) {
			attempt.Quiz[i].UserAnswer = nil
			continue
		}
		answer := req.Answers[i]
		attempt.Quiz[i].UserAnswer = &answer
		if answer == attempt.Quiz[i].CorrectIndex {
			correct++
		}
	}

	score := ScorePercentage(correct, len(attempt.Quiz))
	forget := s.predictor.Predict(attempt.ConfidenceLevel, score)
	attempt.Score = &score
	attempt.ForgetProbability = &forget

	if err := s.attemptRepo.Update(ctx, attempt); err != nil {
		return nil, storeError(err, "save attempt score", "Attempt not found")
	}
	s.recordTopicScore(ctx, attempt.UserID, attempt.Topic, score)

	return &dto.InlineQuizResult{
		Success:           true,
		Score:             score,
		ForgetProbability: forget,
		Feedback:          FeedbackFor(score),
	}, nil
}

// recordTopicScore updates mastery. A failure here must not undo the
// already saved quiz result, so it is only logged.
func (s *quizService) recordTopicScore(ctx context.Context, userID, topic string, score float64) {
	if _, err := s.historyRepo.RecordScore(ctx, userID, topic, score, s.now()); err != nil {
		log.Error().Err(err).Str("userId", userID).Str("topic", topic).Msg("Failed to update topic history")
	}
}

func normalizeQuizConfig(req dto.QuizConfigRequest) model.QuizConfig {
	cfg := model.QuizConfig{
		Difficulty:       strings.TrimSpace(req.Difficulty),
		NumQuestions:     req.NumQuestions,
		Style:            strings.TrimSpace(req.Style),
		IncludeTrick:     req.IncludeTrick,
		IncludeTrueFalse: req.IncludeTrueFalse,
	}
	if cfg.Difficulty == "" {
		cfg.Difficulty = DefaultQuizDifficulty
	}
	if cfg.NumQuestions <= 0 {
		cfg.NumQuestions = DefaultQuizNumQuestions
	}
	if cfg.Style == "" {
		cfg.Style = DefaultQuizStyle
	}
	return cfg
}

func (s *quizService) CreateConfiguredQuiz(ctx context.Context, req dto.CreateQuizRequest) (*dto.CreateQuizResponse, error) {
	cfg := normalizeQuizConfig(req.Config)
	questions, err := s.generator.GenerateCustomQuiz(ctx, req.Topic, cfg)
	if err != nil {
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = DefaultQuizUserID
	}
	quiz := &model.QuizAttempt{
		UserID:      userID,
		Topic:       req.Topic,
		Config:      datatypes.NewJSONType(cfg),
		Questions:   questions,
		UserAnswers: datatypes.JSONSlice[int]{},
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, storeError(err, "create quiz", "Quiz not found")
	}
	log.Info().Str("quizId", quiz.ID).Str("topic", quiz.Topic).Int("questions", len(questions)).Msg("Quiz created")

	return &dto.CreateQuizResponse{Success: true, QuizID: quiz.ID, Quiz: questions}, nil
}

// SubmitConfiguredQuiz scores a quiz and marks it completed. Submitting the
// same quiz again overwrites the earlier result.
func (s *quizService) SubmitConfiguredQuiz(ctx context.Context, req dto.FinishQuizRequest) (*dto.FinishQuizResponse, error) {
	quiz, err := s.quizRepo.FindByID(ctx, req.QuizID)
	if err != nil {
		return nil, storeError(err, "find quiz", "Quiz not found")
	}

	correct := 0
	for i, q := range quiz.Questions {
		if i < len(req.Answers) && req.Answers[i] == q.CorrectIndex {
			correct++
		}
	}
	score := ScorePercentage(correct, len(quiz.Questions))

	quiz.UserAnswers = append(datatypes.JSONSlice[int]{}, req.Answers...)
	quiz.Score = score
	quiz.Completed = true
	if err := s.quizRepo.Update(ctx, quiz); err != nil {
		return nil, storeError(err, "save quiz result", "Quiz not found")
	}
	s.recordTopicScore(ctx, quiz.UserID, quiz.Topic, score)

	previous, err := s.quizRepo.FindPreviousCompleted(ctx, quiz.UserID, quiz.Topic, quiz.ID, previousQuizWindow)
	if err != nil {
		return nil, fmt.Errorf("find previous quizzes: %w", err)
	}

	return &dto.FinishQuizResponse{
		Success:     true,
		Score:       score,
		QuizSession: toQuizSession(quiz),
		Analysis:    analyzeAgainst(score, previous),
	}, nil
}

func analyzeAgainst(score float64, previous []model.QuizAttempt) dto.QuizAnalysis {
	analysis := dto.QuizAnalysis{HistoryCount: len(previous)}
	if len(previous) > 0 {
		total := 0.0
		for _, q := range previous {
			total += q.Score
		}
		analysis.AvgScore = total / float64(len(previous))
	}
	analysis.Improvement = score - analysis.AvgScore
	return analysis
}

func (s *quizService) GetQuizHistory(ctx context.Context, userID string, limit int) ([]dto.QuizSession, error) {
	if limit <= 0 {
		limit = DefaultQuizHistoryLimit
	}
	quizzes, err := s.quizRepo.FindCompletedByUser(ctx, userID, limit)
	if err != nil {
		return nil, storeError(err, "find quiz history", "Quiz history not found")
	}
	sessions := make([]dto.QuizSession, 0, len(quizzes))
	for i := range quizzes {
		sessions = append(sessions, toQuizSession(&quizzes[i]))
	}
	return sessions, nil
}

func toQuizSession(q *model.QuizAttempt) dto.QuizSession {
	answers := []int(q.UserAnswers)
	if answers == nil {
		answers = []int{}
	}
	return dto.QuizSession{
		ID:          q.ID,
		UserID:      q.UserID,
		Topic:       q.Topic,
		Config:      q.Config.Data(),
		Questions:   []model.GeneratedQuestion(q.Questions),
		UserAnswers: answers,
		Score:       q.Score,
		Completed:   q.Completed,
		CreatedAt:   q.CreatedAt,
	}
}
