package service

import (
	"context"
	"math"

	"github.com/jinzhu/copier"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	minutesPerSession  = 30
	minutesPerQuiz     = 10
	minutesPerQuestion = 2

	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	heatmapDateLayout = "2006-01-02"
)

type AnalyticsService interface {
	BuildAnalytics(ctx context.Context, userID string) (*dto.Analytics, error)
	GetProgress(ctx context.Context, userID string) (*dto.Progress, error)
}

type analyticsService struct {
	attemptRepo repository.AttemptRepository
	quizRepo    repository.QuizAttemptRepository
	historyRepo repository.TopicHistoryRepository
}

func NewAnalyticsService(
	attemptRepo repository.AttemptRepository,
	quizRepo repository.QuizAttemptRepository,
	historyRepo repository.TopicHistoryRepository,
) AnalyticsService {
	return &analyticsService{
		attemptRepo: attemptRepo,
		quizRepo:    quizRepo,
		historyRepo: historyRepo,
	}
}

func (s *analyticsService) BuildAnalytics(ctx context.Context, userID string) (*dto.Analytics, error) {
	var (
		histories []model.TopicHistory
		quizzes   []model.QuizAttempt
		attempts  []model.Attempt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		histories, err = s.historyRepo.FindByUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		quizzes, err = s.quizRepo.FindAllCompletedChronological(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = s.attemptRepo.FindAllByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, storeError(err, "load analytics inputs", "Analytics not found")
	}

	analytics := Aggregate(histories, quizzes, attempts)
	return &analytics, nil
}

type difficultyBucket struct {
	total float64
	count int
}

type difficultyStats map[string]*difficultyBucket

func newDifficultyStats() difficultyStats {
	return difficultyStats{
		DifficultyEasy:   {},
		DifficultyMedium: {},
		DifficultyHard:   {},
	}
}

// add ignores labels outside Easy/Medium/Hard.
func (d difficultyStats) add(level string, score float64) {
	if b, ok := d[level]; ok {
		b.total += score
		b.count++
	}
}

func (d difficultyStats) accuracy() dto.DifficultyAccuracy {
	mean := func(level string) int {
		b := d[level]
		if b.count == 0 {
			return 0
		}
		return int(math.Round(b.total / float64(b.count)))
	}
	return dto.DifficultyAccuracy{
		Easy:   mean(DifficultyEasy),
		Medium: mean(DifficultyMedium),
		Hard:   mean(DifficultyHard),
	}
}

type topicAccumulator struct {
	stats      dto.TopicStats
	totalScore float64
	difficulty difficultyStats
}

// Aggregate folds a user's topic histories, completed quizzes (oldest first)
// and attempts into dashboard data. It is deterministic for equal inputs.
func Aggregate(histories []model.TopicHistory, quizzes []model.QuizAttempt, attempts []model.Attempt) dto.Analytics {
	var order []string
	topics := make(map[string]*topicAccumulator)
	topicOf := func(name string) *topicAccumulator {
		if t, ok := topics[name]; ok {
			return t
		}
		t := &topicAccumulator{
			stats:      dto.TopicStats{Topic: name, Trend: []dto.TrendPoint{}},
			difficulty: newDifficultyStats(),
		}
		topics[name] = t
		order = append(order, name)
		return t
	}

	tracked := make(map[string]bool, len(histories))
	for _, h := range histories {
		t := topicOf(h.Topic)
		t.stats.Sessions = h.Attempts
		last := h.LastAttemptDate
		t.stats.LastLearned = &last
		tracked[h.Topic] = true
	}

	for _, a := range attempts {
		t := topicOf(a.Topic)
		if !tracked[a.Topic] {
			t.stats.Sessions++
		}
		if t.stats.LastLearned == nil || a.CreatedAt.After(*t.stats.LastLearned) {
			created := a.CreatedAt
			t.stats.LastLearned = &created
		}
	}

	heatmap := make(map[string]int)
	scatter := make([]dto.ScatterPoint, 0, len(quizzes))
	globalTrend := make([]dto.GlobalTrendPoint, 0, len(quizzes))
	globalDifficulty := newDifficultyStats()
	totalQuizScore := 0.0

	for _, q := range quizzes {
		t := topicOf(q.Topic)
		t.stats.Quizzes++
		t.totalScore += q.Score
		t.stats.BestScore = math.Max(t.stats.BestScore, q.Score)
		t.stats.Trend = append(t.stats.Trend, dto.TrendPoint{Date: q.CreatedAt, Score: q.Score})

		cfg := q.Config.Data()
		level := cfg.Difficulty
		if level == "" {
			level = DifficultyMedium
		}
		t.difficulty.add(level, q.Score)
		globalDifficulty.add(level, q.Score)

		heatmap[q.CreatedAt.UTC().Format(heatmapDateLayout)] += minutesPerQuiz

		numQuestions := cfg.NumQuestions
		if numQuestions <= 0 {
			numQuestions = DefaultQuizNumQuestions
		}
		scatter = append(scatter, dto.ScatterPoint{Time: numQuestions * minutesPerQuestion, Score: q.Score, Topic: q.Topic})
		globalTrend = append(globalTrend, dto.GlobalTrendPoint{Date: q.CreatedAt, Score: q.Score, Topic: q.Topic})
		totalQuizScore += q.Score
	}

	for _, a := range attempts {
		heatmap[a.CreatedAt.UTC().Format(heatmapDateLayout)] += minutesPerSession
	}

	topicStats := make([]dto.TopicStats, 0, len(order))
	totalTime := 0
	for _, name := range order {
		t := topics[name]
		if t.stats.Quizzes > 0 {
			t.stats.AvgScore = t.totalScore / float64(t.stats.Quizzes)
		}
		t.stats.DifficultyAccuracy = t.difficulty.accuracy()
		t.stats.TimeInvested = t.stats.Sessions*minutesPerSession + t.stats.Quizzes*minutesPerQuiz
		totalTime += t.stats.TimeInvested
		topicStats = append(topicStats, t.stats)
	}

	globalAvg := 0.0
	if len(quizzes) > 0 {
		globalAvg = totalQuizScore / float64(len(quizzes))
	}

	return dto.Analytics{
		Overview: dto.Overview{
			TotalSessions:     len(attempts),
			TotalQuizzes:      len(quizzes),
			GlobalAvgScore:    globalAvg,
			TopicsCount:       len(topicStats),
			TotalTimeInvested: totalTime,
		},
		Charts: dto.Charts{
			Heatmap:                  heatmap,
			Topics:                   topicStats,
			GlobalTrend:              globalTrend,
			GlobalDifficultyAccuracy: globalDifficulty.accuracy(),
			Scatter:                  scatter,
		},
	}
}

func (s *analyticsService) GetProgress(ctx context.Context, userID string) (*dto.Progress, error) {
	attempts, err := s.attemptRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, "load attempts", "Progress not found")
	}
	histories, err := s.historyRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, storeError(err, "load topic history", "Progress not found")
	}

	progress := &dto.Progress{
		TotalAttempts: len(attempts),
		TopicsLearned: len(histories),
		History:       []dto.TopicHistoryEntry{},
	}

	scored, total := 0, 0.0
	for _, a := range attempts {
		if a.Score != nil {
			scored++
			total += *a.Score
		}
	}
	if scored > 0 {
		progress.AvgScore = math.Round(total/float64(scored)*100) / 100
	}

	if err := copier.Copy(&progress.History, &histories); err != nil {
		return nil, err
	}
	return progress, nil
}
