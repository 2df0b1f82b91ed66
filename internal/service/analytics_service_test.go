package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func analyticsInputs() ([]model.QuizAttempt, []model.Attempt) {
	day1 := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	quizzes := []model.QuizAttempt{
		{Topic: "Networks", Score: 60, Completed: true, CreatedAt: day1,
			Config: datatypes.NewJSONType(model.QuizConfig{Difficulty: "Easy", NumQuestions: 5})},
		{Topic: "Database", Score: 90, Completed: true, CreatedAt: day2,
			Config: datatypes.NewJSONType(model.QuizConfig{Difficulty: "Hard", NumQuestions: 10})},
	}
	attempts := []model.Attempt{
		{Topic: "Networks", CreatedAt: day1},
		{Topic: "Networks", CreatedAt: day1.Add(time.Hour)},
		{Topic: "Database", CreatedAt: day2},
	}
	return quizzes, attempts
}

func TestAggregateDeterminism(t *testing.T) {
	quizzes, attempts := analyticsInputs()

	first := Aggregate(nil, quizzes, attempts)
	second := Aggregate(nil, quizzes, attempts)
	assert.Equal(t, first, second)

	assert.Equal(t, 3, first.Overview.TotalSessions)
	assert.Equal(t, 2, first.Overview.TotalQuizzes)
	assert.Equal(t, 2, first.Overview.TopicsCount)
	assert.InDelta(t, 75, first.Overview.GlobalAvgScore, 1e-9)

	require.Len(t, first.Charts.Topics, 2)
	for _, ts := range first.Charts.Topics {
		assert.Equal(t, ts.Sessions*30+ts.Quizzes*10, ts.TimeInvested, ts.Topic)
	}
	networks := first.Charts.Topics[0]
	assert.Equal(t, "Networks", networks.Topic)
	assert.Equal(t, 2, networks.Sessions)
	assert.Equal(t, 70, networks.TimeInvested)
	assert.Equal(t, 60, networks.DifficultyAccuracy.Easy)
	assert.Equal(t, 0, networks.DifficultyAccuracy.Hard)
	require.NotNil(t, networks.LastLearned)
	assert.True(t, networks.LastLearned.Equal(attempts[1].CreatedAt))

	assert.Equal(t, 70+40, first.Overview.TotalTimeInvested)
	assert.Equal(t, 10+60, first.Charts.Heatmap["2025-04-01"])
	assert.Equal(t, 10+30, first.Charts.Heatmap["2025-04-02"])
	assert.Equal(t, 90, first.Charts.GlobalDifficultyAccuracy.Hard)
	require.Len(t, first.Charts.Scatter, 2)
	assert.Equal(t, 20, first.Charts.Scatter[1].Time)
}

func TestAggregateUsesTopicHistorySessions(t *testing.T) {
	quizzes, attempts := analyticsInputs()
	histories := []model.TopicHistory{
		{Topic: "Networks", Attempts: 5, AvgScore: 70, LastAttemptDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	got := Aggregate(histories, quizzes, attempts)
	networks := got.Charts.Topics[0]
	assert.Equal(t, 5, networks.Sessions)
	assert.Equal(t, 5*30+10, networks.TimeInvested)
	assert.True(t, networks.LastLearned.Equal(attempts[1].CreatedAt))
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil, nil, nil)
	assert.Zero(t, got.Overview.TotalSessions)
	assert.Empty(t, got.Charts.Topics)
	assert.NotNil(t, got.Charts.Heatmap)
}

func TestBuildAnalyticsAndProgress(t *testing.T) {
	store := testutil.NewStore(t)
	attemptRepo := repository.NewAttemptRepository(store)
	quizRepo := repository.NewQuizAttemptRepository(store)
	historyRepo := repository.NewTopicHistoryRepository(store)
	svc := NewAnalyticsService(attemptRepo, quizRepo, historyRepo)
	ctx := context.Background()

	quizzes, attempts := analyticsInputs()
	for i := range quizzes {
		quizzes[i].UserID = "u1"
		require.NoError(t, quizRepo.Create(ctx, &quizzes[i]))
	}
	scores := []float64{100, 0, 0}
	for i := range attempts {
		attempts[i].UserID = "u1"
		attempts[i].Score = &scores[i]
		require.NoError(t, attemptRepo.Create(ctx, &attempts[i]))
	}
	_, err := historyRepo.RecordScore(ctx, "u1", "Networks", 50, time.Now())
	require.NoError(t, err)

	analytics, err := svc.BuildAnalytics(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, analytics.Overview.TotalSessions)
	assert.Equal(t, 2, analytics.Overview.TotalQuizzes)

	progress, err := svc.GetProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, progress.TotalAttempts)
	assert.Equal(t, 1, progress.TopicsLearned)
	assert.Equal(t, 33.33, progress.AvgScore)
	require.Len(t, progress.History, 1)
	assert.Equal(t, "Networks", progress.History[0].Topic)
	assert.Equal(t, 1, progress.History[0].Attempts)
}
