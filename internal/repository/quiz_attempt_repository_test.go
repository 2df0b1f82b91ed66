package repository_test

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

func TestQuizAttemptRepositoryCompletedQueries(t *testing.T) {
	repo := repository.NewQuizAttemptRepository(testutil.NewStore(t))
	ctx := context.Background()
	base := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)

	mk := func(topic string, score float64, completed bool, offset time.Duration) *model.QuizAttempt {
		q := &model.QuizAttempt{
			UserID:    "u1",
			Topic:     topic,
			Config:    datatypes.NewJSONType(model.QuizConfig{Difficulty: "Hard", NumQuestions: 3, Style: "Direct"}),
			Score:     score,
			Completed: completed,
			CreatedAt: base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, q))
		return q
	}
	first := mk("Networks", 40, true, 0)
	mk("Networks", 0, false, time.Hour)
	second := mk("Networks", 60, true, 2*time.Hour)
	current := mk("Networks", 90, true, 3*time.Hour)
	mk("Database", 100, true, 4*time.Hour)

	previous, err := repo.FindPreviousCompleted(ctx, "u1", "Networks", current.ID, 5)
	require.NoError(t, err)
	require.Len(t, previous, 2)
	assert.Equal(t, second.ID, previous[0].ID)
	assert.Equal(t, first.ID, previous[1].ID)

	recent, err := repo.FindCompletedByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Database", recent[0].Topic)

	chronological, err := repo.FindAllCompletedChronological(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, chronological, 4)
	assert.Equal(t, first.ID, chronological[0].ID)
	assert.Equal(t, "Hard", chronological[0].Config.Data().Difficulty)
}
