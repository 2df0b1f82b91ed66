package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAttempts(t *testing.T, repo repository.AttemptRepository, userID string, topics ...string) []*model.Attempt {
	t.Helper()
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	var out []*model.Attempt
	for i, topic := range topics {
		a := &model.Attempt{
			UserID:    userID,
			Topic:     topic,
			Quiz:      []model.QuizQuestion{{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 1}},
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), a))
		out = append(out, a)
	}
	return out
}

func TestAttemptRepositoryOrdering(t *testing.T) {
	repo := repository.NewAttemptRepository(testutil.NewStore(t))
	ctx := context.Background()
	seeded := seedAttempts(t, repo, "u1", "Networks", "Database", "MERN")
	seedAttempts(t, repo, "u2", "COA")

	latest, err := repo.FindLatestByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, seeded[2].ID, latest.ID)
	require.Len(t, latest.Quiz, 1)
	assert.Equal(t, 1, latest.Quiz[0].CorrectIndex)

	recent, err := repo.FindRecentByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "MERN", recent[0].Topic)
	assert.Equal(t, "Database", recent[1].Topic)

	all, err := repo.FindAllByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Networks", all[0].Topic)
}

func TestAttemptRepositoryNotFound(t *testing.T) {
	repo := repository.NewAttemptRepository(testutil.NewStore(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = repo.FindLatestByUser(context.Background(), "nobody")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestAttemptRepositoryDegraded(t *testing.T) {
	repo := repository.NewAttemptRepository(testutil.DegradedStore())

	err := repo.Create(context.Background(), &model.Attempt{UserID: "u1"})
	assert.ErrorIs(t, err, database.ErrUnavailable)
}
