package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedMode database.Mode

func (m fixedMode) Mode(context.Context) database.Mode { return database.Mode(m) }

func newSessionFixture(t *testing.T) (*sessionService, repository.AttemptRepository, repository.TopicHistoryRepository) {
	store := testutil.NewStore(t)
	attemptRepo := repository.NewAttemptRepository(store)
	historyRepo := repository.NewTopicHistoryRepository(store)
	svc := NewSessionService(store, attemptRepo, historyRepo).(*sessionService)
	return svc, attemptRepo, historyRepo
}

func TestCreateAttemptDegradedIssuesTransientID(t *testing.T) {
	svc := NewSessionService(fixedMode(database.ModeDegraded), nil, nil).(*sessionService)
	svc.now = func() time.Time { return time.UnixMilli(1712345678901) }

	attempt, err := svc.CreateAttempt(context.Background(), &model.Attempt{UserID: "u1", Topic: "MERN"})
	require.NoError(t, err)
	assert.Equal(t, "temp_1712345678901", attempt.ID)
	assert.True(t, model.IsTransientAttemptID(attempt.ID))
}

func TestCreateAttemptWithoutUserGetsDemoID(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	attempt, err := svc.CreateAttempt(context.Background(), &model.Attempt{Topic: "MERN"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(attempt.UserID, "demo_"))
	assert.False(t, model.IsTransientAttemptID(attempt.ID))
}

func TestCreateAttemptDegradedStoreFallsBack(t *testing.T) {
	store := testutil.DegradedStore()
	svc := NewSessionService(store, repository.NewAttemptRepository(store), repository.NewTopicHistoryRepository(store))

	attempt, err := svc.CreateAttempt(context.Background(), &model.Attempt{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, model.IsTransientAttemptID(attempt.ID))

	_, err = svc.GetHistory(context.Background(), "u1", 10)
	assert.Equal(t, 503, apperr.StatusOf(err))
}

func TestGetLastAttempt(t *testing.T) {
	svc, attemptRepo, _ := newSessionFixture(t)
	ctx := context.Background()

	none, err := svc.GetLastAttempt(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, attemptRepo.Create(ctx, &model.Attempt{UserID: "u1", Topic: "Networks", CreatedAt: base}))
	require.NoError(t, attemptRepo.Create(ctx, &model.Attempt{UserID: "u1", Topic: "Database", LearningGoal: "Exams", CreatedAt: base.Add(time.Hour)}))

	last, err := svc.GetLastAttempt(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "Database", last.Topic)
	assert.Equal(t, "Exams", last.Goal)
	assert.NotNil(t, last.ChatHistory)
}

func TestGetHistoryUsesTopicAverageAndIsIdempotent(t *testing.T) {
	svc, attemptRepo, historyRepo := newSessionFixture(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	own := 10.0
	require.NoError(t, attemptRepo.Create(ctx, &model.Attempt{UserID: "u1", Topic: "Networks", Score: &own, CreatedAt: base}))
	require.NoError(t, attemptRepo.Create(ctx, &model.Attempt{UserID: "u1", Topic: "COA", CreatedAt: base.Add(time.Minute)}))
	_, err := historyRepo.RecordScore(ctx, "u1", "Networks", 80, base)
	require.NoError(t, err)
	_, err = historyRepo.RecordScore(ctx, "u1", "Networks", 65, base)
	require.NoError(t, err)

	first, err := svc.GetHistory(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "COA", first[0].Topic)
	assert.Nil(t, first[0].Score)
	require.NotNil(t, first[1].Score)
	assert.Equal(t, 73.0, *first[1].Score)

	second, err := svc.GetHistory(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetByID(t *testing.T) {
	svc, attemptRepo, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "temp_123")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = svc.GetByID(ctx, "does-not-exist")
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	a := &model.Attempt{UserID: "u1", Topic: "Deep Learning", ConfidenceLevel: 4}
	require.NoError(t, attemptRepo.Create(ctx, a))
	view, err := svc.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, view.AttemptID)
	assert.Equal(t, 4, view.Confidence)
}

func TestAppendChatTurn(t *testing.T) {
	svc, attemptRepo, _ := newSessionFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.AppendChatTurn(ctx, "temp_1", "hi", "hello"))
	require.NoError(t, svc.AppendChatTurn(ctx, "", "hi", "hello"))

	a := &model.Attempt{UserID: "u1", Topic: "MERN"}
	require.NoError(t, attemptRepo.Create(ctx, a))
	require.NoError(t, svc.AppendChatTurn(ctx, a.ID, "what is JSX?", "A syntax extension."))
	require.NoError(t, svc.AppendChatTurn(ctx, a.ID, "thanks", "Any time."))

	saved, err := attemptRepo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, saved.ChatHistory, 4)
	assert.Equal(t, model.SenderUser, saved.ChatHistory[0].Sender)
	assert.Equal(t, model.SenderAI, saved.ChatHistory[1].Sender)
	assert.Equal(t, "Any time.", saved.ChatHistory[3].Text)
}
