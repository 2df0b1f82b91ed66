package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepositoryLookups(t *testing.T) {
	repo := repository.NewUserRepository(testutil.NewStore(t))
	ctx := context.Background()

	googleID := "g-123"
	user := &model.User{Username: "ana@example.com", GoogleID: &googleID}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	byName, err := repo.FindByUsername(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	byGoogle, err := repo.FindByGoogleID(ctx, "g-123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byGoogle.ID)

	_, err = repo.FindByGoogleID(ctx, "other")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Password users have no Google id; the unique index must allow many.
	require.NoError(t, repo.Create(ctx, &model.User{Username: "bo", Password: "x"}))
	require.NoError(t, repo.Create(ctx, &model.User{Username: "cy", Password: "y"}))
}
