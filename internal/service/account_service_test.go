package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lshigami/edulink/config"
	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newAccountFixture(t *testing.T) (*accountService, repository.UserRepository) {
	cfg := &config.Config{Auth: config.Auth{JWTSecret: "test-secret"}}
	userRepo := repository.NewUserRepository(testutil.NewStore(t))
	return NewAccountService(cfg, userRepo).(*accountService), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAccountFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "other"})
	require.Error(t, err)
	assert.Equal(t, "Username already exists", apperr.PublicMessage(err))

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "bo"})
	assert.Equal(t, "Username and password required", apperr.PublicMessage(err))

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "ana", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	current, err := svc.CurrentUser(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ana", current.Username)
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newAccountFixture(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "pw1"})
	require.NoError(t, err)
	_, err = svc.LinkGoogleAccount(ctx, "g-1", "gina@example.com")
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.LoginRequest
		want string
	}{
		{name: "unknown user", req: dto.LoginRequest{Username: "zed", Password: "x"}, want: "Incorrect username."},
		{name: "wrong password", req: dto.LoginRequest{Username: "ana", Password: "nope"}, want: "Incorrect password."},
		{name: "google only", req: dto.LoginRequest{Username: "gina@example.com", Password: "x"}, want: "Please log in with Google."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			require.Error(t, err)
			assert.Equal(t, 401, apperr.StatusOf(err))
			assert.Equal(t, tt.want, apperr.PublicMessage(err))
		})
	}
}

func TestCurrentUserRejectsBadTokens(t *testing.T) {
	svc, _ := newAccountFixture(t)
	ctx := context.Background()

	for _, token := range []string{"", "not-a-jwt"} {
		_, err := svc.CurrentUser(ctx, token)
		assert.True(t, apperr.Is(err, apperr.KindUnauthorized), token)
	}

	other := NewAccountService(&config.Config{Auth: config.Auth{JWTSecret: "different"}}, svc.userRepo).(*accountService)
	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	resp, err := other.Login(ctx, dto.LoginRequest{Username: "ana", Password: "pw"})
	require.NoError(t, err)
	_, err = svc.CurrentUser(ctx, resp.Token)
	assert.True(t, apperr.Is(err, apperr.KindUnauthorized))
}

func TestLinkGoogleAccountAdoptsExistingUsername(t *testing.T) {
	svc, userRepo := newAccountFixture(t)
	ctx := context.Background()

	existing, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana@example.com", Password: "pw"})
	require.NoError(t, err)

	linked, err := svc.LinkGoogleAccount(ctx, "g-42", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, linked.ID)

	stored, err := userRepo.FindByUsername(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.GoogleID)
	assert.Equal(t, "g-42", *stored.GoogleID)
	assert.NotEmpty(t, stored.Password)

	again, err := svc.LinkGoogleAccount(ctx, "g-42", "changed@example.com")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, again.ID)

	fresh, err := svc.LinkGoogleAccount(ctx, "g-99", "")
	require.NoError(t, err)
	assert.Equal(t, "user_g-99", fresh.Username)
}

func TestGoogleSignInDisabledWithoutCredentials(t *testing.T) {
	svc, _ := newAccountFixture(t)

	_, err := svc.GoogleAuthURL("state")
	assert.Equal(t, 503, apperr.StatusOf(err))

	_, err = svc.CompleteGoogleSignIn(context.Background(), "code")
	assert.Equal(t, 503, apperr.StatusOf(err))
}

func TestGoogleAuthURLCarriesState(t *testing.T) {
	cfg := &config.Config{Auth: config.Auth{
		JWTSecret:          "s",
		GoogleClientID:     "client-id.apps.googleusercontent.com",
		GoogleClientSecret: "client-secret",
		GoogleCallbackURL:  "http://localhost:3000/api/auth/google/callback",
	}}
	svc := NewAccountService(cfg, nil)

	url, err := svc.GoogleAuthURL("xyz")
	require.NoError(t, err)
	assert.Contains(t, url, "state=xyz")
	assert.Contains(t, url, "client_id=client-id.apps.googleusercontent.com")
}

func TestCompleteGoogleSignIn(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	svc, _ := newAccountFixture(t)
	svc.oauth = &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{AuthURL: tokenServer.URL + "/auth", TokenURL: tokenServer.URL + "/token"},
	}
	svc.fetchProfile = func(_ context.Context, _ *oauth2.Config, token *oauth2.Token) (*GoogleProfile, error) {
		require.Equal(t, "at-1", token.AccessToken)
		return &GoogleProfile{ID: "g-7", Email: "lee@example.com"}, nil
	}

	resp, err := svc.CompleteGoogleSignIn(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "lee@example.com", resp.User.Username)

	current, err := svc.CurrentUser(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, current.ID)
}
