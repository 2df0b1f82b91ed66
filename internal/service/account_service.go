package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jinzhu/copier"
	"github.com/lshigami/edulink/config"
	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/model"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
	"gorm.io/gorm"
)

const accessTokenTTL = 7 * 24 * time.Hour

type AccountService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context, token string) (*dto.UserResponse, error)
	// LinkGoogleAccount resolves a Google identity to a user, adopting an
	// existing account whose username equals the Google email.
	LinkGoogleAccount(ctx context.Context, googleID, email string) (*dto.UserResponse, error)
	GoogleAuthURL(state string) (string, error)
	CompleteGoogleSignIn(ctx context.Context, code string) (*dto.LoginResponse, error)
}

// GoogleProfile is the part of the Google userinfo this service needs.
type GoogleProfile struct {
	ID    string
	Email string
}

// GoogleProfileFetcher loads the signed-in Google profile for a token.
type GoogleProfileFetcher func(ctx context.Context, oauthCfg *oauth2.Config, token *oauth2.Token) (*GoogleProfile, error)

type accountService struct {
	userRepo     repository.UserRepository
	jwtSecret    []byte
	oauth        *oauth2.Config
	fetchProfile GoogleProfileFetcher
}

type accessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewAccountService(cfg *config.Config, userRepo repository.UserRepository) AccountService {
	s := &accountService{
		userRepo:     userRepo,
		jwtSecret:    []byte(cfg.Auth.JWTSecret),
		fetchProfile: fetchGoogleUserInfo,
	}
	if config.HasCredential(cfg.Auth.GoogleClientID) && config.HasCredential(cfg.Auth.GoogleClientSecret) {
		s.oauth = &oauth2.Config{
			ClientID:     cfg.Auth.GoogleClientID,
			ClientSecret: cfg.Auth.GoogleClientSecret,
			RedirectURL:  cfg.Auth.GoogleCallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		}
	} else {
		log.Warn().Msg("Google OAuth credentials not set, Google sign-in disabled")
	}
	return s
}

func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperr.Validation("Username and password required")
	}

	_, err := s.userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, apperr.Validation("Username already exists")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storeError(err, "find user", "User not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{Username: username, Password: string(hash)}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storeError(err, "create user", "User not found")
	}
	log.Info().Str("userId", user.ID).Msg("User registered")
	return toUserResponse(user), nil
}

func (s *accountService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("Incorrect username.")
	}
	if err != nil {
		return nil, storeError(err, "find user", "User not found")
	}
	if user.Password == "" {
		return nil, apperr.Unauthorized("Please log in with Google.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Incorrect password.")
	}
	return s.issueToken(user)
}

func (s *accountService) issueToken(user *model.User) (*dto.LoginResponse, error) {
	now := time.Now()
	claims := accessClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.LoginResponse{
		Message: "Logged in successfully",
		Token:   signed,
		User:    *toUserResponse(user),
	}, nil
}

func (s *accountService) CurrentUser(ctx context.Context, token string) (*dto.UserResponse, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	parsed, err := jwt.ParseWithClaims(token, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	claims, ok := parsed.Claims.(*accessClaims)
	if !ok {
		return nil, apperr.Unauthorized("Not authenticated")
	}

	user, err := s.userRepo.FindByID(ctx, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	if err != nil {
		return nil, storeError(err, "find user", "User not found")
	}
	return toUserResponse(user), nil
}

func (s *accountService) LinkGoogleAccount(ctx context.Context, googleID, email string) (*dto.UserResponse, error) {
	if googleID == "" {
		return nil, apperr.Validation("Google account id is required")
	}

	user, err := s.userRepo.FindByGoogleID(ctx, googleID)
	if err == nil {
		return toUserResponse(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storeError(err, "find user by google id", "User not found")
	}

	if email != "" {
		user, err = s.userRepo.FindByUsername(ctx, email)
		switch {
		case err == nil:
			user.GoogleID = &googleID
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, storeError(err, "link google account", "User not found")
			}
			log.Info().Str("userId", user.ID).Msg("Google account linked to existing user")
			return toUserResponse(user), nil
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, storeError(err, "find user", "User not found")
		}
	}

	username := email
	if username == "" {
		username = "user_" + googleID
	}
	user = &model.User{Username: username, GoogleID: &googleID}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storeError(err, "create google user", "User not found")
	}
	log.Info().Str("userId", user.ID).Msg("User created from Google sign-in")
	return toUserResponse(user), nil
}

func (s *accountService) GoogleAuthURL(state string) (string, error) {
	if s.oauth == nil {
		return "", apperr.Unavailable("Google sign-in is not configured")
	}
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

func (s *accountService) CompleteGoogleSignIn(ctx context.Context, code string) (*dto.LoginResponse, error) {
	if s.oauth == nil {
		return nil, apperr.Unavailable("Google sign-in is not configured")
	}
	if code == "" {
		return nil, apperr.Validation("Authorization code is required")
	}
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, apperr.Unauthorized("Google sign-in failed")
	}
	profile, err := s.fetchProfile(ctx, s.oauth, token)
	if err != nil {
		return nil, apperr.UpstreamProvider("Could not load Google profile", err)
	}

	linked, err := s.LinkGoogleAccount(ctx, profile.ID, profile.Email)
	if err != nil {
		return nil, err
	}
	return s.issueToken(&model.User{ID: linked.ID, Username: linked.Username})
}

func fetchGoogleUserInfo(ctx context.Context, oauthCfg *oauth2.Config, token *oauth2.Token) (*GoogleProfile, error) {
	svc, err := googleoauth.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("create userinfo client: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get userinfo: %w", err)
	}
	return &GoogleProfile{ID: info.Id, Email: info.Email}, nil
}

func toUserResponse(user *model.User) *dto.UserResponse {
	var resp dto.UserResponse
	copier.Copy(&resp, user)
	return &resp
}
