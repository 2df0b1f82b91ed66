package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/edulink/config"
	"github.com/lshigami/edulink/internal/controller"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	stateCookie       = "edulink_oauth_state"
	stateCookieMaxAge = 600
)

type AuthController struct {
	accountService service.AccountService
	frontendURL    string
}

func NewAuthController(as service.AccountService, cfg *config.Config) *AuthController {
	return &AuthController{accountService: as, frontendURL: cfg.Server.FrontendURL}
}

func (c *AuthController) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	auth.POST("/register", c.Register)
	auth.POST("/login", c.Login)
	auth.POST("/logout", c.Logout)
	auth.GET("/user", c.CurrentUser)
	auth.GET("/google", c.GoogleLogin)
	auth.GET("/google/callback", c.GoogleCallback)
}

// Register godoc
// @Summary Register with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Credentials"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Username and password required / Username already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	user, err := c.accountService.Register(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.RegisterResponse{Message: "User registered successfully", User: *user})
}

// Login godoc
// @Summary Log in with username and password
// @Description Returns a bearer token valid for seven days.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Incorrect username or password"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.accountService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; the client drops its copy.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}

// CurrentUser godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CurrentUserResponse
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/user [get]
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	user, err := c.accountService.CurrentUser(ctx.Request.Context(), bearerToken(ctx))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CurrentUserResponse{User: *user})
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 503 {object} dto.ErrorResponse "Google sign-in is not configured"
// @Router /auth/google [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	state := uuid.NewString()
	authURL, err := c.accountService.GoogleAuthURL(state)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(stateCookie, state, stateCookieMaxAge, "/", "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GoogleCallback godoc
// @Summary Google sign-in callback
// @Description Redirects to the frontend with ?token= on success and to the frontend root on failure.
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /auth/google"
// @Success 307 "Redirect to frontend"
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	state, _ := ctx.Cookie(stateCookie)
	ctx.SetCookie(stateCookie, "", -1, "/", "", false, true)
	if state == "" || state != ctx.Query("state") {
		log.Warn().Msg("Google callback with mismatched state")
		ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/")
		return
	}

	resp, err := c.accountService.CompleteGoogleSignIn(ctx.Request.Context(), ctx.Query("code"))
	if err != nil {
		log.Warn().Err(err).Msg("Google sign-in failed")
		ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/")
		return
	}
	ctx.Redirect(http.StatusTemporaryRedirect, c.frontendURL+"/?"+url.Values{"token": {resp.Token}}.Encode())
}

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
