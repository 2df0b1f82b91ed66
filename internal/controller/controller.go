package controller

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/edulink/database"
	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/service"
	"github.com/rs/zerolog/log"
)

// Validation errors report JSON field names so messages match request bodies.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// RespondError writes err as {success:false, message}. The status comes from
// the apperr kind; unclassified errors become a generic 500 and their details
// only reach the log.
func RespondError(ctx *gin.Context, err error) {
	status := apperr.StatusOf(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("method", ctx.Request.Method).
		Str("path", ctx.FullPath()).
		Int("status", status).
		Msg("Request failed")
	ctx.AbortWithStatusJSON(status, dto.ErrorResponse{Success: false, Message: apperr.PublicMessage(err)})
}

// RespondBindError answers 400 for a body that failed ShouldBindJSON.
func RespondBindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Invalid request body")
	ctx.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Success: false, Message: bindMessage(err)})
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		} else {
			invalid = append(invalid, fe.Field())
		}
	}
	if len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return "Invalid fields: " + strings.Join(invalid, ", ")
}

type HealthController struct {
	status    database.PersistenceStatus
	generator service.ContentGeneratorService
}

func NewHealthController(status database.PersistenceStatus, generator service.ContentGeneratorService) *HealthController {
	return &HealthController{status: status, generator: generator}
}

func (c *HealthController) RegisterRoutes(router *gin.Engine) {
	router.GET("/", c.Health)
}

// Health godoc
// @Summary Health check
// @Description Reports whether the API is up, the database mode and whether content comes from the mock generator
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (c *HealthController) Health(ctx *gin.Context) {
	llmMode := "live"
	if c.generator.MockMode() {
		llmMode = "mock"
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:   "EduLink AI API is running",
		Database: c.status.Mode(ctx.Request.Context()).String(),
		LLMMode:  llmMode,
	})
}

// QueryLimit reads an optional positive ?limit= value.
func QueryLimit(ctx *gin.Context, fallback int) (int, error) {
	raw := ctx.Query("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, apperr.Validation("limit must be a positive integer")
	}
	return n, nil
}
