package learning

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulink/internal/controller"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/service"
	"github.com/rs/zerolog/log"
)

type LearningController struct {
	learningService service.LearningService
	sessionService  service.SessionService
	generator       service.ContentGeneratorService
	reminderService service.ReminderService
}

func NewLearningController(
	ls service.LearningService,
	ss service.SessionService,
	gen service.ContentGeneratorService,
	rs service.ReminderService,
) *LearningController {
	return &LearningController{
		learningService: ls,
		sessionService:  ss,
		generator:       gen,
		reminderService: rs,
	}
}

func (c *LearningController) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/learn", c.Learn)
	api.POST("/chat", c.Chat)
	api.GET("/session/last/:userId", c.GetLastSession)
	api.GET("/session/:attemptId", c.GetSession)
	api.GET("/history/:userId", c.GetHistory)
	api.POST("/timetable/generate", c.GenerateTimetable)
	api.POST("/reminder-trigger", c.TriggerReminder)
}

// Learn godoc
// @Summary Generate a learning session
// @Description Generates an explanation, a worked example and a three question quiz for a topic, and records the attempt. Without a database the attempt id is transient.
// @Tags learning
// @Accept json
// @Produce json
// @Param request body dto.GenerateLearningRequest true "Topic, confidence (1-5) and learning goal"
// @Success 200 {object} dto.LearningResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 502 {object} dto.ErrorResponse "AI provider failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /learn [post]
func (c *LearningController) Learn(ctx *gin.Context) {
	var req dto.GenerateLearningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	log.Info().Str("topic", req.Topic).Int("confidence", req.ConfidenceLevel).Str("userId", req.UserID).Msg("Generating learning content")

	resp, err := c.learningService.Learn(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// Chat godoc
// @Summary Chat with the tutor
// @Description Replies to a student message in the given mode. Provider failures are answered with an apology instead of an error.
// @Tags learning
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message, topic, mode and prior turns"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse "Message is required"
// @Router /chat [post]
func (c *LearningController) Chat(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	reply := c.learningService.Chat(ctx.Request.Context(), req)
	ctx.JSON(http.StatusOK, dto.ChatResponse{Success: true, Reply: reply})
}

// GetLastSession godoc
// @Summary Get the latest session of a user
// @Tags sessions
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.SessionResponse "session is null when the user has none"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /session/last/{userId} [get]
func (c *LearningController) GetLastSession(ctx *gin.Context) {
	session, err := c.sessionService.GetLastAttempt(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionResponse{Success: true, Session: session})
}

// GetSession godoc
// @Summary Get a session by attempt id
// @Tags sessions
// @Produce json
// @Param attemptId path string true "Attempt ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /session/{attemptId} [get]
func (c *LearningController) GetSession(ctx *gin.Context) {
	session, err := c.sessionService.GetByID(ctx.Request.Context(), ctx.Param("attemptId"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionResponse{Success: true, Session: session})
}

// GetHistory godoc
// @Summary List recent learning sessions
// @Description Newest first. Each score is the topic's running average when the user has one.
// @Tags sessions
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /history/{userId} [get]
func (c *LearningController) GetHistory(ctx *gin.Context) {
	limit, err := controller.QueryLimit(ctx, service.DefaultHistoryLimit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	history, err := c.sessionService.GetHistory(ctx.Request.Context(), ctx.Param("userId"), limit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.HistoryResponse{Success: true, History: history})
}

// GenerateTimetable godoc
// @Summary Generate a weekly study timetable
// @Tags planner
// @Accept json
// @Produce json
// @Param request body dto.TimetableRequest true "Free text describing commitments and goals"
// @Success 200 {object} dto.TimetableResponse
// @Failure 400 {object} dto.ErrorResponse "Prompt is required"
// @Failure 502 {object} dto.ErrorResponse "AI provider failed"
// @Router /timetable/generate [post]
func (c *LearningController) GenerateTimetable(ctx *gin.Context) {
	var req dto.TimetableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	timetable, err := c.generator.GenerateTimetable(ctx.Request.Context(), req.Prompt)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TimetableResponse{Success: true, Timetable: *timetable})
}

// TriggerReminder godoc
// @Summary Trigger a study reminder
// @Tags planner
// @Accept json
// @Produce json
// @Param request body dto.ReminderRequest true "Reminder target"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "userId is required"
// @Router /reminder-trigger [post]
func (c *LearningController) TriggerReminder(ctx *gin.Context) {
	var req dto.ReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	msg := c.reminderService.Trigger(ctx.Request.Context(), req)
	ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: msg})
}
