package quiz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulink/internal/controller"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(qs service.QuizService) *QuizController {
	return &QuizController{quizService: qs}
}

func (c *QuizController) RegisterRoutes(api *gin.RouterGroup) {
	quiz := api.Group("/quiz")
	quiz.POST("/submit", c.SubmitInlineQuiz)
	quiz.POST("/create", c.CreateQuiz)
	quiz.POST("/finish", c.FinishQuiz)
	quiz.GET("/history/:userId", c.GetQuizHistory)
}

// SubmitInlineQuiz godoc
// @Summary Submit the quiz of a learning session
// @Description Scores the answers, predicts the forget probability and updates topic mastery. Transient attempt ids get a simulated result.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SubmitInlineQuizRequest true "Attempt id and chosen option indices"
// @Success 200 {object} dto.InlineQuizResult
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /quiz/submit [post]
func (c *QuizController) SubmitInlineQuiz(ctx *gin.Context) {
	var req dto.SubmitInlineQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	result, err := c.quizService.SubmitInlineQuiz(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// CreateQuiz godoc
// @Summary Generate a configured quiz
// @Description Difficulty defaults to Medium, numQuestions to 5 (at most 20) and style to Direct.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Topic and quiz configuration"
// @Success 200 {object} dto.CreateQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 502 {object} dto.ErrorResponse "AI provider failed"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /quiz/create [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.quizService.CreateConfiguredQuiz(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// FinishQuiz godoc
// @Summary Submit a configured quiz
// @Description Scores the quiz, marks it completed and compares it with the previous quizzes on the same topic. Resubmitting overwrites the earlier answers.
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.FinishQuizRequest true "Quiz id and chosen option indices"
// @Success 200 {object} dto.FinishQuizResponse
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /quiz/finish [post]
func (c *QuizController) FinishQuiz(ctx *gin.Context) {
	var req dto.FinishQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.RespondBindError(ctx, err)
		return
	}
	resp, err := c.quizService.SubmitConfiguredQuiz(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	log.Info().Str("quizId", req.QuizID).Float64("score", resp.Score).Msg("Quiz finished")
	ctx.JSON(http.StatusOK, resp)
}

// GetQuizHistory godoc
// @Summary List completed quizzes
// @Tags quiz
// @Produce json
// @Param userId path string true "User ID"
// @Param limit query int false "Maximum entries (default 20)"
// @Success 200 {object} dto.QuizHistoryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /quiz/history/{userId} [get]
func (c *QuizController) GetQuizHistory(ctx *gin.Context) {
	limit, err := controller.QueryLimit(ctx, service.DefaultQuizHistoryLimit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	history, err := c.quizService.GetQuizHistory(ctx.Request.Context(), ctx.Param("userId"), limit)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuizHistoryResponse{Success: true, History: history})
}
