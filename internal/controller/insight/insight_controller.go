package insight

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulink/internal/apperr"
	"github.com/lshigami/edulink/internal/controller"
	"github.com/lshigami/edulink/internal/dto"
	"github.com/lshigami/edulink/internal/service"
)

// InsightController serves analytics, progress and study resources.
type InsightController struct {
	analyticsService service.AnalyticsService
	resourceService  service.ResourceService
}

func NewInsightController(as service.AnalyticsService, rs service.ResourceService) *InsightController {
	return &InsightController{analyticsService: as, resourceService: rs}
}

func (c *InsightController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/analytics/:userId", c.GetAnalytics)
	api.GET("/progress/:userId", c.GetProgress)

	resources := api.Group("/resources")
	resources.GET("/youtube", c.GetVideos)
	resources.GET("/articles", c.GetArticles)
}

// GetAnalytics godoc
// @Summary Learning analytics dashboard
// @Description Per topic statistics, activity heatmap, score trends and difficulty accuracy built from sessions, quizzes and topic history.
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /analytics/{userId} [get]
func (c *InsightController) GetAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.BuildAnalytics(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AnalyticsResponse{Success: true, Analytics: *analytics})
}

// GetProgress godoc
// @Summary Topic mastery summary
// @Tags analytics
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 503 {object} dto.ErrorResponse "Database is unavailable"
// @Router /progress/{userId} [get]
func (c *InsightController) GetProgress(ctx *gin.Context) {
	progress, err := c.analyticsService.GetProgress(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ProgressResponse{Success: true, Data: *progress})
}

// GetVideos godoc
// @Summary Find videos for a query
// @Description Live YouTube results when configured, curated videos for the closest topic otherwise.
// @Tags resources
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} dto.VideosResponse
// @Failure 400 {object} dto.ErrorResponse "Query required"
// @Router /resources/youtube [get]
func (c *InsightController) GetVideos(ctx *gin.Context) {
	query, ok := requireQuery(ctx)
	if !ok {
		return
	}
	videos := c.resourceService.GetVideos(ctx.Request.Context(), query)
	ctx.JSON(http.StatusOK, dto.VideosResponse{Success: true, Videos: videos})
}

// GetArticles godoc
// @Summary Find articles for a query
// @Tags resources
// @Produce json
// @Param query query string true "Search query"
// @Success 200 {object} dto.ArticlesResponse
// @Failure 400 {object} dto.ErrorResponse "Query required"
// @Router /resources/articles [get]
func (c *InsightController) GetArticles(ctx *gin.Context) {
	query, ok := requireQuery(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ArticlesResponse{Success: true, Articles: c.resourceService.GetArticles(query)})
}

func requireQuery(ctx *gin.Context) (string, bool) {
	query := strings.TrimSpace(ctx.Query("query"))
	if query == "" {
		controller.RespondError(ctx, apperr.Validation("Query required"))
		return "", false
	}
	return query, true
}
