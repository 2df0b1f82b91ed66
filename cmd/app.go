package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/edulink/config"
	"github.com/lshigami/edulink/database"
	_ "github.com/lshigami/edulink/docs" // Swagger docs
	"github.com/lshigami/edulink/internal/cache"
	"github.com/lshigami/edulink/internal/catalog"
	"github.com/lshigami/edulink/internal/controller"
	authctrl "github.com/lshigami/edulink/internal/controller/auth"
	insightctrl "github.com/lshigami/edulink/internal/controller/insight"
	learningctrl "github.com/lshigami/edulink/internal/controller/learning"
	quizctrl "github.com/lshigami/edulink/internal/controller/quiz"
	"github.com/lshigami/edulink/internal/llm"
	"github.com/lshigami/edulink/internal/repository"
	"github.com/lshigami/edulink/internal/service"
	"github.com/lshigami/edulink/internal/youtube"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

func newApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Supply(cfg),

		// Infrastructure
		fx.Provide(
			database.NewDatabase,
			func(p *database.Persistence) database.PersistenceStatus { return p },
			NewLLMProvider,
			NewVideoSearcher,
			NewVideoCache,
			catalog.Default,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewAttemptRepository,
			repository.NewQuizAttemptRepository,
			repository.NewTopicHistoryRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewContentGeneratorService,
			service.NewForgetPredictorService,
			service.NewSessionService,
			service.NewLearningService,
			service.NewQuizService,
			service.NewAnalyticsService,
			service.NewResourceService,
			service.NewAccountService,
			service.NewReminderService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewHealthController,
			learningctrl.NewLearningController,
			quizctrl.NewQuizController,
			insightctrl.NewInsightController,
			authctrl.NewAuthController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

// NewLLMProvider builds the configured provider. A nil provider puts the
// content generator in mock mode.
func NewLLMProvider(lc fx.Lifecycle, cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		log.Warn().Msg("No valid LLM API key found, serving mock content")
		return nil, nil
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return provider.Close()
		},
	})
	return provider, nil
}

// NewVideoSearcher returns nil without a YouTube key; curated videos are
// served instead.
func NewVideoSearcher(cfg *config.Config) (youtube.Searcher, error) {
	if !config.HasCredential(cfg.Resources.YoutubeApiKey) {
		log.Info().Msg("YouTube API key not set, using curated videos")
		return nil, nil
	}
	return youtube.NewSearcher(context.Background(), cfg.Resources.YoutubeApiKey)
}

func NewVideoCache(lc fx.Lifecycle, cfg *config.Config) cache.VideoCache {
	videoCache := cache.NewRedisVideoCache(cfg.Resources.RedisAddr)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return videoCache.Close()
		},
	})
	return videoCache
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer mounts every controller under /api and ties
// the HTTP server and the database to the app lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	store *database.Persistence,
	healthCtrl *controller.HealthController,
	learningCtrl *learningctrl.LearningController,
	quizCtrl *quizctrl.QuizController,
	insightCtrl *insightctrl.InsightController,
	authCtrl *authctrl.AuthController,
) {
	healthCtrl.RegisterRoutes(router)

	api := router.Group("/api")
	learningCtrl.RegisterRoutes(api)
	quizCtrl.RegisterRoutes(api)
	insightCtrl.RegisterRoutes(api)
	authCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("EduLink AI server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return store.Close()
		},
	})
}

func AutoMigrateDB(store *database.Persistence) error {
	return store.AutoMigrate()
}
