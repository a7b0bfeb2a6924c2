package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia-api/config"
	"github.com/lshigami/trivia-api/database"
	_ "github.com/lshigami/trivia-api/docs" // Swagger docs
	"github.com/lshigami/trivia-api/internal/controller"
	"github.com/lshigami/trivia-api/internal/logger"
	"github.com/lshigami/trivia-api/internal/metrics"
	"github.com/lshigami/trivia-api/internal/repository"
	"github.com/lshigami/trivia-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Trivia API
// @version 1.0
// @description Questions, categories and quiz play for the trivia game.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// appOptions is the full dependency graph of the server.
func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB, shared by every repository
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewCategoryRepository,
		),

		fx.Provide(
			service.NewCategoryService,
			service.NewQuestionService,
			service.NewQuizService,
		),

		fx.Provide(controller.NewController),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	logger.Configure(cfg.LogFormat, cfg.LogLevel)
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
		return "" // zerolog already wrote the line
	}))
	// Metrics wrap recovery so panics are counted with their 500 status.
	r.Use(metrics.Middleware())
	r.Use(controller.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:        12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", metrics.Handler())

	return r
}

// RegisterRoutesAndStartServer wires the API routes and ties the HTTP
// server to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
	db *gorm.DB,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Trivia API server starting on port %s", cfg.Server.Port)
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
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedDB loads cfg.SeedFile into an empty store. No file configured means
// no seeding.
func SeedDB(db *gorm.DB, cfg *config.Config) error {
	if cfg.SeedFile == "" {
		return nil
	}
	data, err := database.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		log.Error().Err(err).Str("file", cfg.SeedFile).Msg("Failed to load seed file")
		return err
	}
	_, err = database.Seed(context.Background(), db, data)
	return err
}
