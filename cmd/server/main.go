// @title         phishstats narrative proxy API
// @version       1.0
// @description   Proxy that forwards attendance/setlist data to the Anthropic Messages API with a fixed system instruction and relays the model's five-section story JSON.
// @BasePath      /
// @schemes       http
// @host          localhost:3001
package main

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "github.com/couchtour/phishstats/docs"

	// internal imports
	apihttp "github.com/couchtour/phishstats/api/http"
	"github.com/couchtour/phishstats/api/http/handlers"
	"github.com/couchtour/phishstats/api/http/middleware"
	"github.com/couchtour/phishstats/pkg/config"
	"github.com/couchtour/phishstats/pkg/llm/anthropic"
	"github.com/couchtour/phishstats/pkg/story"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration from env/.env
	cfg := config.Load()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// run wires the app and listens. The credential check sits before Listen:
// without it no socket is ever opened.
func run(cfg config.Config, logger *zap.Logger) error {
	if cfg.AnthropicAPIKey == "" {
		return errors.New("ANTHROPIC_API_KEY is not set; refusing to start")
	}

	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.AccessLog(logger))

	// Wire dependencies
	llmClient := anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicBase, cfg.AnthropicModel, cfg.MaxTokens)
	storySvc := story.NewService(llmClient)
	storyHandler := handlers.NewStoryHandler(storySvc)
	healthHandler := handlers.NewHealthHandler()

	// Register routes
	apihttp.Register(app, storyHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	logger.Info("HTTP server listening", zap.String("port", cfg.Port), zap.String("model", llmClient.Model))
	return app.Listen(":" + cfg.Port)
}
