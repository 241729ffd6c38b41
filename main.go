//go:generate go run ./cmd/gen_placeholder -static static

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/autohub/site/cache"
	"github.com/autohub/site/carapi"
	"github.com/autohub/site/config"
	"github.com/autohub/site/feed"
	h "github.com/autohub/site/handlers"
	"github.com/autohub/site/models"
	"github.com/autohub/site/placeholder"
	"github.com/autohub/site/server"
)

func main() {
	cfg := config.Load()

	logger := initLogger(cfg.Debug)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("Starting AutoHub",
		zap.String("port", cfg.ServerPort),
		zap.String("api", cfg.APIBaseURL))

	// Placeholder image and favicon
	if _, err := placeholder.EnsureAssets(cfg.StaticDir, false); err != nil {
		logger.Warn("Failed to write static assets", zap.Error(err))
	}

	client := carapi.New(cfg.APIBaseURL, cfg.APITimeout)

	// Per-visit listing feeds
	feeds, err := feed.NewStore(client, config.FeedTTL)
	if err != nil {
		logger.Fatal("Failed to initialize feed store", zap.Error(err))
	}

	// Car detail cache
	details, err := cache.New[*models.CarDetails](func(*models.CarDetails) int64 { return 1 }, "Car Detail Cache", config.DetailTTL)
	if err != nil {
		logger.Fatal("Failed to initialize detail cache", zap.Error(err))
	}

	h.Init(cfg, client, feeds, details)
	app := server.New(cfg)

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func initLogger(debug bool) *zap.Logger {
	var logCfg zap.Config
	if debug {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		logCfg = zap.NewProductionConfig()
	}

	logger, _ := logCfg.Build()
	return logger
}
