package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autohub/site/config"
	h "github.com/autohub/site/handlers"
)

// New builds the fiber app with middleware and routes. handlers.Init must
// have been called.
func New(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		BodyLimit:    cfg.BodyLimit,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	// Add rate limiter
	app.Use(h.GlobalRateLimiter(cfg.RateLimitMax, cfg.RateLimitExp))

	// Add access token middleware
	app.Use(h.TokenMiddleware)

	// Add logger middleware
	app.Use(logger.New())

	// Static files and utility
	app.Static("/", cfg.StaticDir)
	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/sitemap.xml", h.HandleSitemap)

	// Listings
	app.Get("/", h.HandleHome)
	app.Get("/cars/feed", h.HandleFeed)
	app.Get("/cars/:brand/:modelYear/:productId", h.HandleCarDetail)

	// Session
	app.Get("/login", h.HandleLogin)
	app.Post("/logout", h.HandleLogout)
	app.Post("/theme", h.HandleThemeToggle)

	// Admin
	admin := app.Group("/admin", h.AuthRequired)
	admin.Get("/add", h.HandleNewCar)
	admin.Get("/cache", h.HandleCacheStats)

	// API group
	api := app.Group("/api")
	api.Post("/login", h.LoginRateLimiter(config.LoginRateLimitMax, config.LoginRateLimitExp), h.HandleLoginSubmission)
	api.Post("/cars", h.AuthRequired, h.HandleNewCarSubmission)

	return app
}
