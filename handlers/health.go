package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := map[string]string{
		"status": "ok",
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	// Check that the car-listing API answers
	if err := api.Ping(ctx); err != nil {
		health["status"] = "unhealthy"
		health["api"] = "down"
		c.Status(fiber.StatusServiceUnavailable)
	} else {
		health["api"] = "up"
	}

	return c.JSON(health)
}

// HandleCacheStats reports the in-memory cache statistics.
func HandleCacheStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"feeds":   feeds.Stats(),
		"details": details.Stats(),
	})
}
