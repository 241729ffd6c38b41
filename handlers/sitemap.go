package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/autohub/site/models"
	"github.com/autohub/site/seo"
)

// HandleSitemap lists the static pages and the cars on the first listing
// page. The static entries are still served when the API is unreachable.
func HandleSitemap(c *fiber.Ctx) error {
	var cars []models.Car
	if p, err := api.ListCars(c.UserContext(), 1); err != nil {
		zap.S().Warnf("[SITEMAP] Listing unavailable: %v", err)
	} else {
		cars = p.Data
	}

	sitemap := seo.BuildSitemap(cfg.SiteURL, cars, time.Now())

	c.Set("Content-Type", "application/xml")
	return c.XML(sitemap)
}
