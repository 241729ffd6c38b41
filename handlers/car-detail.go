package handlers

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/autohub/site/carapi"
	"github.com/autohub/site/models"
	"github.com/autohub/site/seo"
	"github.com/autohub/site/ui"
)

// getCarDetails returns a cached detail record or fetches and caches it.
func getCarDetails(ctx context.Context, id string) (*models.CarDetails, error) {
	if d, ok := details.Get(id); ok {
		return d, nil
	}
	d, err := api.GetCar(ctx, id)
	if err != nil {
		return nil, err
	}
	details.Set(id, d, 1)
	return d, nil
}

// HandleCarDetail renders /cars/:brand/:modelYear/:productId. Only the
// product ID is used for the lookup; the other segments are for readers.
func HandleCarDetail(c *fiber.Ctx) error {
	id := c.Params("productId")

	d, err := getCarDetails(c.UserContext(), id)
	if err != nil {
		if carapi.IsNotFound(err) {
			zap.S().Infof("[CAR] Not found: %s", id)
		} else {
			zap.S().Warnf("[CAR] Fetch failed for %s: %v", id, err)
		}
		c.Status(fiber.StatusNotFound)
		return render(c, ui.CarNotFoundPage(seo.NotFound(cfg.SiteURL), viewer(c)))
	}

	jsonLD, err := seo.NewCarLD(d).JSON()
	if err != nil {
		return fmt.Errorf("encode structured data for %s: %w", id, err)
	}

	meta := seo.Car(d, siteURL(c.Path()))
	imageURL := ui.DetailImage(cfg.ImageBaseURL, d)
	meta.OGImage = imageURL
	return render(c, ui.CarDetailPage(meta, viewer(c), d, imageURL, jsonLD))
}
