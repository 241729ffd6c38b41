package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/autohub/site/carapi"
	"github.com/autohub/site/config"
	"github.com/autohub/site/cookie"
	"github.com/autohub/site/local"
	"github.com/autohub/site/seo"
	"github.com/autohub/site/ui"
)

func HandleNewCar(c *fiber.Ctx) error {
	meta := seo.Layout(siteURL("/admin/add"))
	meta.Title = "Add New Car - " + config.SiteName
	return render(c, ui.NewCarPage(meta, viewer(c), time.Now().Year()))
}

func HandleNewCarSubmission(c *fiber.Ctx) error {
	car, err := BuildCarFromForm(c)
	if err != nil {
		return ValidationErrorResponse(c, err.Error())
	}

	if err := api.CreateCar(c.UserContext(), local.GetAccessToken(c), car); err != nil {
		var apiErr *carapi.APIError
		if errors.As(err, &apiErr) && apiErr.Status == fiber.StatusUnauthorized {
			zap.S().Infof("[CAR] Create rejected, token no longer accepted")
			cookie.ClearTokens(c)
			return redirectToLogin(c)
		}
		zap.S().Warnf("[CAR] Create failed for %s %s: %v", car.Brand, car.CarModel, err)
		return ValidationErrorResponse(c, "Error adding car")
	}

	zap.S().Infof("[CAR] Created %d %s %s", car.Year, car.Brand, car.CarModel)
	return render(c, ui.SuccessMessage("Car added successfully!", "/"))
}
