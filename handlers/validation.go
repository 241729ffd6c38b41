package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/autohub/site/models"
	"github.com/autohub/site/ui"
)

// ValidateRequired validates that a required form field is not empty
func ValidateRequired(c *fiber.Ctx, fieldName, displayName string) (string, error) {
	value := strings.TrimSpace(c.FormValue(fieldName))
	if value == "" {
		return "", fmt.Errorf("%s is required", displayName)
	}
	return value, nil
}

// ParseFormInt parses a required form value as an integer
func ParseFormInt(c *fiber.Ctx, fieldName, displayName string) (int, error) {
	raw, err := ValidateRequired(c, fieldName, displayName)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", displayName)
	}
	return value, nil
}

// parseOptionalInt returns nil for an empty value.
func parseOptionalInt(raw, displayName string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", displayName)
	}
	return &value, nil
}

// BuildCarFromForm reads the add-car form. Year, price and mileage become
// integers; horsepower does too when present and is left out otherwise.
// Everything else is passed through as entered.
func BuildCarFromForm(c *fiber.Ctx) (models.NewCar, error) {
	car := models.NewCar{
		VIN:                c.FormValue("vin"),
		RegistrationNumber: c.FormValue("registrationNumber"),
		CC:                 c.FormValue("cc"),
		Cylinders:          c.FormValue("cylinders"),
		TransmissionType:   c.FormValue("transmissionType"),
		MaxSpeed:           c.FormValue("maxSpeed"),
		FuelType:           c.FormValue("fuelType"),
		Transmission:       c.FormValue("transmission"),
		Location:           c.FormValue("location"),
		Description:        c.FormValue("description"),
		Condition:          c.FormValue("condition"),
		BodyType:           c.FormValue("bodyType"),
		ExteriorColor:      c.FormValue("exteriorColor"),
		Image:              c.FormValue("image"),
		TrimType:           c.FormValue("trimType"),
	}

	var err error
	if car.Brand, err = ValidateRequired(c, "brand", "Brand"); err != nil {
		return models.NewCar{}, err
	}
	if car.CarModel, err = ValidateRequired(c, "carModel", "Model"); err != nil {
		return models.NewCar{}, err
	}
	if car.Year, err = ParseFormInt(c, "year", "Year"); err != nil {
		return models.NewCar{}, err
	}
	if car.Price, err = ParseFormInt(c, "price", "Price"); err != nil {
		return models.NewCar{}, err
	}
	if car.Mileage, err = ParseFormInt(c, "mileage", "Mileage"); err != nil {
		return models.NewCar{}, err
	}
	if car.Horsepower, err = parseOptionalInt(c.FormValue("horsepower"), "Horsepower"); err != nil {
		return models.NewCar{}, err
	}
	return car, nil
}

// ValidationErrorResponse returns a validation error response
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return render(c, ui.ValidationError(message))
}

// ValidationErrorResponseWithStatus returns a validation error response with
// custom status code. htmx only swaps 2xx responses, so htmx requests get the
// message with 200.
func ValidationErrorResponseWithStatus(c *fiber.Ctx, message string, statusCode int) error {
	if isHTMX(c) {
		statusCode = fiber.StatusOK
	}
	c.Response().SetStatusCode(statusCode)
	return render(c, ui.ValidationError(message))
}
