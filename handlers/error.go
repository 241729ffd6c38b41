package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/autohub/site/ui"
)

// CustomErrorHandler renders the error page. htmx requests get the bare
// message with a 200 status so it lands in the target element.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		zap.S().Errorf("[HTTP] %s %s: %v", ctx.Method(), ctx.Path(), err)
		message = "Something went wrong."
	}

	if isHTMX(ctx) {
		return ValidationErrorResponseWithStatus(ctx, message, code)
	}
	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, message, viewer(ctx)))
}
