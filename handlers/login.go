package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/autohub/site/carapi"
	"github.com/autohub/site/config"
	"github.com/autohub/site/cookie"
	"github.com/autohub/site/local"
	"github.com/autohub/site/seo"
	"github.com/autohub/site/ui"
)

func HandleLogin(c *fiber.Ctx) error {
	if local.LoggedIn(c) {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	meta := seo.Layout(siteURL("/login"))
	meta.Title = "Login - " + config.SiteName
	return render(c, ui.LoginPage(meta, viewer(c)))
}

func HandleLoginSubmission(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return ValidationErrorResponse(c, "Email and password are required")
	}

	zap.S().Infof("[AUTH] Login attempt: email=%s", email)

	res, err := api.Login(c.UserContext(), email, password)
	if err != nil {
		var apiErr *carapi.APIError
		if errors.As(err, &apiErr) {
			zap.S().Infof("[AUTH] Login rejected: email=%s status=%d", email, apiErr.Status)
			if apiErr.Message != "" {
				return ValidationErrorResponse(c, apiErr.Message)
			}
			return ValidationErrorResponse(c, "Login failed")
		}
		zap.S().Errorf("[AUTH] Login failed: email=%s: %v", email, err)
		return ValidationErrorResponse(c, "Something went wrong.")
	}

	cookie.SetTokens(c, res.Tokens)
	zap.S().Infof("[AUTH] Login successful: user=%s", res.User.ID)
	return render(c, ui.SuccessMessage("Login successful!", "/"))
}

func HandleLogout(c *fiber.Ctx) error {
	cookie.ClearTokens(c)
	local.SetAccessToken(c, "")
	return redirectToLogin(c)
}
