package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/autohub/site/cookie"
	"github.com/autohub/site/jwt"
	"github.com/autohub/site/local"
)

// TokenMiddleware exposes the access token cookie to the handlers. Tokens
// that decode as JWTs and are past their exp claim are dropped; opaque
// tokens are passed through for the API to judge.
func TokenMiddleware(c *fiber.Ctx) error {
	token := cookie.GetAccessToken(c)
	if token == "" {
		local.SetAccessToken(c, "")
		local.SetUserName(c, "")
		return c.Next()
	}

	if claims, err := jwt.Inspect(token); err == nil {
		if claims.Expired(time.Now()) {
			zap.S().Debugf("[AUTH] Dropping expired access token for %s", claims.DisplayName())
			cookie.ClearAccessToken(c)
			local.SetAccessToken(c, "")
			local.SetUserName(c, "")
			return c.Next()
		}
		local.SetUserName(c, claims.DisplayName())
	}

	local.SetAccessToken(c, token)
	return c.Next()
}

// AuthRequired sends requests without an access token to the login page.
func AuthRequired(c *fiber.Ctx) error {
	if !local.LoggedIn(c) {
		return redirectToLogin(c)
	}
	return c.Next()
}

func redirectToLogin(c *fiber.Ctx) error {
	// For HTMX requests, return a redirect response that HTMX can handle
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.Status(fiber.StatusSeeOther).SendString("")
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}
