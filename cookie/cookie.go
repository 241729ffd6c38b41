package cookie

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/autohub/site/models"
)

const (
	AccessToken  = "accessToken"
	RefreshToken = "refreshToken"
	Theme        = "theme"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// MaxAgeSeconds converts an API lifetime in milliseconds to a cookie max-age.
func MaxAgeSeconds(expiresInMS int64) int {
	if expiresInMS <= 0 {
		return 0
	}
	return int(expiresInMS / 1000)
}

func setToken(c *fiber.Ctx, name string, t models.Token) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    t.Token,
		Path:     "/",
		MaxAge:   MaxAgeSeconds(t.ExpiresIn),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
}

// SetTokens stores both bearer tokens with the lifetimes the API returned.
func SetTokens(c *fiber.Ctx, tokens models.Tokens) {
	setToken(c, AccessToken, tokens.Access)
	if tokens.Refresh.Token != "" {
		setToken(c, RefreshToken, tokens.Refresh)
	}
}

func GetAccessToken(c *fiber.Ctx) string {
	return c.Cookies(AccessToken)
}

func GetRefreshToken(c *fiber.Ctx) string {
	return c.Cookies(RefreshToken)
}

func expire(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  fasthttp.CookieExpireDelete,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
}

// ClearAccessToken expires only the access token.
func ClearAccessToken(c *fiber.Ctx) {
	expire(c, AccessToken)
}

// ClearTokens expires both bearer tokens.
func ClearTokens(c *fiber.Ctx) {
	expire(c, AccessToken)
	expire(c, RefreshToken)
}

func GetTheme(c *fiber.Ctx) string {
	if c.Cookies(Theme) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func SetTheme(c *fiber.Ctx, theme string) {
	c.Cookie(&fiber.Cookie{
		Name:     Theme,
		Value:    theme,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		HTTPOnly: false,
		SameSite: "Strict",
	})
}
