package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autohub/site/cookie"
)

// HandleThemeToggle flips the theme cookie and asks htmx to reload the page.
func HandleThemeToggle(c *fiber.Ctx) error {
	next := cookie.ThemeDark
	if cookie.GetTheme(c) == cookie.ThemeDark {
		next = cookie.ThemeLight
	}
	cookie.SetTheme(c, next)

	if isHTMX(c) {
		c.Set("HX-Refresh", "true")
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
