package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/autohub/site/cache"
	"github.com/autohub/site/config"
	"github.com/autohub/site/cookie"
	"github.com/autohub/site/feed"
	"github.com/autohub/site/local"
	"github.com/autohub/site/models"
	"github.com/autohub/site/ui"
)

// CarAPI is the remote car-listing API as the handlers use it.
type CarAPI interface {
	feed.Lister
	GetCar(ctx context.Context, id string) (*models.CarDetails, error)
	CreateCar(ctx context.Context, accessToken string, car models.NewCar) error
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Ping(ctx context.Context) error
}

var (
	cfg     *config.Config
	api     CarAPI
	feeds   *feed.Store
	details *cache.Cache[*models.CarDetails]
)

// Init wires the handlers to their collaborators. It must be called before
// any route is served.
func Init(c *config.Config, a CarAPI, f *feed.Store, d *cache.Cache[*models.CarDetails]) {
	cfg = c
	api = a
	feeds = f
	details = d
}

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

func viewer(c *fiber.Ctx) ui.Viewer {
	return ui.Viewer{
		Path:     c.Path(),
		Theme:    cookie.GetTheme(c),
		LoggedIn: local.LoggedIn(c),
		UserName: local.GetUserName(c),
	}
}

func siteURL(path string) string {
	return strings.TrimRight(cfg.SiteURL, "/") + path
}

func isHTMX(c *fiber.Ctx) bool {
	return c.Get("HX-Request") != ""
}
