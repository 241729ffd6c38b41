package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/autohub/site/feed"
	"github.com/autohub/site/seo"
	"github.com/autohub/site/ui"
)

// HandleHome starts a new listing feed and renders its first page.
func HandleHome(c *fiber.Ctx) error {
	meta := seo.Home(siteURL("/"))

	f, res, err := feeds.Start(c.UserContext())
	if err != nil {
		zap.S().Errorf("[FEED] First page failed: %v", err)
		return render(c, ui.HomePageUnavailable(meta, viewer(c)))
	}
	return render(c, ui.HomePage(meta, viewer(c), f.ID, res))
}

// HandleFeed appends one page of a feed to the grid. It answers the loader
// element, so the response is a fragment.
func HandleFeed(c *fiber.Ctx) error {
	feedID := c.Query("feed")
	if _, err := uuid.Parse(feedID); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid feed")
	}

	page := c.QueryInt("page", 0)
	res, err := feeds.Next(c.UserContext(), feedID, page)
	if errors.Is(err, feed.ErrInvalidPage) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		zap.S().Warnf("[FEED] feed=%s page=%d: %v", feedID, page, err)
		return render(c, ui.CarGridError(ui.FeedURL(feedID, page)))
	}
	return render(c, ui.CarGridPage(feedID, res))
}
