package ui

import (
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/config"
	"github.com/autohub/site/feed"
	"github.com/autohub/site/models"
	"github.com/autohub/site/seo"
)

// FeedURL is the loader endpoint for one page of a feed.
func FeedURL(feedID string, page int) string {
	return fmt.Sprintf("/cars/feed?feed=%s&page=%d", url.QueryEscape(feedID), page)
}

func HomePage(meta seo.Metadata, v Viewer, feedID string, res feed.Result) g.Node {
	return Page(
		meta,
		v,
		[]g.Node{
			hero("Find Your Perfect Car", "Browse our extensive collection of premium vehicles from trusted dealers"),
			CarGrid(feedID, res),
		},
	)
}

// HomePageUnavailable is the home page when the first listing page could not
// be fetched.
func HomePageUnavailable(meta seo.Metadata, v Viewer) g.Node {
	return Page(
		meta,
		v,
		[]g.Node{
			hero("Find Your Perfect Car", "Browse our extensive collection of premium vehicles from trusted dealers"),
			Div(
				ID("car-grid"),
				Class("text-center py-8"),
				P(Class("text-red-600 mb-4"), g.Text("Could not load cars right now.")),
				buttonSecondary("Try again", withHref("/")),
			),
		},
	)
}

// CarGrid is the grid container holding the first page of a feed.
func CarGrid(feedID string, res feed.Result) g.Node {
	if res.Total == 0 {
		return Div(
			ID("car-grid"),
			noCarsMessage(),
		)
	}
	return Div(
		ID("car-grid"),
		Class("grid grid-cols-1 sm:grid-cols-2 md:grid-cols-3 gap-6"),
		CarGridPage(feedID, res),
	)
}

// CarGridPage renders the cars a page added, followed by the loader for the
// next page or the end of listings message. A repeated page renders nothing so
// the grid never gets a second loader.
func CarGridPage(feedID string, res feed.Result) g.Node {
	if res.Repeat {
		return g.Group(nil)
	}
	nodes := make([]g.Node, 0, len(res.Cars)+1)
	for _, c := range res.Cars {
		nodes = append(nodes, CarCard(c))
	}

	switch {
	case res.HasMore:
		nodes = append(nodes, loaderDiv(FeedURL(feedID, res.NextPage())))
	case res.Total > 0:
		nodes = append(nodes, endOfListings())
	}
	return g.Group(nodes)
}

// CarGridError replaces the loader when a page failed to load. Nothing is
// retried until the user asks.
func CarGridError(retryURL string) g.Node {
	return Div(
		ID("feed-error"),
		Class("col-span-full text-center py-8"),
		P(Class("text-red-600 mb-4"), g.Text("Could not load more cars.")),
		buttonSecondary("Try again", withType("button"), withAttributes(
			hx.Get(retryURL),
			hx.Target("#feed-error"),
			hx.Swap("outerHTML"),
		)),
	)
}

func loaderDiv(src string) g.Node {
	return Div(
		ID("infinite-scroll-loader"),
		Class("col-span-full flex flex-col items-center py-8 text-gray-500"),
		hx.Get(src),
		hx.Trigger("intersect once"),
		hx.Swap("outerHTML"),
		Div(Class("w-8 h-8 border-4 border-blue-500 border-t-transparent rounded-full animate-spin mb-2")),
		P(g.Text("Loading more cars...")),
	)
}

func endOfListings() g.Node {
	return Div(
		ID("end-of-listings"),
		Class("col-span-full text-center py-8 text-gray-500"),
		P(g.Text("You've reached the end of our listings")),
	)
}

func noCarsMessage() g.Node {
	return Div(
		Class("flex justify-center items-center p-8"),
		P(Class("text-gray-600 text-lg"), g.Text("No cars found")),
	)
}

func carBadgeVariant(status string) badgeVariant {
	switch status {
	case "Available":
		return badgeSuccess
	case "Coming":
		return badgePrimary
	default:
		return badgeWarning
	}
}

func cardImage(c models.Car) string {
	if c.Image == "" {
		return config.PlaceholderImage
	}
	return c.Image
}

func cardDetail(icon, text string) g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(Class("text-gray-400"), g.Text(icon)),
		Span(g.Text(text)),
	)
}

// CarCard links a listing to its detail page.
func CarCard(c models.Car) g.Node {
	return A(
		Href(seo.CarPath(c)),
		Class("block"),
		g.Attr("data-car-id", c.ID),
		Div(
			Class("card border rounded-lg shadow-sm overflow-hidden hover:shadow-md transition-shadow"),
			Div(
				Class("relative w-full h-48 bg-gray-100 overflow-hidden"),
				Img(
					Src(cardImage(c)),
					Alt(c.Name),
					Width("400"),
					Height("250"),
					g.Attr("loading", "lazy"),
					Class("w-full h-full object-cover"),
				),
				Div(
					Class("absolute top-2 left-2"),
					badge(c.Status, carBadgeVariant(c.Status)),
				),
			),
			Div(
				Class("p-4"),
				H3(Class("font-semibold text-lg mb-2 truncate"), g.Text(c.Name)),
				Div(
					Class("grid grid-cols-2 gap-2 text-sm"),
					cardDetail("⏲", humanize.Comma(int64(c.Odo))+" KM"),
					cardDetail("$", humanize.Commaf(c.Price)),
					cardDetail("⛽", c.FuelType),
					cardDetail("🐎", fmt.Sprintf("%d HP", c.HP)),
				),
			),
		),
	)
}
