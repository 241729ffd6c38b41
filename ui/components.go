package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/config"
	"github.com/autohub/site/seo"
)

// ---- Layout Components ----

func contentContainer(content ...g.Node) g.Node {
	return Div(
		Class("max-w-2xl mx-auto"),
		g.Group(content),
	)
}

func hero(title, subtitle string) g.Node {
	return Div(
		Class("text-center py-12"),
		H1(Class("text-4xl md:text-5xl font-bold mb-4"), g.Text(title)),
		P(Class("text-lg text-gray-500"), g.Text(subtitle)),
	)
}

// ---- Badges ----

type badgeVariant string

const (
	badgeSuccess badgeVariant = "success"
	badgePrimary badgeVariant = "primary"
	badgeWarning badgeVariant = "warning"
)

func badge(text string, variant badgeVariant) g.Node {
	class := "badge inline-block px-2 py-1 rounded-full text-xs font-medium "
	switch variant {
	case badgeSuccess:
		class += "badge-success bg-green-100 text-green-800"
	case badgePrimary:
		class += "badge-primary bg-blue-100 text-blue-800"
	default:
		class += "badge-warning bg-yellow-100 text-yellow-800"
	}
	return Span(Class(class), g.Text(text))
}

// ---- Message Components ----

func ValidationError(message string) g.Node {
	return Div(
		Class("bg-red-100 border-red-500 text-red-700 px-4 py-3 rounded"),
		g.Attr("role", "alert"),
		g.Text(message),
	)
}

func SuccessMessage(message string, redirectURL string) g.Node {
	nodes := []g.Node{
		Class("bg-green-100 border-green-500 text-green-700 px-4 py-3 rounded"),
		g.Text(message),
	}
	if redirectURL != "" {
		nodes[1] = g.Text(message + " Redirecting...")
		nodes = append(nodes, Script(g.Raw(fmt.Sprintf(
			"setTimeout(function() { window.location = '%s' }, %d);",
			redirectURL, config.RedirectDelay.Milliseconds())),
		))
	}
	return Div(nodes...)
}

func resultContainer() g.Node {
	return Div(
		ID("result"),
		Class("mt-4"),
	)
}

func ErrorPage(code int, message string, v Viewer) g.Node {
	meta := seo.Layout("")
	meta.Title = fmt.Sprintf("Error %d - %s", code, config.SiteName)
	return Page(
		meta,
		v,
		[]g.Node{
			pageHeader(fmt.Sprintf("Error %d", code)),
			P(g.Text(message)),
			actionButtons(
				button("Back to listings", withHref("/")),
			),
		},
	)
}
