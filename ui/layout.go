package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/config"
	"github.com/autohub/site/cookie"
	"github.com/autohub/site/seo"
)

// Viewer is the per-request state the header needs.
type Viewer struct {
	Path     string
	Theme    string
	LoggedIn bool
	UserName string
}

// ---- Page Layout ----

func Page(meta seo.Metadata, v Viewer, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       meta.Title,
		Description: meta.Description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("icon"), Type("image/png"), Href(config.FaviconImage)),
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			Link(
				Rel("stylesheet"),
				Href("/css/site.css"),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			metaTags(meta),
		},
		Body: []g.Node{
			Div(
				ID("app"),
				Class(themeClass(v.Theme)),
				g.Attr("data-theme", v.Theme),
				navigation(v),
				Main(
					Class("container mx-auto px-4 py-8"),
					g.Group(content),
				),
			),
		},
	})
}

func metaTags(meta seo.Metadata) g.Node {
	return g.Group([]g.Node{
		g.If(meta.Keywords != "", Meta(Name("keywords"), Content(meta.Keywords))),
		Meta(Name("author"), Content(config.SiteName)),
		g.If(meta.Canonical != "", Link(Rel("canonical"), Href(meta.Canonical))),
		metaProperty("og:type", meta.OGType),
		metaProperty("og:title", meta.OGTitle),
		metaProperty("og:description", meta.OGDesc),
		metaProperty("og:url", meta.Canonical),
		metaProperty("og:site_name", config.SiteName),
		metaProperty("og:image", meta.OGImage),
		metaName("twitter:card", meta.TwitterCard),
		metaName("twitter:title", meta.TwitterTitle),
		metaName("twitter:description", meta.TwitterDesc),
	})
}

func metaProperty(property, content string) g.Node {
	return g.If(content != "", Meta(g.Attr("property", property), Content(content)))
}

func metaName(name, content string) g.Node {
	return g.If(content != "", Meta(Name(name), Content(content)))
}

func themeClass(theme string) string {
	if theme == cookie.ThemeDark {
		return "dark min-h-screen bg-gray-900 text-gray-100"
	}
	return "min-h-screen bg-gray-50 text-gray-900"
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
