package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/config"
	"github.com/autohub/site/cookie"
)

func indicator() g.Node {
	return Div(
		ID("indicator"),
		Class("htmx-indicator flex items-center gap-2 text-blue-600"),
		Div(
			Class("w-4 h-4 border-2 border-blue-600 border-t-transparent rounded-full animate-spin"),
		),
		g.Text("Loading..."),
	)
}

func navLink(href, text, currentPath string) g.Node {
	class := "hover:text-blue-500"
	if href == currentPath {
		class += " font-semibold text-blue-500"
	}
	return A(Href(href), Class(class), g.Text(text))
}

func themeToggle(theme string) g.Node {
	icon := "🌙"
	label := "Switch to dark theme"
	if theme == cookie.ThemeDark {
		icon = "☀️"
		label = "Switch to light theme"
	}
	return Button(
		ID("theme-toggle"),
		Type("button"),
		Class("text-xl"),
		Aria("label", label),
		hx.Post("/theme"),
		hx.Swap("none"),
		g.Text(icon),
	)
}

func navLoggedIn(userName string) g.Node {
	return Div(
		Class("flex items-center space-x-4"),
		g.If(userName != "", Span(Class("text-sm text-gray-500"), g.Text(userName))),
		Button(
			Type("button"),
			Class("text-blue-500 hover:underline"),
			hx.Post("/logout"),
			g.Text("Logout"),
		),
	)
}

func navLoggedOut(currentPath string) g.Node {
	if currentPath == "/login" {
		return nil
	}
	return A(Href("/login"), Class("text-blue-500 hover:underline"), g.Text("Login"))
}

func navigation(v Viewer) g.Node {
	return Header(
		Class("border-b"),
		Nav(
			Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			A(
				Href("/"),
				Class("text-xl font-bold flex items-center gap-2"),
				Span(g.Text("🚗")),
				g.Text(config.SiteName),
			),
			indicator(),
			Div(
				Class("flex items-center space-x-6"),
				navLink("/", "Home", v.Path),
				navLink("/admin/add", "Add Car", v.Path),
				themeToggle(v.Theme),
				g.Iff(v.LoggedIn, func() g.Node { return navLoggedIn(v.UserName) }),
				g.Iff(!v.LoggedIn, func() g.Node { return navLoggedOut(v.Path) }),
			),
		),
	)
}
