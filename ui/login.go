package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/seo"
)

func LoginPage(meta seo.Metadata, v Viewer) g.Node {
	return Page(
		meta,
		v,
		[]g.Node{
			contentContainer(
				pageHeader("Login"),
				Form(
					ID("loginForm"),
					Class("space-y-6"),
					hx.Post("/api/login"),
					hx.Target("#result"),
					hx.Indicator("#indicator"),
					formGroup("Email", "email", emailInput("email")),
					formGroup("Password", "password", passwordInput("password")),
					actionButtons(
						button("Login", withType("submit")),
					),
					resultContainer(),
				),
			),
		},
	)
}
