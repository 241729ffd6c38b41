package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/autohub/site/config"
	"github.com/autohub/site/models"
	"github.com/autohub/site/seo"
)

// DetailImage is the front photo under imageBase, or the placeholder.
func DetailImage(imageBase string, d *models.CarDetails) string {
	front := d.FrontImage()
	if front == "" {
		return config.PlaceholderImage
	}
	return strings.TrimRight(imageBase, "/") + "/" + strings.TrimLeft(front, "/")
}

func saleBadgeVariant(status string) badgeVariant {
	switch status {
	case models.SaleSold:
		return badgePrimary
	case models.SaleReserved:
		return badgeWarning
	default:
		return badgeSuccess
	}
}

func specItem(key, value string) g.Node {
	return Div(
		Class("flex flex-col"),
		Span(Class("text-xs uppercase text-gray-500"), g.Text(key)),
		Span(Class("font-medium"), g.Text(value)),
	)
}

func featureGrid(fields []models.Field) g.Node {
	items := make([]g.Node, 0, len(fields))
	for _, f := range fields {
		items = append(items, Div(
			Class("feature-item"),
			Strong(g.Text(f.Label+":")),
			g.Text(" "),
			Span(g.Text(f.Value)),
		))
	}
	return Div(
		Class("grid grid-cols-1 md:grid-cols-2 gap-2"),
		g.Group(items),
	)
}

func CarDetailPage(meta seo.Metadata, v Viewer, d *models.CarDetails, imageURL, jsonLD string) g.Node {
	name := d.Name()
	status := d.SaleStatus()

	vin := d.Desc(models.DescVIN)
	if vin == "" {
		vin = "N/A"
	}

	return Page(
		meta,
		v,
		[]g.Node{
			g.If(jsonLD != "", Script(Type("application/ld+json"), g.Raw(jsonLD))),
			Div(
				ID("car-detail"),
				Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
				Div(
					Class("space-y-4"),
					Img(
						Src(imageURL),
						Alt(name),
						Width("800"),
						Height("500"),
						Class("w-full rounded-lg object-cover"),
					),
					Div(badge(status, saleBadgeVariant(status))),
				),
				Div(
					Class("space-y-6"),
					H1(Class("text-3xl font-bold"), g.Text(name)),
					P(Class("text-2xl text-green-600 font-semibold"), g.Text(seo.USD(d.DescValue(models.DescPrice)))),
					Div(
						Class("grid grid-cols-2 gap-4 border-t pt-4"),
						specItem("VIN", vin),
						g.If(d.Location != "", specItem("Location", d.Location)),
					),
				),
			),
			Div(
				Class("mt-12"),
				H2(Class("text-2xl font-bold mb-4"), g.Text("All Info")),
				featureGrid(d.Fields()),
			),
			actionButtons(
				buttonSecondary("← Back to listings", withHref("/")),
			),
		},
	)
}

func CarNotFoundPage(meta seo.Metadata, v Viewer) g.Node {
	return Page(
		meta,
		v,
		[]g.Node{
			Div(
				Class("text-center py-16"),
				H1(Class("text-6xl font-bold mb-4"), g.Text("404")),
				H2(Class("text-2xl font-semibold mb-4"), g.Text("Car Not Found")),
				P(Class("text-gray-500 mb-8"), g.Text("The car you're looking for doesn't exist or has been removed from our inventory.")),
				button("Browse All Cars", withHref("/")),
			),
		},
	)
}
