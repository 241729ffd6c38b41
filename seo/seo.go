// Package seo builds page metadata, schema.org structured data and the
// sitemap for the public pages.
package seo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/autohub/site/config"
	"github.com/autohub/site/models"
)

// Metadata is rendered into the document head.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string

	OGType  string
	OGTitle string
	OGDesc  string
	OGImage string

	TwitterCard  string
	TwitterTitle string
	TwitterDesc  string
}

const layoutTitle = config.SiteName + " - Premium Car Marketplace"

// Layout is the fallback metadata for pages that set nothing of their own.
func Layout(siteURL string) Metadata {
	return Metadata{
		Title:        layoutTitle,
		Description:  "Find your perfect car from our extensive collection of new and used vehicles. Browse luxury cars, sedans, SUVs and more.",
		Keywords:     "cars, automotive, buy car, sell car, used cars, new cars, luxury cars",
		Canonical:    siteURL,
		OGType:       "website",
		OGTitle:      layoutTitle,
		OGDesc:       "Find your perfect car from our extensive collection",
		TwitterCard:  "summary_large_image",
		TwitterTitle: layoutTitle,
		TwitterDesc:  "Find your perfect car from our extensive collection",
	}
}

// Home is the metadata of the listing page.
func Home(siteURL string) Metadata {
	m := Layout(siteURL)
	m.Title = config.SiteName + " - Find Your Perfect Car"
	m.Description = "Browse thousands of new and used cars. Find luxury vehicles, sedans, SUVs, and more from trusted dealers."
	m.Keywords = "cars for sale, used cars, new cars, car dealership, automotive marketplace"
	m.OGTitle = m.Title
	m.OGDesc = "Browse thousands of new and used cars"
	m.OGImage = strings.TrimRight(siteURL, "/") + "/og-image.jpg"
	return m
}

// NotFound is the metadata of the missing car page.
func NotFound(siteURL string) Metadata {
	m := Layout(siteURL)
	m.Title = "Car Not Found - " + config.SiteName
	m.OGTitle = m.Title
	return m
}

// Car is the metadata of a car detail page.
func Car(d *models.CarDetails, pageURL string) Metadata {
	name := d.Name()
	fuel := d.Desc(models.DescFuelType)
	title := name + " - " + config.SiteName
	desc := fmt.Sprintf("%s for sale. %s miles, %s, %s. View details and contact seller.",
		name, Number(d.DescValue(models.DescODO)), fuel, Number(d.DescValue(models.DescPrice)))

	return Metadata{
		Title:       title,
		Description: desc,
		Keywords:    name + ", car for sale, " + fuel,
		Canonical:   pageURL,
		OGType:      "website",
		OGTitle:     title,
		OGDesc:      desc,
		TwitterCard: "summary",
	}
}

// Number formats a description value with thousands separators. Text is
// returned as is.
func Number(v any) string {
	switch val := v.(type) {
	case float64:
		return humanize.Commaf(val)
	case int:
		return humanize.Comma(int64(val))
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return humanize.Commaf(f)
		}
		return val
	default:
		return ""
	}
}

// USD formats an amount as whole US dollars, e.g. "$24,500".
func USD(v any) string {
	var amount float64
	switch val := v.(type) {
	case float64:
		amount = val
	case int:
		amount = float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return ""
		}
		amount = f
	default:
		return ""
	}

	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-$" + humanize.Comma(-rounded)
	}
	return "$" + humanize.Comma(rounded)
}

// CarPath is the detail page path of a listing card:
// /cars/{brand}/{model}-{year}/{id}, lowercased, with the words of the model
// joined by dashes.
func CarPath(c models.Car) string {
	brand := strings.ToLower(c.Brand)
	model := strings.Join(strings.Fields(strings.ToLower(c.CarModel)), "-")
	return fmt.Sprintf("/cars/%s/%s-%d/%s", brand, model, c.Year, c.ID)
}
