package seo

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/autohub/site/models"
)

type SitemapURL struct {
	Loc        string    `xml:"loc"`
	LastMod    time.Time `xml:"lastmod"`
	ChangeFreq string    `xml:"changefreq"`
	Priority   string    `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists the static pages followed by one entry per car.
func BuildSitemap(siteURL string, cars []models.Car, now time.Time) Sitemap {
	base := strings.TrimRight(siteURL, "/")

	urls := []SitemapURL{
		{
			Loc:        base + "/",
			LastMod:    now,
			ChangeFreq: "daily",
			Priority:   "1.0",
		},
		{
			Loc:        base + "/admin/add",
			LastMod:    now,
			ChangeFreq: "monthly",
			Priority:   "0.5",
		},
	}

	for _, c := range cars {
		lastMod := now
		if t, err := time.Parse(time.RFC3339, c.UpdatedAt); err == nil {
			lastMod = t
		}
		urls = append(urls, SitemapURL{
			Loc:        base + CarPath(c),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	return Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
}
