package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/autohub/site/config"
	"github.com/autohub/site/feed"
	"github.com/autohub/site/models"
	"github.com/autohub/site/seo"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func sampleCar() models.Car {
	return models.Car{
		ID:       "c-42",
		Brand:    "Mercedes",
		CarModel: "G Class",
		Year:     2022,
		Name:     "Mercedes G 63",
		Price:    24500,
		Odo:      12000,
		FuelType: "Gasoline",
		HP:       577,
		Status:   "Available",
		Image:    "https://cdn.test/g63.jpg",
	}
}

func TestCarCard(t *testing.T) {
	html := renderString(t, CarCard(sampleCar()))

	assert.Contains(t, html, `href="/cars/mercedes/g-class-2022/c-42"`)
	assert.Contains(t, html, `data-car-id="c-42"`)
	assert.Contains(t, html, `src="https://cdn.test/g63.jpg"`)
	assert.Contains(t, html, "12,000 KM")
	assert.Contains(t, html, "24,500")
	assert.Contains(t, html, "577 HP")
	assert.Contains(t, html, "badge-success")
}

func TestCarCardBadgeAndPlaceholder(t *testing.T) {
	tests := []struct {
		status string
		class  string
	}{
		{"Available", "badge-success"},
		{"Coming", "badge-primary"},
		{"Sold", "badge-warning"},
		{"", "badge-warning"},
	}
	for _, tt := range tests {
		c := sampleCar()
		c.Status = tt.status
		c.Image = ""
		html := renderString(t, CarCard(c))
		assert.Contains(t, html, tt.class, "status %q", tt.status)
		assert.Contains(t, html, `src="`+config.PlaceholderImage+`"`)
	}
}

func TestCarGridPage(t *testing.T) {
	cars := []models.Car{sampleCar()}

	t.Run("more pages", func(t *testing.T) {
		html := renderString(t, CarGridPage("f-1", feed.Result{Cars: cars, Page: 2, HasMore: true, Total: 5}))
		assert.Contains(t, html, `hx-get="/cars/feed?feed=f-1&amp;page=3"`)
		assert.Contains(t, html, `hx-trigger="intersect once"`)
		assert.Contains(t, html, `hx-swap="outerHTML"`)
		assert.Contains(t, html, "Loading more cars...")
		assert.NotContains(t, html, "end-of-listings")
	})

	t.Run("last page", func(t *testing.T) {
		html := renderString(t, CarGridPage("f-1", feed.Result{Cars: cars, Page: 3, Total: 5}))
		assert.Contains(t, html, "You&#39;ve reached the end of our listings")
		assert.NotContains(t, html, "infinite-scroll-loader")
	})

	t.Run("repeat renders nothing", func(t *testing.T) {
		html := renderString(t, CarGridPage("f-1", feed.Result{Page: 3, Total: 5, Repeat: true}))
		assert.Empty(t, html)
	})

	t.Run("page with only duplicates still advances", func(t *testing.T) {
		html := renderString(t, CarGridPage("f-1", feed.Result{Page: 2, HasMore: true, Total: 5}))
		assert.NotContains(t, html, "data-car-id")
		assert.Contains(t, html, "page=3")
	})
}

func TestCarGrid(t *testing.T) {
	html := renderString(t, CarGrid("f-1", feed.Result{Page: 1}))
	assert.Contains(t, html, `id="car-grid"`)
	assert.Contains(t, html, "No cars found")
	assert.NotContains(t, html, "reached the end")

	html = renderString(t, CarGrid("f-1", feed.Result{Cars: []models.Car{sampleCar()}, Page: 1, Total: 1}))
	assert.Contains(t, html, `data-car-id="c-42"`)
	assert.NotContains(t, html, "No cars found")
}

func TestCarGridError(t *testing.T) {
	html := renderString(t, CarGridError(FeedURL("f-1", 4)))
	assert.Contains(t, html, `id="feed-error"`)
	assert.Contains(t, html, `hx-get="/cars/feed?feed=f-1&amp;page=4"`)
	assert.Contains(t, html, "Try again")
}

func TestDetailImage(t *testing.T) {
	d := &models.CarDetails{}
	assert.Equal(t, config.PlaceholderImage, DetailImage("https://img.test", d))

	d.VehicleImages.PartsImages = []models.PartImage{{PartName: "Front", Image: "/f.jpg"}}
	assert.Equal(t, "https://img.test/f.jpg", DetailImage("https://img.test/", d))
}

func TestCarDetailPage(t *testing.T) {
	d := &models.CarDetails{
		BuyStatus: "1",
		DescriptionData: map[string]any{
			models.DescModelYear: float64(2018),
			models.DescMake:      "BMW",
			models.DescModel:     "X5",
			models.DescPrice:     float64(39999.6),
			"Doors":              float64(4),
		},
	}
	meta := seo.Car(d, "https://autohub.test/cars/bmw/x5-2018/p")
	html := renderString(t, CarDetailPage(meta, Viewer{}, d, "https://img.test/f.jpg", `{"@type":"Car"}`))

	assert.Contains(t, html, `<script type="application/ld+json">{"@type":"Car"}</script>`)
	assert.Contains(t, html, "2018 BMW X5")
	assert.Contains(t, html, "$40,000")
	assert.Contains(t, html, "N/A")
	assert.Contains(t, html, "badge-primary")
	assert.Contains(t, html, ">Sold<")
	assert.Contains(t, html, "Doors:")
	assert.Contains(t, html, `<link rel="canonical" href="https://autohub.test/cars/bmw/x5-2018/p">`)
}

func TestCarNotFoundPage(t *testing.T) {
	html := renderString(t, CarNotFoundPage(seo.NotFound(""), Viewer{}))
	assert.Contains(t, html, "404")
	assert.Contains(t, html, "Car Not Found")
	assert.Contains(t, html, "Browse All Cars")
}

func TestNewCarPage(t *testing.T) {
	html := renderString(t, NewCarPage(seo.Layout(""), Viewer{LoggedIn: true}, 2026))

	for _, name := range []string{
		"brand", "carModel", "vin", "registrationNumber", "cc", "cylinders",
		"transmissionType", "year", "price", "mileage", "trimType", "maxSpeed",
		"horsepower", "fuelType", "transmission", "condition", "bodyType",
		"exteriorColor", "location", "description", "image",
	} {
		assert.Contains(t, html, `name="`+name+`"`, name)
	}
	assert.Contains(t, html, `value="2026"`)
	assert.Contains(t, html, `max="2027"`)
	assert.Contains(t, html, `hx-post="/api/cars"`)
	assert.Contains(t, html, `hx-target="#result"`)
	assert.Contains(t, html, `<option value="Gasoline" selected>Gasoline</option>`)
	assert.Contains(t, html, `<option value="CVT">CVT (Continuously Variable)</option>`)
	assert.Contains(t, html, "Max Speed")
}

func TestLoginPage(t *testing.T) {
	html := renderString(t, LoginPage(seo.Layout(""), Viewer{Path: "/login"}))
	assert.Contains(t, html, `hx-post="/api/login"`)
	assert.Contains(t, html, `type="email"`)
	assert.Contains(t, html, `type="password"`)
	assert.Contains(t, html, `id="result"`)
	assert.NotContains(t, html, `href="/login"`)
}

func TestNavigation(t *testing.T) {
	out := renderString(t, navigation(Viewer{Path: "/", Theme: "light"}))
	assert.Contains(t, out, `href="/login"`)
	assert.Contains(t, out, "🌙")
	assert.NotContains(t, out, "Logout")

	out = renderString(t, navigation(Viewer{Path: "/", Theme: "dark", LoggedIn: true, UserName: "Dana"}))
	assert.Contains(t, out, "Logout")
	assert.Contains(t, out, "Dana")
	assert.Contains(t, out, "☀️")
	assert.NotContains(t, out, `href="/login"`)
}

func TestPageTheme(t *testing.T) {
	html := renderString(t, Page(seo.Home("https://autohub.test/"), Viewer{Theme: "dark"}, nil))
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, "bg-gray-900")
	assert.Contains(t, html, `property="og:image" content="https://autohub.test/og-image.jpg"`)
}

func TestMessages(t *testing.T) {
	html := renderString(t, SuccessMessage("Saved!", "/"))
	assert.Contains(t, html, "Saved! Redirecting...")
	assert.Contains(t, html, "window.location = '/'")

	html = renderString(t, SuccessMessage("Saved!", ""))
	assert.NotContains(t, html, "<script>")

	html = renderString(t, ValidationError("Price is required"))
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Price is required")
}
