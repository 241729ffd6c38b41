package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autohub/site/cache"
	"github.com/autohub/site/carapi"
	"github.com/autohub/site/config"
	"github.com/autohub/site/feed"
	h "github.com/autohub/site/handlers"
	"github.com/autohub/site/models"
	"github.com/autohub/site/placeholder"
)

// upstream is a stand-in for the car-listing API.
type upstream struct {
	mu      sync.Mutex
	pages   map[int][]string
	created []map[string]any
	bearers []string
}

func (u *upstream) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/cars", func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		defer u.mu.Unlock()

		if r.Method == http.MethodPost {
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, `{"message":"bad json"}`, http.StatusBadRequest)
				return
			}
			u.created = append(u.created, body)
			u.bearers = append(u.bearers, r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"created"}`))
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		resp := models.CarPage{CurrentPage: page, TotalPages: len(u.pages)}
		for _, id := range u.pages[page] {
			resp.Data = append(resp.Data, models.Car{
				ID:       id,
				Brand:    "Ford",
				CarModel: "F-150",
				Year:     2021,
				Name:     "Ford F-150 " + id,
				Status:   "Available",
			})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("/api/v1/cars/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Car not found"}`))
	})

	mux.HandleFunc("/api/v1/auth/login/email", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "correct-horse" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"message":"Incorrect email or password"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(models.LoginResult{
			User: models.User{ID: "u1", Name: "Sam", Email: body["email"]},
			Tokens: models.Tokens{
				Access:  models.Token{Token: "access-abc", ExpiresIn: 3_600_000},
				Refresh: models.Token{Token: "refresh-abc", ExpiresIn: 2_592_000_000},
			},
		})
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func newTestServer(t *testing.T, up *upstream) *fiber.App {
	t.Helper()
	return newTestServerWithStatic(t, up, "../static")
}

func newTestServerWithStatic(t *testing.T, up *upstream, staticDir string) *fiber.App {
	t.Helper()

	api := httptest.NewServer(up.handler())
	t.Cleanup(api.Close)

	cfg := &config.Config{
		StaticDir:    staticDir,
		BodyLimit:    1 << 20,
		RateLimitMax: 1000,
		RateLimitExp: time.Minute,
		SiteURL:      "https://autohub.test",
		APIBaseURL:   api.URL,
		APITimeout:   5 * time.Second,
		ImageBaseURL: "https://img.test/",
	}

	client := carapi.New(cfg.APIBaseURL, cfg.APITimeout)
	feeds, err := feed.NewStore(client, config.FeedTTL)
	require.NoError(t, err)
	details, err := cache.New[*models.CarDetails](func(*models.CarDetails) int64 { return 1 }, "test details", config.DetailTTL)
	require.NoError(t, err)

	h.Init(cfg, client, feeds, details)
	return New(cfg)
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

var (
	loaderPattern = regexp.MustCompile(`hx-get="(/cars/feed\?[^"]+)"`)
	carIDPattern  = regexp.MustCompile(`data-car-id="([^"]+)"`)
)

func TestScrollingTheWholeFeed(t *testing.T) {
	app := newTestServer(t, &upstream{pages: map[int][]string{
		1: {"1", "2", "3"},
		2: {"3", "4", "1"},
		3: {"5", "2", "6"},
	}})

	_, body := get(t, app, "/")
	seen := map[string]int{}
	for i := 0; i < 10; i++ {
		for _, m := range carIDPattern.FindAllStringSubmatch(body, -1) {
			seen[m[1]]++
		}
		next := loaderPattern.FindStringSubmatch(body)
		if next == nil {
			break
		}
		_, body = get(t, app, strings.ReplaceAll(next[1], "&amp;", "&"))
	}

	assert.Len(t, seen, 6)
	for id, n := range seen {
		assert.Equal(t, 1, n, "car %s rendered more than once", id)
	}
	assert.Contains(t, body, "reached the end of our listings")
}

func TestTwoVisitsHaveSeparateFeeds(t *testing.T) {
	app := newTestServer(t, &upstream{pages: map[int][]string{
		1: {"1"},
		2: {"2"},
	}})

	_, first := get(t, app, "/")
	_, second := get(t, app, "/")

	a := loaderPattern.FindStringSubmatch(first)
	b := loaderPattern.FindStringSubmatch(second)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotEqual(t, a[1], b[1])

	// Both visits get page 2 in full.
	_, pageA := get(t, app, strings.ReplaceAll(a[1], "&amp;", "&"))
	_, pageB := get(t, app, strings.ReplaceAll(b[1], "&amp;", "&"))
	assert.Contains(t, pageA, `data-car-id="2"`)
	assert.Contains(t, pageB, `data-car-id="2"`)
}

func TestAddCarWithoutTokenRedirects(t *testing.T) {
	app := newTestServer(t, &upstream{})

	resp, _ := get(t, app, "/admin/add")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	resp, _ = get(t, app, "/admin/cache")
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
}

func TestFailedLoginShowsMessage(t *testing.T) {
	app := newTestServer(t, &upstream{})

	form := url.Values{"email": {"sam@example.com"}, "password": {"nope"}}
	req := httptest.NewRequest(fiber.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set("HX-Request", "true")

	resp, body := send(t, app, req)
	assert.Contains(t, body, "Incorrect email or password")
	for _, c := range resp.Cookies() {
		assert.NotEqual(t, "accessToken", c.Name)
	}
}

func TestLoginThenAddCar(t *testing.T) {
	up := &upstream{}
	app := newTestServer(t, up)

	form := url.Values{"email": {"sam@example.com"}, "password": {"correct-horse"}}
	req := httptest.NewRequest(fiber.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, body := send(t, app, req)
	require.Contains(t, body, "Login successful!")

	var access *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "accessToken" {
			access = c
		}
	}
	require.NotNil(t, access)
	assert.Equal(t, 3600, access.MaxAge)

	resp, body = get(t, app, "/admin/add", &http.Cookie{Name: access.Name, Value: access.Value})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Logout")

	car := url.Values{
		"brand": {"Ford"}, "carModel": {"Bronco"}, "vin": {"1FMEE5DP0MLA00001"},
		"registrationNumber": {"XYZ-9"}, "cc": {"2700"}, "cylinders": {"6"},
		"transmissionType": {"Automatic"}, "year": {"2022"}, "price": {"52000"},
		"mileage": {"8000"}, "trimType": {"Off-Road"}, "maxSpeed": {"180"},
		"horsepower": {"330"}, "fuelType": {"Gasoline"}, "transmission": {"Automatic"},
		"condition": {"used"}, "bodyType": {"SUV"}, "exteriorColor": {"Blue"},
		"location": {"Denver, CO"}, "description": {""}, "image": {""},
	}
	req = httptest.NewRequest(fiber.MethodPost, "/api/cars", strings.NewReader(car.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.AddCookie(&http.Cookie{Name: access.Name, Value: access.Value})
	_, body = send(t, app, req)
	assert.Contains(t, body, "Car added successfully!")

	up.mu.Lock()
	defer up.mu.Unlock()
	require.Len(t, up.created, 1)
	assert.Equal(t, "Bearer access-abc", up.bearers[0])
	assert.Equal(t, float64(52000), up.created[0]["price"])
	assert.Equal(t, float64(8000), up.created[0]["mileage"])
	assert.Equal(t, float64(2022), up.created[0]["year"])
	assert.Equal(t, float64(330), up.created[0]["horsepower"])
	assert.Equal(t, "6", up.created[0]["cylinders"])
}

func TestOperationalEndpoints(t *testing.T) {
	app := newTestServer(t, &upstream{pages: map[int][]string{1: {"9"}}})

	resp, body := get(t, app, "/health")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"api":"up"`)

	// Any upstream call shows up in the client metrics.
	get(t, app, "/")
	resp, body = get(t, app, "/metrics")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "autohub_carapi_requests_total")

	resp, body = get(t, app, "/sitemap.xml")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<loc>https://autohub.test/cars/ford/f-150-2021/9</loc>")

	resp, body = get(t, app, "/robots.txt")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sitemap: ")
}

func TestUnknownCarIs404(t *testing.T) {
	app := newTestServer(t, &upstream{})

	resp, body := get(t, app, fmt.Sprintf("/cars/%s/%s/%s", "ford", "f-150-2021", "missing"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Car Not Found")
}

func TestImageAssetsAreServed(t *testing.T) {
	dir := t.TempDir()
	_, err := placeholder.EnsureAssets(dir, false)
	require.NoError(t, err)

	app := newTestServerWithStatic(t, &upstream{pages: map[int][]string{1: {"1"}}}, dir)

	_, home := get(t, app, "/")
	assert.Contains(t, home, `href="`+config.FaviconImage+`"`)

	for _, path := range []string{config.PlaceholderImage, config.FaviconImage} {
		resp, body := get(t, app, path)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.NotEmpty(t, body, path)
	}
}

func TestRateLimitedLoginStillShowsMessage(t *testing.T) {
	app := newTestServer(t, &upstream{})

	form := url.Values{"email": {"sam@example.com"}, "password": {"nope"}}
	var (
		resp *http.Response
		body string
	)
	for i := 0; i <= config.LoginRateLimitMax; i++ {
		req := httptest.NewRequest(fiber.MethodPost, "/api/login", strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		req.Header.Set("HX-Request", "true")
		resp, body = send(t, app, req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "attempt %d", i+1)
	}
	assert.Contains(t, body, `role="alert"`)
	assert.Contains(t, body, "Too many login attempts. Please try again later.")
}
