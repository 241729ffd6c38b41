package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// SiteName is shown in the header and appended to page titles.
	SiteName = "AutoHub"

	// RedirectDelay is the time to wait before redirecting the user after a successful action.
	RedirectDelay = 1 * time.Second

	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.10"

	// PlaceholderImage is served when a car has no usable image.
	PlaceholderImage = "/images/car-place-holder.webp"
	FaviconImage     = "/images/favicon.png"

	// Login submissions allowed per client IP and window.
	LoginRateLimitMax = 10
	LoginRateLimitExp = 5 * time.Minute

	// FeedTTL bounds how long an idle listing feed is kept in memory.
	FeedTTL = 30 * time.Minute

	// DetailTTL bounds how long a fetched car detail record is reused.
	DetailTTL = 5 * time.Minute
)

type Config struct {
	// Server
	ServerPort   string
	StaticDir    string
	BodyLimit    int
	RateLimitMax int
	RateLimitExp time.Duration
	Debug        bool

	// Public site
	SiteURL string

	// Remote car-listing API
	APIBaseURL   string
	APITimeout   time.Duration
	ImageBaseURL string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:   getEnv("PORT", "8080"),
		StaticDir:    getEnv("STATIC_DIR", "./static"),
		BodyLimit:    getEnvInt("SERVER_BODY_LIMIT", 1<<20),
		RateLimitMax: getEnvInt("SERVER_RATE_LIMIT_MAX", 120),
		RateLimitExp: getEnvDuration("SERVER_RATE_LIMIT_EXP", time.Minute),
		Debug:        getEnvBool("DEBUG", false),
		SiteURL:      getEnv("SITE_URL", "https://autohub.com"),
		APIBaseURL:   getEnv("API_BASE_URL", "https://car-list-863m.onrender.com"),
		APITimeout:   getEnvDuration("API_TIMEOUT", 10*time.Second),
		ImageBaseURL: getEnv("IMAGE_BASE_URL", "https://s3.me-south-1.amazonaws.com/storage.siarty.com/storage/auction/images/"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
