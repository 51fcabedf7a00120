package config

import "strings"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`

	// BaseURL is the base URL of the application (e.g., "https://app.example.com").
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:8080"`

	// BasePath is the path prefix the whole route tree is mounted under.
	BasePath string `env:"APP_BASE_PATH" envDefault:"/inventory-management"`

	// CookieDomain is the domain for session cookies.
	// Leave empty to use the request domain.
	CookieDomain string `env:"APP_COOKIE_DOMAIN" envDefault:""`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	// BasePath must start with "/" and carry no trailing slash.
	if h.BasePath == "" || h.BasePath == "/" {
		h.BasePath = "/inventory-management"
	}
	if !strings.HasPrefix(h.BasePath, "/") {
		h.BasePath = "/" + h.BasePath
	}
	h.BasePath = strings.TrimRight(h.BasePath, "/")
}
