package config

import "time"

// BackendConfig contains the remote inventory REST API configuration.
// All asset/contract/supplier/audit persistence lives behind this API;
// the gateway only forwards calls through the intercepted client.
type BackendConfig struct {
	// BaseURL is the root of the inventory backend API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8081"`

	// Timeout bounds each backend call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to backend configuration values.
func (b *BackendConfig) Sanitize() {
	if b.Timeout <= 0 {
		b.Timeout = 30 * time.Second
	}
}
