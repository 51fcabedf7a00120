package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModePassword authenticates against the backend's OAuth
	// password-grant token endpoint.
	AuthModePassword AuthMode = "password"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "password", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: password, mock)", v)
	}
}

// OAuthConfig contains the backend token endpoint configuration.
// Login uses HTTP Basic auth with the client id/secret pair plus an OAuth
// password grant, form-encoded.
type OAuthConfig struct {
	TokenURL     string `env:"TOKEN_URL"`
	ClientID     string `env:"CLIENT_ID"     envDefault:"sgc"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"sgc123"`
	Scope        string `env:"SCOPE"         envDefault:"read write"`
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID string `env:"USER_ID" envDefault:"dev-user"`
	Email  string `env:"EMAIL"   envDefault:"dev@example.com"`
	// Roles holds numeric role ids granted to the dev identity.
	Roles []int `env:"ROLES" envDefault:"1" envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"password"`

	// OAuth configuration (used when Mode=password).
	OAuth OAuthConfig `envPrefix:"OAUTH_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// RolesClaimPath is the JMESPath expression locating the granted role
	// descriptors inside the decoded token claims.
	RolesClaimPath string `env:"AUTH_ROLES_CLAIM_PATH" envDefault:"authorities"`

	// SessionTTL bounds a session's lifetime when the token carries no
	// usable expiry of its own.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"8h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.RolesClaimPath == "" {
		a.RolesClaimPath = "authorities"
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 8 * time.Hour
	}
}
