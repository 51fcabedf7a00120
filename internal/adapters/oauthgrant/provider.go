package oauthgrant

// Package oauthgrant implements ports.TokenProvider against the inventory
// backend's OAuth token endpoint using the resource-owner password grant.
// Client credentials travel as HTTP Basic auth and the grant is
// form-encoded, matching the backend contract.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

// ProviderConfig groups configuration for the password-grant provider.
type ProviderConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scope        string
	// FallbackTTL bounds the token lifetime when the endpoint returns no
	// expiry. Defaults to 8h when zero.
	FallbackTTL time.Duration
	// HTTPClient overrides the client used for the token exchange
	// (tests, custom timeouts). Optional.
	HTTPClient *http.Client
}

// Provider implements ports.TokenProvider.
type Provider struct {
	config      *oauth2.Config
	fallbackTTL time.Duration
	httpClient  *http.Client
}

// NewProvider validates the configuration and builds a Provider.
func NewProvider(cfg ProviderConfig) (*Provider, error) {
	if cfg.TokenURL == "" {
		return nil, errors.New("oauthgrant: TokenURL is required")
	}
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, errors.New("oauthgrant: client credentials are required")
	}

	ttl := cfg.FallbackTTL
	if ttl == 0 {
		ttl = 8 * time.Hour
	}

	return &Provider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       strings.Fields(cfg.Scope),
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.TokenURL,
				// Basic auth for the client pair; user credentials go in
				// the form body per the password grant.
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		fallbackTTL: ttl,
		httpClient:  cfg.HTTPClient,
	}, nil
}

// Login exchanges the user credentials for an access token.
func (p *Provider) Login(ctx context.Context, username, password string) (ports.TokenPayload, error) {
	if username == "" || password == "" {
		return ports.TokenPayload{}, errors.New("oauthgrant: username and password are required")
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	tok, err := p.config.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil &&
			(retrieveErr.Response.StatusCode == http.StatusBadRequest ||
				retrieveErr.Response.StatusCode == http.StatusUnauthorized) {
			return ports.TokenPayload{}, fmt.Errorf("invalid credentials: %w", err)
		}
		return ports.TokenPayload{}, fmt.Errorf("token exchange: %w", err)
	}

	expiresAt := tok.Expiry
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(p.fallbackTTL)
	}

	return ports.TokenPayload{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresAt:   expiresAt,
	}, nil
}
