package devauth

// Package devauth provides a config-driven TokenProvider for local
// development. It mints real HS256 tokens so the claims decoder and the
// rest of the pipeline behave exactly as in production.

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

// Config controls the dev token provider behavior.
type Config struct {
	UserID string
	Email  string
	// RoleIDs are granted to every login. Defaults to admin when empty.
	RoleIDs         []int
	SessionDuration time.Duration // default 8h when zero
	// SigningKey signs the minted tokens. A fixed local-only key is used
	// when empty.
	SigningKey []byte
}

// Provider implements ports.TokenProvider for local development.
// Any non-empty credential pair logs in as the configured identity.
type Provider struct {
	userID          string
	email           string
	roles           []domainauth.RoleDescriptor
	sessionDuration time.Duration
	signingKey      []byte
}

// NewProvider constructs a dev token provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}

	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}

	ids := cfg.RoleIDs
	if len(ids) == 0 {
		ids = []int{domainauth.RoleAdmin.ID}
	}
	roles := make([]domainauth.RoleDescriptor, 0, len(ids))
	for _, id := range ids {
		roles = append(roles, domainauth.RoleByID(id))
	}

	key := cfg.SigningKey
	if len(key) == 0 {
		key = []byte("dev-only-signing-key")
	}

	return &Provider{
		userID:          cfg.UserID,
		email:           cfg.Email,
		roles:           roles,
		sessionDuration: dur,
		signingKey:      key,
	}, nil
}

// Login ignores the password and mints a token for the configured identity.
// Empty credentials are still rejected so the login form behaves normally.
func (p *Provider) Login(_ context.Context, username, password string) (ports.TokenPayload, error) {
	if username == "" || password == "" {
		return ports.TokenPayload{}, errors.New("dev auth: username and password are required")
	}

	now := time.Now()
	expiresAt := now.Add(p.sessionDuration)

	authorities := make([]map[string]any, 0, len(p.roles))
	for _, r := range p.roles {
		authorities = append(authorities, map[string]any{"id": r.ID, "name": r.Name})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         p.userID,
		"email":       p.email,
		"authorities": authorities,
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
	})

	signed, err := token.SignedString(p.signingKey)
	if err != nil {
		return ports.TokenPayload{}, err
	}

	return ports.TokenPayload{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}
