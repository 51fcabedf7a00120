package jwtclaims

// Package jwtclaims derives domain Claims from a backend-issued JWT.
// The token is decoded without signature verification: the gateway never
// mints tokens itself and only forwards what the backend issued over TLS,
// so verification happens where the token is consumed.

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

// Config controls where the decoder finds identity data inside the token.
type Config struct {
	// RolesClaimPath is a JMESPath expression selecting the granted roles
	// inside the claim set. Defaults to "authorities".
	RolesClaimPath string
}

// Decoder implements ports.ClaimsDecoder on top of golang-jwt.
type Decoder struct {
	rolesPath string
}

// NewDecoder validates the roles path expression and builds a Decoder.
func NewDecoder(cfg Config) (*Decoder, error) {
	path := cfg.RolesClaimPath
	if path == "" {
		path = "authorities"
	}
	if _, err := jmespath.Compile(path); err != nil {
		return nil, fmt.Errorf("invalid roles claim path %q: %w", path, err)
	}
	return &Decoder{rolesPath: path}, nil
}

// Decode extracts Claims from the access token. A malformed token or a
// token without a subject is an error; an absent roles claim yields empty
// roles, which downstream guards treat as no access.
func (d *Decoder) Decode(token string) (domainauth.Claims, error) {
	if token == "" {
		return domainauth.Claims{}, errors.New("empty token")
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return domainauth.Claims{}, fmt.Errorf("parse token: %w", err)
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domainauth.Claims{}, errors.New("unexpected claim format")
	}

	userID := stringClaim(mapClaims, "sub")
	if userID == "" {
		userID = stringClaim(mapClaims, "user_name")
	}
	if userID == "" {
		return domainauth.Claims{}, errors.New("token has no subject")
	}

	roles, err := d.extractRoles(map[string]any(mapClaims))
	if err != nil {
		return domainauth.Claims{}, err
	}

	return domainauth.Claims{UserID: userID, Roles: roles}, nil
}

func (d *Decoder) extractRoles(claims map[string]any) ([]domainauth.RoleDescriptor, error) {
	raw, err := jmespath.Search(d.rolesPath, claims)
	if err != nil {
		return nil, fmt.Errorf("evaluate roles claim path: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("roles claim is not a list (got %T)", raw)
	}

	roles := make([]domainauth.RoleDescriptor, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("role entry is not an object (got %T)", item)
		}
		id, ok := numericID(entry["id"])
		if !ok {
			return nil, errors.New("role entry has no numeric id")
		}
		name, _ := entry["name"].(string)
		if name == "" {
			// Some token issuers label the role "authority" instead.
			name, _ = entry["authority"].(string)
		}
		roles = append(roles, domainauth.RoleDescriptor{ID: id, Name: name})
	}
	return roles, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}

func numericID(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
