package ports

// Package ports defines interfaces (hexagonal ports) for auth-related
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"
	"errors"
	"time"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get when no session exists
// for the given ID.
var ErrSessionNotFound = errors.New("session not found")

// TokenPayload is the raw result of the backend token endpoint.
type TokenPayload struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}

// TokenProvider exchanges user credentials for an access token against the
// backend's OAuth password-grant endpoint.
type TokenProvider interface {
	Login(ctx context.Context, username, password string) (TokenPayload, error)
}

// ClaimsDecoder derives Claims from an access token. Decode failures return
// an error; claims are a pure function of the token.
type ClaimsDecoder interface {
	Decode(token string) (domainauth.Claims, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// ProfileFetcher reads and mutates the logged-in user's profile on the
// backend (first-access flag, display data, password operations).
type ProfileFetcher interface {
	FetchUserData(ctx context.Context, accessToken string) (domainauth.UserData, error)
	ChangePassword(ctx context.Context, accessToken, newPassword string) error
	RequestPasswordRecovery(ctx context.Context, email string) error
}

// EventKind classifies a session lifecycle event.
type EventKind string

const (
	EventLogin       EventKind = "login"
	EventLogout      EventKind = "logout"
	EventInvalidated EventKind = "invalidated"
	// EventRefreshed signals an in-place session mutation, e.g. the
	// first-access flag clearing. Subscribers must drop cached copies.
	EventRefreshed EventKind = "refreshed"
)

// SessionEvent is broadcast whenever session state mutates, so every client
// of the same session (other tabs, other devices) can resynchronize.
type SessionEvent struct {
	SessionID string    `json:"session_id"`
	Kind      EventKind `json:"kind"`
}

// SessionEvents is the explicit publish/subscribe channel replacing the
// original's platform storage-mutation signal.
type SessionEvents interface {
	// Publish broadcasts the event to all subscribers.
	Publish(ctx context.Context, ev SessionEvent) error
	// Subscribe returns a channel of events and a cancel function. The
	// channel is closed after cancel is called.
	Subscribe(ctx context.Context) (<-chan SessionEvent, func(), error)
}
