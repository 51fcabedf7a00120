package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

// SessionResolver resolves a session ID to its current state. Implemented by
// AuthService.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (domainauth.SessionState, error)
}

// AuthStateOptions groups dependencies for AuthState.
type AuthStateOptions struct {
	Auth   SessionResolver
	Events ports.SessionEvents
	Nav    *NavigationService
	Logger *slog.Logger
}

// AuthState keeps a read-optimized snapshot of session states, kept in sync
// by the session event stream. Every request goes through the snapshot; only
// misses hit the store, so guarding a page stays cheap while a logout in one
// tab is observed by all of them.
type AuthState struct {
	auth   SessionResolver
	events ports.SessionEvents
	nav    *NavigationService
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]domainauth.SessionState
}

// NewAuthState constructs an AuthState.
func NewAuthState(opts AuthStateOptions) *AuthState {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthState{
		auth:   opts.Auth,
		events: opts.Events,
		nav:    opts.Nav,
		logger: logger,
		cache:  make(map[string]domainauth.SessionState),
	}
}

// Resolve returns the session state, serving from the snapshot when fresh.
// Only valid states are cached; none/invalid resolutions are cheap enough to
// recompute and must never be sticky.
func (a *AuthState) Resolve(ctx context.Context, sessionID string) (domainauth.SessionState, error) {
	if sessionID == "" {
		return domainauth.SessionState{Kind: domainauth.StateNone}, nil
	}

	a.mu.RLock()
	state, ok := a.cache[sessionID]
	a.mu.RUnlock()
	if ok && time.Now().Before(state.Session.ExpiresAt) {
		return state, nil
	}

	state, err := a.auth.GetSession(ctx, sessionID)
	if err != nil {
		return domainauth.SessionState{}, err
	}

	if state.Kind == domainauth.StateValid {
		a.mu.Lock()
		a.cache[sessionID] = state
		a.mu.Unlock()
	} else {
		a.evict(sessionID)
	}

	return state, nil
}

// Run consumes the session event stream until the context ends, evicting
// snapshot entries as sessions mutate. Ended sessions also drop their
// navigation history.
func (a *AuthState) Run(ctx context.Context) error {
	if a.events == nil {
		<-ctx.Done()
		return ctx.Err()
	}

	ch, cancel, err := a.events.Subscribe(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			a.apply(ev)
		}
	}
}

func (a *AuthState) apply(ev ports.SessionEvent) {
	a.logger.Debug("session event", "kind", ev.Kind, "session_id", ev.SessionID)

	// Even a login evicts: the next Resolve re-reads the store, so a stale
	// snapshot can never mask a session mutation.
	a.evict(ev.SessionID)

	if ev.Kind == ports.EventLogout || ev.Kind == ports.EventInvalidated {
		if a.nav != nil {
			a.nav.Drop(ev.SessionID)
		}
	}
}

func (a *AuthState) evict(sessionID string) {
	a.mu.Lock()
	delete(a.cache, sessionID)
	a.mu.Unlock()
}
