package httpx

import (
	"context"
	"sync"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/apiclient"
)

// Reaction collects the interceptor's side effects for one request: a toast
// notification and a forced navigation target. The first forced route wins;
// several failing backend calls in one request still produce exactly one
// navigation.
type Reaction struct {
	mu           sync.Mutex
	toastLevel   apiclient.NotifyLevel
	toastMessage string
	forcedRoute  string
}

// SetToast records a notification. Later toasts overwrite earlier ones so
// the user sees the most recent failure.
func (rx *Reaction) SetToast(level apiclient.NotifyLevel, message string) {
	rx.mu.Lock()
	defer rx.mu.Unlock()
	rx.toastLevel = level
	rx.toastMessage = message
}

// SetForcedRoute records a forced navigation target. First wins.
func (rx *Reaction) SetForcedRoute(route string) {
	rx.mu.Lock()
	defer rx.mu.Unlock()
	if rx.forcedRoute == "" {
		rx.forcedRoute = route
	}
}

// Toast returns the recorded notification, if any.
func (rx *Reaction) Toast() (apiclient.NotifyLevel, string, bool) {
	rx.mu.Lock()
	defer rx.mu.Unlock()
	return rx.toastLevel, rx.toastMessage, rx.toastMessage != ""
}

// ForcedRoute returns the recorded navigation target, if any.
func (rx *Reaction) ForcedRoute() (string, bool) {
	rx.mu.Lock()
	defer rx.mu.Unlock()
	return rx.forcedRoute, rx.forcedRoute != ""
}

type reactionContextKey struct{}

// WithReaction installs a fresh Reaction into the context.
func WithReaction(ctx context.Context) (context.Context, *Reaction) {
	rx := &Reaction{}
	return context.WithValue(ctx, reactionContextKey{}, rx), rx
}

// ReactionFrom returns the request's Reaction, or nil.
func ReactionFrom(ctx context.Context) *Reaction {
	rx, _ := ctx.Value(reactionContextKey{}).(*Reaction)
	return rx
}

// Reactor bridges the backend interceptor's side-effect ports to the
// per-request Reaction carried in the context. One Reactor instance serves
// the whole process; state lives in the context.
type Reactor struct{}

var (
	_ apiclient.Notifier  = Reactor{}
	_ apiclient.Navigator = Reactor{}
)

func (Reactor) Notify(ctx context.Context, level apiclient.NotifyLevel, message string) {
	if rx := ReactionFrom(ctx); rx != nil {
		rx.SetToast(level, message)
	}
}

func (Reactor) ForceNavigate(ctx context.Context, route string) {
	if rx := ReactionFrom(ctx); rx != nil {
		rx.SetForcedRoute(route)
	}
}
