package apiclient

// Package apiclient is the intercepted HTTP client for the inventory
// backend. Every backend call flows through the Interceptor transport, which
// applies the cross-cutting status handling (notification, forced
// navigation, session invalidation) before the caller observes the failure.

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

// NotifyLevel classifies a user-facing notification.
type NotifyLevel string

const (
	NotifyError   NotifyLevel = "error"
	NotifyWarning NotifyLevel = "warning"
)

// Notifier surfaces a notification to the user of the request carried by ctx.
type Notifier interface {
	Notify(ctx context.Context, level NotifyLevel, message string)
}

// Navigator forces the client carried by ctx to a route, independent of
// which screen issued the request.
type Navigator interface {
	ForceNavigate(ctx context.Context, route string)
}

// SessionInvalidator clears a session after the backend rejected its token.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, sessionID string) error
}

// Routes are the forced-navigation targets.
type Routes struct {
	Login         string
	NotAuthorized string
	NotFound      string
}

// Fallback notification messages, used when the backend supplies none.
const (
	msgSessionExpired = "Sessão expirada. Entre novamente."
	msgNotAuthorized  = "Você não possui autorização para acessar este recurso."
	msgServerError    = "Erro no servidor. Tente novamente mais tarde."
	msgUnexpected     = "Erro inesperado. Tente novamente."
)

// InterceptorOptions groups dependencies for the Interceptor transport.
type InterceptorOptions struct {
	// Base is the wrapped transport. Defaults to http.DefaultTransport.
	Base      http.RoundTripper
	Notifier  Notifier
	Navigator Navigator
	// Sessions, when set, is invalidated on 401 so a rejected token can
	// never be replayed.
	Sessions SessionInvalidator
	Routes   Routes
	Logger   *slog.Logger
}

// Interceptor is an http.RoundTripper applying the global error handling.
// It also injects the bearer token when the request context carries a
// session and the request has no Authorization header of its own.
type Interceptor struct {
	base      http.RoundTripper
	notifier  Notifier
	navigator Navigator
	sessions  SessionInvalidator
	routes    Routes
	logger    *slog.Logger
}

// NewInterceptor builds the transport.
func NewInterceptor(opts InterceptorOptions) *Interceptor {
	base := opts.Base
	if base == nil {
		base = http.DefaultTransport
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Interceptor{
		base:      base,
		notifier:  opts.Notifier,
		navigator: opts.Navigator,
		sessions:  opts.Sessions,
		routes:    opts.Routes,
		logger:    logger,
	}
}

// Install wraps the client's transport with an Interceptor. Installing on a
// client that already has one is a no-op returning the existing instance, so
// double installation can never stack two interceptors.
func Install(c *http.Client, opts InterceptorOptions) *Interceptor {
	if existing, ok := c.Transport.(*Interceptor); ok {
		return existing
	}
	if opts.Base == nil {
		opts.Base = c.Transport
	}
	i := NewInterceptor(opts)
	c.Transport = i
	return i
}

// RoundTrip implements http.RoundTripper. Transport-level errors pass
// through untouched; failure statuses trigger their side effects before the
// response reaches the caller.
func (i *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if sess, ok := domainauth.FromContext(ctx); ok && req.Header.Get("Authorization") == "" {
		// Clone before mutating; RoundTrippers must not modify the
		// caller's request.
		req = req.Clone(ctx)
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
	}

	resp, err := i.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 400 {
		return resp, nil
	}

	message := serverMessage(resp)
	i.dispatch(ctx, resp.StatusCode, message)

	return resp, nil
}

func (i *Interceptor) dispatch(ctx context.Context, status int, serverMsg string) {
	switch status {
	case http.StatusUnauthorized:
		i.notify(ctx, NotifyError, fallback(serverMsg, msgSessionExpired))
		i.invalidate(ctx)
		i.navigate(ctx, i.routes.Login)
	case http.StatusForbidden:
		i.notify(ctx, NotifyWarning, fallback(serverMsg, msgNotAuthorized))
		i.navigate(ctx, i.routes.NotAuthorized)
	case http.StatusNotFound:
		// No notification on 404.
		i.navigate(ctx, i.routes.NotFound)
	case http.StatusInternalServerError:
		i.notify(ctx, NotifyError, fallback(serverMsg, msgServerError))
	default:
		i.notify(ctx, NotifyError, fallback(serverMsg, msgUnexpected))
	}
}

func (i *Interceptor) notify(ctx context.Context, level NotifyLevel, message string) {
	if i.notifier != nil {
		i.notifier.Notify(ctx, level, message)
	}
}

func (i *Interceptor) navigate(ctx context.Context, route string) {
	if i.navigator == nil || route == "" {
		return
	}
	i.navigator.ForceNavigate(ctx, route)
}

func (i *Interceptor) invalidate(ctx context.Context) {
	if i.sessions == nil {
		return
	}
	sess, ok := domainauth.FromContext(ctx)
	if !ok {
		return
	}
	if err := i.sessions.Invalidate(ctx, sess.ID); err != nil {
		i.logger.Warn("invalidate session after 401", "session_id", sess.ID, "error", err)
	}
}

// errorBody is the backend's error envelope. Field precedence mirrors the
// backend: message, then error_description, then error.
type errorBody struct {
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	ErrorField       string `json:"error"`
}

// serverMessage extracts the server-supplied error message, restoring the
// body so the caller can still read it.
func serverMessage(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var body errorBody
	if json.Unmarshal(data, &body) != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	if body.ErrorDescription != "" {
		return body.ErrorDescription
	}
	return body.ErrorField
}

func fallback(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}
