package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Reactions returns a middleware that installs the per-request side-effect
// collector read by the backend interceptor bridge.
func Reactions() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, _ := WithReaction(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionStateResolver resolves a session cookie value to a tagged state.
// Implemented by service.AuthState.
type SessionStateResolver interface {
	Resolve(ctx context.Context, sessionID string) (domainauth.SessionState, error)
}

// VisitRecorder records forward navigations. Implemented by
// service.NavigationService.
type VisitRecorder interface {
	Visit(sessionID, route string)
}

// GuardConfig groups dependencies for the route guard.
type GuardConfig struct {
	State    SessionStateResolver
	Nav      VisitRecorder // optional
	BasePath string
	Logger   *slog.Logger
}

// Guard protects routes. Per request it evaluates, first match wins:
//
//  1. session not valid -> 303 to login carrying redirect_uri
//  2. first-access pending and path is not first-access -> 303 to first-access
//  3. first-access done and path is first-access -> 303 to home
//  4. role check fails -> 403 denial in place, no redirect
//  5. serve the protected content with the session in context
//
// Exactly one outcome occurs per evaluation.
type Guard struct {
	state    SessionStateResolver
	nav      VisitRecorder
	basePath string
	logger   *slog.Logger
}

// NewGuard constructs a Guard.
func NewGuard(cfg GuardConfig) *Guard {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{
		state:    cfg.State,
		nav:      cfg.Nav,
		basePath: cfg.BasePath,
		logger:   logger,
	}
}

// Protect wraps a handler with the guard machine. An empty required set
// means any authenticated user may pass; a non-empty set requires at least
// one matching role.
func (g *Guard) Protect(required ...domainauth.RoleDescriptor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := g.resolve(w, r)
			if state == nil {
				return
			}

			// Step 1: not authenticated (absent and invalid alike).
			if !state.Authenticated() {
				g.redirectToLogin(w, r)
				return
			}

			session := state.Session
			firstAccessPath := g.basePath + RouteFirstAccess

			// Step 2: forced password change pending.
			if session.FirstAccessPending() && r.URL.Path != firstAccessPath {
				http.Redirect(w, r, firstAccessPath, http.StatusSeeOther)
				return
			}

			// Step 3: forced password change already done.
			if !session.FirstAccessPending() && r.URL.Path == firstAccessPath {
				http.Redirect(w, r, g.homePath(), http.StatusSeeOther)
				return
			}

			// Step 4: insufficient role. Denial renders in place.
			if len(required) > 0 && !session.Claims.HasAnyRole(required...) {
				renderAccessDenied(w, r)
				return
			}

			// Step 5: render.
			if g.nav != nil {
				g.nav.Visit(session.ID, r.URL.Path)
			}
			ctx := SetSessionInContext(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// API authenticates JSON endpoints. Unlike Protect it never redirects,
// never applies first-access handling, and never records history; an
// unauthenticated call gets a 401 body.
func (g *Guard) API() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := g.resolve(w, r)
			if state == nil {
				return
			}
			if !state.Authenticated() {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errAuthRequired,
				})
				return
			}
			ctx := SetSessionInContext(r.Context(), state.Session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

var errAuthRequired = errors.New("authentication required")

// resolve reads the session cookie and resolves its state. On resolver
// failure the response is written and nil is returned.
func (g *Guard) resolve(w http.ResponseWriter, r *http.Request) *domainauth.SessionState {
	var sessionID string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	state, err := g.state.Resolve(r.Context(), sessionID)
	if err != nil {
		g.logger.Error("resolve session", "error", err)
		RenderError(w, r, err)
		return nil
	}
	return &state
}

// redirectToLogin sends the browser to the login page with the originally
// requested location as redirect_uri.
func (g *Guard) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	redirectParam := url.QueryEscape(safeRedirectPath(r.URL.RequestURI()))
	loginURL := g.basePath + RouteLogin + "?redirect_uri=" + redirectParam
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

func (g *Guard) homePath() string {
	if g.basePath == "" {
		return "/"
	}
	return g.basePath
}

// renderAccessDenied writes the in-place denial view.
func renderAccessDenied(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		WriteJSON(w, http.StatusForbidden, map[string]string{
			"error":   "insufficient_permissions",
			"message": "Você não possui autorização para acessar este recurso.",
		})
		return
	}
	renderPage(w, http.StatusForbidden, pageData{
		Title: "Acesso negado",
		Body:  "Você não possui autorização para acessar este recurso.",
	})
}

// wantsJSON reports whether the request prefers a JSON response.
func wantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}

// safeRedirectPath ensures the provided redirect is a same-origin relative path
// starting with "/" and not an absolute URL. Returns "/" when invalid.
func safeRedirectPath(candidate string) string {
	if candidate == "" {
		return "/"
	}
	u, err := url.Parse(candidate)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return candidate
}
