package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         *service.AuthService
	State        *service.AuthState
	Nav          *service.NavigationService
	BasePath     string
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router. The whole route tree
// lives under BasePath; "/" redirects there.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()
	base := services.BasePath

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		BasePath:     base,
		Logger:       services.Logger,
	}
	pageHandlers := &PageHandlers{BasePath: base}
	navHandlers := &NavHandlers{Nav: services.Nav, BasePath: base}

	guard := NewGuard(GuardConfig{
		State:    services.State,
		Nav:      services.Nav,
		BasePath: base,
		Logger:   services.Logger,
	})

	registerAuthRoutes(mux, authHandlers, base)
	registerPublicRoutes(mux, pageHandlers, base)
	registerGuardedRoutes(mux, pageHandlers, guard, base)
	registerNavRoutes(mux, navHandlers, guard, base)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// Everything else: "/" goes to the app, unknown paths to not-found.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, base, http.StatusSeeOther)
			return
		}
		pageHandlers.NotFound(w, r)
	})

	return Reactions()(mux)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, base string) {
	mux.HandleFunc("POST "+base+"/auth/login", h.Login)
	mux.HandleFunc("POST "+base+"/auth/logout", h.Logout)
	mux.HandleFunc("GET "+base+"/auth/status", h.Status)
	mux.HandleFunc("POST "+base+"/auth/first-access", h.FirstAccess)
	mux.HandleFunc("POST "+base+"/auth/recover-password", h.RecoverPassword)
}

// registerPublicRoutes wires the pages reachable without a session.
func registerPublicRoutes(mux *http.ServeMux, h *PageHandlers, base string) {
	mux.HandleFunc("GET "+base+RouteLogin, h.Login)
	mux.HandleFunc("GET "+base+RouteRecoverPassword, h.RecoverPassword)
	mux.HandleFunc("GET "+base+RouteNotFound, h.NotFound)
	mux.HandleFunc("GET "+base+RouteNotAuthorized, h.NotAuthorized)
}

// registerGuardedRoutes wires the role-gated route tree.
func registerGuardedRoutes(mux *http.ServeMux, h *PageHandlers, guard *Guard, base string) {
	anyRole := guard.Protect(
		domainauth.RoleAdmin,
		domainauth.RoleAdminPartnership,
		domainauth.RoleBasicUser,
	)
	userRoles := guard.Protect(domainauth.RoleAdmin, domainauth.RoleBasicUser)
	adminRoles := guard.Protect(domainauth.RoleAdmin, domainauth.RoleAdminPartnership)
	// First-access is session-gated but not role-gated; the guard's
	// first-access steps handle both directions of the redirect.
	sessionOnly := guard.Protect()

	mux.Handle("GET "+base, anyRole(http.HandlerFunc(h.Home)))
	mux.Handle("GET "+base+"/{$}", anyRole(http.HandlerFunc(h.Home)))

	mux.Handle("GET "+base+RouteUser, userRoles(http.HandlerFunc(h.User)))

	mux.Handle("GET "+base+RouteAsset, anyRole(http.HandlerFunc(h.AssetList)))
	mux.Handle("GET "+base+RouteAsset+"/{id}", anyRole(http.HandlerFunc(h.AssetView)))

	mux.Handle("GET "+base+RouteAdmin, adminRoles(http.HandlerFunc(h.Admin)))
	mux.Handle("GET "+base+RouteAdmin+"/{page...}", adminRoles(http.HandlerFunc(h.Admin)))

	mux.Handle("GET "+base+RouteFirstAccess, sessionOnly(http.HandlerFunc(h.FirstAccess)))
}

func registerNavRoutes(mux *http.ServeMux, h *NavHandlers, guard *Guard, base string) {
	// API middleware, not Protect: a back event must neither redirect nor
	// count as a page visit.
	api := guard.API()
	mux.Handle("POST "+base+"/nav/back", api(http.HandlerFunc(h.Back)))
	mux.Handle("POST "+base+"/nav/exit/confirm", api(http.HandlerFunc(h.ConfirmExit)))
	mux.Handle("POST "+base+"/nav/exit/cancel", api(http.HandlerFunc(h.CancelExit)))
	mux.Handle("GET "+base+"/nav/state", api(http.HandlerFunc(h.State)))
}
