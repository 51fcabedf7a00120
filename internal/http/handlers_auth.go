package httpx

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/service"
)

// AuthHandlers exposes the session lifecycle endpoints.
type AuthHandlers struct {
	Svc          *service.AuthService
	CookieDomain string
	BasePath     string
	Logger       *slog.Logger
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates against the backend and opens a session.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	session, err := h.Svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		RenderError(w, r, err)
		return
	}

	h.setSessionCookie(w, r, session)

	// The captured redirect_uri is recorded but the post-login landing is
	// always role-driven: first-access when pending, home otherwise.
	redirectTo := h.BasePath
	if session.FirstAccessPending() {
		redirectTo = h.BasePath + RouteFirstAccess
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"redirect_to":   redirectTo,
	})
}

// Logout ends the session.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if logoutErr := h.Svc.Logout(r.Context(), cookie.Value); logoutErr != nil {
			h.logger().Warn("logout", "error", logoutErr)
		}
	}
	h.clearCookie(w, r, SessionCookieName)

	loginURL := h.BasePath + RouteLogin
	if wantsJSON(r) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"status":      "success",
			"redirect_to": loginURL,
		})
		return
	}
	http.Redirect(w, r, loginURL, http.StatusSeeOther)
}

// Status returns the current authentication snapshot.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	state, err := h.Svc.GetSession(r.Context(), sessionCookie.Value)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	if !state.Authenticated() {
		// Absent or invalid alike; drop the dead cookie either way.
		h.clearCookie(w, r, SessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	session := state.Session
	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"id":           session.Claims.UserID,
			"name":         session.UserData.Name,
			"email":        session.UserData.Email,
			"roles":        session.Claims.Roles,
			"first_access": session.UserData.FirstAccess,
		},
		"expires_at": session.ExpiresAt,
	})
}

type firstAccessRequest struct {
	Password string `json:"password"`
}

// FirstAccess completes the forced password change.
// POST /auth/first-access.
func (h *AuthHandlers) FirstAccess(w http.ResponseWriter, r *http.Request) {
	var req firstAccessRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	var sessionID string
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		sessionID = cookie.Value
	}

	if _, err := h.Svc.CompleteFirstAccess(r.Context(), sessionID, req.Password); err != nil {
		RenderError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"redirect_to": h.BasePath,
	})
}

type recoverPasswordRequest struct {
	Email string `json:"email"`
}

// RecoverPassword forwards a recovery request to the backend.
// POST /auth/recover-password.
func (h *AuthHandlers) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	var req recoverPasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.RequestPasswordRecovery(r.Context(), req.Email); err != nil {
		RenderError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// setSessionCookie writes the session cookie based on the session's expiry.
func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, s domainauth.Session) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    s.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(time.Until(s.ExpiresAt).Seconds()),
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
// It mirrors the attributes used when setting cookies to maximize
// compatibility across browsers during deletion.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	isSecure := r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecure,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}
