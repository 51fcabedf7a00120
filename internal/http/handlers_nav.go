package httpx

import (
	"net/http"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/service"
)

// NavHandlers exposes the back-button state machine to the client shell.
// The native wrapper forwards hardware back events here; the gateway answers
// with the navigation outcome.
type NavHandlers struct {
	Nav      *service.NavigationService
	BasePath string
}

// Back applies a hardware back event.
// POST /nav/back.
func (h *NavHandlers) Back(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: http.ErrNoCookie})
		return
	}

	res := h.Nav.Back(session.ID)
	WriteJSON(w, http.StatusOK, map[string]any{
		"route":       res.Route,
		"exit_prompt": res.ExitPrompt,
	})
}

// ConfirmExit acknowledges the exit confirmation.
// POST /nav/exit/confirm.
func (h *NavHandlers) ConfirmExit(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: http.ErrNoCookie})
		return
	}

	exited, err := h.Nav.ConfirmExit(session.ID)
	if err != nil {
		RenderError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"exited": exited})
}

// CancelExit dismisses the exit confirmation.
// POST /nav/exit/cancel.
func (h *NavHandlers) CancelExit(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: http.ErrNoCookie})
		return
	}

	h.Nav.CancelExit(session.ID)
	WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// State reports the session's navigation state.
// GET /nav/state.
func (h *NavHandlers) State(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: http.ErrNoCookie})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"current": h.Nav.Current(session.ID),
		"depth":   h.Nav.Depth(session.ID),
		"state":   int(h.Nav.State(session.ID)),
	})
}
