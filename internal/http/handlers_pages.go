package httpx

import (
	"net/http"
)

// PageHandlers renders the route tree's pages.
type PageHandlers struct {
	BasePath string
}

// Home renders the landing page. A session whose roles contain only
// BASIC_USER is redirected once to the simplified user view; the redirect
// target admits the role, so no loop is possible.
func (h *PageHandlers) Home(w http.ResponseWriter, r *http.Request) {
	session, ok := GetSessionFromContext(r.Context())
	if !ok {
		// The guard always runs first; a missing session here is a wiring bug.
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "no_session", Err: http.ErrNoCookie})
		return
	}

	if session.Claims.IsBasicOnly() {
		http.Redirect(w, r, h.BasePath+RouteUser, http.StatusSeeOther)
		return
	}

	renderPage(w, http.StatusOK, pageData{
		Title: "Início",
		Body:  "Visão geral do inventário.",
		User:  session.UserData.Name,
	})
}

// User renders the simplified user view.
func (h *PageHandlers) User(w http.ResponseWriter, r *http.Request) {
	session, _ := GetSessionFromContext(r.Context())
	renderPage(w, http.StatusOK, pageData{
		Title: "Meu painel",
		Body:  "Materiais e movimentações do usuário.",
		User:  session.UserData.Name,
	})
}

// AssetList renders the asset listing.
func (h *PageHandlers) AssetList(w http.ResponseWriter, r *http.Request) {
	session, _ := GetSessionFromContext(r.Context())
	renderPage(w, http.StatusOK, pageData{
		Title: "Materiais",
		Body:  "Listagem de materiais do inventário.",
		User:  session.UserData.Name,
	})
}

// AssetView renders one asset.
func (h *PageHandlers) AssetView(w http.ResponseWriter, r *http.Request) {
	session, _ := GetSessionFromContext(r.Context())
	renderPage(w, http.StatusOK, pageData{
		Title: "Material " + r.PathValue("id"),
		Body:  "Detalhes do material.",
		User:  session.UserData.Name,
	})
}

// Admin renders the administrative area.
func (h *PageHandlers) Admin(w http.ResponseWriter, r *http.Request) {
	session, _ := GetSessionFromContext(r.Context())
	renderPage(w, http.StatusOK, pageData{
		Title: "Administração",
		Body:  "Gestão de usuários, termos de parceria e cadastros.",
		User:  session.UserData.Name,
	})
}

// Login renders the login page.
func (h *PageHandlers) Login(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, http.StatusOK, pageData{
		Title: "Entrar",
		Body:  "Informe usuário e senha.",
	})
}

// FirstAccess renders the forced password change page.
func (h *PageHandlers) FirstAccess(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, http.StatusOK, pageData{
		Title: "Primeiro acesso",
		Body:  "Defina uma nova senha para continuar.",
	})
}

// RecoverPassword renders the recovery request page.
func (h *PageHandlers) RecoverPassword(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, http.StatusOK, pageData{
		Title: "Recuperar senha",
		Body:  "Informe o email cadastrado.",
	})
}

// NotFound renders the not-found page.
func (h *PageHandlers) NotFound(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, http.StatusNotFound, pageData{
		Title: "Página não encontrada",
		Body:  "O recurso solicitado não existe.",
	})
}

// NotAuthorized renders the not-authorized page (the forced-navigation
// target on 403 from the backend).
func (h *PageHandlers) NotAuthorized(w http.ResponseWriter, _ *http.Request) {
	renderPage(w, http.StatusForbidden, pageData{
		Title: "Não autorizado",
		Body:  "Você não possui autorização para acessar este recurso.",
	})
}
