package backendapi

// Package backendapi adapts the inventory backend's REST endpoints to the
// auth ports. All calls go through the intercepted client.

import (
	"context"

	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/apiclient"
	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

var _ ports.ProfileFetcher = (*ProfileClient)(nil)

// loggedUserResponse is the backend's /users/logged payload.
type loggedUserResponse struct {
	Name            string `json:"nome"`
	Email           string `json:"email"`
	FirstAccess     bool   `json:"primeiroAcesso"`
	PartnershipTerm string `json:"termoParceria"`
}

// ProfileClient implements ports.ProfileFetcher against the backend.
type ProfileClient struct {
	client *apiclient.Client
}

// NewProfileClient wraps the intercepted backend client.
func NewProfileClient(client *apiclient.Client) *ProfileClient {
	return &ProfileClient{client: client}
}

// FetchUserData reads the logged user's profile with an explicit token. Used
// during login, before a session exists to carry in the context.
func (p *ProfileClient) FetchUserData(ctx context.Context, accessToken string) (domainauth.UserData, error) {
	ctx = withToken(ctx, accessToken)

	var resp loggedUserResponse
	if err := p.client.Get(ctx, "/users/logged", &resp); err != nil {
		return domainauth.UserData{}, err
	}

	return domainauth.UserData{
		FirstAccess:     resp.FirstAccess,
		Name:            resp.Name,
		Email:           resp.Email,
		PartnershipTerm: resp.PartnershipTerm,
	}, nil
}

// ChangePassword performs the first-access password change.
func (p *ProfileClient) ChangePassword(ctx context.Context, accessToken, newPassword string) error {
	ctx = withToken(ctx, accessToken)
	body := map[string]string{"novaSenha": newPassword}
	return p.client.Put(ctx, "/users/password", body, nil)
}

// RequestPasswordRecovery asks the backend to start a recovery flow. No
// token: the caller is logged out by definition.
func (p *ProfileClient) RequestPasswordRecovery(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return p.client.Post(ctx, "/users/recover-password", body, nil)
}

// withToken threads a bare token through the session context carrier so the
// interceptor injects it like any other call.
func withToken(ctx context.Context, accessToken string) context.Context {
	if accessToken == "" {
		return ctx
	}
	return domainauth.NewContext(ctx, domainauth.Session{AccessToken: accessToken})
}
