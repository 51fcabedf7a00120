package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	apperrors "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/errors"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/mocks"
	mockauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/mocks/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

type authFixture struct {
	tokens  *mocks.MockTokenProvider
	claims  *mocks.MockClaimsDecoder
	profile *mocks.MockProfileFetcher
	store   *mockauth.MemorySessionStore
	events  *mockauth.RecordingEvents
	svc     *AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		tokens:  mocks.NewMockTokenProvider(ctrl),
		claims:  mocks.NewMockClaimsDecoder(ctrl),
		profile: mocks.NewMockProfileFetcher(ctrl),
		store:   mockauth.NewMemorySessionStore(),
		events:  mockauth.NewRecordingEvents(),
	}
	f.svc = NewAuthService(AuthServiceOptions{
		Tokens:   f.tokens,
		Claims:   f.claims,
		Sessions: f.store,
		Profile:  f.profile,
		Events:   f.events,
	})
	return f
}

func adminClaims() domainauth.Claims {
	return domainauth.Claims{
		UserID: "user-1",
		Roles:  []domainauth.RoleDescriptor{domainauth.RoleAdmin},
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	payload := ports.TokenPayload{
		AccessToken: "backend-token",
		TokenType:   "bearer",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	f.tokens.EXPECT().Login(gomock.Any(), "user@example.com", "secret").Return(payload, nil)
	f.claims.EXPECT().Decode("backend-token").Return(adminClaims(), nil)
	f.profile.EXPECT().FetchUserData(gomock.Any(), "backend-token").
		Return(domainauth.UserData{Name: "User", Email: "user@example.com"}, nil)

	session, err := f.svc.Login(ctx, "user@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "backend-token", session.AccessToken)
	assert.Equal(t, adminClaims(), session.Claims)
	assert.Equal(t, 1, f.store.Len())

	events := f.events.Published()
	require.Len(t, events, 1)
	assert.Equal(t, ports.EventLogin, events[0].Kind)
	assert.Equal(t, session.ID, events[0].SessionID)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), "", "secret")
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.svc.Login(context.Background(), "user", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	f := newAuthFixture(t)

	f.tokens.EXPECT().Login(gomock.Any(), "user", "wrong").
		Return(ports.TokenPayload{}, errors.New("invalid credentials"))

	_, err := f.svc.Login(context.Background(), "user", "wrong")
	assert.True(t, apperrors.IsUnauthenticated(err))
	assert.Equal(t, 0, f.store.Len())
	assert.Empty(t, f.events.Published())
}

func TestAuthService_Login_NoRoles(t *testing.T) {
	f := newAuthFixture(t)

	payload := ports.TokenPayload{AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.EXPECT().Login(gomock.Any(), "user", "secret").Return(payload, nil)
	f.claims.EXPECT().Decode("t").Return(domainauth.Claims{UserID: "user-1"}, nil)

	_, err := f.svc.Login(context.Background(), "user", "secret")
	assert.True(t, apperrors.IsForbidden(err))
	assert.Equal(t, 0, f.store.Len())
}

func TestAuthService_Login_ProfileFetchFails(t *testing.T) {
	f := newAuthFixture(t)

	payload := ports.TokenPayload{AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.EXPECT().Login(gomock.Any(), "user", "secret").Return(payload, nil)
	f.claims.EXPECT().Decode("t").Return(adminClaims(), nil)
	f.profile.EXPECT().FetchUserData(gomock.Any(), "t").
		Return(domainauth.UserData{}, errors.New("backend down"))

	_, err := f.svc.Login(context.Background(), "user", "secret")
	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, 0, f.store.Len())
}

func TestAuthService_GetSession(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	stored := domainauth.Session{
		ID:          "sess-1",
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Save(ctx, stored))

	f.claims.EXPECT().Decode("tok").Return(adminClaims(), nil)

	state, err := f.svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.StateValid, state.Kind)
	assert.True(t, state.Authenticated())
	assert.Equal(t, adminClaims(), state.Session.Claims)
}

func TestAuthService_GetSession_None(t *testing.T) {
	f := newAuthFixture(t)

	state, err := f.svc.GetSession(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domainauth.StateNone, state.Kind)

	state, err = f.svc.GetSession(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, domainauth.StateNone, state.Kind)
	assert.False(t, state.Authenticated())
}

func TestAuthService_GetSession_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	stored := domainauth.Session{
		ID:          "sess-1",
		AccessToken: "corrupt",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Save(ctx, stored))

	f.claims.EXPECT().Decode("corrupt").Return(domainauth.Claims{}, errors.New("parse token"))

	state, err := f.svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domainauth.StateInvalid, state.Kind)
	assert.False(t, state.Authenticated())
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Save(ctx, domainauth.Session{ID: "sess-1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, f.svc.Logout(ctx, "sess-1"))
	assert.Equal(t, 0, f.store.Len())

	events := f.events.Published()
	require.Len(t, events, 1)
	assert.Equal(t, ports.EventLogout, events[0].Kind)

	// Empty ID is a no-op.
	require.NoError(t, f.svc.Logout(ctx, ""))
	assert.Len(t, f.events.Published(), 1)
}

func TestAuthService_Invalidate(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Save(ctx, domainauth.Session{ID: "sess-1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, f.svc.Invalidate(ctx, "sess-1"))
	assert.Equal(t, 0, f.store.Len())

	events := f.events.Published()
	require.Len(t, events, 1)
	assert.Equal(t, ports.EventInvalidated, events[0].Kind)
}

func TestAuthService_CompleteFirstAccess(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	stored := domainauth.Session{
		ID:          "sess-1",
		AccessToken: "tok",
		UserData:    domainauth.UserData{FirstAccess: true, Name: "User"},
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Save(ctx, stored))

	f.claims.EXPECT().Decode("tok").Return(adminClaims(), nil)
	f.profile.EXPECT().ChangePassword(gomock.Any(), "tok", "new-password").Return(nil)
	// The backend may still report the stale flag right after the change;
	// the service clears it regardless.
	f.profile.EXPECT().FetchUserData(gomock.Any(), "tok").
		Return(domainauth.UserData{FirstAccess: true, Name: "User"}, nil)

	session, err := f.svc.CompleteFirstAccess(ctx, "sess-1", "new-password")
	require.NoError(t, err)
	assert.False(t, session.FirstAccessPending())

	events := f.events.Published()
	require.Len(t, events, 1)
	assert.Equal(t, ports.EventRefreshed, events[0].Kind)

	f.claims.EXPECT().Decode("tok").Return(adminClaims(), nil)
	state, err := f.svc.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, state.Session.FirstAccessPending())
}

func TestAuthService_CompleteFirstAccess_NotPending(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	stored := domainauth.Session{
		ID:          "sess-1",
		AccessToken: "tok",
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	require.NoError(t, f.store.Save(ctx, stored))
	f.claims.EXPECT().Decode("tok").Return(adminClaims(), nil)

	_, err := f.svc.CompleteFirstAccess(ctx, "sess-1", "new-password")
	assert.True(t, apperrors.IsValidation(err))
}

func TestAuthService_CompleteFirstAccess_NoSession(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.CompleteFirstAccess(context.Background(), "missing", "new-password")
	assert.True(t, apperrors.IsUnauthenticated(err))
}

func TestAuthService_RequestPasswordRecovery(t *testing.T) {
	f := newAuthFixture(t)

	f.profile.EXPECT().RequestPasswordRecovery(gomock.Any(), "user@example.com").Return(nil)
	require.NoError(t, f.svc.RequestPasswordRecovery(context.Background(), "user@example.com"))

	err := f.svc.RequestPasswordRecovery(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}
