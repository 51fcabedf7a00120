package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	mockauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/mocks/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/platform"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/service"
)

const testBasePath = "/inventory-management"

type routerFixture struct {
	handler http.Handler
	store   *mockauth.MemorySessionStore
	decoder *mockauth.MockClaimsDecoder
	profile *mockauth.MockProfileFetcher
	events  *mockauth.RecordingEvents
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens := mockauth.NewMockTokenProvider()
	decoder := mockauth.NewMockClaimsDecoder()
	decoder.ClaimsByToken = map[string]domainauth.Claims{
		"tok-admin":   {UserID: "u-admin", Roles: []domainauth.RoleDescriptor{domainauth.RoleAdmin}},
		"tok-partner": {UserID: "u-partner", Roles: []domainauth.RoleDescriptor{domainauth.RoleAdminPartnership}},
		"tok-basic":   {UserID: "u-basic", Roles: []domainauth.RoleDescriptor{domainauth.RoleBasicUser}},
	}
	store := mockauth.NewMemorySessionStore()
	profile := mockauth.NewMockProfileFetcher()
	events := mockauth.NewRecordingEvents()

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Tokens:   tokens,
		Claims:   decoder,
		Sessions: store,
		Profile:  profile,
		Events:   events,
		Logger:   logger,
	})
	navSvc := service.NewNavigationService(platform.Web{}, logger)
	state := service.NewAuthState(service.AuthStateOptions{
		Auth:   authSvc,
		Events: events,
		Nav:    navSvc,
		Logger: logger,
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = state.Run(ctx) }()
	t.Cleanup(cancel)

	handler := NewRouter(RouterServices{
		Auth:     authSvc,
		State:    state,
		Nav:      navSvc,
		BasePath: testBasePath,
		Logger:   logger,
	})

	return &routerFixture{
		handler: handler,
		store:   store,
		decoder: decoder,
		profile: profile,
		events:  events,
	}
}

func (f *routerFixture) seedSession(t *testing.T, id, token string, firstAccess bool) {
	t.Helper()
	err := f.store.Save(context.Background(), domainauth.Session{
		ID:          id,
		AccessToken: token,
		TokenType:   "bearer",
		UserData:    domainauth.UserData{FirstAccess: firstAccess, Name: "User"},
		ExpiresAt:   time.Now().Add(time.Hour),
	})
	require.NoError(t, err)
}

func (f *routerFixture) request(method, target, sessionID string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RoleMatrix(t *testing.T) {
	f := newRouterFixture(t)
	f.seedSession(t, "sess-admin", "tok-admin", false)
	f.seedSession(t, "sess-partner", "tok-partner", false)
	f.seedSession(t, "sess-basic", "tok-basic", false)

	tests := []struct {
		name       string
		path       string
		session    string
		wantStatus int
		wantLoc    string
	}{
		{"home admin", testBasePath, "sess-admin", http.StatusOK, ""},
		{"home partner", testBasePath, "sess-partner", http.StatusOK, ""},
		{"home basic redirects to user view", testBasePath, "sess-basic", http.StatusSeeOther, testBasePath + RouteUser},
		{"user basic", testBasePath + RouteUser, "sess-basic", http.StatusOK, ""},
		{"user admin", testBasePath + RouteUser, "sess-admin", http.StatusOK, ""},
		{"user partner denied", testBasePath + RouteUser, "sess-partner", http.StatusForbidden, ""},
		{"asset basic", testBasePath + RouteAsset, "sess-basic", http.StatusOK, ""},
		{"asset detail basic", testBasePath + RouteAsset + "/42", "sess-basic", http.StatusOK, ""},
		{"admin area partner", testBasePath + RouteAdmin, "sess-partner", http.StatusOK, ""},
		{"admin subpage admin", testBasePath + RouteAdmin + "/users", "sess-admin", http.StatusOK, ""},
		{"admin area basic denied", testBasePath + RouteAdmin, "sess-basic", http.StatusForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.request(http.MethodGet, tt.path, tt.session, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
			}
		})
	}
}

func TestRouter_GuardedPathsRequireSession(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{
		testBasePath,
		testBasePath + RouteUser,
		testBasePath + RouteAsset,
		testBasePath + RouteAsset + "/42",
		testBasePath + RouteAdmin,
		testBasePath + RouteFirstAccess,
	} {
		rec := f.request(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusSeeOther, rec.Code, path)
		assert.Contains(t, rec.Header().Get("Location"), RouteLogin+"?redirect_uri=", path)
	}
}

func TestRouter_PublicPages(t *testing.T) {
	f := newRouterFixture(t)

	tests := []struct {
		path       string
		wantStatus int
	}{
		{testBasePath + RouteLogin, http.StatusOK},
		{testBasePath + RouteRecoverPassword, http.StatusOK},
		{testBasePath + RouteNotFound, http.StatusNotFound},
		{testBasePath + RouteNotAuthorized, http.StatusForbidden},
	}
	for _, tt := range tests {
		rec := f.request(http.MethodGet, tt.path, "", "")
		assert.Equal(t, tt.wantStatus, rec.Code, tt.path)
	}
}

func TestRouter_RootRedirectsToApp(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.request(http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, testBasePath, rec.Header().Get("Location"))

	rec = f.request(http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.request(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRouter_LoginLogoutFlow(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.request(http.MethodPost, testBasePath+"/auth/login", "",
		`{"username":"user","password":"pass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)

	var sessionID string
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			sessionID = c.Value
			assert.True(t, c.HttpOnly)
			assert.Positive(t, c.MaxAge)
		}
	}
	require.NotEmpty(t, sessionID, "login must set the session cookie")
	assert.Equal(t, 1, f.store.Len())

	rec = f.request(http.MethodGet, testBasePath+"/auth/status", sessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
	assert.Contains(t, rec.Body.String(), "mock-user-1")

	req := httptest.NewRequest(http.MethodPost, testBasePath+"/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	req.Header.Set("Accept", "application/json")
	logoutRec := httptest.NewRecorder()
	f.handler.ServeHTTP(logoutRec, req)
	require.Equal(t, http.StatusOK, logoutRec.Code)
	assert.Contains(t, logoutRec.Body.String(), RouteLogin)
	assert.Equal(t, 0, f.store.Len())

	rec = f.request(http.MethodGet, testBasePath+"/auth/status", sessionID, "")
	assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestRouter_LoginRejectsBadCredentials(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.request(http.MethodPost, testBasePath+"/auth/login", "",
		`{"username":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, f.store.Len())
}

func TestRouter_FirstAccessFlow(t *testing.T) {
	f := newRouterFixture(t)
	f.seedSession(t, "sess-new", "tok-basic", true)

	// Pending sessions are pushed onto the password-change page from anywhere.
	rec := f.request(http.MethodGet, testBasePath, "sess-new", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, testBasePath+RouteFirstAccess, rec.Header().Get("Location"))

	rec = f.request(http.MethodGet, testBasePath+RouteFirstAccess, "sess-new", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.request(http.MethodPost, testBasePath+"/auth/first-access", "sess-new",
		`{"password":"brand-new"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []string{"brand-new"}, f.profile.PasswordChanges)

	// The refresh event evicts the cached pending snapshot; once that lands
	// the password-change page bounces back home.
	assert.Eventually(t, func() bool {
		rec := f.request(http.MethodGet, testBasePath+RouteFirstAccess, "sess-new", "")
		return rec.Code == http.StatusSeeOther &&
			rec.Header().Get("Location") == testBasePath
	}, time.Second, 10*time.Millisecond)
}

func TestRouter_NavEndpoints(t *testing.T) {
	f := newRouterFixture(t)
	f.seedSession(t, "sess-admin", "tok-admin", false)

	// Build a two-deep history by visiting guarded pages.
	require.Equal(t, http.StatusOK, f.request(http.MethodGet, testBasePath, "sess-admin", "").Code)
	require.Equal(t, http.StatusOK, f.request(http.MethodGet, testBasePath+RouteAsset, "sess-admin", "").Code)

	rec := f.request(http.MethodPost, testBasePath+"/nav/back", "sess-admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"route":"`+testBasePath+`"`)
	assert.Contains(t, rec.Body.String(), `"exit_prompt":false`)

	// Back at the root the next back asks for exit confirmation.
	rec = f.request(http.MethodPost, testBasePath+"/nav/back", "sess-admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exit_prompt":true`)

	rec = f.request(http.MethodPost, testBasePath+"/nav/exit/cancel", "sess-admin", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.request(http.MethodGet, testBasePath+"/nav/state", "sess-admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"current":"`+testBasePath+`"`)

	// On a web host a confirmed exit acknowledges without terminating.
	rec = f.request(http.MethodPost, testBasePath+"/nav/back", "sess-admin", "")
	require.Contains(t, rec.Body.String(), `"exit_prompt":true`)
	rec = f.request(http.MethodPost, testBasePath+"/nav/exit/confirm", "sess-admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"exited":false`)
}

func TestRouter_NavEndpointsRequireSession(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.request(http.MethodPost, testBasePath+"/nav/back", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}

func TestRouter_LogoutDropsNavigationHistory(t *testing.T) {
	f := newRouterFixture(t)
	f.seedSession(t, "sess-admin", "tok-admin", false)

	require.Equal(t, http.StatusOK, f.request(http.MethodGet, testBasePath, "sess-admin", "").Code)
	require.Equal(t, http.StatusOK, f.request(http.MethodGet, testBasePath+RouteAsset, "sess-admin", "").Code)

	rec := f.request(http.MethodPost, testBasePath+"/auth/logout", "sess-admin", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	// The logout event both evicts the session snapshot and drops history,
	// so the next guarded request starts over at the login page.
	assert.Eventually(t, func() bool {
		rec := f.request(http.MethodGet, testBasePath, "sess-admin", "")
		return rec.Code == http.StatusSeeOther &&
			strings.Contains(rec.Header().Get("Location"), RouteLogin)
	}, time.Second, 10*time.Millisecond)
}
