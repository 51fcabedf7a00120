package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"sync"
	"time"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenProvider  = (*MockTokenProvider)(nil)
	_ ports.ClaimsDecoder  = (*MockClaimsDecoder)(nil)
	_ ports.SessionStore   = (*MemorySessionStore)(nil)
	_ ports.ProfileFetcher = (*MockProfileFetcher)(nil)
	_ ports.SessionEvents  = (*RecordingEvents)(nil)
)

// MockTokenProvider simulates the backend token endpoint for tests.
type MockTokenProvider struct {
	LoginFunc func(ctx context.Context, username, password string) (ports.TokenPayload, error)

	// DefaultPayload is returned when LoginFunc is nil.
	DefaultPayload ports.TokenPayload
}

// NewMockTokenProvider creates a MockTokenProvider with sensible defaults.
func NewMockTokenProvider() *MockTokenProvider {
	return &MockTokenProvider{
		DefaultPayload: ports.TokenPayload{
			AccessToken: "mock-access-token",
			TokenType:   "bearer",
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}
}

func (m *MockTokenProvider) Login(ctx context.Context, username, password string) (ports.TokenPayload, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	if username == "" || password == "" {
		return ports.TokenPayload{}, errors.New("credentials required")
	}
	payload := m.DefaultPayload
	if payload.ExpiresAt.IsZero() {
		payload.ExpiresAt = time.Now().Add(time.Hour)
	}
	return payload, nil
}

// MockClaimsDecoder maps token strings to fixed claims.
type MockClaimsDecoder struct {
	DecodeFunc func(token string) (domainauth.Claims, error)

	// ClaimsByToken holds canned results when DecodeFunc is nil; unknown
	// tokens fall back to DefaultClaims.
	ClaimsByToken map[string]domainauth.Claims
	DefaultClaims domainauth.Claims
}

// NewMockClaimsDecoder creates a decoder granting admin by default.
func NewMockClaimsDecoder() *MockClaimsDecoder {
	return &MockClaimsDecoder{
		DefaultClaims: domainauth.Claims{
			UserID: "mock-user-1",
			Roles:  []domainauth.RoleDescriptor{domainauth.RoleAdmin},
		},
	}
}

func (m *MockClaimsDecoder) Decode(token string) (domainauth.Claims, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(token)
	}
	if token == "" {
		return domainauth.Claims{}, errors.New("empty token")
	}
	if claims, ok := m.ClaimsByToken[token]; ok {
		return claims, nil
	}
	return m.DefaultClaims, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]domainauth.Session
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// MockProfileFetcher returns canned profile data.
type MockProfileFetcher struct {
	FetchUserDataFunc           func(ctx context.Context, accessToken string) (domainauth.UserData, error)
	ChangePasswordFunc          func(ctx context.Context, accessToken, newPassword string) error
	RequestPasswordRecoveryFunc func(ctx context.Context, email string) error

	DefaultUserData domainauth.UserData

	// PasswordChanges records every ChangePassword call.
	PasswordChanges []string
	// RecoveryRequests records every RequestPasswordRecovery call.
	RecoveryRequests []string
}

// NewMockProfileFetcher creates a MockProfileFetcher with a plain profile.
func NewMockProfileFetcher() *MockProfileFetcher {
	return &MockProfileFetcher{
		DefaultUserData: domainauth.UserData{
			Name:  "Mock User",
			Email: "mock.user@example.com",
		},
	}
}

func (m *MockProfileFetcher) FetchUserData(ctx context.Context, accessToken string) (domainauth.UserData, error) {
	if m.FetchUserDataFunc != nil {
		return m.FetchUserDataFunc(ctx, accessToken)
	}
	return m.DefaultUserData, nil
}

func (m *MockProfileFetcher) ChangePassword(ctx context.Context, accessToken, newPassword string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, accessToken, newPassword)
	}
	m.PasswordChanges = append(m.PasswordChanges, newPassword)
	return nil
}

func (m *MockProfileFetcher) RequestPasswordRecovery(ctx context.Context, email string) error {
	if m.RequestPasswordRecoveryFunc != nil {
		return m.RequestPasswordRecoveryFunc(ctx, email)
	}
	m.RecoveryRequests = append(m.RecoveryRequests, email)
	return nil
}

// RecordingEvents records published session events and fans them out to
// subscribers.
type RecordingEvents struct {
	mu        sync.Mutex
	published []ports.SessionEvent
	subs      []chan ports.SessionEvent
}

// NewRecordingEvents creates an empty event recorder.
func NewRecordingEvents() *RecordingEvents {
	return &RecordingEvents{}
}

func (r *RecordingEvents) Publish(_ context.Context, ev ports.SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.published = append(r.published, ev)
	for _, sub := range r.subs {
		select {
		case sub <- ev:
		default:
		}
	}
	return nil
}

func (r *RecordingEvents) Subscribe(_ context.Context) (<-chan ports.SessionEvent, func(), error) {
	ch := make(chan ports.SessionEvent, 16)
	r.mu.Lock()
	r.subs = append(r.subs, ch)
	r.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, sub := range r.subs {
				if sub == ch {
					r.subs = append(r.subs[:i], r.subs[i+1:]...)
					break
				}
			}
			close(ch)
		})
	}
	return ch, cancel, nil
}

// Published returns a copy of all events published so far.
func (r *RecordingEvents) Published() []ports.SessionEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.SessionEvent(nil), r.published...)
}
