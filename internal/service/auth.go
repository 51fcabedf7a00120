package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
	apperrors "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/errors"
	"github.com/hskuntze/gestao-inventario-frontend-sub000/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Tokens   ports.TokenProvider
	Claims   ports.ClaimsDecoder
	Sessions ports.SessionStore
	Profile  ports.ProfileFetcher
	Events   ports.SessionEvents
	Logger   *slog.Logger
}

// AuthService orchestrates authentication flows by coordinating the token
// provider, claims decoding, profile fetching, and session persistence.
type AuthService struct {
	tokens   ports.TokenProvider
	claims   ports.ClaimsDecoder
	sessions ports.SessionStore
	profile  ports.ProfileFetcher
	events   ports.SessionEvents
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		tokens:   opts.Tokens,
		claims:   opts.Claims,
		sessions: opts.Sessions,
		profile:  opts.Profile,
		events:   opts.Events,
		logger:   logger,
	}
}

// Login exchanges credentials for a token, decodes and validates the granted
// roles, fetches the user profile, and persists a new session. A token
// without any granted role is rejected: such a user could not reach a single
// route and would only see error pages.
func (s *AuthService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	if username == "" || password == "" {
		return domainauth.Session{}, apperrors.ValidationField("credentials", "username and password are required")
	}

	payload, err := s.tokens.Login(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthenticated, "login failed")
	}

	claims, err := s.claims.Decode(payload.AccessToken)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode token")
	}
	if len(claims.Roles) == 0 {
		return domainauth.Session{}, apperrors.Forbidden("token grants no roles")
	}

	userData, err := s.profile.FetchUserData(ctx, payload.AccessToken)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "fetch user data")
	}

	session := domainauth.Session{
		ID:          uuid.NewString(),
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
		Claims:      claims,
		UserData:    userData,
		ExpiresAt:   payload.ExpiresAt,
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, apperrors.Wrap(saveErr, apperrors.ErrCodeInternal, "save session")
	}

	s.publish(ctx, ports.SessionEvent{SessionID: session.ID, Kind: ports.EventLogin})

	return session, nil
}

// GetSession resolves the current state of a session ID. A missing or empty
// ID maps to StateNone, a stored record whose token no longer decodes maps
// to StateInvalid, and everything else to StateValid with claims freshly
// derived from the stored token.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (domainauth.SessionState, error) {
	if sessionID == "" {
		return domainauth.SessionState{Kind: domainauth.StateNone}, nil
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return domainauth.SessionState{Kind: domainauth.StateNone}, nil
		}
		return domainauth.SessionState{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "get session")
	}

	// Claims are always re-derived from the stored token so they can never
	// drift from it.
	claims, err := s.claims.Decode(session.AccessToken)
	if err != nil {
		s.logger.Warn("session token no longer decodes", "session_id", sessionID, "error", err)
		return domainauth.SessionState{Kind: domainauth.StateInvalid}, nil
	}
	session.Claims = claims

	return domainauth.SessionState{Kind: domainauth.StateValid, Session: session}, nil
}

// Logout removes a session and broadcasts the logout.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete session")
	}

	s.publish(ctx, ports.SessionEvent{SessionID: sessionID, Kind: ports.EventLogout})

	return nil
}

// Invalidate removes a session after the backend rejected its token. The
// distinct event kind lets subscribers tell a user-initiated logout from a
// forced one.
func (s *AuthService) Invalidate(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "delete session")
	}

	s.publish(ctx, ports.SessionEvent{SessionID: sessionID, Kind: ports.EventInvalidated})

	return nil
}

// CompleteFirstAccess performs the forced password change, refreshes the
// profile, and persists the session with the first-access flag cleared.
func (s *AuthService) CompleteFirstAccess(ctx context.Context, sessionID, newPassword string) (domainauth.Session, error) {
	if newPassword == "" {
		return domainauth.Session{}, apperrors.ValidationField("password", "new password is required")
	}

	state, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return domainauth.Session{}, err
	}
	if !state.Authenticated() {
		return domainauth.Session{}, apperrors.Unauthenticated("no active session")
	}

	session := state.Session
	if !session.FirstAccessPending() {
		return domainauth.Session{}, apperrors.ValidationField("firstAccess", "first access already completed")
	}

	if err := s.profile.ChangePassword(ctx, session.AccessToken, newPassword); err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "change password")
	}

	userData, err := s.profile.FetchUserData(ctx, session.AccessToken)
	if err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeUpstream, "refresh user data")
	}
	session.UserData = userData
	session.UserData.FirstAccess = false

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return domainauth.Session{}, apperrors.Wrap(saveErr, apperrors.ErrCodeInternal, "save session")
	}

	s.publish(ctx, ports.SessionEvent{SessionID: session.ID, Kind: ports.EventRefreshed})

	return session, nil
}

// RequestPasswordRecovery forwards a recovery request to the backend. The
// outcome is intentionally the same whether or not the email exists.
func (s *AuthService) RequestPasswordRecovery(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if err := s.profile.RequestPasswordRecovery(ctx, email); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeUpstream, "request password recovery")
	}
	return nil
}

// publish broadcasts a session event. Broadcasting is best-effort; a failed
// publish never fails the operation that triggered it.
func (s *AuthService) publish(ctx context.Context, ev ports.SessionEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("publish session event", "kind", ev.Kind, "error", err)
	}
}
