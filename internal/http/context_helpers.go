package httpx

import (
	"context"

	domainauth "github.com/hskuntze/gestao-inventario-frontend-sub000/internal/domain/auth"
)

// SetSessionInContext adds a session to the context. The same carrier is
// read by the backend client for bearer injection.
func SetSessionInContext(ctx context.Context, session domainauth.Session) context.Context {
	return domainauth.NewContext(ctx, session)
}

// GetSessionFromContext retrieves a session from the context.
func GetSessionFromContext(ctx context.Context) (domainauth.Session, bool) {
	return domainauth.FromContext(ctx)
}
