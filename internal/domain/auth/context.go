package auth

import "context"

type sessionContextKey struct{}

// NewContext returns a context carrying the session. The carried session is
// what the backend client reads to inject the bearer token.
func NewContext(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// FromContext extracts the session from the context, if any.
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(Session)
	return sess, ok
}
