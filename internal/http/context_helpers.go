package httpx

import (
	"context"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
)

type sessionContextKey struct{}

// SetSessionInContext stores the session in the request context.
func SetSessionInContext(ctx context.Context, sess *domainauth.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// GetSessionFromContext retrieves the session from the request context.
// Returns nil if no session is present.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*domainauth.Session)
	return sess
}
