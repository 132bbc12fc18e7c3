package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
)

// Credentials carries the inputs for a credential-based login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator validates credentials and resolves the authenticated identity.
// Exactly one implementation is active per deployment (mock table, remote
// password endpoint); a failed login must leave all session state untouched.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (domainauth.Identity, error)
}

// BeginInput carries inputs for initiating a redirect-based auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes a redirect-based authentication flow
// against an IdP. Used only in OIDC mode.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the authenticated identity.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists and retrieves server-side user sessions by ID.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RecordStore persists the durable per-client identity record (the `user`
// record the SPA also keeps in its local storage). Load must report a
// corrupt or missing record as absent, never as a fatal error.
type RecordStore interface {
	Load(ctx context.Context, clientID string) (domainauth.Identity, bool, error)
	Save(ctx context.Context, clientID string, identity domainauth.Identity) error
	Clear(ctx context.Context, clientID string) error
}

// RoleMapper maps IdP groups to application roles. Used only in OIDC mode,
// where the provider reports group membership instead of a role claim.
type RoleMapper interface {
	Map(groups []string) (domainauth.Role, bool)
}
