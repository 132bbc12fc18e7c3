package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/nav"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
	"github.com/onboardhq/onboard-ui-api/internal/session"
)

// DefaultSessionTTL bounds how long a server-side session lives without a
// fresh login.
const DefaultSessionTTL = 8 * time.Hour

// AuthServiceOptions groups dependencies for AuthService. Provider is only
// set in OIDC deployments; Authenticator in credential deployments. Exactly
// one of the two drives login.
type AuthServiceOptions struct {
	Authenticator ports.Authenticator
	Provider      ports.AuthProvider
	Sessions      ports.SessionStore
	Manager       *session.Manager
	SessionTTL    time.Duration
}

// AuthService orchestrates login, logout, and session lookup. It owns the
// pairing of the server-side session record with the per-client identity
// record: both are written on login and both are removed on logout, so a
// failed login leaves no partial state behind.
type AuthService struct {
	auth       ports.Authenticator
	provider   ports.AuthProvider
	sessions   ports.SessionStore
	manager    *session.Manager
	sessionTTL time.Duration
	now        func() time.Time
}

var errSessionExpired = errors.New("session expired")

// ErrSessionExpired reports whether err means the session outlived its TTL.
func ErrSessionExpired(err error) bool {
	return errors.Is(err, errSessionExpired)
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		auth:       opts.Authenticator,
		provider:   opts.Provider,
		sessions:   opts.Sessions,
		manager:    opts.Manager,
		sessionTTL: ttl,
		now:        time.Now,
	}
}

// LoginResult contains the established session and the route the client
// should land on, which depends on the authenticated role.
type LoginResult struct {
	Session    domainauth.Session
	RedirectTo string
}

// Login validates credentials against the active authenticator and, on
// success, persists a session and the client's identity record.
func (s *AuthService) Login(ctx context.Context, clientID string, creds ports.Credentials) (*LoginResult, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if creds.Email == "" || creds.Password == "" {
		return nil, apperrors.Validation("email and senha are required")
	}
	if s.auth == nil {
		return nil, apperrors.Internal("no credential authenticator configured")
	}

	identity, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, clientID, identity)
}

// BeginLoginResult contains the result of beginning a redirect login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates the OIDC flow and returns the provider auth URL with
// state and nonce. Only available when an AuthProvider is configured.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if s.provider == nil {
		return nil, apperrors.Internal("redirect login is not configured")
	}
	if redirectURL == "" {
		return nil, apperrors.Validation("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing a redirect login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin finishes the OIDC flow: exchanges the code for an identity
// and establishes the session and client record exactly as Login does.
func (s *AuthService) CompleteLogin(ctx context.Context, clientID string, input CompleteLoginInput) (*LoginResult, error) {
	if s.provider == nil {
		return nil, apperrors.Internal("redirect login is not configured")
	}
	if input.Code == "" {
		return nil, apperrors.Validation("authorization code is required")
	}
	if input.State == "" {
		return nil, apperrors.Validation("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, apperrors.Validation("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	return s.establishSession(ctx, clientID, identity)
}

func (s *AuthService) establishSession(ctx context.Context, clientID string, identity domainauth.Identity) (*LoginResult, error) {
	sess := domainauth.Session{
		ID:        uuid.NewString(),
		Name:      identity.Name,
		Email:     identity.Email,
		Role:      identity.Role,
		Token:     identity.Token,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	if s.manager != nil && clientID != "" {
		if err := s.manager.Store(clientID).Set(ctx, identity); err != nil {
			return nil, fmt.Errorf("save client record: %w", err)
		}
	}

	return &LoginResult{Session: sess, RedirectTo: nav.LandingRoute(identity.Role)}, nil
}

// GetSession retrieves a session by ID, evicting it if it has expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Validation("session ID is required")
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if s.now().After(sess.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &sess, nil
}

// Logout removes the session and the client's identity record and reports
// where the client should go next. Safe to call with empty IDs.
func (s *AuthService) Logout(ctx context.Context, sessionID, clientID string) (redirectTo string, err error) {
	if sessionID != "" {
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return "", fmt.Errorf("delete session: %w", err)
		}
	}

	if s.manager != nil && clientID != "" {
		store := s.manager.Store(clientID)
		if err := store.Clear(ctx); err != nil {
			return "", fmt.Errorf("clear client record: %w", err)
		}
		// Keep the store only while someone is watching it; active watch
		// streams still deliver the logged-out transition and any later
		// login on the same client.
		if store.Idle() {
			s.manager.Evict(clientID)
		}
	}

	return nav.LoginRoute, nil
}
