package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthMode selects which authenticator the server boots with.
type AuthMode string

const (
	// AuthModeMock accepts the built-in development credentials and is the
	// default outside production.
	AuthModeMock AuthMode = "mock"
	// AuthModePassword validates credentials against a remote credential
	// endpoint.
	AuthModePassword AuthMode = "password"
	// AuthModeOIDC delegates authentication to an OpenID Connect provider.
	AuthModeOIDC AuthMode = "oidc"
)

// UnmarshalText implements encoding.TextUnmarshaler so env parsing
// rejects unknown modes at startup instead of at first login.
func (m *AuthMode) UnmarshalText(text []byte) error {
	v := AuthMode(strings.ToLower(strings.TrimSpace(string(text))))
	switch v {
	case AuthModeMock, AuthModePassword, AuthModeOIDC:
		*m = v
		return nil
	case "":
		*m = AuthModeMock
		return nil
	default:
		return fmt.Errorf("invalid auth mode %q (valid: mock, password, oidc)", text)
	}
}

// AuthConfig holds authentication and session settings.
type AuthConfig struct {
	// Mode selects the authenticator: mock, password or oidc.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"mock"`

	// SessionTTL bounds server-side session lifetime.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"8h"`

	// Password holds remote credential endpoint settings, used only when
	// Mode is password.
	Password PasswordAuthConfig `envPrefix:"PASSWORD_AUTH_"`

	// OIDC holds provider settings, used only when Mode is oidc.
	OIDC OIDCConfig `envPrefix:"OIDC_"`

	// Group claims resolved to application roles in OIDC deployments.
	AdminGroup     string `env:"ADMIN_GROUP"`
	RHGroup        string `env:"RH_GROUP"`
	CandidatoGroup string `env:"CANDIDATO_GROUP"`
}

// Sanitize applies guardrails to authentication configuration.
func (c *AuthConfig) Sanitize() {
	if c.SessionTTL <= 0 {
		c.SessionTTL = 8 * time.Hour
	}
	if c.Mode == "" {
		c.Mode = AuthModeMock
	}
	c.Password.Sanitize()
}

// PasswordAuthConfig holds settings for the remote credential endpoint.
type PasswordAuthConfig struct {
	// BaseURL is the credential service root, without a trailing slash.
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds each login request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize normalises the endpoint configuration.
func (c *PasswordAuthConfig) Sanitize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
}

// OIDCConfig holds OpenID Connect provider settings.
type OIDCConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// RedirectURL is the callback this server registers with the provider.
	RedirectURL string `env:"REDIRECT_URL"`

	// Scope is the space-separated scope string sent on the authorize request.
	Scope string `env:"SCOPE" envDefault:"openid profile email"`

	// DiscoveryURL is the provider's well-known discovery endpoint, or the
	// bare issuer URL.
	DiscoveryURL string `env:"DISCOVERY_URL"`
}

// Validate checks that the fields required to reach the provider are set.
func (c *OIDCConfig) Validate() error {
	var missing []string
	if c.DiscoveryURL == "" {
		missing = append(missing, "OIDC_DISCOVERY_URL")
	}
	if c.ClientID == "" {
		missing = append(missing, "OIDC_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "OIDC_CLIENT_SECRET")
	}
	if c.RedirectURL == "" {
		missing = append(missing, "OIDC_REDIRECT_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("auth mode oidc requires %s", strings.Join(missing, ", "))
	}
	return nil
}
