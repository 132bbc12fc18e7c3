package passwordauth

// Package passwordauth authenticates against a remote credential endpoint.
// The endpoint contract is POST {base}/login with a JSON body of
// {"email": ..., "password": ...}, answering {"token": ..., "user": {...}}.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

const defaultTimeout = 10 * time.Second

// maxResponseBytes caps the login response body read. The payload is a token
// plus a small user object; anything larger is a misbehaving server.
const maxResponseBytes = 1 << 20

// Config controls the password auth provider.
type Config struct {
	// BaseURL is the credential service root, without a trailing slash.
	BaseURL string
	// Timeout bounds each login request. Defaults to 10s when zero.
	Timeout time.Duration
}

// Provider implements ports.Authenticator against a remote HTTP endpoint.
type Provider struct {
	baseURL string
	client  *http.Client
}

var _ ports.Authenticator = (*Provider)(nil)

// NewProvider constructs a password auth provider from Config.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("password auth: BaseURL is required")
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Login posts the credentials to the remote endpoint. Any non-2xx status maps
// to invalid credentials; transport and payload failures surface as internal
// errors.
func (p *Provider) Login(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	body, err := json.Marshal(loginRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "credential service unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return domainauth.Identity{}, apperrors.InvalidCredentials()
	}

	var parsed loginResponse
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&parsed); decodeErr != nil {
		return domainauth.Identity{}, apperrors.Wrap(decodeErr, apperrors.ErrCodeInternal, "decode login response")
	}

	if parsed.Token == "" {
		return domainauth.Identity{}, apperrors.Internal("credential service returned empty token")
	}
	role, ok := domainauth.ParseRole(parsed.User.Role)
	if !ok {
		return domainauth.Identity{}, apperrors.Internalf("credential service returned unknown role %q", parsed.User.Role)
	}

	return domainauth.Identity{
		Name:  parsed.User.Name,
		Email: parsed.User.Email,
		Role:  role,
		Token: parsed.Token,
	}, nil
}
