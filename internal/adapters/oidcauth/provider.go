package oidcauth

// Package oidcauth provides the redirect-based AuthProvider backed by an
// OIDC identity provider. Group claims are resolved to an application role
// through a ports.RoleMapper; users without a mapped role are rejected.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// Provider implements ports.AuthProvider using OIDC/OAuth2.
type Provider struct {
	config     *oauth2.Config
	roles      ports.RoleMapper
	httpClient *http.Client

	oidcProvider *gooidc.Provider
	verifier     *gooidc.IDTokenVerifier
}

// ProviderConfig holds configuration for the OIDC provider.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scope        string
	DiscoveryURL string
	Roles        ports.RoleMapper
	HTTPClient   *http.Client // Optional, defaults to a 30s-timeout client
}

// NewProvider creates a new OIDC provider. Discovery runs once at startup.
func NewProvider(config ProviderConfig) (*Provider, error) {
	if config.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if config.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if config.RedirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}
	if config.DiscoveryURL == "" {
		return nil, errors.New("discovery URL is required")
	}
	if config.Roles == nil {
		return nil, errors.New("role mapper is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	p := &Provider{
		roles:      config.Roles,
		httpClient: httpClient,
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	issuer := strings.TrimSuffix(config.DiscoveryURL, "/")
	issuer = strings.TrimSuffix(issuer, "/.well-known/openid-configuration")
	issuer = strings.TrimSuffix(issuer, ".well-known/openid-configuration")
	op, err := gooidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc new provider: %w", err)
	}
	p.oidcProvider = op
	p.verifier = op.Verifier(&gooidc.Config{ClientID: config.ClientID})

	p.config = &oauth2.Config{
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
		RedirectURL:  config.RedirectURL,
		Scopes:       strings.Fields(config.Scope),
		Endpoint:     op.Endpoint(),
	}

	return p, nil
}

// Begin starts the login flow with cryptographically secure state and nonce.
func (p *Provider) Begin(_ context.Context, in ports.BeginInput) (string, string, string, error) {
	if in.RedirectURL == "" {
		return "", "", "", errors.New("redirect URL is required")
	}

	state, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}

	nonce, err := generateRandomString(32)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}

	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("nonce", nonce),
		oauth2.SetAuthURLParam("response_type", "code"),
		oauth2.SetAuthURLParam("prompt", "select_account"),
	)

	return authURL, state, nonce, nil
}

// Exchange completes the flow: code for token, verified ID token claims, and
// a role resolved from the user's groups. No mapped role means no access.
func (p *Provider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if in.Code == "" {
		return domainauth.Identity{}, errors.New("authorization code is required")
	}
	if in.State == "" {
		return domainauth.Identity{}, errors.New("state is required")
	}
	if in.Nonce == "" {
		return domainauth.Identity{}, errors.New("nonce is required")
	}

	token, err := p.config.Exchange(ctx, in.Code)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("exchange code for token: %w", err)
	}

	fields, rawID, err := p.extractFromIDToken(ctx, token, in.Nonce)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("extract id_token: %w", err)
	}

	if fields.email == "" || fields.name == "" {
		if fillErr := p.fillFromUserInfo(ctx, token.AccessToken, &fields); fillErr != nil {
			return domainauth.Identity{}, fmt.Errorf("get user info: %w", fillErr)
		}
	}

	role, ok := p.roles.Map(fields.groups)
	if !ok {
		return domainauth.Identity{}, apperrors.InvalidCredentials()
	}

	return domainauth.Identity{
		Name:  fields.name,
		Email: fields.email,
		Role:  role,
		Token: rawID,
	}, nil
}

// userInfoClaims represents the user information from the OIDC userinfo endpoint.
type userInfoClaims struct {
	Subject    string   `json:"sub"`
	Name       string   `json:"name"`
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Email      string   `json:"email"`
	Groups     []string `json:"groups"`
}

func (p *Provider) getUserInfo(ctx context.Context, accessToken string) (*userInfoClaims, error) {
	ui, err := p.oidcProvider.UserInfo(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	var claims userInfoClaims
	if claimsErr := ui.Claims(&claims); claimsErr != nil {
		return nil, fmt.Errorf("decode user info: %w", claimsErr)
	}
	return &claims, nil
}

type idFields struct {
	name   string
	email  string
	groups []string
}

type idTokenClaims struct {
	Sub        string   `json:"sub"`
	Name       string   `json:"name"`
	GivenName  string   `json:"given_name"`
	FamilyName string   `json:"family_name"`
	Email      string   `json:"email"`
	Groups     []string `json:"groups"`
	Nonce      string   `json:"nonce"`
}

func (p *Provider) extractFromIDToken(ctx context.Context, tok *oauth2.Token, expectedNonce string) (idFields, string, error) {
	var f idFields
	rawID, err := getIDTokenFromToken(tok)
	if err != nil {
		return f, "", err
	}
	idTok, err := p.verifier.Verify(ctx, rawID)
	if err != nil {
		return f, "", fmt.Errorf("verify id_token: %w", err)
	}
	var claims idTokenClaims
	if claimsErr := idTok.Claims(&claims); claimsErr != nil {
		return f, "", fmt.Errorf("parse id_token claims: %w", claimsErr)
	}
	if expectedNonce != "" && claims.Nonce != expectedNonce {
		return f, "", errors.New("invalid nonce")
	}
	f = mapIDTokenClaims(claims)
	return f, rawID, nil
}

func (p *Provider) fillFromUserInfo(ctx context.Context, accessToken string, f *idFields) error {
	ui, err := p.getUserInfo(ctx, accessToken)
	if err != nil {
		return err
	}
	fillFromUserInfoClaims(f, *ui)
	return nil
}

// mapIDTokenClaims maps raw id token claims into idFields using precedence rules.
func mapIDTokenClaims(c idTokenClaims) idFields {
	var f idFields
	f.name = firstNonEmpty(c.Name, joinName(c.GivenName, c.FamilyName), c.Sub)
	f.email = c.Email
	f.groups = c.Groups
	return f
}

// fillFromUserInfoClaims fills missing fields from a UserInfo payload.
func fillFromUserInfoClaims(f *idFields, ui userInfoClaims) {
	if f.name == "" {
		f.name = firstNonEmpty(ui.Name, joinName(ui.GivenName, ui.FamilyName), ui.Subject)
	}
	if f.email == "" {
		f.email = ui.Email
	}
	if len(f.groups) == 0 {
		f.groups = ui.Groups
	}
}

func joinName(given, family string) string {
	return strings.TrimSpace(strings.TrimSpace(given) + " " + strings.TrimSpace(family))
}

// firstNonEmpty returns the first non-empty string from vals, or empty string if none.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// generateRandomString generates a cryptographically secure URL-safe random string of exact length.
func generateRandomString(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	// Compute number of random bytes needed to produce at least 'length' base64 URL-safe chars
	nBytes := (length*3 + 3) / 4
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < length {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:length], nil
}

// getIDTokenFromToken extracts the id_token from oauth2.Token.
func getIDTokenFromToken(tok *oauth2.Token) (string, error) {
	if tok == nil {
		return "", errors.New("nil token")
	}
	raw := tok.Extra("id_token")
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", errors.New("missing id_token in token response")
	}
	return s, nil
}
