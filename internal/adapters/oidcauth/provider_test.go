package oidcauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/onboardhq/onboard-ui-api/internal/adapters/authroles"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// discoveryDocument is the subset of the OIDC discovery document the mock
// discovery server needs to serve.
type discoveryDocument struct {
	Issuer                string `json:"issuer"`
	AuthorizationEndpoint string `json:"authorization_endpoint"`
	TokenEndpoint         string `json:"token_endpoint"`
	UserinfoEndpoint      string `json:"userinfo_endpoint"`
	JwksURI               string `json:"jwks_uri"`
}

func testRoleMapper() ports.RoleMapper {
	return &authroles.StaticRoleMapper{
		AdminGroup:     "onboard-admins",
		RHGroup:        "onboard-rh",
		CandidatoGroup: "onboard-candidatos",
	}
}

// newDiscoveryServer serves a minimal discovery document whose issuer points
// back at itself.
func newDiscoveryServer(t *testing.T) *httptest.Server {
	t.Helper()

	issuer := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		doc := discoveryDocument{
			Issuer:                issuer,
			AuthorizationEndpoint: "https://example.com/auth",
			TokenEndpoint:         "https://example.com/token",
			UserinfoEndpoint:      "https://example.com/userinfo",
			JwksURI:               "https://example.com/jwks",
		}
		_ = json.NewEncoder(w).Encode(doc)
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	issuer = srv.URL
	return srv
}

func createTestProvider(t *testing.T) *Provider {
	t.Helper()

	srv := newDiscoveryServer(t)
	provider, err := NewProvider(ProviderConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:8080/auth/callback",
		Scope:        "openid profile email groups",
		DiscoveryURL: srv.URL,
		Roles:        testRoleMapper(),
	})
	require.NoError(t, err)
	return provider
}

func TestNewProvider_Success(t *testing.T) {
	provider := createTestProvider(t)
	assert.NotNil(t, provider)
	assert.Equal(t, "https://example.com/auth", provider.config.Endpoint.AuthURL)
	assert.Equal(t, "https://example.com/token", provider.config.Endpoint.TokenURL)
}

func TestNewProvider_ValidationErrors(t *testing.T) {
	roles := testRoleMapper()

	tests := []struct {
		name   string
		config ProviderConfig
		errMsg string
	}{
		{
			name: "missing client ID",
			config: ProviderConfig{
				ClientSecret: "secret",
				RedirectURL:  "http://localhost/callback",
				DiscoveryURL: "http://example.com",
				Roles:        roles,
			},
			errMsg: "client ID is required",
		},
		{
			name: "missing client secret",
			config: ProviderConfig{
				ClientID:     "client",
				RedirectURL:  "http://localhost/callback",
				DiscoveryURL: "http://example.com",
				Roles:        roles,
			},
			errMsg: "client secret is required",
		},
		{
			name: "missing redirect URL",
			config: ProviderConfig{
				ClientID:     "client",
				ClientSecret: "secret",
				DiscoveryURL: "http://example.com",
				Roles:        roles,
			},
			errMsg: "redirect URL is required",
		},
		{
			name: "missing discovery URL",
			config: ProviderConfig{
				ClientID:     "client",
				ClientSecret: "secret",
				RedirectURL:  "http://localhost/callback",
				Roles:        roles,
			},
			errMsg: "discovery URL is required",
		},
		{
			name: "missing role mapper",
			config: ProviderConfig{
				ClientID:     "client",
				ClientSecret: "secret",
				RedirectURL:  "http://localhost/callback",
				DiscoveryURL: "http://example.com",
			},
			errMsg: "role mapper is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(tt.config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_Begin(t *testing.T) {
	provider := createTestProvider(t)
	ctx := context.Background()

	authURL, state, nonce, err := provider.Begin(ctx, ports.BeginInput{RedirectURL: "http://localhost:8080/auth/callback"})

	require.NoError(t, err)
	assert.NotEmpty(t, authURL)
	assert.NotEmpty(t, state)
	assert.NotEmpty(t, nonce)
	assert.Contains(t, authURL, "https://example.com/auth")
	assert.Contains(t, authURL, "client_id=test-client")
	assert.Contains(t, authURL, "state="+state)
	assert.Contains(t, authURL, "nonce="+nonce)
}

func TestProvider_Begin_EmptyRedirectURL(t *testing.T) {
	provider := createTestProvider(t)

	_, _, _, err := provider.Begin(context.Background(), ports.BeginInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redirect URL is required")
}

func TestProvider_Exchange_ValidationErrors(t *testing.T) {
	provider := createTestProvider(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		input  ports.ExchangeInput
		errMsg string
	}{
		{
			name:   "missing code",
			input:  ports.ExchangeInput{State: "state", Nonce: "nonce"},
			errMsg: "authorization code is required",
		},
		{
			name:   "missing state",
			input:  ports.ExchangeInput{Code: "code", Nonce: "nonce"},
			errMsg: "state is required",
		},
		{
			name:   "missing nonce",
			input:  ports.ExchangeInput{Code: "code", State: "state"},
			errMsg: "nonce is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := provider.Exchange(ctx, tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProvider_ImplementsInterface(t *testing.T) {
	provider := createTestProvider(t)
	var _ ports.AuthProvider = provider
}

func TestGenerateRandomString(t *testing.T) {
	str1, err := generateRandomString(16)
	require.NoError(t, err)
	assert.Len(t, str1, 16)

	str2, err := generateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, str2, 32)

	assert.NotEqual(t, str1, str2)

	str3, err := generateRandomString(16)
	require.NoError(t, err)
	assert.NotEqual(t, str1, str3)
}

func TestGetIDTokenFromToken_Success(t *testing.T) {
	tok := (&oauth2.Token{}).WithExtra(map[string]any{"id_token": "abc.def.ghi"})
	idTok, err := getIDTokenFromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", idTok)
}

func TestGetIDTokenFromToken_Missing(t *testing.T) {
	tok := (&oauth2.Token{}).WithExtra(map[string]any{"not_id": "x"})
	_, err := getIDTokenFromToken(tok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id_token")
}

func TestGetIDTokenFromToken_Nil(t *testing.T) {
	_, err := getIDTokenFromToken(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil token")
}

func Test_mapIDTokenClaims(t *testing.T) {
	claims := idTokenClaims{
		Sub:    "sub-123",
		Name:   "Maria Silva",
		Email:  "maria@empresa.com",
		Groups: []string{"onboard-rh"},
	}
	f := mapIDTokenClaims(claims)
	assert.Equal(t, "Maria Silva", f.name)
	assert.Equal(t, "maria@empresa.com", f.email)
	assert.Equal(t, claims.Groups, f.groups)
}

func Test_mapIDTokenClaims_AssembledName(t *testing.T) {
	claims := idTokenClaims{
		Sub:        "sub-123",
		GivenName:  "Maria",
		FamilyName: "Silva",
	}
	f := mapIDTokenClaims(claims)
	assert.Equal(t, "Maria Silva", f.name)
}

func Test_fillFromUserInfoClaims(t *testing.T) {
	ui := userInfoClaims{
		Subject: "sub-abc",
		Name:    "Maria Silva",
		Email:   "maria@empresa.com",
		Groups:  []string{"onboard-rh"},
	}
	var f idFields
	fillFromUserInfoClaims(&f, ui)
	assert.Equal(t, "Maria Silva", f.name)
	assert.Equal(t, "maria@empresa.com", f.email)
	assert.Equal(t, ui.Groups, f.groups)

	// Existing fields are not overwritten.
	f2 := idFields{
		name:   "Keep",
		email:  "keep@empresa.com",
		groups: []string{"x"},
	}
	fillFromUserInfoClaims(&f2, ui)
	assert.Equal(t, "Keep", f2.name)
	assert.Equal(t, "keep@empresa.com", f2.email)
	assert.Equal(t, []string{"x"}, f2.groups)
}
