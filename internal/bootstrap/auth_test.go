package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/onboardhq/onboard-ui-api/config"
)

func TestBuildAuthServiceReturnsNilWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		auth config.AuthConfig
	}{
		{
			name: "mock mode",
			auth: config.AuthConfig{Mode: config.AuthModeMock},
		},
		{
			name: "password mode",
			auth: config.AuthConfig{
				Mode:     config.AuthModePassword,
				Password: config.PasswordAuthConfig{BaseURL: "https://creds.internal"},
			},
		},
		{
			name: "oidc mode",
			auth: config.AuthConfig{
				Mode: config.AuthModeOIDC,
				OIDC: config.OIDCConfig{
					ClientID:     "client-id",
					ClientSecret: "client-secret",
					DiscoveryURL: "https://issuer.example.com",
					RedirectURL:  "https://app.example.com/api/oidc/callback",
					Scope:        "openid",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{
				Auth:        tt.auth,
				RedisClient: nil,
				Logger:      logger,
			}

			if svc := BuildAuthService(cfg); svc != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", svc)
			}
		})
	}
}

func TestBuildAuthServiceOIDCWithoutProviderConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := AuthConfig{
		Auth: config.AuthConfig{Mode: config.AuthModeOIDC},
		// Provider settings intentionally missing.
		RedisClient: nil,
		Logger:      logger,
	}

	if svc := BuildAuthService(cfg); svc != nil {
		t.Fatalf("BuildAuthService() = %v, want nil", svc)
	}
}
