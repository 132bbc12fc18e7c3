package bootstrap

import (
	"log/slog"

	"github.com/onboardhq/onboard-ui-api/config"
	"github.com/onboardhq/onboard-ui-api/internal/adapters/authroles"
	"github.com/onboardhq/onboard-ui-api/internal/adapters/mockauth"
	"github.com/onboardhq/onboard-ui-api/internal/adapters/oidcauth"
	"github.com/onboardhq/onboard-ui-api/internal/adapters/passwordauth"
	redisadapter "github.com/onboardhq/onboard-ui-api/internal/adapters/redis"
	"github.com/onboardhq/onboard-ui-api/internal/service"
	"github.com/onboardhq/onboard-ui-api/internal/session"
	"github.com/redis/go-redis/v9"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Manager     *session.Manager
	// Directory resolves self-registered candidates in mock mode; optional.
	Directory mockauth.CandidateDirectory
	Logger    *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Returns nil if auth is not configured or configuration is invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	// Redis session store is shared by all modes.
	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")

	opts := service.AuthServiceOptions{
		Sessions:   sessionStore,
		Manager:    cfg.Manager,
		SessionTTL: cfg.Auth.SessionTTL,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		opts.Authenticator = mockauth.NewProvider(cfg.Directory)

	case config.AuthModePassword:
		prov, err := passwordauth.NewProvider(passwordauth.Config{
			BaseURL: cfg.Auth.Password.BaseURL,
			Timeout: cfg.Auth.Password.Timeout,
		})
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("failed to create password auth provider, auth disabled", "error", err)
			}
			return nil
		}
		opts.Authenticator = prov

	case config.AuthModeOIDC:
		prov := buildOIDCProvider(cfg)
		if prov == nil {
			return nil
		}
		opts.Provider = prov

	default:
		return nil
	}

	return service.NewAuthService(opts)
}

func buildOIDCProvider(cfg AuthConfig) *oidcauth.Provider {
	oidc := cfg.Auth.OIDC
	if err := oidc.Validate(); err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeOIDC selected but required config missing; auth disabled", "error", err)
		}
		return nil
	}

	prov, err := oidcauth.NewProvider(oidcauth.ProviderConfig{
		ClientID:     oidc.ClientID,
		ClientSecret: oidc.ClientSecret,
		RedirectURL:  oidc.RedirectURL,
		Scope:        oidc.Scope,
		DiscoveryURL: oidc.DiscoveryURL,
		Roles: &authroles.StaticRoleMapper{
			AdminGroup:     cfg.Auth.AdminGroup,
			RHGroup:        cfg.Auth.RHGroup,
			CandidatoGroup: cfg.Auth.CandidatoGroup,
		},
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}

	return prov
}
