package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/onboardhq/onboard-ui-api/config"
)

func TestBuildAuthServicePerMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// Construction never dials, so a placeholder client is enough here.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("close redis client: %v", err)
		}
	})

	t.Run("mock mode builds", func(t *testing.T) {
		svc := BuildAuthService(AuthConfig{
			Auth:        config.AuthConfig{Mode: config.AuthModeMock},
			RedisClient: client,
			Logger:      logger,
		})
		if svc == nil {
			t.Fatal("expected auth service for mock mode")
		}
	})

	t.Run("password mode without base url is disabled", func(t *testing.T) {
		svc := BuildAuthService(AuthConfig{
			Auth:        config.AuthConfig{Mode: config.AuthModePassword},
			RedisClient: client,
			Logger:      logger,
		})
		if svc != nil {
			t.Fatal("expected nil auth service without a credential endpoint")
		}
	})

	t.Run("password mode builds", func(t *testing.T) {
		svc := BuildAuthService(AuthConfig{
			Auth: config.AuthConfig{
				Mode:     config.AuthModePassword,
				Password: config.PasswordAuthConfig{BaseURL: "https://creds.internal"},
			},
			RedisClient: client,
			Logger:      logger,
		})
		if svc == nil {
			t.Fatal("expected auth service for password mode")
		}
	})
}

func TestNewServicesWiresContainer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("close redis client: %v", err)
		}
	})

	cfg := config.AppConfig{}
	cfg.Sanitize()

	services := NewServices(&ServiceDeps{
		Config:      &cfg,
		DB:          nil, // repositories hold the handle without touching it
		RedisClient: client,
		Logger:      logger,
	})

	if services.Auth == nil {
		t.Error("expected auth service")
	}
	if services.Sessions == nil {
		t.Error("expected session manager")
	}
	if services.Candidatos == nil {
		t.Error("expected candidato service")
	}
	if services.Credenciais == nil {
		t.Error("expected credencial service")
	}
	if services.Acuracia == nil {
		t.Error("expected acuracia service backed by redis")
	}
}

func TestNewServicesNilDeps(t *testing.T) {
	services := NewServices(nil)
	if services.Auth != nil || services.Sessions != nil {
		t.Fatal("expected zero container for nil deps")
	}
}
