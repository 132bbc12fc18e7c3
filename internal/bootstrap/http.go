package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/onboardhq/onboard-ui-api/config"
	httpx "github.com/onboardhq/onboard-ui-api/internal/http"
)

// sessionPruneInterval is how often idle session stores are swept.
const sessionPruneInterval = 5 * time.Minute

// HTTPServerConfig contains configuration for the HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// NewHTTPServer builds the router and the HTTP server without starting it.
func NewHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		Sessions:     cfg.Services.Sessions,
		Candidatos:   cfg.Services.Candidatos,
		Empresas:     cfg.Services.Empresas,
		Usuarios:     cfg.Services.Usuarios,
		Cursos:       cfg.Services.Cursos,
		Documentos:   cfg.Services.Documentos,
		Credenciais:  cfg.Services.Credenciais,
		Acuracia:     cfg.Services.Acuracia,
		Metrics:      cfg.Services.Observability.MetricsSink,
		AuthMetrics:  cfg.Services.Observability.MetricsSink,
		AuthMode:     string(appCfg.Auth.Mode),
		CookieDomain: appCfg.HTTP.CookieDomain,
		Logger:       logger,
	}

	addr := appCfg.HTTP.Addr
	if addr == "" {
		addr = ":8080"
	}

	return &http.Server{
		Addr:         addr,
		Handler:      httpx.NewRouter(services),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0, // session watch streams are long lived
		IdleTimeout:  120 * time.Second,
	}
}

// RunHTTPServer serves until the context is cancelled or SIGINT/SIGTERM
// arrives, then shuts down gracefully within the configured timeout.
func RunHTTPServer(ctx context.Context, cfg *HTTPServerConfig) error {
	server := NewHTTPServer(cfg)
	if server == nil {
		return errors.New("http server configuration is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	shutdownTimeout := 15 * time.Second
	if cfg.Config != nil && cfg.Config.HTTP.ShutdownTimeout > 0 {
		shutdownTimeout = cfg.Config.HTTP.ShutdownTimeout
	}

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(signalCtx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.Services.Sessions != nil {
		sessions := cfg.Services.Sessions
		g.Go(func() error {
			// Anonymous clients leave behind idle stores; sweep them so the
			// manager map stays bounded.
			ticker := time.NewTicker(sessionPruneInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gCtx.Done():
					return nil
				case <-ticker.C:
					if n := sessions.Prune(); n > 0 {
						logger.Debug("pruned idle session stores", "count", n)
					}
				}
			}
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down HTTP server")

		// Closing the session manager ends open watch streams so Shutdown
		// does not wait on them.
		if cfg.Services.Sessions != nil {
			cfg.Services.Sessions.Close()
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}

		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}
