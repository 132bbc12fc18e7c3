package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/onboardhq/onboard-ui-api/config"
	redisadapter "github.com/onboardhq/onboard-ui-api/internal/adapters/redis"
	"github.com/onboardhq/onboard-ui-api/internal/data"
	"github.com/onboardhq/onboard-ui-api/internal/observability/statsd"
	"github.com/onboardhq/onboard-ui-api/internal/service"
	"github.com/onboardhq/onboard-ui-api/internal/session"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth          *service.AuthService
	Sessions      *session.Manager
	Candidatos    *service.CandidatoService
	Empresas      *service.EmpresaService
	Usuarios      *service.UsuarioService
	Cursos        *service.CursoService
	Documentos    *service.DocumentoService
	Credenciais   *service.CredencialService
	Acuracia      *service.AcuraciaService
	Observability ObservabilityContainer
}

// ObservabilityContainer groups shared observability dependencies.
type ObservabilityContainer struct {
	MetricsSink   *statsd.Client
	MetricsConfig config.ObservabilityMetricsConfig
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB             *sql.DB
	Redis          redis.UniversalClient
	CandidatoRepo  *data.CandidatoRepo
	EmpresaRepo    *data.EmpresaRepo
	UsuarioRepo    *data.UsuarioRepo
	CursoRepo      *data.CursoRepo
	DocumentoRepo  *data.DocumentoRepo
	CredencialRepo *data.CredencialRepo
}

// buildObservability configures the metrics sink.
func buildObservability(logger *slog.Logger, cfg config.ObservabilityConfig) ObservabilityContainer {
	obsLogger := logger
	if obsLogger == nil {
		obsLogger = slog.Default()
	}

	var metricsSink *statsd.Client
	if cfg.Metrics.IsEnabled() {
		client, err := statsd.NewClient(statsd.Config{
			Enabled: true,
			Address: cfg.Metrics.StatsdAddress,
			Prefix:  cfg.Metrics.Prefix,
			Logger:  obsLogger,
		})
		if err != nil {
			obsLogger.Error("failed to initialise statsd client", "error", err)
		} else {
			metricsSink = client
		}
	}

	return ObservabilityContainer{
		MetricsSink:   metricsSink,
		MetricsConfig: cfg.Metrics,
	}
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient) *serviceRepositories {
	return &serviceRepositories{
		DB:             db,
		Redis:          redisClient,
		CandidatoRepo:  data.NewCandidatoRepo(db),
		EmpresaRepo:    data.NewEmpresaRepo(db),
		UsuarioRepo:    data.NewUsuarioRepo(db),
		CursoRepo:      data.NewCursoRepo(db),
		DocumentoRepo:  data.NewDocumentoRepo(db),
		CredencialRepo: data.NewCredencialRepo(db),
	}
}

// DomainServicesOptions groups inputs for buildDomainServices.
type DomainServicesOptions struct {
	Repos         *serviceRepositories
	Observability ObservabilityContainer
	Config        *config.AppConfig
	Logger        *slog.Logger
}

// buildDomainServices wires business services using repositories and observability adapters.
func buildDomainServices(opts *DomainServicesOptions) ServiceContainer {
	if opts == nil {
		return ServiceContainer{}
	}
	svcLogger := opts.Logger
	if svcLogger == nil {
		svcLogger = slog.Default()
	}

	appCfg := opts.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	credencialService := service.NewCredencialService(service.CredencialServiceOptions{
		CredencialRepo: opts.Repos.CredencialRepo,
		CandidatoRepo:  opts.Repos.CandidatoRepo,
	})

	// Session change streams are shared by the SSE watch endpoint and the
	// auth service, so one manager serves both.
	recordStore := redisadapter.NewRecordStore(opts.Repos.Redis, appCfg.Auth.SessionTTL)
	sessionManager := session.NewManager(recordStore)

	authService := BuildAuthService(AuthConfig{
		Auth:        appCfg.Auth,
		RedisClient: opts.Repos.Redis,
		Manager:     sessionManager,
		Directory:   credencialService,
		Logger:      svcLogger,
	})

	var acuraciaService *service.AcuraciaService
	if opts.Repos.Redis != nil {
		acuraciaService = service.NewAcuraciaService(service.AcuraciaServiceOptions{
			Redis: opts.Repos.Redis,
		})
	}

	return ServiceContainer{
		Auth:     authService,
		Sessions: sessionManager,
		Candidatos: service.NewCandidatoService(service.CandidatoServiceOptions{
			CandidatoRepo:  opts.Repos.CandidatoRepo,
			CredencialRepo: opts.Repos.CredencialRepo,
		}),
		Empresas: service.NewEmpresaService(service.EmpresaServiceOptions{
			EmpresaRepo: opts.Repos.EmpresaRepo,
		}),
		Usuarios: service.NewUsuarioService(service.UsuarioServiceOptions{
			UsuarioRepo: opts.Repos.UsuarioRepo,
		}),
		Cursos: service.NewCursoService(service.CursoServiceOptions{
			CursoRepo: opts.Repos.CursoRepo,
		}),
		Documentos: service.NewDocumentoService(service.DocumentoServiceOptions{
			DocumentoRepo: opts.Repos.DocumentoRepo,
		}),
		Credenciais:   credencialService,
		Acuracia:      acuraciaService,
		Observability: opts.Observability,
	}
}

// NewServices wires the full service container from shared infrastructure.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var obsCfg config.ObservabilityConfig
	if deps.Config != nil {
		obsCfg = deps.Config.Observability
	}
	observability := buildObservability(logger, obsCfg)
	repos := buildRepositories(deps.DB, deps.RedisClient)
	return buildDomainServices(&DomainServicesOptions{
		Repos:         repos,
		Observability: observability,
		Config:        deps.Config,
		Logger:        logger,
	})
}
