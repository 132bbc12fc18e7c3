package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/observability/statsd"
	"github.com/onboardhq/onboard-ui-api/internal/service"
	"github.com/onboardhq/onboard-ui-api/internal/session"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth        AuthServiceInterface
	Sessions    *session.Manager
	Candidatos  *service.CandidatoService
	Empresas    *service.EmpresaService
	Usuarios    *service.UsuarioService
	Cursos      *service.CursoService
	Documentos  *service.DocumentoService
	Credenciais *service.CredencialService
	Acuracia    *service.AcuraciaService
	// Metrics counts authorization denials; optional.
	Metrics statsd.Sink
	// AuthMetrics and AuthMode feed login attempt counters; optional.
	AuthMetrics  statsd.Sink
	AuthMode     string
	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP access and panic logging (optional)
}

// NewRouter creates and configures a new HTTP router.
//
// Route gating mirrors the client route table: candidate pipeline and
// accuracy snapshots are rh-only, company and user administration are
// admin-only, course progress and document upload need any session, and
// login plus invite-token password setup stay public.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()
	guard := GuardConfig{Auth: services.Auth, Metrics: services.Metrics}

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Sessions:     services.Sessions,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
		Metrics:      services.AuthMetrics,
		AuthMode:     services.AuthMode,
	}
	registerAuthRoutes(mux, authHandlers)
	registerNavigationRoutes(mux, &NavigationHandlers{Sessions: services.Sessions, Metrics: services.Metrics})

	registerCandidatoRoutes(mux, &CandidatoHandlers{Svc: services.Candidatos}, guard)
	registerEmpresaRoutes(mux, &EmpresaHandlers{Svc: services.Empresas}, guard)
	registerUsuarioRoutes(mux, &UsuarioHandlers{Svc: services.Usuarios}, guard)
	registerCursoRoutes(mux, &CursoHandlers{Svc: services.Cursos}, guard)
	registerDocumentoRoutes(mux, &DocumentoHandlers{Svc: services.Documentos}, guard)
	registerCredencialRoutes(mux, &CredencialHandlers{Svc: services.Credenciais})
	if services.Acuracia != nil {
		registerAcuraciaRoutes(mux, &AcuraciaHandlers{Svc: services.Acuracia}, guard)
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return Recover(logger)(Logging(logger)(mux))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.Handle("POST /api/login", http.HandlerFunc(h.Login))
	mux.Handle("POST /api/logout", http.HandlerFunc(h.Logout))
	mux.Handle("GET /api/session", http.HandlerFunc(h.Session))
	mux.Handle("GET /api/session/watch", http.HandlerFunc(h.Watch))
	mux.Handle("GET /api/oidc/login", http.HandlerFunc(h.OIDCLogin))
	mux.Handle("GET /api/oidc/callback", http.HandlerFunc(h.OIDCCallback))
}

func registerNavigationRoutes(mux *http.ServeMux, h *NavigationHandlers) {
	// Unauthenticated by design: the client asks where to go before it
	// has a session, and the answer for protected routes is a redirect.
	mux.Handle("GET /api/navigation", http.HandlerFunc(h.Navigation))
}

func registerCandidatoRoutes(mux *http.ServeMux, h *CandidatoHandlers, guard GuardConfig) {
	rh := RequireRole(guard, domainauth.RoleRH)

	mux.Handle("POST /api/candidatos", rh(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/candidatos", rh(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/candidatos/{id}", rh(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/candidatos/{id}", rh(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/candidatos/{id}", rh(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/candidatos/{id}/reinvite", rh(http.HandlerFunc(h.Reinvite)))
}

func registerEmpresaRoutes(mux *http.ServeMux, h *EmpresaHandlers, guard GuardConfig) {
	admin := RequireRole(guard, domainauth.RoleAdmin)

	mux.Handle("POST /api/empresas", admin(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/empresas", admin(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/empresas/{id}", admin(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/empresas/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/empresas/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerUsuarioRoutes(mux *http.ServeMux, h *UsuarioHandlers, guard GuardConfig) {
	admin := RequireRole(guard, domainauth.RoleAdmin)

	mux.Handle("POST /api/usuarios", admin(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/usuarios", admin(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/usuarios/{id}", admin(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/usuarios/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/usuarios/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerCursoRoutes(mux *http.ServeMux, h *CursoHandlers, guard GuardConfig) {
	authed := RequireSession(guard)

	mux.Handle("POST /api/cursos", authed(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/cursos", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/cursos/{id}", authed(http.HandlerFunc(h.Get)))
	mux.Handle("PUT /api/cursos/{id}", authed(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/cursos/{id}", authed(http.HandlerFunc(h.Delete)))
}

func registerDocumentoRoutes(mux *http.ServeMux, h *DocumentoHandlers, guard GuardConfig) {
	authed := RequireSession(guard)
	rh := RequireRole(guard, domainauth.RoleRH)

	mux.Handle("POST /api/documentos", authed(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/documentos", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/documentos/{id}", authed(http.HandlerFunc(h.Get)))
	mux.Handle("DELETE /api/documentos/{id}", authed(http.HandlerFunc(h.Delete)))
	mux.Handle("POST /api/documentos/aprovar", rh(http.HandlerFunc(h.Approve)))
	mux.Handle("POST /api/documentos/reprovar", rh(http.HandlerFunc(h.Reject)))
}

func registerCredencialRoutes(mux *http.ServeMux, h *CredencialHandlers) {
	// Public: the invite token carried in the body is the credential.
	mux.Handle("POST /api/definir-senha", http.HandlerFunc(h.DefinirSenha))
}

func registerAcuraciaRoutes(mux *http.ServeMux, h *AcuraciaHandlers, guard GuardConfig) {
	rh := RequireRole(guard, domainauth.RoleRH)

	mux.Handle("GET /api/observabilidade/acuracia", rh(http.HandlerFunc(h.Latest)))
}
