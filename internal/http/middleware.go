package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/observability/metrics"
	"github.com/onboardhq/onboard-ui-api/internal/observability/statsd"
)

// SessionAuthority resolves session cookies into sessions. AuthService
// satisfies this.
type SessionAuthority interface {
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
}


// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush forwards to the wrapped writer so SSE streaming keeps working
// behind the logging middleware.
func (w *respWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GuardConfig groups dependencies for the session-gating middleware.
type GuardConfig struct {
	Auth SessionAuthority
	// Metrics counts denials; optional.
	Metrics statsd.Sink
}

// RequireSession returns a middleware that rejects requests without a valid
// session. The session is added to the request context for handlers.
func RequireSession(cfg GuardConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := getSessionFromRequest(r, cfg.Auth)
			if sess == nil {
				cfg.countDenial(r, "no_session")
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}

			ctx := SetSessionInContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns a middleware that additionally requires the session
// role to be in the allow-list. Roles are disjoint, not hierarchical: an
// admin is not implicitly an rh.
func RequireRole(cfg GuardConfig, allowed ...domainauth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := getSessionFromRequest(r, cfg.Auth)
			if sess == nil {
				cfg.countDenial(r, "no_session")
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "authentication_required",
					Err:     errors.New("authentication required"),
				})
				return
			}

			if !roleAllowed(sess.Role, allowed) {
				cfg.countDenial(r, "role")
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "insufficient_permissions",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			ctx := SetSessionInContext(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (cfg GuardConfig) countDenial(r *http.Request, reason string) {
	metrics.EmitGuardDenial(cfg.Metrics, r.URL.Path, reason)
}

func roleAllowed(role domainauth.Role, allowed []domainauth.Role) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// getSessionFromRequest retrieves and validates a session from the request.
func getSessionFromRequest(r *http.Request, auth SessionAuthority) *domainauth.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	sess, err := auth.GetSession(r.Context(), cookie.Value)
	if err != nil {
		return nil
	}
	return sess
}
