package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// mockSessionAuthority is a test double for SessionAuthority.
type mockSessionAuthority struct {
	getSessionFunc func(ctx context.Context, sessionID string) (*domainauth.Session, error)
}

func (m *mockSessionAuthority) GetSession(
	ctx context.Context,
	sessionID string,
) (*domainauth.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, sessionID)
	}
	return &domainauth.Session{
		ID:        sessionID,
		Name:      "Recursos Humanos",
		Email:     "rh@empresa.com",
		Role:      domainauth.RoleRH,
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// recordingCounter captures denial metric emissions.
type recordingCounter struct {
	mu    sync.Mutex
	calls []map[string]string
}

func (c *recordingCounter) Count(_ string, _ int64, tags map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, tags)
}

func (c *recordingCounter) Gauge(string, float64, map[string]string) {}

func (c *recordingCounter) Timing(string, time.Duration, map[string]string) {}

func (c *recordingCounter) reasons() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, tags := range c.calls {
		out = append(out, tags["reason"])
	}
	return out
}

func sessionProbe(t *testing.T, captured **domainauth.Session) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession_Success(t *testing.T) {
	var captured *domainauth.Session
	middleware := RequireSession(GuardConfig{Auth: &mockSessionAuthority{}})

	req := httptest.NewRequest(http.MethodGet, "/api/cursos", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	w := httptest.NewRecorder()

	middleware(sessionProbe(t, &captured)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured, "session must reach the handler context")
	assert.Equal(t, "rh@empresa.com", captured.Email)
}

func TestRequireSession_NoCookie(t *testing.T) {
	metrics := &recordingCounter{}
	middleware := RequireSession(GuardConfig{Auth: &mockSessionAuthority{}, Metrics: metrics})

	req := httptest.NewRequest(http.MethodGet, "/api/cursos", nil)
	w := httptest.NewRecorder()

	called := false
	middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
	assert.Equal(t, []string{"no_session"}, metrics.reasons())
}

func TestRequireSession_InvalidSession(t *testing.T) {
	middleware := RequireSession(GuardConfig{Auth: &mockSessionAuthority{
		getSessionFunc: func(context.Context, string) (*domainauth.Session, error) {
			return nil, apperrors.NotFound("session not found")
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/cursos", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
	w := httptest.NewRecorder()

	middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	var captured *domainauth.Session
	middleware := RequireRole(GuardConfig{Auth: &mockSessionAuthority{}}, domainauth.RoleRH, domainauth.RoleCandidato)

	req := httptest.NewRequest(http.MethodGet, "/api/candidatos", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	w := httptest.NewRecorder()

	middleware(sessionProbe(t, &captured)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured)
	assert.Equal(t, domainauth.RoleRH, captured.Role)
}

// Roles are disjoint: admin does not pass an rh-only gate.
func TestRequireRole_AdminIsNotRH(t *testing.T) {
	metrics := &recordingCounter{}
	auth := &mockSessionAuthority{
		getSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			return &domainauth.Session{
				ID:        sessionID,
				Email:     "admin@empresa.com",
				Role:      domainauth.RoleAdmin,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	middleware := RequireRole(GuardConfig{Auth: auth, Metrics: metrics}, domainauth.RoleRH)

	req := httptest.NewRequest(http.MethodGet, "/api/candidatos", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "sess-1"})
	w := httptest.NewRecorder()

	middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, []string{"role"}, metrics.reasons())
}

func TestRequireRole_NoSession(t *testing.T) {
	middleware := RequireRole(GuardConfig{Auth: &mockSessionAuthority{}}, domainauth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/empresas", nil)
	w := httptest.NewRecorder()

	middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run")
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecoverMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Recover(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/candidatos", nil)
	w := httptest.NewRecorder()

	require.NotPanics(t, func() { handler.ServeHTTP(w, req) })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTeapot, w.Code)
}
