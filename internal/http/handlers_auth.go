package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/observability/metrics"
	"github.com/onboardhq/onboard-ui-api/internal/observability/statsd"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
	"github.com/onboardhq/onboard-ui-api/internal/service"
	"github.com/onboardhq/onboard-ui-api/internal/session"
)

// AuthServiceInterface defines the interface for auth service operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, clientID string, creds ports.Credentials) (*service.LoginResult, error)
	BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLogin(ctx context.Context, clientID string, input service.CompleteLoginInput) (*service.LoginResult, error)
	GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error)
	Logout(ctx context.Context, sessionID, clientID string) (string, error)
}

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc          AuthServiceInterface
	Sessions     *session.Manager
	CookieDomain string
	Logger       *slog.Logger
	// Metrics and AuthMode feed the login attempt counters; both optional.
	Metrics  statsd.Sink
	AuthMode string
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

func (h *AuthHandlers) emitLogin(err error, elapsed time.Duration) {
	result := metrics.ResultSuccess
	switch {
	case apperrors.IsInvalidCredentials(err):
		result = metrics.ResultDenied
	case err != nil:
		result = metrics.ResultError
	}
	metrics.EmitLogin(h.Metrics, metrics.LoginMetric{
		Mode:     h.AuthMode,
		Result:   result,
		Duration: elapsed,
	})
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type userPayload struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role"`
}

// Login handles the credential login endpoint.
// POST /api/login {email, senha}.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	clientID := h.ensureClientID(w, r)

	start := time.Now()
	result, err := h.Svc.Login(r.Context(), clientID, ports.Credentials{Email: req.Email, Password: req.Senha})
	h.emitLogin(err, time.Since(start))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, result.Session)

	WriteJSON(w, http.StatusOK, map[string]any{
		"user": userPayload{
			Name:  result.Session.Name,
			Email: result.Session.Email,
			Role:  result.Session.Role,
		},
		"redirect_to": result.RedirectTo,
	})
}

// Logout handles the logout endpoint.
// POST /api/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	var sessionID string
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sessionID = cookie.Value
	}
	clientID := h.clientID(r)

	redirectTo, err := h.Svc.Logout(r.Context(), sessionID, clientID)
	if err != nil {
		h.logger().WarnContext(r.Context(), "logout failed", "error", err)
		redirectTo = "/login"
	}

	h.clearCookie(w, r, sessionCookieName)

	WriteJSON(w, http.StatusOK, map[string]string{"redirect_to": redirectTo})
}

// Session returns the current authentication status.
// GET /api/session.
func (h *AuthHandlers) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	sess, err := h.Svc.GetSession(r.Context(), cookie.Value)
	if err != nil {
		// Session is invalid or expired, clear the cookie.
		h.clearCookie(w, r, sessionCookieName)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          userPayload{Name: sess.Name, Email: sess.Email, Role: sess.Role},
		"expires_at":    sess.ExpiresAt,
	})
}

// sessionEvent is one SSE frame on the session watch stream.
type sessionEvent struct {
	Authenticated bool         `json:"authenticated"`
	User          *userPayload `json:"user,omitempty"`
}

// Watch streams session state changes as server-sent events. The stream
// opens with the current state and then emits every transition in order
// until the client disconnects.
// GET /api/session/watch.
func (h *AuthHandlers) Watch(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "streaming_unsupported",
			Err:     errors.New("response writer does not support streaming"),
		})
		return
	}

	clientID := h.ensureClientID(w, r)
	states := h.Sessions.Store(clientID).Watch(r.Context())

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case state, open := <-states:
			if !open {
				return
			}
			if err := writeSSE(w, state); err != nil {
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func writeSSE(w http.ResponseWriter, state session.State) error {
	event := sessionEvent{Authenticated: state.Present}
	if state.Present {
		event.User = &userPayload{
			Name:  state.Identity.Name,
			Email: state.Identity.Email,
			Role:  state.Identity.Role,
		}
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}

// OIDCLogin initiates the redirect login flow.
// GET /auth/login?redirect_uri=<optional_redirect>.
func (h *AuthHandlers) OIDCLogin(w http.ResponseWriter, r *http.Request) {
	redirectURI := safeRedirectPath(r.URL.Query().Get("redirect_uri"))

	result, err := h.Svc.BeginLogin(r.Context(), redirectURI)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "login_failed",
			Err:     errors.New("failed to begin login"),
		})
		return
	}

	h.setOAuthCookies(w, r, oauthCookieParams{State: result.State, Nonce: result.Nonce})

	http.Redirect(w, r, result.AuthURL, http.StatusFound)
}

// OIDCCallback completes the redirect login flow.
// GET /auth/callback?code=<code>&state=<state>.
func (h *AuthHandlers) OIDCCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	if code == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_code",
			Err:     errors.New("authorization code is required"),
		})
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookieName)
	if err != nil || state == "" || stateCookie.Value != state {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_state",
			Err:     errors.New("invalid or missing state parameter"),
		})
		return
	}
	nonceCookie, err := r.Cookie(oauthNonceCookieName)
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_nonce",
			Err:     errors.New("missing nonce parameter"),
		})
		return
	}

	clientID := h.ensureClientID(w, r)

	result, err := h.Svc.CompleteLogin(r.Context(), clientID, service.CompleteLoginInput{
		Code:  code,
		State: state,
		Nonce: nonceCookie.Value,
	})
	if err != nil {
		h.logger().WarnContext(r.Context(), "login completion failed", "error", err)
		WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, r, result.Session)
	h.clearCookie(w, r, oauthStateCookieName)
	h.clearCookie(w, r, oauthNonceCookieName)

	http.Redirect(w, r, result.RedirectTo, http.StatusFound)
}

// clientID returns the stable client ID cookie value, or empty.
func (h *AuthHandlers) clientID(r *http.Request) string {
	cookie, err := r.Cookie(clientCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ensureClientID returns the client ID, minting and setting the cookie when
// the browser does not carry one yet.
func (h *AuthHandlers) ensureClientID(w http.ResponseWriter, r *http.Request) string {
	if id := h.clientID(r); id != "" {
		return id
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     clientCookieName,
		Value:    id,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
	})
	return id
}

func (h *AuthHandlers) setSessionCookie(w http.ResponseWriter, r *http.Request, sess domainauth.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
		Expires:  sess.ExpiresAt,
	})
}

// clearCookie clears a cookie by setting it to expire immediately.
func (h *AuthHandlers) clearCookie(w http.ResponseWriter, r *http.Request, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   isSecureRequest(r),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		SameSite: http.SameSiteLaxMode,
	})
}

// oauthCookieParams groups values for the temporary OAuth cookies.
type oauthCookieParams struct {
	State string
	Nonce string
}

// setOAuthCookies stores OAuth state and nonce in short-lived secure cookies.
func (h *AuthHandlers) setOAuthCookies(w http.ResponseWriter, r *http.Request, p oauthCookieParams) {
	const oauthCookieTTL = 10 * time.Minute
	isSecure := isSecureRequest(r)

	for name, value := range map[string]string{
		oauthStateCookieName: p.State,
		oauthNonceCookieName: p.Nonce,
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			Domain:   h.CookieDomain,
			HttpOnly: true,
			Secure:   isSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   int(oauthCookieTTL.Seconds()),
		})
	}
}

func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// safeRedirectPath allows only relative paths; anything else falls back to
// the root route.
func safeRedirectPath(redirectURI string) string {
	if redirectURI == "" {
		return "/"
	}
	u, err := url.Parse(redirectURI)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return redirectURI
}
