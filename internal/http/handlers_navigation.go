package httpx

import (
	"errors"
	"net/http"
	"strings"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/nav"
	"github.com/onboardhq/onboard-ui-api/internal/guard"
	"github.com/onboardhq/onboard-ui-api/internal/observability/metrics"
	"github.com/onboardhq/onboard-ui-api/internal/observability/statsd"
	"github.com/onboardhq/onboard-ui-api/internal/session"
)

// NavigationHandlers answers the client's "may I navigate here, and what
// chrome do I show" question in a single round trip.
type NavigationHandlers struct {
	Sessions *session.Manager
	// Metrics counts denials; optional.
	Metrics statsd.Sink
}

type navigationResponse struct {
	Allowed    bool            `json:"allowed"`
	RedirectTo string          `json:"redirect_to,omitempty"`
	ShowChrome bool            `json:"show_chrome"`
	MenuItems  []nav.MenuEntry `json:"menu_items"`
}

// Navigation evaluates the guard for a route and computes its visibility.
// GET /api/navigation?route=/x.
func (h *NavigationHandlers) Navigation(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Query().Get("route")
	if route == "" || !strings.HasPrefix(route, "/") {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_route",
			Err:     errors.New("route must be an absolute path"),
		})
		return
	}

	clientID := clientIDFromRequest(r)
	store := h.Sessions.Store(clientID)

	decision, err := guard.Evaluate(r.Context(), route, store)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !decision.Allow {
		metrics.EmitGuardDenial(h.Metrics, route, "navigation")
	}

	var identity *domainauth.Identity
	if current, present := store.Current(r.Context()); present {
		identity = &current
	}
	visibility := nav.Compute(route, identity)

	menu := visibility.MenuItems
	if menu == nil {
		menu = []nav.MenuEntry{}
	}

	WriteJSON(w, http.StatusOK, navigationResponse{
		Allowed:    decision.Allow,
		RedirectTo: decision.RedirectTo,
		ShowChrome: visibility.ShowChrome,
		MenuItems:  menu,
	})
}

// clientIDFromRequest reads the stable client cookie. Requests without one
// evaluate guards against an empty, logged-out store.
func clientIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(clientCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
