//revive:disable-next-line:var-naming // short package name mirrors the navigation domain
package nav

// Package nav derives UI visibility decisions from the current route and
// identity: whether navigation chrome is shown at all, and which side-menu
// entries the identity may see. This is pure derived state, always
// recomputable from (route, identity) and never a source of truth.

import (
	"strings"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
)

// MenuEntry is one side-menu item. Icon names follow the PrimeNG icon set
// the SPA renders.
type MenuEntry struct {
	Label        string `json:"label"`
	Icon         string `json:"icon"`
	Route        string `json:"route"`
	RequiresAuth bool   `json:"requires_auth"`
}

// Visibility is the derived pair for one (route, identity) combination.
type Visibility struct {
	ShowChrome bool        `json:"show_chrome"`
	MenuItems  []MenuEntry `json:"menu_items"`
}

// chromelessPrefixes are the route prefixes where the top bar and side menu
// are hidden entirely.
var chromelessPrefixes = []string{"/login", "/definir-senha"}

// masterMenu is the full ordered menu; filtering never reorders it.
var masterMenu = []MenuEntry{
	{Label: "nav.home", Icon: "pi pi-home", Route: "/home", RequiresAuth: false},
	{Label: "nav.acompanhamento", Icon: "pi pi-file", Route: "/acompanhamento-documentos", RequiresAuth: true},
	{Label: "nav.candidatos", Icon: "pi pi-users", Route: "/candidatos", RequiresAuth: true},
	{Label: "nav.observability", Icon: "pi pi-chart-bar", Route: "/observabilidade", RequiresAuth: false},
	{Label: "nav.empresas", Icon: "pi pi-building", Route: "/empresas", RequiresAuth: true},
	{Label: "nav.controle-acessos", Icon: "pi pi-users", Route: "/controle-acessos", RequiresAuth: true},
}

// roleMenuRoutes is the per-role allow-list over masterMenu routes.
// An unknown role matches nothing: the role-based menu fails closed.
var roleMenuRoutes = map[domainauth.Role][]string{
	domainauth.RoleAdmin:     {"/empresas", "/controle-acessos"},
	domainauth.RoleRH:        {"/acompanhamento-documentos", "/candidatos", "/observabilidade"},
	domainauth.RoleCandidato: {"/acompanhamento-documentos"},
}

// landingRoutes maps each role to its post-login destination.
var landingRoutes = map[domainauth.Role]string{
	domainauth.RoleAdmin:     "/controle-acessos",
	domainauth.RoleRH:        "/candidatos",
	domainauth.RoleCandidato: "/acompanhamento-documentos",
}

// LoginRoute is the public landing route unauthenticated clients are sent to.
const LoginRoute = "/login"

// LandingRoute returns the default authenticated landing route for a role.
// Unrecognized roles land on the root route.
func LandingRoute(role domainauth.Role) string {
	if route, ok := landingRoutes[role]; ok {
		return route
	}
	return "/"
}

// Compute derives the visibility pair for a route and an identity. Pass a
// nil identity for an unauthenticated session.
func Compute(route string, identity *domainauth.Identity) Visibility {
	return Visibility{
		ShowChrome: showChrome(route),
		MenuItems:  menuFor(identity),
	}
}

func showChrome(route string) bool {
	for _, prefix := range chromelessPrefixes {
		if strings.HasPrefix(route, prefix) {
			return false
		}
	}
	return true
}

func menuFor(identity *domainauth.Identity) []MenuEntry {
	menu := make([]MenuEntry, len(masterMenu))
	copy(menu, masterMenu)

	if identity != nil {
		applyHomeOverride(menu, identity.Role)
	}

	if identity == nil {
		return filterMenu(menu, func(e MenuEntry) bool { return !e.RequiresAuth })
	}

	allowed := roleMenuRoutes[identity.Role] // nil for unknown roles: fail closed
	return filterMenu(menu, func(e MenuEntry) bool {
		for _, route := range allowed {
			if e.Route == route {
				return true
			}
		}
		return false
	})
}

// applyHomeOverride rewrites the home entry's target for HR users. This is a
// presentation-routing override, not an authorization decision, so it stays
// separate from the filter predicate.
func applyHomeOverride(menu []MenuEntry, role domainauth.Role) {
	if role != domainauth.RoleRH {
		return
	}
	for i := range menu {
		if menu[i].Route == "/home" {
			menu[i].Route = "/sobre-nos"
			return
		}
	}
}

func filterMenu(menu []MenuEntry, keep func(MenuEntry) bool) []MenuEntry {
	out := make([]MenuEntry, 0, len(menu))
	for _, entry := range menu {
		if keep(entry) {
			out = append(out, entry)
		}
	}
	return out
}
