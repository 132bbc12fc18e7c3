package guard

import (
	"context"
	"strings"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/nav"
)

// Requirement tags a navigable route with its guard at routing-table
// configuration time. The classification is static data, not computed state.
type Requirement int

const (
	// ReqPublic routes carry no guard.
	ReqPublic Requirement = iota
	// ReqNoSession routes (the login page) run the Exit guard.
	ReqNoSession
	// ReqSession routes run the Entry guard; routes with Roles set
	// additionally run the Role guard.
	ReqSession
	// ReqUnmatched is the wildcard fallback: always redirect to login.
	ReqUnmatched
)

// Route is one row of the routing table.
type Route struct {
	Prefix      string
	Requirement Requirement
	Roles       []domainauth.Role
}

// Routes is the static classification of every navigable path prefix.
// Longest prefix wins; anything unmatched falls through to the login
// redirect, mirroring the SPA's `**` route.
var Routes = []Route{
	{Prefix: "/login", Requirement: ReqNoSession},
	{Prefix: "/definir-senha", Requirement: ReqPublic},
	{Prefix: "/sobre-nos", Requirement: ReqPublic},
	{Prefix: "/home", Requirement: ReqSession},
	{Prefix: "/usuario", Requirement: ReqSession},
	{Prefix: "/curso", Requirement: ReqSession},
	{Prefix: "/candidatos", Requirement: ReqSession, Roles: []domainauth.Role{domainauth.RoleRH}},
	{Prefix: "/controle-acessos", Requirement: ReqSession, Roles: []domainauth.Role{domainauth.RoleAdmin}},
	{Prefix: "/observabilidade", Requirement: ReqSession, Roles: []domainauth.Role{domainauth.RoleRH}},
	{
		Prefix:      "/acompanhamento-documentos",
		Requirement: ReqSession,
		Roles:       []domainauth.Role{domainauth.RoleRH, domainauth.RoleCandidato},
	},
	{Prefix: "/empresas", Requirement: ReqSession, Roles: []domainauth.Role{domainauth.RoleAdmin}},
}

// Classify returns the routing-table row for a path, or the wildcard
// fallback when nothing matches.
func Classify(path string) Route {
	best := Route{Requirement: ReqUnmatched}
	bestLen := -1
	for _, route := range Routes {
		if strings.HasPrefix(path, route.Prefix) && len(route.Prefix) > bestLen {
			best = route
			bestLen = len(route.Prefix)
		}
	}
	return best
}

// Evaluate classifies the path and runs the applicable guard against the
// source, exactly once.
func Evaluate(ctx context.Context, path string, src Source) (Decision, error) {
	route := Classify(path)
	switch route.Requirement {
	case ReqPublic:
		return allow(), nil
	case ReqNoSession:
		return Exit(ctx, src)
	case ReqSession:
		if len(route.Roles) > 0 {
			return Role(ctx, src, route.Roles...)
		}
		return Entry(ctx, src)
	default:
		return redirect(nav.LoginRoute), nil
	}
}
