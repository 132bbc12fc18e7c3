package nav

import (
	"testing"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityWithRole(role domainauth.Role) *domainauth.Identity {
	return &domainauth.Identity{Name: "Someone", Email: "someone@empresa.com", Role: role, Token: "t"}
}

func menuRoutes(items []MenuEntry) []string {
	routes := make([]string, 0, len(items))
	for _, item := range items {
		routes = append(routes, item.Route)
	}
	return routes
}

func TestCompute_ChromeHiddenOnLoginAndSetPassword(t *testing.T) {
	t.Parallel()

	assert.False(t, Compute("/login", nil).ShowChrome)
	assert.False(t, Compute("/definir-senha", nil).ShowChrome)
	assert.False(t, Compute("/definir-senha/abc123", nil).ShowChrome)
	assert.True(t, Compute("/home", nil).ShowChrome)
	assert.True(t, Compute("/candidatos", identityWithRole(domainauth.RoleRH)).ShowChrome)
}

func TestCompute_UnauthenticatedSeesOnlyPublicEntries(t *testing.T) {
	t.Parallel()

	v := Compute("/home", nil)
	assert.Equal(t, []string{"/home", "/observabilidade"}, menuRoutes(v.MenuItems))
}

func TestCompute_RoleMenus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role domainauth.Role
		want []string
	}{
		{domainauth.RoleAdmin, []string{"/empresas", "/controle-acessos"}},
		{domainauth.RoleRH, []string{"/acompanhamento-documentos", "/candidatos", "/observabilidade"}},
		{domainauth.RoleCandidato, []string{"/acompanhamento-documentos"}},
	}

	for _, tt := range tests {
		v := Compute("/home", identityWithRole(tt.role))
		assert.Equal(t, tt.want, menuRoutes(v.MenuItems), "role %s", tt.role)
	}
}

func TestCompute_RHMenuExcludesEmpresas(t *testing.T) {
	t.Parallel()

	v := Compute("/candidatos", identityWithRole(domainauth.RoleRH))
	assert.NotContains(t, menuRoutes(v.MenuItems), "/empresas")
}

func TestCompute_UnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	v := Compute("/home", identityWithRole(domainauth.Role("gerente")))
	assert.Empty(t, v.MenuItems)
}

func TestCompute_MenuNeverNil(t *testing.T) {
	t.Parallel()

	v := Compute("/home", identityWithRole(domainauth.Role("gerente")))
	require.NotNil(t, v.MenuItems)
}

func TestLandingRoute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/controle-acessos", LandingRoute(domainauth.RoleAdmin))
	assert.Equal(t, "/candidatos", LandingRoute(domainauth.RoleRH))
	assert.Equal(t, "/acompanhamento-documentos", LandingRoute(domainauth.RoleCandidato))
	assert.Equal(t, "/", LandingRoute(domainauth.Role("gerente")))
}
