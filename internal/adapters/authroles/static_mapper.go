package authroles

// Package authroles maps IdP group claims to application roles.

import (
	"strings"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// StaticRoleMapper maps configured group names to roles. Matching is
// case-insensitive on the full group string. Admin wins over RH, RH over
// candidato, when a user belongs to more than one group. A user in none of
// the configured groups gets no role.
type StaticRoleMapper struct {
	AdminGroup     string
	RHGroup        string
	CandidatoGroup string
}

var _ ports.RoleMapper = (*StaticRoleMapper)(nil)

func (m *StaticRoleMapper) Map(groups []string) (domainauth.Role, bool) {
	var hasRH, hasCandidato bool
	for _, g := range groups {
		switch {
		case equalsGroup(g, m.AdminGroup):
			return domainauth.RoleAdmin, true
		case equalsGroup(g, m.RHGroup):
			hasRH = true
		case equalsGroup(g, m.CandidatoGroup):
			hasCandidato = true
		}
	}
	if hasRH {
		return domainauth.RoleRH, true
	}
	if hasCandidato {
		return domainauth.RoleCandidato, true
	}
	return "", false
}

func equalsGroup(got, want string) bool {
	return want != "" && strings.EqualFold(strings.TrimSpace(got), want)
}
