package authroles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
)

func newMapper() *StaticRoleMapper {
	return &StaticRoleMapper{
		AdminGroup:     "onboard-admins",
		RHGroup:        "onboard-rh",
		CandidatoGroup: "onboard-candidatos",
	}
}

func TestStaticRoleMapper_Map(t *testing.T) {
	m := newMapper()

	tests := []struct {
		name     string
		groups   []string
		wantRole domainauth.Role
		wantOK   bool
	}{
		{"admin group", []string{"onboard-admins"}, domainauth.RoleAdmin, true},
		{"rh group", []string{"onboard-rh"}, domainauth.RoleRH, true},
		{"candidato group", []string{"onboard-candidatos"}, domainauth.RoleCandidato, true},
		{"admin wins over rh", []string{"onboard-rh", "onboard-admins"}, domainauth.RoleAdmin, true},
		{"rh wins over candidato", []string{"onboard-candidatos", "onboard-rh"}, domainauth.RoleRH, true},
		{"case insensitive", []string{"Onboard-Admins"}, domainauth.RoleAdmin, true},
		{"whitespace trimmed", []string{"  onboard-rh "}, domainauth.RoleRH, true},
		{"unknown groups", []string{"finance", "it"}, "", false},
		{"no groups", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := m.Map(tt.groups)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestStaticRoleMapper_EmptyConfigMatchesNothing(t *testing.T) {
	m := &StaticRoleMapper{}

	_, ok := m.Map([]string{"", "onboard-admins"})
	assert.False(t, ok)
}
