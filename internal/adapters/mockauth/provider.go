package mockauth

// Package mockauth provides a config-free Authenticator backed by a fixed
// credential table, for demos and local development. Passwords for
// self-registered candidates are resolved through an optional directory.

import (
	"context"
	"strings"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/ports"
)

// CandidateDirectory resolves self-registered candidate accounts that are not
// part of the fixed table. A miss is reported as (zero, false, nil).
type CandidateDirectory interface {
	LookupCandidate(ctx context.Context, email, password string) (domainauth.Identity, bool, error)
}

type account struct {
	password string
	identity domainauth.Identity
}

// Provider implements ports.Authenticator against a static account table.
type Provider struct {
	accounts  map[string]account
	directory CandidateDirectory
}

var _ ports.Authenticator = (*Provider)(nil)

// NewProvider constructs the mock authenticator with the built-in demo accounts.
// directory may be nil when candidate self-registration is disabled.
func NewProvider(directory CandidateDirectory) *Provider {
	return &Provider{
		directory: directory,
		accounts: map[string]account{
			"rh@empresa.com": {
				password: "rh123@",
				identity: domainauth.Identity{
					Name:  "Recursos Humanos",
					Email: "rh@empresa.com",
					Role:  domainauth.RoleRH,
					Token: "mocked-token-rh",
				},
			},
			"admin@empresa.com": {
				password: "admin123@",
				identity: domainauth.Identity{
					Name:  "Administrador",
					Email: "admin@empresa.com",
					Role:  domainauth.RoleAdmin,
					Token: "mocked-token-admin",
				},
			},
			"candidato@empresa.com": {
				password: "candidato123@",
				identity: domainauth.Identity{
					Name:  "Candidato",
					Email: "candidato@empresa.com",
					Role:  domainauth.RoleCandidato,
					Token: "mocked-token-candidato",
				},
			},
		},
	}
}

// Login checks the fixed table first, then the candidate directory.
// Any miss yields the same invalid-credentials error; callers must not be
// able to distinguish an unknown email from a wrong password.
func (p *Provider) Login(ctx context.Context, creds ports.Credentials) (domainauth.Identity, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	if acct, ok := p.accounts[email]; ok && acct.password == creds.Password {
		return acct.identity, nil
	}

	if p.directory != nil {
		identity, found, err := p.directory.LookupCandidate(ctx, email, creds.Password)
		if err != nil {
			return domainauth.Identity{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "candidate lookup failed")
		}
		if found {
			return identity, nil
		}
	}

	return domainauth.Identity{}, apperrors.InvalidCredentials()
}
