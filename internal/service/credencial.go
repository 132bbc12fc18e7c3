package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/onboardhq/onboard-ui-api/internal/core"
	"github.com/onboardhq/onboard-ui-api/internal/data/cryptoutil"
	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

const minSenhaLength = 8

// CredencialServiceOptions groups dependencies for CredencialService.
type CredencialServiceOptions struct {
	CredencialRepo core.CredencialRepository
	CandidatoRepo  core.CandidatoRepository
	Hasher         cryptoutil.PasswordHasher
}

// CredencialService implements the candidate set-password flow: an invite
// token issued at candidate creation is redeemed exactly once for a password,
// after which the candidate can log in with email and senha. It also serves
// as the candidate directory for the credential authenticators.
type CredencialService struct {
	credenciais core.CredencialRepository
	candidatos  core.CandidatoRepository
	hasher      cryptoutil.PasswordHasher
}

// NewCredencialService constructs a new CredencialService.
func NewCredencialService(opts CredencialServiceOptions) *CredencialService {
	hasher := opts.Hasher
	if hasher == nil {
		hasher = cryptoutil.NewBcryptHasher()
	}
	return &CredencialService{
		credenciais: opts.CredencialRepo,
		candidatos:  opts.CandidatoRepo,
		hasher:      hasher,
	}
}

// DefinirSenha redeems an invite token for a password. The token is consumed
// on success; redeeming it again fails with not found.
func (s *CredencialService) DefinirSenha(ctx context.Context, token, senha string) error {
	if strings.TrimSpace(token) == "" {
		return apperrors.Validation("token is required")
	}
	if len(senha) < minSenhaLength {
		return apperrors.Validationf("senha must be at least %d characters", minSenhaLength)
	}

	hash, err := s.hasher.Hash(senha)
	if err != nil {
		return fmt.Errorf("hash senha: %w", err)
	}

	if _, err := s.credenciais.SetPasswordByToken(ctx, token, hash); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFound("invite token not found or already used")
		}
		return fmt.Errorf("set password: %w", err)
	}

	return nil
}

// LookupCandidate resolves a candidate login against the credential store.
// Unknown emails, unset passwords, and mismatches all report (zero, false,
// nil) so the caller can fall through to its own denial handling.
func (s *CredencialService) LookupCandidate(ctx context.Context, email, password string) (domainauth.Identity, bool, error) {
	cred, err := s.credenciais.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return domainauth.Identity{}, false, nil
		}
		return domainauth.Identity{}, false, fmt.Errorf("get credential: %w", err)
	}
	if cred.SenhaHash == nil {
		return domainauth.Identity{}, false, nil
	}

	ok, err := s.hasher.Verify(*cred.SenhaHash, password)
	if err != nil {
		return domainauth.Identity{}, false, fmt.Errorf("verify senha: %w", err)
	}
	if !ok {
		return domainauth.Identity{}, false, nil
	}

	candidato, err := s.candidatos.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return domainauth.Identity{}, false, nil
		}
		return domainauth.Identity{}, false, fmt.Errorf("get candidato: %w", err)
	}

	return domainauth.Identity{
		Name:  candidato.Nome,
		Email: candidato.Email,
		Role:  domainauth.RoleCandidato,
		Token: uuid.NewString(),
	}, true, nil
}
