package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/onboardhq/onboard-ui-api/internal/core"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// CandidatoServiceOptions groups dependencies for CandidatoService.
type CandidatoServiceOptions struct {
	CandidatoRepo  core.CandidatoRepository
	CredencialRepo core.CredencialRepository
}

// CandidatoService orchestrates candidate CRUD with credential lifecycle:
// creating a candidate issues an invite token for the set-password flow, and
// deleting one removes any stored credential.
type CandidatoService struct {
	candidatos  core.CandidatoRepository
	credenciais core.CredencialRepository
}

// NewCandidatoService constructs a new CandidatoService.
func NewCandidatoService(opts CandidatoServiceOptions) *CandidatoService {
	return &CandidatoService{candidatos: opts.CandidatoRepo, credenciais: opts.CredencialRepo}
}

// CreateCandidatoResult pairs the created candidate with the invite token the
// onboarding team shares via the set-password link.
type CreateCandidatoResult struct {
	Candidato   *model.Candidato `json:"candidato"`
	InviteToken string           `json:"invite_token"`
}

// Create creates a candidate and issues an invite token for it.
func (s *CandidatoService) Create(ctx context.Context, req *model.CreateCandidatoRequest) (*CreateCandidatoResult, error) {
	candidato, err := s.candidatos.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	token := uuid.NewString()
	if s.credenciais != nil {
		if _, inviteErr := s.credenciais.UpsertInvite(ctx, candidato.Email, token); inviteErr != nil {
			return nil, fmt.Errorf("issue invite: %w", inviteErr)
		}
	}

	return &CreateCandidatoResult{Candidato: candidato, InviteToken: token}, nil
}

// Reinvite issues a fresh invite token for an existing candidate. The
// candidate's current password, if any, is untouched.
func (s *CandidatoService) Reinvite(ctx context.Context, id string) (*CreateCandidatoResult, error) {
	candidato, err := s.candidatos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.credenciais == nil {
		return nil, apperrors.Internal("credential store is not configured")
	}

	token := uuid.NewString()
	if _, err := s.credenciais.UpsertInvite(ctx, candidato.Email, token); err != nil {
		return nil, fmt.Errorf("issue invite: %w", err)
	}

	return &CreateCandidatoResult{Candidato: candidato, InviteToken: token}, nil
}

// GetByID retrieves a candidate by ID.
func (s *CandidatoService) GetByID(ctx context.Context, id string) (*model.Candidato, error) {
	return s.candidatos.GetByID(ctx, id)
}

// GetByEmail retrieves a candidate by email.
func (s *CandidatoService) GetByEmail(ctx context.Context, email string) (*model.Candidato, error) {
	return s.candidatos.GetByEmail(ctx, email)
}

// List returns a page of candidates.
func (s *CandidatoService) List(ctx context.Context, opts model.CandidatosListOptions) ([]*model.Candidato, error) {
	return s.candidatos.List(ctx, opts)
}

// Count returns the total number of candidates matching the filters.
func (s *CandidatoService) Count(ctx context.Context, opts model.CandidatosListOptions) (int64, error) {
	return s.candidatos.Count(ctx, opts)
}

// Update updates a candidate.
func (s *CandidatoService) Update(ctx context.Context, id string, req model.UpdateCandidatoRequest) (*model.Candidato, error) {
	return s.candidatos.Update(ctx, id, req)
}

// Delete removes a candidate together with any stored credential.
func (s *CandidatoService) Delete(ctx context.Context, id string) (bool, error) {
	candidato, err := s.candidatos.GetByID(ctx, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	ok, err := s.candidatos.Delete(ctx, id)
	if err != nil || !ok {
		return ok, err
	}

	if s.credenciais != nil {
		if _, credErr := s.credenciais.Delete(ctx, candidato.Email); credErr != nil {
			return ok, fmt.Errorf("delete credential: %w", credErr)
		}
	}

	return ok, nil
}
