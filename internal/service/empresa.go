package service

import (
	"context"

	"github.com/onboardhq/onboard-ui-api/internal/core"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
)

// EmpresaServiceOptions groups dependencies for EmpresaService.
type EmpresaServiceOptions struct {
	EmpresaRepo core.EmpresaRepository
}

// EmpresaService provides company CRUD.
type EmpresaService struct {
	empresas core.EmpresaRepository
}

// NewEmpresaService constructs a new EmpresaService.
func NewEmpresaService(opts EmpresaServiceOptions) *EmpresaService {
	return &EmpresaService{empresas: opts.EmpresaRepo}
}

// Create creates a company.
func (s *EmpresaService) Create(ctx context.Context, req *model.CreateEmpresaRequest) (*model.Empresa, error) {
	return s.empresas.Create(ctx, req)
}

// GetByID retrieves a company by ID.
func (s *EmpresaService) GetByID(ctx context.Context, id string) (*model.Empresa, error) {
	return s.empresas.GetByID(ctx, id)
}

// List returns a page of companies.
func (s *EmpresaService) List(ctx context.Context, opts model.EmpresasListOptions) ([]*model.Empresa, error) {
	return s.empresas.List(ctx, opts)
}

// Update updates a company.
func (s *EmpresaService) Update(ctx context.Context, id string, req model.UpdateEmpresaRequest) (*model.Empresa, error) {
	return s.empresas.Update(ctx, id, req)
}

// Delete removes a company.
func (s *EmpresaService) Delete(ctx context.Context, id string) (bool, error) {
	return s.empresas.Delete(ctx, id)
}
