package service

import (
	"context"

	"github.com/onboardhq/onboard-ui-api/internal/core"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
)

// UsuarioServiceOptions groups dependencies for UsuarioService.
type UsuarioServiceOptions struct {
	UsuarioRepo core.UsuarioRepository
}

// UsuarioService provides platform-user CRUD for the access-control screens.
type UsuarioService struct {
	usuarios core.UsuarioRepository
}

// NewUsuarioService constructs a new UsuarioService.
func NewUsuarioService(opts UsuarioServiceOptions) *UsuarioService {
	return &UsuarioService{usuarios: opts.UsuarioRepo}
}

// Create creates a user.
func (s *UsuarioService) Create(ctx context.Context, req *model.CreateUsuarioRequest) (*model.Usuario, error) {
	return s.usuarios.Create(ctx, req)
}

// GetByID retrieves a user by ID.
func (s *UsuarioService) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	return s.usuarios.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (s *UsuarioService) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	return s.usuarios.GetByEmail(ctx, email)
}

// List returns a page of users.
func (s *UsuarioService) List(ctx context.Context, opts model.UsuariosListOptions) ([]*model.Usuario, error) {
	return s.usuarios.List(ctx, opts)
}

// Update updates a user.
func (s *UsuarioService) Update(ctx context.Context, id string, req model.UpdateUsuarioRequest) (*model.Usuario, error) {
	return s.usuarios.Update(ctx, id, req)
}

// Delete removes a user.
func (s *UsuarioService) Delete(ctx context.Context, id string) (bool, error) {
	return s.usuarios.Delete(ctx, id)
}
