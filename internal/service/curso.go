package service

import (
	"context"

	"github.com/onboardhq/onboard-ui-api/internal/core"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
)

// CursoServiceOptions groups dependencies for CursoService.
type CursoServiceOptions struct {
	CursoRepo core.CursoRepository
}

// CursoService provides course-progress CRUD.
type CursoService struct {
	cursos core.CursoRepository
}

// NewCursoService constructs a new CursoService.
func NewCursoService(opts CursoServiceOptions) *CursoService {
	return &CursoService{cursos: opts.CursoRepo}
}

// Create creates a course progress record.
func (s *CursoService) Create(ctx context.Context, req *model.CreateCursoRequest) (*model.Curso, error) {
	return s.cursos.Create(ctx, req)
}

// GetByID retrieves a course record by ID.
func (s *CursoService) GetByID(ctx context.Context, id string) (*model.Curso, error) {
	return s.cursos.GetByID(ctx, id)
}

// List returns a page of course records.
func (s *CursoService) List(ctx context.Context, opts model.CursosListOptions) ([]*model.Curso, error) {
	return s.cursos.List(ctx, opts)
}

// Update updates a course record.
func (s *CursoService) Update(ctx context.Context, id string, req model.UpdateCursoRequest) (*model.Curso, error) {
	return s.cursos.Update(ctx, id, req)
}

// Delete removes a course record.
func (s *CursoService) Delete(ctx context.Context, id string) (bool, error) {
	return s.cursos.Delete(ctx, id)
}
