package core

import (
	"context"

	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// CandidatoRepository defines the interface for candidate data operations.
type CandidatoRepository interface {
	Create(ctx context.Context, req *model.CreateCandidatoRequest) (*model.Candidato, error)
	GetByID(ctx context.Context, id string) (*model.Candidato, error)
	GetByEmail(ctx context.Context, email string) (*model.Candidato, error)
	List(ctx context.Context, opts model.CandidatosListOptions) ([]*model.Candidato, error)
	Count(ctx context.Context, opts model.CandidatosListOptions) (int64, error)
	Update(ctx context.Context, id string, req model.UpdateCandidatoRequest) (*model.Candidato, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EmpresaRepository defines the interface for company data operations.
type EmpresaRepository interface {
	Create(ctx context.Context, req *model.CreateEmpresaRequest) (*model.Empresa, error)
	GetByID(ctx context.Context, id string) (*model.Empresa, error)
	List(ctx context.Context, opts model.EmpresasListOptions) ([]*model.Empresa, error)
	Update(ctx context.Context, id string, req model.UpdateEmpresaRequest) (*model.Empresa, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// UsuarioRepository defines the interface for user data operations.
type UsuarioRepository interface {
	Create(ctx context.Context, req *model.CreateUsuarioRequest) (*model.Usuario, error)
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	List(ctx context.Context, opts model.UsuariosListOptions) ([]*model.Usuario, error)
	Update(ctx context.Context, id string, req model.UpdateUsuarioRequest) (*model.Usuario, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CursoRepository defines the interface for course progress data operations.
type CursoRepository interface {
	Create(ctx context.Context, req *model.CreateCursoRequest) (*model.Curso, error)
	GetByID(ctx context.Context, id string) (*model.Curso, error)
	List(ctx context.Context, opts model.CursosListOptions) ([]*model.Curso, error)
	Update(ctx context.Context, id string, req model.UpdateCursoRequest) (*model.Curso, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DocumentoRepository defines the interface for document data operations.
// SetStatus returns the updated document plus the status it transitioned from.
type DocumentoRepository interface {
	Create(ctx context.Context, req *model.CreateDocumentoRequest) (*model.Documento, error)
	GetByID(ctx context.Context, id string) (*model.Documento, error)
	GetByFilename(ctx context.Context, filename, email string) (*model.Documento, error)
	List(ctx context.Context, opts model.DocumentosListOptions) ([]*model.Documento, error)
	SetStatus(ctx context.Context, filename, email string, status model.DocumentoStatus) (*model.Documento, model.DocumentoStatus, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CredencialRepository defines the interface for candidate credential operations.
type CredencialRepository interface {
	UpsertInvite(ctx context.Context, email, token string) (*model.Credencial, error)
	SetPasswordByToken(ctx context.Context, token, senhaHash string) (*model.Credencial, error)
	GetByEmail(ctx context.Context, email string) (*model.Credencial, error)
	Delete(ctx context.Context, email string) (bool, error)
}
