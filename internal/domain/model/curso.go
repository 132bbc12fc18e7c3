package model

import (
	"errors"
	"strings"
	"time"
)

// Curso tracks a user's progress through an onboarding course.
type Curso struct {
	ID             string    `json:"id"              db:"id"`
	UsuarioID      string    `json:"usuario_id"      db:"usuario_id"`
	Iniciado       bool      `json:"iniciado"        db:"iniciado"`
	NivelInicial   int       `json:"nivel_inicial"   db:"nivel_inicial"`
	NivelAtual     int       `json:"nivel_atual"     db:"nivel_atual"`
	UnidadeAtual   int       `json:"unidade_atual"   db:"unidade_atual"`
	UnidadesFeitas int       `json:"unidades_feitas" db:"unidades_feitas"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"      db:"updated_at"`
}

// CursosListOptions controls paging and filtering for listing courses.
type CursosListOptions struct {
	Limit     int
	Offset    int
	UsuarioID *string
	Iniciado  *bool
}

// CreateCursoRequest represents parameters to create a Curso.
type CreateCursoRequest struct {
	UsuarioID      string `json:"usuario_id"`
	Iniciado       *bool  `json:"iniciado,omitempty"`
	NivelInicial   int    `json:"nivel_inicial"`
	NivelAtual     *int   `json:"nivel_atual,omitempty"`
	UnidadeAtual   *int   `json:"unidade_atual,omitempty"`
	UnidadesFeitas *int   `json:"unidades_feitas,omitempty"`
}

// UpdateCursoRequest represents parameters to update a Curso.
type UpdateCursoRequest struct {
	Iniciado       *bool `json:"iniciado,omitempty"`
	NivelInicial   *int  `json:"nivel_inicial,omitempty"`
	NivelAtual     *int  `json:"nivel_atual,omitempty"`
	UnidadeAtual   *int  `json:"unidade_atual,omitempty"`
	UnidadesFeitas *int  `json:"unidades_feitas,omitempty"`
}

// Validate validates CreateCursoRequest.
func (r *CreateCursoRequest) Validate() error {
	if strings.TrimSpace(r.UsuarioID) == "" {
		return errors.New("usuario_id is required")
	}
	if r.NivelInicial < 0 {
		return errors.New("nivel_inicial cannot be negative")
	}
	if r.NivelAtual != nil && *r.NivelAtual < 0 {
		return errors.New("nivel_atual cannot be negative")
	}
	if r.UnidadeAtual != nil && *r.UnidadeAtual < 0 {
		return errors.New("unidade_atual cannot be negative")
	}
	if r.UnidadesFeitas != nil && *r.UnidadesFeitas < 0 {
		return errors.New("unidades_feitas cannot be negative")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateCursoRequest.
func (r *UpdateCursoRequest) HasUpdates() bool {
	return r.Iniciado != nil || r.NivelInicial != nil || r.NivelAtual != nil ||
		r.UnidadeAtual != nil || r.UnidadesFeitas != nil
}

// Validate validates UpdateCursoRequest, ensuring at least one field is set.
func (r *UpdateCursoRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.NivelInicial != nil && *r.NivelInicial < 0 {
		return errors.New("nivel_inicial cannot be negative")
	}
	if r.NivelAtual != nil && *r.NivelAtual < 0 {
		return errors.New("nivel_atual cannot be negative")
	}
	if r.UnidadeAtual != nil && *r.UnidadeAtual < 0 {
		return errors.New("unidade_atual cannot be negative")
	}
	if r.UnidadesFeitas != nil && *r.UnidadesFeitas < 0 {
		return errors.New("unidades_feitas cannot be negative")
	}
	return nil
}
