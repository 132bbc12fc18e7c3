package model

import (
	"errors"
	"strings"
	"time"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
)

// Usuario represents a platform user account managed through access control.
type Usuario struct {
	ID        string          `json:"id"                db:"id"`
	Nome      string          `json:"nome"              db:"nome"`
	Email     string          `json:"email"             db:"email"`
	Role      domainauth.Role `json:"role"              db:"role"`
	Empresa   *string         `json:"empresa,omitempty" db:"empresa"`
	CreatedAt time.Time       `json:"created_at"        db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"        db:"updated_at"`
}

// UsuariosListOptions controls paging and filtering for listing users.
// Q matches nome or email via ILIKE substring; Role and Empresa match exactly.
type UsuariosListOptions struct {
	Limit   int
	Offset  int
	Q       *string
	Role    *domainauth.Role
	Empresa *string
}

// CreateUsuarioRequest represents parameters to create a Usuario.
type CreateUsuarioRequest struct {
	Nome    string          `json:"nome"`
	Email   string          `json:"email"`
	Role    domainauth.Role `json:"role"`
	Empresa *string         `json:"empresa,omitempty"`
}

// UpdateUsuarioRequest represents parameters to update a Usuario.
type UpdateUsuarioRequest struct {
	Nome    *string          `json:"nome,omitempty"`
	Email   *string          `json:"email,omitempty"`
	Role    *domainauth.Role `json:"role,omitempty"`
	Empresa *string          `json:"empresa,omitempty"`
}

// Validate validates CreateUsuarioRequest.
func (r *CreateUsuarioRequest) Validate() error {
	if err := validateNome(r.Nome); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	role, ok := domainauth.ParseRole(string(r.Role))
	if !ok {
		return errors.New("invalid role")
	}
	r.Role = role
	return nil
}

// HasUpdates reports whether any field is set in UpdateUsuarioRequest.
func (r *UpdateUsuarioRequest) HasUpdates() bool {
	return r.Nome != nil || r.Email != nil || r.Role != nil || r.Empresa != nil
}

// Validate validates UpdateUsuarioRequest, ensuring at least one field is set.
func (r *UpdateUsuarioRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Nome != nil {
		if err := validateNome(*r.Nome); err != nil {
			return err
		}
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Role != nil {
		role, ok := domainauth.ParseRole(string(*r.Role))
		if !ok {
			return errors.New("invalid role")
		}
		*r.Role = role
	}
	if r.Empresa != nil && strings.TrimSpace(*r.Empresa) == "" {
		return errors.New("empresa cannot be empty")
	}
	return nil
}
