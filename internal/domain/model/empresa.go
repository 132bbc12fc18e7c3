package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Empresa represents a client company whose candidates go through onboarding.
type Empresa struct {
	ID                   string    `json:"id"                    db:"id"`
	Nome                 string    `json:"nome"                  db:"nome"`
	CNPJ                 string    `json:"cnpj"                  db:"cnpj"`
	Planos               string    `json:"planos"                db:"planos"`
	EmailResponsavel     string    `json:"email_responsavel"     db:"email_responsavel"`
	TelefoneResponsavel  string    `json:"telefone_responsavel"  db:"telefone_responsavel"`
	CreatedAt            time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"            db:"updated_at"`
}

// EmpresasListOptions controls paging and filtering for listing companies.
// Q matches nome via ILIKE substring.
type EmpresasListOptions struct {
	Limit  int
	Offset int
	Q      *string
}

// CreateEmpresaRequest represents parameters to create an Empresa.
type CreateEmpresaRequest struct {
	Nome                string `json:"nome"`
	CNPJ                string `json:"cnpj"`
	Planos              string `json:"planos"`
	EmailResponsavel    string `json:"email_responsavel"`
	TelefoneResponsavel string `json:"telefone_responsavel"`
}

// UpdateEmpresaRequest represents parameters to update an Empresa.
type UpdateEmpresaRequest struct {
	Nome                *string `json:"nome,omitempty"`
	CNPJ                *string `json:"cnpj,omitempty"`
	Planos              *string `json:"planos,omitempty"`
	EmailResponsavel    *string `json:"email_responsavel,omitempty"`
	TelefoneResponsavel *string `json:"telefone_responsavel,omitempty"`
}

// Validate validates CreateEmpresaRequest.
func (r *CreateEmpresaRequest) Validate() error {
	if err := validateNome(r.Nome); err != nil {
		return err
	}
	if err := validateCNPJ(r.CNPJ); err != nil {
		return err
	}
	if err := validateEmail(r.EmailResponsavel); err != nil {
		return errors.New("email_responsavel is not valid")
	}
	if strings.TrimSpace(r.Planos) == "" {
		return errors.New("planos is required")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateEmpresaRequest.
func (r *UpdateEmpresaRequest) HasUpdates() bool {
	return r.Nome != nil || r.CNPJ != nil || r.Planos != nil ||
		r.EmailResponsavel != nil || r.TelefoneResponsavel != nil
}

// Validate validates UpdateEmpresaRequest, ensuring at least one field is set.
func (r *UpdateEmpresaRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Nome != nil {
		if err := validateNome(*r.Nome); err != nil {
			return err
		}
	}
	if r.CNPJ != nil {
		if err := validateCNPJ(*r.CNPJ); err != nil {
			return err
		}
	}
	if r.EmailResponsavel != nil {
		if err := validateEmail(*r.EmailResponsavel); err != nil {
			return errors.New("email_responsavel is not valid")
		}
	}
	if r.Planos != nil && strings.TrimSpace(*r.Planos) == "" {
		return errors.New("planos cannot be empty")
	}
	return nil
}

// validateCNPJ checks the Brazilian company ID shape: exactly 14 digits after
// stripping punctuation. Check digits are not verified here.
func validateCNPJ(cnpj string) error {
	var digits int
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits == 0 {
		return errors.New("cnpj is required")
	}
	if digits != 14 {
		return errors.New("cnpj must contain 14 digits")
	}
	if utf8.RuneCountInString(cnpj) > 18 {
		return errors.New("cnpj is not valid")
	}
	return nil
}
