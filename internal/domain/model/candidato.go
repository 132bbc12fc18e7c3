package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxNomeLen  = 255
	maxEmailLen = 255
)

// CandidatoSituacao tracks where a candidate stands in the onboarding flow.
type CandidatoSituacao string

const (
	SituacaoPendente  CandidatoSituacao = "pendente"
	SituacaoEmAnalise CandidatoSituacao = "em_analise"
	SituacaoAprovado  CandidatoSituacao = "aprovado"
	SituacaoReprovado CandidatoSituacao = "reprovado"
)

// Valid reports whether the situacao is supported.
func (s CandidatoSituacao) Valid() bool {
	switch s {
	case SituacaoPendente, SituacaoEmAnalise, SituacaoAprovado, SituacaoReprovado:
		return true
	default:
		return false
	}
}

// normalizeSituacao trims and lowercases the input, defaulting to pendente when empty.
func normalizeSituacao(v CandidatoSituacao) CandidatoSituacao {
	normalized := CandidatoSituacao(strings.ToLower(strings.TrimSpace(string(v))))
	if normalized == "" {
		return SituacaoPendente
	}
	return normalized
}

// ParseCandidatoSituacao normalizes a situacao string and reports whether it is supported.
func ParseCandidatoSituacao(value string) (CandidatoSituacao, bool) {
	s := CandidatoSituacao(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Candidato represents a hiring candidate going through document onboarding.
type Candidato struct {
	ID        string            `json:"id"                 db:"id"`
	Nome      string            `json:"nome"               db:"nome"`
	CPF       string            `json:"cpf"                db:"cpf"`
	Email     string            `json:"email"              db:"email"`
	Telefone  *string           `json:"telefone,omitempty" db:"telefone"`
	Sexo      string            `json:"sexo"               db:"sexo"`
	Estado    string            `json:"estado"             db:"estado"`
	Vaga      string            `json:"vaga"               db:"vaga"`
	Empresa   *string           `json:"empresa,omitempty"  db:"empresa"`
	Situacao  CandidatoSituacao `json:"situacao"           db:"situacao"`
	CreatedAt time.Time         `json:"created_at"         db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"         db:"updated_at"`
}

// CandidatosListOptions controls paging and filtering for listing candidates.
// Q matches nome via ILIKE substring; Empresa and Situacao match exactly.
// Sort supports "nome" and "created_at"; Dir supports "asc" and "desc".
type CandidatosListOptions struct {
	Limit    int
	Offset   int
	Q        *string
	Empresa  *string
	Situacao *CandidatoSituacao
	Sort     string
	Dir      string
}

// CreateCandidatoRequest represents parameters to create a Candidato.
type CreateCandidatoRequest struct {
	Nome     string            `json:"nome"`
	CPF      string            `json:"cpf"`
	Email    string            `json:"email"`
	Telefone *string           `json:"telefone,omitempty"`
	Sexo     string            `json:"sexo"`
	Estado   string            `json:"estado"`
	Vaga     string            `json:"vaga"`
	Empresa  *string           `json:"empresa,omitempty"`
	Situacao CandidatoSituacao `json:"situacao,omitempty"`
}

// UpdateCandidatoRequest represents parameters to update a Candidato.
type UpdateCandidatoRequest struct {
	Nome     *string            `json:"nome,omitempty"`
	CPF      *string            `json:"cpf,omitempty"`
	Email    *string            `json:"email,omitempty"`
	Telefone *string            `json:"telefone,omitempty"`
	Sexo     *string            `json:"sexo,omitempty"`
	Estado   *string            `json:"estado,omitempty"`
	Vaga     *string            `json:"vaga,omitempty"`
	Empresa  *string            `json:"empresa,omitempty"`
	Situacao *CandidatoSituacao `json:"situacao,omitempty"`
}

// Validate validates CreateCandidatoRequest.
func (r *CreateCandidatoRequest) Validate() error {
	if err := validateNome(r.Nome); err != nil {
		return err
	}
	if err := validateCPF(r.CPF); err != nil {
		return err
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if strings.TrimSpace(r.Vaga) == "" {
		return errors.New("vaga is required")
	}
	if strings.TrimSpace(r.Estado) == "" {
		return errors.New("estado is required")
	}
	r.Situacao = normalizeSituacao(r.Situacao)
	if !r.Situacao.Valid() {
		return errors.New("invalid situacao")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateCandidatoRequest.
func (r *UpdateCandidatoRequest) HasUpdates() bool {
	return r.Nome != nil || r.CPF != nil || r.Email != nil || r.Telefone != nil ||
		r.Sexo != nil || r.Estado != nil || r.Vaga != nil || r.Empresa != nil ||
		r.Situacao != nil
}

// Validate validates UpdateCandidatoRequest, ensuring at least one field is set.
func (r *UpdateCandidatoRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Nome != nil {
		if err := validateNome(*r.Nome); err != nil {
			return err
		}
	}
	if r.CPF != nil {
		if err := validateCPF(*r.CPF); err != nil {
			return err
		}
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Vaga != nil && strings.TrimSpace(*r.Vaga) == "" {
		return errors.New("vaga cannot be empty")
	}
	if r.Estado != nil && strings.TrimSpace(*r.Estado) == "" {
		return errors.New("estado cannot be empty")
	}
	if r.Situacao != nil {
		s := normalizeSituacao(*r.Situacao)
		if !s.Valid() {
			return errors.New("invalid situacao")
		}
		*r.Situacao = s
	}
	return nil
}

func validateNome(nome string) error {
	n := strings.TrimSpace(nome)
	if n == "" {
		return errors.New("nome is required and cannot be empty")
	}
	if utf8.RuneCountInString(n) > maxNomeLen {
		return errors.New("nome cannot exceed 255 characters")
	}
	return nil
}

func validateEmail(email string) error {
	e := strings.TrimSpace(email)
	if e == "" {
		return errors.New("email is required and cannot be empty")
	}
	if utf8.RuneCountInString(e) > maxEmailLen {
		return errors.New("email cannot exceed 255 characters")
	}
	at := strings.Index(e, "@")
	if at <= 0 || at == len(e)-1 {
		return errors.New("email is not valid")
	}
	return nil
}

// validateCPF checks the Brazilian tax ID shape: exactly 11 digits after
// stripping the usual punctuation. Check digits are not verified here.
func validateCPF(cpf string) error {
	digits := stripCPFMask(cpf)
	if digits == "" {
		return errors.New("cpf is required")
	}
	if len(digits) != 11 {
		return errors.New("cpf must contain 11 digits")
	}
	return nil
}

func stripCPFMask(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
