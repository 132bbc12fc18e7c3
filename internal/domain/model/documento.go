package model

import (
	"errors"
	"strings"
	"time"
)

// DocumentoStatus is the review state of an uploaded document.
type DocumentoStatus string

const (
	DocumentoPendente  DocumentoStatus = "pendente"
	DocumentoAprovado  DocumentoStatus = "aprovado"
	DocumentoReprovado DocumentoStatus = "reprovado"
)

// Valid reports whether the document status is supported.
func (s DocumentoStatus) Valid() bool {
	switch s {
	case DocumentoPendente, DocumentoAprovado, DocumentoReprovado:
		return true
	default:
		return false
	}
}

// ParseDocumentoStatus normalizes a status string and reports whether it is supported.
func ParseDocumentoStatus(value string) (DocumentoStatus, bool) {
	s := DocumentoStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Documento represents a candidate-uploaded onboarding document.
// FileContent holds the base64 payload on upload; listings omit it.
type Documento struct {
	ID           string          `json:"id"                     db:"id"`
	Filename     string          `json:"filename"               db:"filename"`
	DocumentType string          `json:"document_type"          db:"document_type"`
	Email        string          `json:"email"                  db:"email"`
	FileContent  *string         `json:"file_content,omitempty" db:"file_content"`
	Status       DocumentoStatus `json:"status"                 db:"status"`
	ReviewedAt   *time.Time      `json:"reviewed_at,omitempty"  db:"reviewed_at"`
	CreatedAt    time.Time       `json:"created_at"             db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"             db:"updated_at"`
}

// DocumentosListOptions controls paging and filtering for listing documents.
// Email and Status match exactly.
type DocumentosListOptions struct {
	Limit  int
	Offset int
	Email  *string
	Status *DocumentoStatus
}

// CreateDocumentoRequest represents a document upload.
type CreateDocumentoRequest struct {
	Filename     string `json:"filename"`
	DocumentType string `json:"document_type"`
	Email        string `json:"email"`
	FileContent  string `json:"file_content"`
}

// ReviewDocumentoRequest approves or rejects a candidate's document,
// addressed by document name and candidate email as the upload API does.
type ReviewDocumentoRequest struct {
	NomeDocumento  string `json:"nome_documento"`
	EmailCandidato string `json:"email_candidato"`
}

// ReviewDocumentoResult reports the status transition applied by a review.
type ReviewDocumentoResult struct {
	Message        string          `json:"message"`
	NomeDocumento  string          `json:"nome_documento"`
	EmailCandidato string          `json:"email_candidato"`
	StatusAnterior DocumentoStatus `json:"status_anterior"`
	StatusAtual    DocumentoStatus `json:"status_atual"`
	DataRevisao    time.Time       `json:"data_revisao"`
}

// Validate validates CreateDocumentoRequest.
func (r *CreateDocumentoRequest) Validate() error {
	if strings.TrimSpace(r.Filename) == "" {
		return errors.New("filename is required")
	}
	if strings.TrimSpace(r.DocumentType) == "" {
		return errors.New("document_type is required")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.FileContent == "" {
		return errors.New("file_content is required")
	}
	return nil
}

// Validate validates ReviewDocumentoRequest.
func (r *ReviewDocumentoRequest) Validate() error {
	if strings.TrimSpace(r.NomeDocumento) == "" {
		return errors.New("nome_documento is required")
	}
	if err := validateEmail(r.EmailCandidato); err != nil {
		return errors.New("email_candidato is not valid")
	}
	return nil
}
