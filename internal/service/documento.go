package service

import (
	"context"

	"github.com/onboardhq/onboard-ui-api/internal/core"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

// DocumentoServiceOptions groups dependencies for DocumentoService.
type DocumentoServiceOptions struct {
	DocumentoRepo core.DocumentoRepository
}

// DocumentoService handles uploaded candidate documents and the review
// workflow that moves them between pendente, aprovado, and reprovado.
type DocumentoService struct {
	documentos core.DocumentoRepository
}

// NewDocumentoService constructs a new DocumentoService.
func NewDocumentoService(opts DocumentoServiceOptions) *DocumentoService {
	return &DocumentoService{documentos: opts.DocumentoRepo}
}

// Create stores an uploaded document. New documents always start pendente.
func (s *DocumentoService) Create(ctx context.Context, req *model.CreateDocumentoRequest) (*model.Documento, error) {
	return s.documentos.Create(ctx, req)
}

// GetByID retrieves a document by ID, including its content.
func (s *DocumentoService) GetByID(ctx context.Context, id string) (*model.Documento, error) {
	return s.documentos.GetByID(ctx, id)
}

// List returns documents without their content payloads.
func (s *DocumentoService) List(ctx context.Context, opts model.DocumentosListOptions) ([]*model.Documento, error) {
	return s.documentos.List(ctx, opts)
}

// Approve marks the document identified by the review request as aprovado.
func (s *DocumentoService) Approve(ctx context.Context, req model.ReviewDocumentoRequest) (*model.ReviewDocumentoResult, error) {
	return s.review(ctx, req, model.DocumentoAprovado)
}

// Reject marks the document identified by the review request as reprovado.
func (s *DocumentoService) Reject(ctx context.Context, req model.ReviewDocumentoRequest) (*model.ReviewDocumentoResult, error) {
	return s.review(ctx, req, model.DocumentoReprovado)
}

func (s *DocumentoService) review(ctx context.Context, req model.ReviewDocumentoRequest, status model.DocumentoStatus) (*model.ReviewDocumentoResult, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	doc, previous, err := s.documentos.SetStatus(ctx, req.NomeDocumento, req.EmailCandidato, status)
	if err != nil {
		return nil, err
	}

	result := &model.ReviewDocumentoResult{
		Message:        "Status do documento atualizado com sucesso.",
		NomeDocumento:  doc.Filename,
		EmailCandidato: doc.Email,
		StatusAnterior: previous,
		StatusAtual:    doc.Status,
	}
	if doc.ReviewedAt != nil {
		result.DataRevisao = *doc.ReviewedAt
	}
	return result, nil
}

// Delete removes a document.
func (s *DocumentoService) Delete(ctx context.Context, id string) (bool, error) {
	return s.documentos.Delete(ctx, id)
}
