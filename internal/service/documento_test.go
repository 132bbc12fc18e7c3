package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/mocks"
)

func TestDocumentoService_Approve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockDocs := mocks.NewMockDocumentoRepository(ctrl)

	reviewedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	updated := &model.Documento{
		Filename:   "rg.pdf",
		Email:      "maria@exemplo.com",
		Status:     model.DocumentoAprovado,
		ReviewedAt: &reviewedAt,
	}
	mockDocs.EXPECT().
		SetStatus(ctx, "rg.pdf", "maria@exemplo.com", model.DocumentoAprovado).
		Return(updated, model.DocumentoPendente, nil)

	svc := NewDocumentoService(DocumentoServiceOptions{DocumentoRepo: mockDocs})

	result, err := svc.Approve(ctx, model.ReviewDocumentoRequest{
		NomeDocumento:  "rg.pdf",
		EmailCandidato: "maria@exemplo.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Status do documento atualizado com sucesso.", result.Message)
	assert.Equal(t, model.DocumentoPendente, result.StatusAnterior)
	assert.Equal(t, model.DocumentoAprovado, result.StatusAtual)
	assert.Equal(t, reviewedAt, result.DataRevisao)
}

func TestDocumentoService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockDocs := mocks.NewMockDocumentoRepository(ctrl)

	updated := &model.Documento{
		Filename: "rg.pdf",
		Email:    "maria@exemplo.com",
		Status:   model.DocumentoReprovado,
	}
	mockDocs.EXPECT().
		SetStatus(ctx, "rg.pdf", "maria@exemplo.com", model.DocumentoReprovado).
		Return(updated, model.DocumentoAprovado, nil)

	svc := NewDocumentoService(DocumentoServiceOptions{DocumentoRepo: mockDocs})

	result, err := svc.Reject(ctx, model.ReviewDocumentoRequest{
		NomeDocumento:  "rg.pdf",
		EmailCandidato: "maria@exemplo.com",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DocumentoAprovado, result.StatusAnterior)
	assert.Equal(t, model.DocumentoReprovado, result.StatusAtual)
}

func TestDocumentoService_Review_InvalidRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocs := mocks.NewMockDocumentoRepository(ctrl)
	mockDocs.EXPECT().SetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := NewDocumentoService(DocumentoServiceOptions{DocumentoRepo: mockDocs})

	tests := []struct {
		name string
		req  model.ReviewDocumentoRequest
	}{
		{"missing nome_documento", model.ReviewDocumentoRequest{EmailCandidato: "maria@exemplo.com"}},
		{"missing email", model.ReviewDocumentoRequest{NomeDocumento: "rg.pdf"}},
		{"invalid email", model.ReviewDocumentoRequest{NomeDocumento: "rg.pdf", EmailCandidato: "not-an-email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Approve(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestDocumentoService_Review_UnknownDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockDocs := mocks.NewMockDocumentoRepository(ctrl)
	mockDocs.EXPECT().
		SetStatus(ctx, "nope.pdf", "maria@exemplo.com", model.DocumentoAprovado).
		Return(nil, model.DocumentoStatus(""), apperrors.NotFound("documento not found"))

	svc := NewDocumentoService(DocumentoServiceOptions{DocumentoRepo: mockDocs})

	_, err := svc.Approve(ctx, model.ReviewDocumentoRequest{
		NomeDocumento:  "nope.pdf",
		EmailCandidato: "maria@exemplo.com",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
