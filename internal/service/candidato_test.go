package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
	"github.com/onboardhq/onboard-ui-api/internal/mocks"
)

const testCandidatoID = "candidato-1"

func testCandidato() *model.Candidato {
	return &model.Candidato{
		ID:       testCandidatoID,
		Nome:     "Maria Silva",
		CPF:      "12345678901",
		Email:    "maria@exemplo.com",
		Situacao: model.SituacaoPendente,
	}
}

func TestCandidatoService_Create_IssuesInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCand := mocks.NewMockCandidatoRepository(ctrl)
	mockCred := mocks.NewMockCredencialRepository(ctrl)

	created := testCandidato()
	req := &model.CreateCandidatoRequest{Nome: created.Nome, CPF: created.CPF, Email: created.Email}

	mockCand.EXPECT().Create(ctx, req).Return(created, nil)
	mockCred.EXPECT().
		UpsertInvite(ctx, created.Email, gomock.Any()).
		DoAndReturn(func(_ context.Context, email, token string) (*model.Credencial, error) {
			assert.NotEmpty(t, token)
			return &model.Credencial{Email: email, InviteToken: &token}, nil
		})

	svc := NewCandidatoService(CandidatoServiceOptions{CandidatoRepo: mockCand, CredencialRepo: mockCred})

	result, err := svc.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, created, result.Candidato)
	assert.NotEmpty(t, result.InviteToken)
}

func TestCandidatoService_Create_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCand := mocks.NewMockCandidatoRepository(ctrl)
	mockCred := mocks.NewMockCredencialRepository(ctrl)

	req := &model.CreateCandidatoRequest{Nome: "x", CPF: "12345678901", Email: "x@exemplo.com"}
	mockCand.EXPECT().Create(ctx, req).Return(nil, apperrors.Conflict("candidato already exists"))
	// No invite is issued when creation fails.
	mockCred.EXPECT().UpsertInvite(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	svc := NewCandidatoService(CandidatoServiceOptions{CandidatoRepo: mockCand, CredencialRepo: mockCred})

	_, err := svc.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
}

func TestCandidatoService_Reinvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCand := mocks.NewMockCandidatoRepository(ctrl)
	mockCred := mocks.NewMockCredencialRepository(ctrl)

	candidato := testCandidato()
	mockCand.EXPECT().GetByID(ctx, testCandidatoID).Return(candidato, nil)
	mockCred.EXPECT().UpsertInvite(ctx, candidato.Email, gomock.Any()).Return(&model.Credencial{Email: candidato.Email}, nil)

	svc := NewCandidatoService(CandidatoServiceOptions{CandidatoRepo: mockCand, CredencialRepo: mockCred})

	result, err := svc.Reinvite(ctx, testCandidatoID)
	require.NoError(t, err)
	assert.Equal(t, candidato, result.Candidato)
	assert.NotEmpty(t, result.InviteToken)
}

func TestCandidatoService_Delete_RemovesCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCand := mocks.NewMockCandidatoRepository(ctrl)
	mockCred := mocks.NewMockCredencialRepository(ctrl)

	candidato := testCandidato()
	mockCand.EXPECT().GetByID(ctx, testCandidatoID).Return(candidato, nil)
	mockCand.EXPECT().Delete(ctx, testCandidatoID).Return(true, nil)
	mockCred.EXPECT().Delete(ctx, candidato.Email).Return(true, nil)

	svc := NewCandidatoService(CandidatoServiceOptions{CandidatoRepo: mockCand, CredencialRepo: mockCred})

	ok, err := svc.Delete(ctx, testCandidatoID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCandidatoService_Delete_MissingCandidato(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCand := mocks.NewMockCandidatoRepository(ctrl)
	mockCred := mocks.NewMockCredencialRepository(ctrl)

	mockCand.EXPECT().GetByID(ctx, "nope").Return(nil, apperrors.NotFound("candidato not found"))

	svc := NewCandidatoService(CandidatoServiceOptions{CandidatoRepo: mockCand, CredencialRepo: mockCred})

	ok, err := svc.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCandidatoService_List_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockCand := mocks.NewMockCandidatoRepository(ctrl)

	opts := model.CandidatosListOptions{Limit: 10}
	expected := []*model.Candidato{testCandidato()}
	mockCand.EXPECT().List(ctx, opts).Return(expected, nil)
	mockCand.EXPECT().Count(ctx, opts).Return(int64(1), nil)

	svc := NewCandidatoService(CandidatoServiceOptions{CandidatoRepo: mockCand})

	got, err := svc.List(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, expected, got)

	count, err := svc.Count(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
