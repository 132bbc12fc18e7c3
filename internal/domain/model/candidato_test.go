package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateCandidato() CreateCandidatoRequest {
	return CreateCandidatoRequest{
		Nome:   "Maria Silva",
		CPF:    "123.456.789-09",
		Email:  "maria@exemplo.com",
		Sexo:   "feminino",
		Estado: "SP",
		Vaga:   "Desenvolvedora",
	}
}

func TestCreateCandidatoRequest_Validate(t *testing.T) {
	t.Run("valid request defaults situacao", func(t *testing.T) {
		req := validCreateCandidato()
		require.NoError(t, req.Validate())
		assert.Equal(t, SituacaoPendente, req.Situacao)
	})

	t.Run("normalizes explicit situacao", func(t *testing.T) {
		req := validCreateCandidato()
		req.Situacao = " Aprovado "
		require.NoError(t, req.Validate())
		assert.Equal(t, SituacaoAprovado, req.Situacao)
	})

	tests := []struct {
		name   string
		mutate func(*CreateCandidatoRequest)
		errMsg string
	}{
		{"empty nome", func(r *CreateCandidatoRequest) { r.Nome = "  " }, "nome is required"},
		{"nome too long", func(r *CreateCandidatoRequest) { r.Nome = strings.Repeat("a", 256) }, "nome cannot exceed"},
		{"missing cpf", func(r *CreateCandidatoRequest) { r.CPF = "" }, "cpf is required"},
		{"short cpf", func(r *CreateCandidatoRequest) { r.CPF = "123" }, "cpf must contain 11 digits"},
		{"bad email", func(r *CreateCandidatoRequest) { r.Email = "not-an-email" }, "email is not valid"},
		{"empty vaga", func(r *CreateCandidatoRequest) { r.Vaga = "" }, "vaga is required"},
		{"empty estado", func(r *CreateCandidatoRequest) { r.Estado = "" }, "estado is required"},
		{"bad situacao", func(r *CreateCandidatoRequest) { r.Situacao = "contratado" }, "invalid situacao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateCandidato()
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestUpdateCandidatoRequest_Validate(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		req := UpdateCandidatoRequest{}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one field")
	})

	t.Run("normalizes situacao", func(t *testing.T) {
		s := CandidatoSituacao("REPROVADO")
		req := UpdateCandidatoRequest{Situacao: &s}
		require.NoError(t, req.Validate())
		assert.Equal(t, SituacaoReprovado, *req.Situacao)
	})

	t.Run("masked cpf accepted", func(t *testing.T) {
		cpf := "987.654.321-00"
		req := UpdateCandidatoRequest{CPF: &cpf}
		require.NoError(t, req.Validate())
	})

	t.Run("empty vaga rejected", func(t *testing.T) {
		vaga := " "
		req := UpdateCandidatoRequest{Vaga: &vaga}
		require.Error(t, req.Validate())
	})
}

func TestParseCandidatoSituacao(t *testing.T) {
	tests := []struct {
		input  string
		want   CandidatoSituacao
		wantOK bool
	}{
		{"pendente", SituacaoPendente, true},
		{"Em_Analise", SituacaoEmAnalise, true},
		{" aprovado ", SituacaoAprovado, true},
		{"reprovado", SituacaoReprovado, true},
		{"contratado", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCandidatoSituacao(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
