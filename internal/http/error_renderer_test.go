package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/onboardhq/onboard-ui-api/internal/errors"
)

func TestWriteAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.Validation("bad input"), http.StatusBadRequest},
		{"not found", apperrors.NotFound("missing"), http.StatusNotFound},
		{"conflict", apperrors.Conflict("duplicate"), http.StatusConflict},
		{"foreign key", apperrors.ForeignKey("referenced"), http.StatusConflict},
		{"internal", apperrors.Internal("db exploded"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteAppError(w, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestWriteAppError_InvalidCredentialsMessage(t *testing.T) {
	w := httptest.NewRecorder()

	WriteAppError(w, apperrors.InvalidCredentials())

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Usuário ou senha inválidos.", resp["message"])
}

func TestWriteAppError_ScrubsInternalDetail(t *testing.T) {
	w := httptest.NewRecorder()

	WriteAppError(w, apperrors.Internal("password for svc-account leaked into the error"))

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp["message"])
}
