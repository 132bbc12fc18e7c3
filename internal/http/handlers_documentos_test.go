package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	"github.com/onboardhq/onboard-ui-api/internal/mocks"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

func newDocumentoHandlers(t *testing.T) (*DocumentoHandlers, *mocks.MockDocumentoRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	documentos := mocks.NewMockDocumentoRepository(ctrl)
	svc := service.NewDocumentoService(service.DocumentoServiceOptions{DocumentoRepo: documentos})
	return &DocumentoHandlers{Svc: svc}, documentos
}

func candidatoSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-cand",
		Name:      "Candidato",
		Email:     "candidato@gmail.com",
		Role:      domainauth.RoleCandidato,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func rhSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-rh",
		Name:      "Recursos Humanos",
		Email:     "rh@empresa.com",
		Role:      domainauth.RoleRH,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func withSession(r *http.Request, sess *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), sess))
}

func storedDocumento(email string) *model.Documento {
	return &model.Documento{
		ID:           "doc-1",
		Filename:     "rg.pdf",
		DocumentType: "rg",
		Email:        email,
		Status:       model.DocumentoPendente,
	}
}

func TestDocumentoHandlers_Create_CandidatoOwnsUpload(t *testing.T) {
	handlers, documentos := newDocumentoHandlers(t)

	var gotReq *model.CreateDocumentoRequest
	documentos.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateDocumentoRequest) (*model.Documento, error) {
			gotReq = req
			return storedDocumento(req.Email), nil
		})

	// The body claims someone else's email; the session wins.
	body := strings.NewReader(`{
		"filename": "rg.pdf",
		"document_type": "rg",
		"email": "outra@gmail.com",
		"file_content": "aGVsbG8="
	}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/documentos", body), candidatoSession())
	w := httptest.NewRecorder()

	handlers.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, gotReq)
	assert.Equal(t, "candidato@gmail.com", gotReq.Email)
}

func TestDocumentoHandlers_List_CandidatoScopedToOwnEmail(t *testing.T) {
	handlers, documentos := newDocumentoHandlers(t)

	var gotOpts model.DocumentosListOptions
	documentos.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.DocumentosListOptions) ([]*model.Documento, error) {
			gotOpts = opts
			return []*model.Documento{storedDocumento("candidato@gmail.com")}, nil
		})

	req := withSession(
		httptest.NewRequest(http.MethodGet, "/api/documentos?email=outra@gmail.com", nil),
		candidatoSession(),
	)
	w := httptest.NewRecorder()

	handlers.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotOpts.Email)
	assert.Equal(t, "candidato@gmail.com", *gotOpts.Email)
}

func TestDocumentoHandlers_List_RHSeesAnyEmail(t *testing.T) {
	handlers, documentos := newDocumentoHandlers(t)

	var gotOpts model.DocumentosListOptions
	documentos.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.DocumentosListOptions) ([]*model.Documento, error) {
			gotOpts = opts
			return nil, nil
		})

	req := withSession(
		httptest.NewRequest(http.MethodGet, "/api/documentos?email=maria@gmail.com&status=pendente", nil),
		rhSession(),
	)
	w := httptest.NewRecorder()

	handlers.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotOpts.Email)
	assert.Equal(t, "maria@gmail.com", *gotOpts.Email)
	require.NotNil(t, gotOpts.Status)
	assert.Equal(t, model.DocumentoPendente, *gotOpts.Status)

	var resp struct {
		Documentos []*model.Documento `json:"documentos"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Documentos, "empty listings marshal as [], never null")
}

func TestDocumentoHandlers_Get_CandidatoCannotReadOthers(t *testing.T) {
	handlers, documentos := newDocumentoHandlers(t)

	documentos.EXPECT().
		GetByID(gomock.Any(), "doc-1").
		Return(storedDocumento("outra@gmail.com"), nil)

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/documentos/doc-1", nil), candidatoSession())
	req.SetPathValue("id", "doc-1")
	w := httptest.NewRecorder()

	handlers.Get(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "foreign documents answer not found, not forbidden")
}

func TestDocumentoHandlers_Approve(t *testing.T) {
	handlers, documentos := newDocumentoHandlers(t)

	reviewedAt := time.Now()
	reviewed := storedDocumento("maria@gmail.com")
	reviewed.Status = model.DocumentoAprovado
	reviewed.ReviewedAt = &reviewedAt

	documentos.EXPECT().
		SetStatus(gomock.Any(), "rg.pdf", "maria@gmail.com", model.DocumentoAprovado).
		Return(reviewed, model.DocumentoPendente, nil)

	body := strings.NewReader(`{"nome_documento":"rg.pdf","email_candidato":"maria@gmail.com"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/documentos/aprovar", body), rhSession())
	w := httptest.NewRecorder()

	handlers.Approve(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ReviewDocumentoResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Status do documento atualizado com sucesso.", resp.Message)
	assert.Equal(t, model.DocumentoPendente, resp.StatusAnterior)
	assert.Equal(t, model.DocumentoAprovado, resp.StatusAtual)
}

func TestDocumentoHandlers_Reject_InvalidBody(t *testing.T) {
	handlers, _ := newDocumentoHandlers(t)

	body := strings.NewReader(`{"nome_documento":"","email_candidato":"maria@gmail.com"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/documentos/reprovar", body), rhSession())
	w := httptest.NewRecorder()

	handlers.Reject(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentoHandlers_Delete(t *testing.T) {
	handlers, documentos := newDocumentoHandlers(t)

	documentos.EXPECT().
		GetByID(gomock.Any(), "doc-1").
		Return(storedDocumento("candidato@gmail.com"), nil)
	documentos.EXPECT().Delete(gomock.Any(), "doc-1").Return(true, nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/documentos/doc-1", nil), candidatoSession())
	req.SetPathValue("id", "doc-1")
	w := httptest.NewRecorder()

	handlers.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
