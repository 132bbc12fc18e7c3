package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// DocumentoHandlers provides HTTP handlers for document upload and review.
// Candidates only see and upload documents under their own email; rh and
// admin sessions operate on any candidate's documents.
type DocumentoHandlers struct {
	Svc *service.DocumentoService
}

// Create handles POST /api/documentos.
func (h *DocumentoHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateDocumentoRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if sess := GetSessionFromContext(r.Context()); sess != nil && sess.Role == domainauth.RoleCandidato {
		req.Email = sess.Email
	}

	documento, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, documento)
}

// List handles GET /api/documentos with optional email, status, limit,
// and offset query parameters.
func (h *DocumentoHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.DocumentosListOptions{
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	}
	if v := q.Get("email"); v != "" {
		opts.Email = &v
	}
	if v := q.Get("status"); v != "" {
		if status, ok := model.ParseDocumentoStatus(v); ok {
			opts.Status = &status
		}
	}

	if sess := GetSessionFromContext(r.Context()); sess != nil && sess.Role == domainauth.RoleCandidato {
		email := sess.Email
		opts.Email = &email
	}

	documentos, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if documentos == nil {
		documentos = []*model.Documento{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"documentos": documentos})
}

// Get handles GET /api/documentos/{id}.
func (h *DocumentoHandlers) Get(w http.ResponseWriter, r *http.Request) {
	documento, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !h.canAccess(r, documento) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound})
		return
	}
	WriteJSON(w, http.StatusOK, documento)
}

// Approve handles POST /api/documentos/aprovar.
func (h *DocumentoHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Svc.Approve)
}

// Reject handles POST /api/documentos/reprovar.
func (h *DocumentoHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.Svc.Reject)
}

// Delete handles DELETE /api/documentos/{id}.
func (h *DocumentoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	documento, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !h.canAccess(r, documento) {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound})
		return
	}

	ok, err := h.Svc.Delete(r.Context(), documento.ID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if !ok {
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DocumentoHandlers) review(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, req model.ReviewDocumentoRequest) (*model.ReviewDocumentoResult, error),
) {
	var req model.ReviewDocumentoRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := apply(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

// canAccess rejects candidate sessions reading documents owned by
// another email. Hidden rows answer not found, not forbidden.
func (h *DocumentoHandlers) canAccess(r *http.Request, documento *model.Documento) bool {
	sess := GetSessionFromContext(r.Context())
	if sess == nil || sess.Role != domainauth.RoleCandidato {
		return true
	}
	return documento.Email == sess.Email
}
