package httpx

import (
	"net/http"

	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// EmpresaHandlers provides HTTP handlers for partner company operations.
type EmpresaHandlers struct {
	Svc *service.EmpresaService
}

// Create handles POST /api/empresas.
func (h *EmpresaHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateEmpresaRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	empresa, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, empresa)
}

// List handles GET /api/empresas with optional q, limit, and offset
// query parameters.
func (h *EmpresaHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.EmpresasListOptions{
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	}
	if v := q.Get("q"); v != "" {
		opts.Q = &v
	}

	empresas, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if empresas == nil {
		empresas = []*model.Empresa{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"empresas": empresas})
}

// Get handles GET /api/empresas/{id}.
func (h *EmpresaHandlers) Get(w http.ResponseWriter, r *http.Request) {
	empresa, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, empresa)
}

// Update handles PUT /api/empresas/{id}.
func (h *EmpresaHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEmpresaRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	empresa, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, empresa)
}

// Delete handles DELETE /api/empresas/{id}.
func (h *EmpresaHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
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
