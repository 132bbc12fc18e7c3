package httpx

import (
	"net/http"
	"strconv"

	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// CandidatoHandlers provides HTTP handlers for candidate operations.
type CandidatoHandlers struct {
	Svc *service.CandidatoService
}

// Create handles POST /api/candidatos.
func (h *CandidatoHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateCandidatoRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, result)
}

// List handles GET /api/candidatos with optional q, empresa, situacao,
// sort, dir, limit, and offset query parameters.
func (h *CandidatoHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts := candidatoListOptions(r)

	candidatos, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	total, err := h.Svc.Count(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if candidatos == nil {
		candidatos = []*model.Candidato{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"candidatos": candidatos, "total": total})
}

// Get handles GET /api/candidatos/{id}.
func (h *CandidatoHandlers) Get(w http.ResponseWriter, r *http.Request) {
	candidato, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, candidato)
}

// Update handles PUT /api/candidatos/{id}.
func (h *CandidatoHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCandidatoRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	candidato, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, candidato)
}

// Delete handles DELETE /api/candidatos/{id}.
func (h *CandidatoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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

// Reinvite handles POST /api/candidatos/{id}/reinvite.
func (h *CandidatoHandlers) Reinvite(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Reinvite(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func candidatoListOptions(r *http.Request) model.CandidatosListOptions {
	q := r.URL.Query()
	opts := model.CandidatosListOptions{
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
		Sort:   q.Get("sort"),
		Dir:    q.Get("dir"),
	}
	if v := q.Get("q"); v != "" {
		opts.Q = &v
	}
	if v := q.Get("empresa"); v != "" {
		opts.Empresa = &v
	}
	if v := q.Get("situacao"); v != "" {
		if situacao, ok := model.ParseCandidatoSituacao(v); ok {
			opts.Situacao = &situacao
		}
	}
	return opts
}

func queryInt(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
