package httpx

import (
	"net/http"
	"strconv"

	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// CursoHandlers provides HTTP handlers for course progress operations.
type CursoHandlers struct {
	Svc *service.CursoService
}

// Create handles POST /api/cursos.
func (h *CursoHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateCursoRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	curso, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, curso)
}

// List handles GET /api/cursos with optional usuario, iniciado, limit,
// and offset query parameters.
func (h *CursoHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.CursosListOptions{
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	}
	if v := q.Get("usuario"); v != "" {
		opts.UsuarioID = &v
	}
	if v := q.Get("iniciado"); v != "" {
		if iniciado, err := strconv.ParseBool(v); err == nil {
			opts.Iniciado = &iniciado
		}
	}

	cursos, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if cursos == nil {
		cursos = []*model.Curso{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"cursos": cursos})
}

// Get handles GET /api/cursos/{id}.
func (h *CursoHandlers) Get(w http.ResponseWriter, r *http.Request) {
	curso, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, curso)
}

// Update handles PUT /api/cursos/{id}.
func (h *CursoHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateCursoRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	curso, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, curso)
}

// Delete handles DELETE /api/cursos/{id}.
func (h *CursoHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
