package httpx

import (
	"net/http"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	"github.com/onboardhq/onboard-ui-api/internal/domain/model"
	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// UsuarioHandlers provides HTTP handlers for back-office user operations.
type UsuarioHandlers struct {
	Svc *service.UsuarioService
}

// Create handles POST /api/usuarios.
func (h *UsuarioHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req *model.CreateUsuarioRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	usuario, err := h.Svc.Create(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, usuario)
}

// List handles GET /api/usuarios with optional q, role, empresa, limit,
// and offset query parameters.
func (h *UsuarioHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.UsuariosListOptions{
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	}
	if v := q.Get("q"); v != "" {
		opts.Q = &v
	}
	if v := q.Get("empresa"); v != "" {
		opts.Empresa = &v
	}
	if v := q.Get("role"); v != "" {
		if role, ok := domainauth.ParseRole(v); ok {
			opts.Role = &role
		}
	}

	usuarios, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if usuarios == nil {
		usuarios = []*model.Usuario{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"usuarios": usuarios})
}

// Get handles GET /api/usuarios/{id}.
func (h *UsuarioHandlers) Get(w http.ResponseWriter, r *http.Request) {
	usuario, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, usuario)
}

// Update handles PUT /api/usuarios/{id}.
func (h *UsuarioHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUsuarioRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	usuario, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, usuario)
}

// Delete handles DELETE /api/usuarios/{id}.
func (h *UsuarioHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
