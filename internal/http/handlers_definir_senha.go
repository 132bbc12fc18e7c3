package httpx

import (
	"net/http"

	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// CredencialHandlers provides HTTP handlers for invite-token password setup.
type CredencialHandlers struct {
	Svc *service.CredencialService
}

type definirSenhaRequest struct {
	Token string `json:"token"`
	Senha string `json:"senha"`
}

// DefinirSenha handles POST /api/definir-senha. The endpoint is public:
// the invite token is the only proof the caller is the invited candidate.
func (h *CredencialHandlers) DefinirSenha(w http.ResponseWriter, r *http.Request) {
	var req definirSenhaRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.DefinirSenha(r.Context(), req.Token, req.Senha); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Senha definida com sucesso."})
}
