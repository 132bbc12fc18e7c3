package httpx

import (
	"net/http"

	"github.com/onboardhq/onboard-ui-api/internal/service"
)

// AcuraciaHandlers provides HTTP handlers for OCR accuracy observability.
type AcuraciaHandlers struct {
	Svc *service.AcuraciaService
}

// Latest handles GET /api/observabilidade/acuracia, returning the most
// recent accuracy snapshot published by the OCR batch.
func (h *AcuraciaHandlers) Latest(w http.ResponseWriter, r *http.Request) {
	report, err := h.Svc.Latest(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, report)
}
