package roleplay

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate-scenario", h.GenerateScenario)
	r.Post("/evaluate-response", h.EvaluateResponse)
	return r
}
