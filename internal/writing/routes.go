package writing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate-prompt", h.GeneratePrompt)
	r.Post("/evaluate", h.Evaluate)
	return r
}
