package general

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Root)
	r.Get("/languages", h.Languages)
	r.Get("/health", h.Health)
	return r
}
