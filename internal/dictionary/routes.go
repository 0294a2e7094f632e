package dictionary

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/search", h.Search)
	r.Post("/detect-image", h.DetectImage)
	return r
}
