package lesson

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/chapters", h.ListChapters)
	r.Post("/chapters/{chapter}/titles", h.ModuleTitles)
	r.Post("/chapters/{chapter}/generate", h.Generate)
	return r
}
