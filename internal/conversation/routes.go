package conversation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/start", h.Start)
	r.Post("/reply", h.Reply)
	return r
}
