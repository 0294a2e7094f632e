package conversation

import (
	"encoding/json"
	"net/http"

	"github.com/lingokit/lingua-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("language")
	if language == "" {
		language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(language) {
		config.UnsupportedLanguage(w)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Start(r.Context(), language))
}

func (h *Handler) Reply(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(req.Language) {
		config.UnsupportedLanguage(w)
		return
	}

	config.JSON(w, http.StatusOK, h.service.Reply(r.Context(), req))
}
