package flashcards

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

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	language := r.URL.Query().Get("language")
	if language == "" {
		language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(language) {
		config.UnsupportedLanguage(w)
		return
	}

	result, err := h.service.Generate(r.Context(), language)
	if err != nil {
		log.WithError(err).Error("Failed to generate flashcards")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req ValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, ValidationResponse{
		Matches: h.service.Validate(req.Word, req.UserResponse),
	})
}
