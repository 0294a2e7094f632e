package roleplay

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

func (h *Handler) GenerateScenario(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	language := r.URL.Query().Get("language")
	if language == "" {
		language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(language) {
		config.UnsupportedLanguage(w)
		return
	}

	result, err := h.service.GenerateScenario(r.Context(), language)
	if err != nil {
		log.WithError(err).Error("Failed to generate roleplay scenario")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) EvaluateResponse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req EvaluationRequest
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

	result, err := h.service.EvaluateResponse(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to evaluate roleplay response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
