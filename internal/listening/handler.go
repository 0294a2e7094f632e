package listening

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

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Topic == "" {
		http.Error(w, "topic required", http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(req.Language) {
		config.UnsupportedLanguage(w)
		return
	}

	result, err := h.service.GeneratePractice(r.Context(), req)
	if err != nil {
		log.WithError(err).Error("Failed to generate listening practice")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	n := len(req.Question.Options)
	if n == 0 || req.Question.CorrectOptionIndex < 0 || req.Question.CorrectOptionIndex >= n {
		http.Error(w, "question has no valid correct option", http.StatusBadRequest)
		return
	}
	if req.SelectedOptionIndex < 0 || req.SelectedOptionIndex >= n {
		http.Error(w, "selected option index out of range", http.StatusBadRequest)
		return
	}

	config.JSON(w, http.StatusOK, h.service.EvaluateAnswer(req.Question, req.SelectedOptionIndex))
}
