package lesson

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListChapters(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.ListChapters())
}

func (h *Handler) ModuleTitles(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapter, ok := chapterParam(w, r)
	if !ok {
		return
	}

	var req TitlesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !validLanguage(w, &req.TargetLanguage) {
		return
	}

	result, err := h.service.ModuleTitles(r.Context(), chapter, req.TargetLanguage)
	if err != nil {
		writeServiceError(w, log, err, "Failed to get module titles")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	chapter, ok := chapterParam(w, r)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !validLanguage(w, &req.TargetLanguage) {
		return
	}

	result, err := h.service.Generate(r.Context(), chapter, req)
	if err != nil {
		writeServiceError(w, log, err, "Failed to generate chapter modules")
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func chapterParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		http.Error(w, "invalid chapter number", http.StatusBadRequest)
		return 0, false
	}
	return chapter, true
}

func validLanguage(w http.ResponseWriter, language *string) bool {
	if *language == "" {
		*language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(*language) {
		config.UnsupportedLanguage(w)
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	var titleErr *TitleMatchError
	switch {
	case errors.Is(err, ErrChapterNotFound):
		http.Error(w, ErrChapterNotFound.Error(), http.StatusNotFound)
	case errors.As(err, &titleErr):
		http.Error(w, titleErr.Error(), http.StatusBadRequest)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
