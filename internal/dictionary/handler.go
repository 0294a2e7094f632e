package dictionary

import (
	"io"
	"net/http"

	"github.com/lingokit/lingua-api/internal/config"
)

const maxImageSize = 10 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	word := r.URL.Query().Get("word")
	if word == "" {
		http.Error(w, "word required", http.StatusBadRequest)
		return
	}
	language := r.URL.Query().Get("language")
	if language == "" {
		language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(language) {
		config.UnsupportedLanguage(w)
		return
	}

	result, err := h.service.SearchWord(r.Context(), word, language)
	if err != nil {
		log.WithError(err).Error("Failed to search word")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) DetectImage(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	language := r.FormValue("language")
	if language == "" {
		language = config.DefaultLanguage
	}
	if !config.IsLanguageSupported(language) {
		config.UnsupportedLanguage(w)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded image")
		http.Error(w, "failed to read image", http.StatusBadRequest)
		return
	}

	result, err := h.service.DetectImage(r.Context(), header.Filename, data, language)
	if err != nil {
		log.WithError(err).Error("Failed to detect object in image")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
