package general

import (
	"net/http"

	"github.com/lingokit/lingua-api/internal/config"
)

const apiVersion = "2.0.0"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	settings := config.Get()

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"name":        settings.AppTitle,
		"description": settings.AppDescription,
		"version":     apiVersion,
		"endpoints": map[string]string{
			"languages":    "/languages",
			"conversation": "/conversation",
			"dictionary":   "/dictionary",
			"flashcards":   "/flashcards",
			"roleplay":     "/roleplay",
			"dialogue":     "/dialogue",
			"listening":    "/listening",
			"story":        "/story",
			"writing":      "/writing",
			"lesson":       "/lesson",
		},
	})
}

func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"default_language":    config.DefaultLanguage,
		"supported_languages": config.SupportedLanguages,
		"total_languages":     len(config.SupportedLanguages),
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
