package flashcards

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type FlashcardsContainer struct {
	Handler *Handler
}

func NewFlashcardsContainer(provider gemini.Provider) *FlashcardsContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &FlashcardsContainer{
		Handler: handler,
	}
}
