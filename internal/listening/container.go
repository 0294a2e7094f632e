package listening

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type ListeningContainer struct {
	Handler *Handler
}

func NewListeningContainer(provider gemini.Provider) *ListeningContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &ListeningContainer{
		Handler: handler,
	}
}
