package story

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type StoryContainer struct {
	Handler *Handler
}

func NewStoryContainer(provider gemini.Provider) *StoryContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &StoryContainer{
		Handler: handler,
	}
}
