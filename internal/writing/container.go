package writing

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type WritingContainer struct {
	Handler *Handler
}

func NewWritingContainer(provider gemini.Provider) *WritingContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &WritingContainer{
		Handler: handler,
	}
}
