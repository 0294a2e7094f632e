package dialogue

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type DialogueContainer struct {
	Handler *Handler
}

func NewDialogueContainer(provider gemini.Provider) *DialogueContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &DialogueContainer{
		Handler: handler,
	}
}
