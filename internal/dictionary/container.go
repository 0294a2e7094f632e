package dictionary

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type DictionaryContainer struct {
	Handler *Handler
}

func NewDictionaryContainer(provider gemini.Provider) *DictionaryContainer {
	service := NewService(provider, config.Get().ChatModel)
	handler := NewHandler(service)

	return &DictionaryContainer{
		Handler: handler,
	}
}
