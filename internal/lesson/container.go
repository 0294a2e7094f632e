package lesson

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type LessonContainer struct {
	Handler *Handler
}

func NewLessonContainer(provider gemini.Provider) *LessonContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &LessonContainer{
		Handler: handler,
	}
}
