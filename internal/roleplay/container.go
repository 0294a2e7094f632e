package roleplay

import (
	"github.com/lingokit/lingua-api/internal/config"
	"github.com/lingokit/lingua-api/internal/gemini"
)

type RoleplayContainer struct {
	Handler *Handler
}

func NewRoleplayContainer(provider gemini.Provider) *RoleplayContainer {
	service := NewService(provider, config.Get().GenerationModel)
	handler := NewHandler(service)

	return &RoleplayContainer{
		Handler: handler,
	}
}
