package general

type GeneralContainer struct {
	Handler *Handler
}

func NewGeneralContainer() *GeneralContainer {
	return &GeneralContainer{
		Handler: NewHandler(),
	}
}
