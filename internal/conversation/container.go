package conversation

type ConversationContainer struct {
	Handler *Handler
}

func NewConversationContainer() *ConversationContainer {
	tracker := NewTracker(DefaultConfig())
	service := NewService(tracker)
	handler := NewHandler(service)

	return &ConversationContainer{
		Handler: handler,
	}
}
