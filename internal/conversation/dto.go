package conversation

type StartResponse struct {
	ConversationID string `json:"conversation_id"`
	AIMessage      string `json:"ai_message"`
}

type ReplyRequest struct {
	ConversationID string `json:"conversation_id"`
	UserMessage    string `json:"user_message"`
	Language       string `json:"language"`
}

type ReplyResponse struct {
	AIMessage         string `json:"ai_message"`
	ConversationEnded bool   `json:"conversation_ended"`
}
