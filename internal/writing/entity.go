package writing

type PromptResponse struct {
	Prompt string `json:"prompt"`
}

type EvaluationRequest struct {
	Prompt       string `json:"prompt"`
	UserResponse string `json:"user_response"`
	Language     string `json:"language"`
}

// Rating is one of "excellent", "good" or "need to improve".
type EvaluationResponse struct {
	Rating   string   `json:"rating"`
	Feedback []string `json:"feedback"`
}
