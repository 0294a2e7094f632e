package roleplay

type ScenarioResponse struct {
	Scenario           string `json:"scenario"`
	QuestionInLanguage string `json:"question_in_language"`
	QuestionEnglish    string `json:"question_english"`
	Language           string `json:"language"`
}

type EvaluationRequest struct {
	Scenario           string `json:"scenario"`
	QuestionInLanguage string `json:"question_in_language"`
	QuestionEnglish    string `json:"question_english"`
	UserResponse       string `json:"user_response"`
	Language           string `json:"language"`
}

type EvaluationResponse struct {
	NeedsImprovement bool    `json:"needs_improvement"`
	Original         *string `json:"original"`
	Better           *string `json:"better"`
}
