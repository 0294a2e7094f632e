package listening

type Option struct {
	Text string `json:"text"`
}

type Question struct {
	Question           string   `json:"question"`
	Options            []Option `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

type GenerateRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
}

type ListeningResponse struct {
	Topic     string     `json:"topic"`
	Questions []Question `json:"questions"`
}

type EvaluateRequest struct {
	Question            Question `json:"question"`
	SelectedOptionIndex int      `json:"selected_option_index"`
}

type AnswerEvaluation struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}
