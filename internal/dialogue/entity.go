package dialogue

type Option struct {
	Text        string `json:"text"`
	EnglishText string `json:"english_text"`
}

type Question struct {
	Question           string   `json:"question"`
	QuestionEnglish    string   `json:"question_english"`
	Options            []Option `json:"options"`
	CorrectOptionIndex int      `json:"correct_option_index"`
}

type GenerateRequest struct {
	Scenario string `json:"scenario"`
	Language string `json:"language"`
}

type DialogueResponse struct {
	Scenario  string     `json:"scenario"`
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
