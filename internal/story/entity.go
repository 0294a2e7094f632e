package story

type GenerateRequest struct {
	Topic    string `json:"topic"`
	Language string `json:"language"`
}

type StoryResponse struct {
	Topic               string `json:"topic"`
	StoryTargetLanguage string `json:"story_target_language"`
	StoryEnglish        string `json:"story_english"`
	Language            string `json:"language"`
}
