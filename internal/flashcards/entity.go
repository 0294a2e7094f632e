package flashcards

type FlashcardItem struct {
	Syllables      string `json:"syllables"`
	Meaning        string `json:"meaning"`
	TopicName      string `json:"topic_name"`
	SubTopicName   string `json:"sub_topic_name"`
	Word           string `json:"word"`
	EnglishMeaning string `json:"english_meaning"`
}

type FlashcardResponse struct {
	Flashcards []FlashcardItem `json:"flashcards"`
	Language   string          `json:"language"`
}

type ValidationRequest struct {
	Word         string `json:"word"`
	UserResponse string `json:"user_response"`
}

type ValidationResponse struct {
	Matches bool `json:"matches"`
}
