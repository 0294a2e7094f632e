package dictionary

type TextSearchResponse struct {
	Word               string   `json:"word"`
	Syllables          string   `json:"syllables"`
	Meanings           []string `json:"meanings"`
	EnglishSentence    string   `json:"english_sentence"`
	SentenceInLanguage string   `json:"sentence_in_language"`
	Language           string   `json:"language"`
}

// noWordsFound is the sentinel the model is instructed to return for
// unknown words.
const noWordsFound = "No words found"
