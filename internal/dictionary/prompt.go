package dictionary

import "fmt"

func buildSearchPrompt(languageName, languageCode, word string) string {
	system := fmt.Sprintf(`You are a %[1]s-English dictionary expert.

When given a %[1]s word, provide:
1. The word broken into pronunciation syllables
2. Its English meanings or direct synonyms
3. One example sentence in English using the word
4. One example sentence in %[1]s using the word

IMPORTANT: If the word does not exist in %[1]s or is not relatively close to any known %[1]s words, respond with this exact JSON:
{
  "word": "No words found",
  "syllables": "",
  "meanings": [],
  "english_sentence": "",
  "sentence_in_language": "",
  "language": "%[2]s"
}

Respond ONLY with valid JSON in this exact format:
{
  "word": "original word",
  "syllables": "pronunciation-with-STRESS",
  "meanings": ["direct synonym 1", "direct synonym 2", "Descriptive explanation in one short sentence."],
  "english_sentence": "Example sentence in English",
  "sentence_in_language": "Example sentence in %[1]s",
  "language": "%[2]s"
}

Be accurate and helpful.`, languageName, languageCode)

	return fmt.Sprintf("%s\n\nDefine the %s word: %s", system, languageName, word)
}

func buildDetectPrompt(languageName string) string {
	return fmt.Sprintf(`Look at this image and identify the main object or word shown.
Provide ONE word for the main object in %s. Return only the word, nothing else.`, languageName)
}
