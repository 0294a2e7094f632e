package flashcards

import "fmt"

func buildGeneratePrompt(languageName, languageCode string) string {
	system := fmt.Sprintf(`You are a %[1]s language expert creating educational flashcards.

Generate 5 different %[1]s words from various topics and subtopics. For each word, provide:

1. syllables: Pronunciation syllables separated by hyphens with the stressed syllable in UPPERCASE (e.g., "kah-MOOS-tah")
2. meaning: A brief English translation (1-2 words)
3. topic_name: A broad topic category in English (e.g., "Introduction", "Family", "Food", etc.)
4. sub_topic_name: A more specific subtopic within the topic (e.g., "Basic Greetings", "Family Members", "Fruits", etc.)
5. word: The %[1]s word itself
6. english_meaning: Direct synonym English meaning

Choose diverse topics and ensure the words are commonly used. Vary the difficulty levels.

Respond ONLY with valid JSON in this exact format:
{
  "flashcards": [
    {
      "syllables": "pronunciation-with-STRESS",
      "meaning": "brief translation",
      "topic_name": "Topic Name",
      "sub_topic_name": "Subtopic Name",
      "word": "word_in_%[1]s",
      "english_meaning": "Direct synonym English"
    },
    ... (4 more items)
  ],
  "language": "%[2]s"
}

Be accurate and educational.`, languageName, languageCode)

	return fmt.Sprintf("%s\n\nGenerate 5 %s flashcards with diverse topics", system, languageName)
}
