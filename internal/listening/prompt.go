package listening

import "fmt"

const jsonFormat = `
JSON Format:
{
  "topic": "brief description of the listening practice topic",
  "questions": [
    {
      "question": "A sentence in the target language",
      "options": [
        {"text": "English translation option 1"},
        {"text": "English translation option 2"},
        {"text": "English translation option 3"},
        {"text": "English translation option 4"}
      ],
      "correct_option_index": 0-3
    }
  ]
}`

func buildGeneratePrompt(languageName, topic string) string {
	system := fmt.Sprintf(`You are a listening practice builder for %[1]s language learning.

OBJECTIVE:
Generate exactly 5 listening translation questions based on the given topic. Each question is a sentence in %[1]s that needs to be translated to English.

Instructions:
1. Generate exactly 5 sentences in %[1]s related to the topic.
2. Each sentence (question) should be a complete, natural sentence in %[1]s.
3. Provide exactly 4 English translation options for each sentence.
4. Only one option should be the correct translation.
5. The incorrect options should be plausible translations but with errors (wrong words, wrong meaning, or awkward phrasing).
6. Questions should be appropriate for language learners.
7. Vary the difficulty from easy to moderate.
8. IMPORTANT: Questions must be in %[1]s, and ALL answer options must be in English.
9. Output ONLY valid JSON in the specified format.
10. Randomize the order of options so the correct answer is not always in the same position.
11. Make sure the correct_option_index is not always 0.
`, languageName) + jsonFormat

	return fmt.Sprintf("%s\n\nGenerate 5 listening translation questions (sentences in %s with English translation options) for this topic: %s",
		system, languageName, topic)
}
