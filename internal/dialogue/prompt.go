package dialogue

import "fmt"

const jsonFormat = `
JSON Format:
{
  "scenario": "brief description of the dialogue scenario",
  "questions": [
    {
      "question": "AI's statement or question in target language",
      "question_english": "AI's statement or question in English",
      "options": [
        {"text": "Wrong response in target language", "english_text": "Wrong response in English"},
        {"text": "Correct response in target language", "english_text": "Correct response in English"}
      ],
      "correct_option_index": 0 or 1
    }
  ]
}`

func buildGeneratePrompt(languageName, scenario string) string {
	system := fmt.Sprintf(`You are a dialogue builder for %[1]s language learning.

OBJECTIVE:
Generate a conversational dialogue with a maximum of 3 questions. Each question shows what the AI says in BOTH %[1]s AND English, then provides exactly 2 response options for the user in BOTH languages, where only one response is appropriate/correct.

Instructions:
1. The dialogue should be based on the given scenario and build conversationally.
2. Each question should follow the flow of conversation.
3. For EVERY question, provide:
   - "question": The AI's statement/question in %[1]s
   - "question_english": The exact same statement/question in English
4. For EVERY option, provide:
   - "text": The response option in %[1]s
   - "english_text": The exact same response option in English
5. Provide exactly 2 response options: one appropriate/correct response, one inappropriate/wrong response.
6. The wrong response should be clearly incorrect for the context (like responding "Good night" to "Good morning").
7. Focus on conversational appropriateness, not just grammar.
8. Keep questions and options simple and appropriate for language learners.
9. Output ONLY valid JSON in the specified format.
`, languageName) + jsonFormat

	return fmt.Sprintf("%s\n\nGenerate a dialogue for this scenario: %s", system, scenario)
}
