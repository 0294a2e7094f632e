package writing

import "fmt"

const promptGeneration = `You are a language teacher creating writing prompts in ENGLISH for language learners.
Generate ONE simple, engaging one-liner question IN ENGLISH that a beginner or intermediate learner can write about in their target language.
Examples: "Write about your family", "Describe your favorite food", "What did you do yesterday?", "Tell me about your hobbies"
Return ONLY the prompt text in English, nothing else.

Generate a writing prompt in English`

func buildEvaluationPrompt(languageName, prompt, userResponse string) string {
	system := fmt.Sprintf(`You are a supportive language teacher evaluating %[1]s writing practice.

IMPORTANT: The prompt is in English, but the user's response is in %[1]s. Evaluate the %[1]s response based on how well it addresses the English prompt.

Task: Evaluate the user's response and provide:
1. A rating: "excellent", "good", or "need to improve"
2. Exactly 2-3 sentences of feedback on how good the response is. The 3 points are:
    2.1 If the response is relevant to the question.
    2.2 How good the grammar is.
    2.3 Suggestions for improvement (For excellent responses, write you're doing great).
3. Each feedback line MUST not exceed 10 words

Respond ONLY with valid JSON in this exact format:
{
  "rating": "excellent|good|need to improve",
  "feedback": ["point 2.1", "point 2.2", "point 2.3"]
}

Rating criteria:
- "excellent": Clear, well-structured, natural %[1]s language use, good grammar, addresses the prompt well
- "good": Understandable with minor issues, decent effort, somewhat addresses the prompt
- "need to improve": Confusing, major grammar issues, very short/incomplete, or doesn't address the prompt

Make feedback specific, encouraging, and actionable. Keep each point to 5-6 words. Provide feedback in English.`, languageName)

	return fmt.Sprintf(`%s

Prompt (in English): %s

User's Response (in %s): %s

Evaluate this %s response.`, system, prompt, languageName, userResponse, languageName)
}
