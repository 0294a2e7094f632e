package roleplay

import "fmt"

func buildScenarioPrompt(languageName, languageCode string) string {
	return fmt.Sprintf(`Generate a simple roleplay scenario for language learning. The scenario should be appropriate for %[1]s learners and involve everyday situations.

Respond with valid JSON in this exact format:
{
  "scenario": "English description of a simple everyday scenario (2-3 sentences)",
  "question_in_language": "One question in %[1]s that someone would ask in this scenario",
  "question_english": "English translation of the same question",
  "language": "%[2]s"
}

Make the scenario natural and the questions conversational.`, languageName, languageCode)
}

func buildEvaluationPrompt(languageName string, req EvaluationRequest) string {
	return fmt.Sprintf(`Evaluate this %[1]s language learner's response in a roleplay scenario.

Scenario: %[2]s
Question (%[1]s): %[3]s
Question (English): %[4]s
Learner's Response: %[5]s

Analyze if the response is appropriate, natural, and grammatically correct for the context. Consider:
- Is it relevant to the question?
- Is the grammar correct?
- Is it natural %[1]s conversation?
- Is the politeness level appropriate?

If the response needs improvement, provide a better version in %[1]s.

Respond with valid JSON in this exact format:
{
  "needs_improvement": true/false,
  "original": "the original response if improvement needed, otherwise null",
  "better": "improved version in %[1]s if needed, otherwise null"
}

Only suggest improvement if there are clear issues with grammar, relevance, or naturalness.`,
		languageName, req.Scenario, req.QuestionInLanguage, req.QuestionEnglish, req.UserResponse)
}
