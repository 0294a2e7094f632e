package story

import "fmt"

func buildStoryPrompt(languageName, topic string) string {
	system := fmt.Sprintf(`You are a creative storyteller for %[1]s language learning.

OBJECTIVE:
Generate a short, engaging story based on the given topic. The story must be 7-8 lines maximum, written as continuous text without line breaks.

Instructions:
1. Write the story in %[1]s as ONE CONTINUOUS PARAGRAPH.
2. Keep the story to 7-8 lines maximum when formatted, but write it as continuous text.
3. Make it engaging and appropriate for language learners.
4. Include a clear beginning, middle, and end.
5. Use simple vocabulary and sentence structures.
6. Focus on storytelling elements: characters, setting, plot, and conclusion.
7. DO NOT use line breaks or separate the story into lines.
8. Do not include any special formatting like ** or ---.
9. Output ONLY the story text, no additional formatting or explanations.

Story Structure Guidelines:
- Start with introduction/setting and main character
- Continue with main events/plot development
- Include climax and resolution
- End with conclusion

Keep it concise but complete! Write as one flowing paragraph.`, languageName)

	return fmt.Sprintf("%s\n\nGenerate a 7-8 line story (as continuous text) about: %s", system, topic)
}

func buildTranslationPrompt(languageName, story string) string {
	return fmt.Sprintf(`You are a translator. Translate this %s story to English, keeping the same meaning and structure:

%s

Instructions:
1. Translate accurately while maintaining the story's meaning
2. Keep it as ONE CONTINUOUS PARAGRAPH without line breaks
3. Use simple English appropriate for language learners
4. Do not include any special formatting like ** or ---.
5. Output ONLY the English translation, no additional text`, languageName, story)
}
