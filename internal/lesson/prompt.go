package lesson

import (
	"fmt"
	"strings"
)

func buildTitlesPrompt(languageCode string, specs []moduleSpec) string {
	var titles, mapping strings.Builder
	for i, spec := range specs {
		fmt.Fprintf(&titles, "%d. %s\n", i+1, spec.Title)
		fmt.Fprintf(&mapping, "  %q: \"[Translation of %s]\"", fmt.Sprint(i+1), spec.Title)
		if i < len(specs)-1 {
			mapping.WriteString(",")
		}
		mapping.WriteString("\n")
	}

	return fmt.Sprintf(`Translate the following %d module titles into %s.

Module titles in English:
%s
Respond with ONLY a JSON object mapping module numbers to translated titles:
{
%s}

Return ONLY valid JSON. No markdown, no explanations.`, len(specs), languageCode, titles.String(), mapping.String())
}

func buildGenerationPrompt(chapter int, languageName string, specs []moduleSpec, moduleNums []int) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Generate Chapter %d modules for learning %s.

**CRITICAL INSTRUCTION**: Do not generate any greetings, introductions, or phrases that include personal names, placeholders like [your name], or similar personal references. Focus only on the educational content specified.

Generate the following modules. Each module contains:
- Vocabulary: Exactly 10 items with English word/phrase and translation
- Grammar: One grammar concept with topic, concise 2-3 sentence explanation, and 2-3 examples

`, chapter, languageName)

	for _, num := range moduleNums {
		spec := specs[num-1]
		var vocab strings.Builder
		for i, item := range spec.Vocab {
			fmt.Fprintf(&vocab, "%d. %s\n", i+1, item)
		}

		fmt.Fprintf(&b, `
# MODULE %d: %s
**Vocabulary (10 items):**
%s
**Grammar Concept:**
- Topic: %q
- %s
- Provide 2-3 examples

---
`, num, spec.Title, vocab.String(), spec.topic(languageName), spec.desc(languageName))
	}

	examples := make([]string, 0, len(moduleNums))
	for _, num := range moduleNums {
		spec := specs[num-1]
		examples = append(examples, fmt.Sprintf(`{
      "module_number": %d,
      "title": %q,
      "vocabulary": [
        {"number": 1, "english": %q, "target": "[TRANSLATION]"},
        {"number": 2, "english": %q, "target": "[TRANSLATION]"},
        ...all 10 items
      ],
      "grammar": {
        "topic": %q,
        "requirement": "[2-3 sentence explanation]",
        "examples": ["[EXAMPLE 1]", "[EXAMPLE 2]", "[EXAMPLE 3]"]
      }
    }`, num, spec.Title, spec.Vocab[0], spec.Vocab[1], spec.topic(languageName)))
	}

	fmt.Fprintf(&b, `
Respond with valid JSON in this exact format:
{
  "modules": [
    %s
  ]
}

Return ONLY valid JSON. No markdown, no explanations.`, strings.Join(examples, ",\n    "))

	return b.String()
}
