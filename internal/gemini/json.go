package gemini

import "strings"

// ExtractJSON strips the markdown code fences models often wrap around JSON
// output, leaving the payload ready for json.Unmarshal.
func ExtractJSON(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}
