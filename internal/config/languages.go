package config

import (
	"sort"

	"github.com/samber/lo"
)

const DefaultLanguage = "en-US"

// SupportedLanguages maps language codes to display names.
var SupportedLanguages = map[string]string{
	"en-US": "English",
	"es-ES": "Spanish",
	"fr-FR": "French",
	"de-DE": "German",
	"it-IT": "Italian",
	"pt-BR": "Portuguese",
	"ja-JP": "Japanese",
	"ko-KR": "Korean",
	"zh-CN": "Mandarin Chinese",
	"ru-RU": "Russian",
	"ar-SA": "Arabic",
	"tl-PH": "Tagalog",
	"hi-IN": "Hindi",
	"th-TH": "Thai",
	"vi-VN": "Vietnamese",
	"nl-NL": "Dutch",
	"pl-PL": "Polish",
	"tr-TR": "Turkish",
	"sv-SE": "Swedish",
	"no-NO": "Norwegian",
}

func IsLanguageSupported(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// LanguageName returns the display name for a language code. Unknown codes
// fall back to a generic name so prompts stay well-formed.
func LanguageName(code string) string {
	if name, ok := SupportedLanguages[code]; ok {
		return name
	}
	return "the target language"
}

func SupportedLanguageCodes() []string {
	codes := lo.Keys(SupportedLanguages)
	sort.Strings(codes)
	return codes
}
