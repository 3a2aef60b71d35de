package domain

import (
	"strings"
)

// NormalizeWord prepares a vocabulary word for cache keys and storage keys:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeWord(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// NormalizeLanguage lowercases a BCP 47 tag's language subtag and uppercases
// its region ("EN-us" becomes "en-US").
func NormalizeLanguage(tag string) string {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	lang, region, found := strings.Cut(tag, "-")
	lang = strings.ToLower(lang)
	if !found {
		return lang
	}
	return lang + "-" + strings.ToUpper(region)
}
