package azure

import (
	"strings"
)

// Voice is an Azure neural voice and the locale it speaks.
type Voice struct {
	Locale string
	Name   string
}

const fallbackLanguage = "en"

var defaultVoices = map[string]Voice{
	"en": {Locale: "en-US", Name: "en-US-JennyNeural"},
	"es": {Locale: "es-ES", Name: "es-ES-ElviraNeural"},
	"fr": {Locale: "fr-FR", Name: "fr-FR-DeniseNeural"},
	"de": {Locale: "de-DE", Name: "de-DE-KatjaNeural"},
	"it": {Locale: "it-IT", Name: "it-IT-ElsaNeural"},
	"pt": {Locale: "pt-BR", Name: "pt-BR-FranciscaNeural"},
	"ja": {Locale: "ja-JP", Name: "ja-JP-NanamiNeural"},
	"ko": {Locale: "ko-KR", Name: "ko-KR-SunHiNeural"},
	"zh": {Locale: "zh-CN", Name: "zh-CN-XiaoxiaoNeural"},
	"ru": {Locale: "ru-RU", Name: "ru-RU-SvetlanaNeural"},
	"nl": {Locale: "nl-NL", Name: "nl-NL-ColetteNeural"},
}

// VoiceFor picks the voice for a language tag ("es", "es-MX").
// Overrides map a language or full tag to a voice name; the locale is taken
// from the voice name prefix. Unknown languages fall back to English.
func VoiceFor(language string, overrides map[string]string) Voice {
	tag := strings.ToLower(strings.TrimSpace(language))
	base, _, _ := strings.Cut(tag, "-")

	for _, key := range []string{tag, base} {
		if name, ok := lookupFold(overrides, key); ok {
			return Voice{Locale: localeOf(name), Name: name}
		}
	}
	if v, ok := defaultVoices[base]; ok {
		return v
	}
	return defaultVoices[fallbackLanguage]
}

func lookupFold(m map[string]string, key string) (string, bool) {
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// localeOf extracts "es-MX" from "es-MX-DaliaNeural".
func localeOf(voiceName string) string {
	parts := strings.SplitN(voiceName, "-", 3)
	if len(parts) < 2 {
		return voiceName
	}
	return parts[0] + "-" + parts[1]
}
