// README: Common value types shared across modules.
package types

// Language identifies the language a reply must be written in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// ParseLanguage normalises a caller-supplied language code, defaulting to English.
func ParseLanguage(v string) Language {
	if v == string(LanguageArabic) {
		return LanguageArabic
	}
	return LanguageEnglish
}

// ContainsArabic reports whether any rune falls in the Arabic Unicode block.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}

// DetectLanguage returns the effective language for a message. Arabic
// auto-detection only overrides the caller's choice when the caller left
// the default ("en") in place.
func DetectLanguage(text string, requested Language) Language {
	if requested == LanguageEnglish && ContainsArabic(text) {
		return LanguageArabic
	}
	return requested
}

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// SentimentLabel classifies the tone of a message.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// Sentiment is the scored tone of a single message. It is derived per
// message and never persisted beyond the call.
type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}
