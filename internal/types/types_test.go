package types

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		requested Language
		want      Language
	}{
		{"english text default", "hello there", LanguageEnglish, LanguageEnglish},
		{"arabic text autodetected", "مرحبا بك", LanguageEnglish, LanguageArabic},
		{"mixed text autodetected", "hello مرحبا", LanguageEnglish, LanguageArabic},
		{"explicit arabic kept", "hello there", LanguageArabic, LanguageArabic},
		{"arabic punctuation only", "؟", LanguageEnglish, LanguageArabic},
		{"latin punctuation", "?!...", LanguageEnglish, LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text, tt.requested); got != tt.want {
				t.Errorf("DetectLanguage(%q, %s) = %s, want %s", tt.text, tt.requested, got, tt.want)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"ar", LanguageArabic},
		{"en", LanguageEnglish},
		{"", LanguageEnglish},
		{"fr", LanguageEnglish},
	}
	for _, tt := range tests {
		if got := ParseLanguage(tt.in); got != tt.want {
			t.Errorf("ParseLanguage(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
