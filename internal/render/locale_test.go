package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLocale(t *testing.T) {
	fallback := language.BrazilianPortuguese

	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{"empty", "", fallback},
		{"english", "en-US,en;q=0.9", language.AmericanEnglish},
		{"portuguese", "pt-BR", language.BrazilianPortuguese},
		{"unsupported", "ja-JP", fallback},
		{"garbage", ";;;q=x", fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLocale(tt.header, fallback))
		})
	}
}
