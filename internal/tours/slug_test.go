package tours

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"german diacritics are substituted", "Äußerst schön", "aeusserst-schoen"},
		{"umlauts in the middle", "München Städtereise", "muenchen-staedtereise"},
		{"unmapped diacritics pass through", "Kraków & Zakopane", "kraków-zakopane"},
		{"spaces and ampersands collapse", "Paris  &  London", "paris-london"},
		{"leading and trailing junk trimmed", "  -Berlin-  ", "berlin"},
		{"plain name", "Amsterdam", "amsterdam"},
		{"numbers survive", "Top 10 Wien", "top-10-wien"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.input))
		})
	}
}
