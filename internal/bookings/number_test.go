package bookings

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingNumberFormat(t *testing.T) {
	number := GenerateBookingNumber()

	assert.Regexp(t, regexp.MustCompile(`^MT-[0-9A-Z]+$`), number)
}

func TestGenerateBookingNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := GenerateBookingNumber()
		assert.False(t, seen[number], "duplicate booking number %s", number)
		seen[number] = true
	}
}
