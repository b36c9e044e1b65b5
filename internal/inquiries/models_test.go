package inquiries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusNew, StatusInProgress, true},
		{StatusNew, StatusResolved, true},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusNew, false},
		{StatusResolved, StatusInProgress, true}, // reopen
		{StatusResolved, StatusNew, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestGenerateInquiryNumber(t *testing.T) {
	number := GenerateInquiryNumber()

	assert.True(t, strings.HasPrefix(number, "MI-"))
	assert.Equal(t, strings.ToUpper(number), number)
}
