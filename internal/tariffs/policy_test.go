package tariffs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyNonRefundable(t *testing.T) {
	tariff := &Tariff{IsRefundable: false, CancellationDays: 14, CancellationFeePct: 20}

	policy := tariff.Policy()

	assert.False(t, policy.Cancellable)
	assert.Equal(t, 100.0, policy.FeePercent)
	assert.Equal(t, 0, policy.DaysBefore)
}

func TestPolicyRefundable(t *testing.T) {
	tariff := &Tariff{IsRefundable: true, CancellationDays: 14, CancellationFeePct: 20}

	policy := tariff.Policy()

	assert.True(t, policy.Cancellable)
	assert.Equal(t, 14, policy.DaysBefore)
	assert.Equal(t, 20.0, policy.FeePercent)
}

func TestPolicyFreeCancellation(t *testing.T) {
	tariff := &Tariff{IsRefundable: true, CancellationDays: 30, CancellationFeePct: 0}

	policy := tariff.Policy()

	assert.True(t, policy.Cancellable)
	assert.Equal(t, 0.0, policy.FeePercent)
}
