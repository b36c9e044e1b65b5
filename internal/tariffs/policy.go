package tariffs

// CancellationPolicy is the display-side view of a tariff's refund rules.
// It is pure data lookup: nothing here checks the current date against the
// departure, callers that need enforcement must do their own date math.
type CancellationPolicy struct {
	Cancellable bool    `json:"cancellable"`
	DaysBefore  int     `json:"days_before"`
	FeePercent  float64 `json:"fee_percent"`
}

// Policy derives the cancellation policy from the tariff's refund fields.
// Non-refundable tariffs cannot be cancelled, which implies a 100% fee.
// A refundable tariff with fee 0 means free cancellation.
func (t *Tariff) Policy() CancellationPolicy {
	if !t.IsRefundable {
		return CancellationPolicy{
			Cancellable: false,
			DaysBefore:  0,
			FeePercent:  100,
		}
	}

	return CancellationPolicy{
		Cancellable: true,
		DaysBefore:  t.CancellationDays,
		FeePercent:  t.CancellationFeePct,
	}
}
