package bookings

import (
	"mtour/internal/dates"
	"mtour/internal/pricing"
	"mtour/internal/routes"
	"mtour/internal/tariffs"
)

// CheckoutQuote is the price preview rendered by the checkout sidebar.
type CheckoutQuote struct {
	TourID       string                   `json:"tour_id"`
	Date         *dates.TourDateResponse  `json:"date,omitempty"`
	Tariff       *tariffs.TariffResponse  `json:"tariff,omitempty"`
	PickupStop   *routes.PickupStopResponse `json:"pickup_stop,omitempty"`
	Participants int                      `json:"participants"`
	Availability string                   `json:"availability,omitempty"`
	Quote        *pricing.Quote           `json:"quote,omitempty"`

	// FallbackPrice is set instead of Quote when no date or tariff has
	// been selected yet.
	FallbackPrice *float64 `json:"fallback_price,omitempty"`
}

type HoldResponse struct {
	HoldID     string `json:"hold_id"`
	DateID     string `json:"date_id"`
	Seats      int    `json:"seats"`
	TTLSeconds int    `json:"ttl_seconds"`
}
