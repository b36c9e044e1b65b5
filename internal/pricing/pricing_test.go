package pricing

import (
	"testing"
	"time"

	"mtour/internal/dates"
	"mtour/internal/routes"
	"mtour/internal/tariffs"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestBasePrice(t *testing.T) {
	date := &dates.TourDate{
		PriceBasic: 199,
		PriceFlex:  floatPtr(249),
	}

	tests := []struct {
		name string
		slug string
		want float64
	}{
		{"basic uses basic column", tariffs.SlugBasic, 199},
		{"smart falls back to basic when null", tariffs.SlugSmart, 199},
		{"flex uses its own column", tariffs.SlugFlex, 249},
		{"business falls back to basic when null", tariffs.SlugBusiness, 199},
		{"unknown slug falls back to basic", "premium-plus", 199},
		{"empty slug falls back to basic", "", 199},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BasePrice(date, tt.slug))
		})
	}
}

func TestComputeQuoteFullBreakdown(t *testing.T) {
	date := &dates.TourDate{
		PriceBasic: 199,
		PriceSmart: nil,
	}
	tariff := &tariffs.Tariff{Slug: tariffs.SlugSmart, PriceModifier: 15}
	stop := &routes.PickupStop{Surcharge: 50}
	addons := []AddonSelection{{Name: "Extra suitcase", Price: 25, Quantity: 1}}

	quote := ComputeQuote(date, tariff, stop, 2, addons)

	assert.Equal(t, 199.0, quote.BasePrice)
	assert.Equal(t, 214.0, quote.PricePerPerson)
	assert.Equal(t, 264.0, quote.PriceWithPickup)
	assert.Equal(t, 528.0, quote.BaseTotal)
	assert.Equal(t, 25.0, quote.AddonsTotal)
	assert.Equal(t, 553.0, quote.Total)
}

func TestComputeQuoteWithoutPickupStop(t *testing.T) {
	date := &dates.TourDate{PriceBasic: 100}
	tariff := &tariffs.Tariff{Slug: tariffs.SlugBasic, PriceModifier: 0}

	quote := ComputeQuote(date, tariff, nil, 3, nil)

	assert.Equal(t, 0.0, quote.PickupSurcharge)
	assert.Equal(t, 300.0, quote.Total)
}

func TestDiscountBadgesAreInformationalOnly(t *testing.T) {
	deadline := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	promo := "SUMMER10"
	date := &dates.TourDate{
		PriceBasic:           200,
		EarlyBirdDiscountPct: floatPtr(20),
		EarlyBirdDeadline:    &deadline,
		PromoCode:            &promo,
		PromoDiscountPct:     floatPtr(10),
	}
	tariff := &tariffs.Tariff{Slug: tariffs.SlugBasic}

	quote := ComputeQuote(date, tariff, nil, 1, nil)

	assert.Len(t, quote.Discounts, 2)
	// The total never has discounts subtracted.
	assert.Equal(t, 200.0, quote.Total)
}

func TestDiscountBadgeDeadline(t *testing.T) {
	deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	date := &dates.TourDate{
		EarlyBirdDiscountPct: floatPtr(15),
		EarlyBirdDeadline:    &deadline,
	}

	before := DiscountBadges(date, deadline.Add(-24*time.Hour))
	assert.True(t, before[0].StillValid)

	after := DiscountBadges(date, deadline.Add(24*time.Hour))
	assert.False(t, after[0].StillValid)
}

func TestLowestDatePriceSkipsCancelled(t *testing.T) {
	tourDates := []dates.TourDate{
		{PriceBasic: 150, Status: dates.DateStatusCancelled},
		{PriceBasic: 220, Status: dates.DateStatusScheduled},
		{PriceBasic: 180, Status: dates.DateStatusScheduled},
	}

	lowest, ok := LowestDatePrice(tourDates)
	assert.True(t, ok)
	assert.Equal(t, 180.0, lowest)
}

func TestFallbackPrice(t *testing.T) {
	t.Run("uses lowest date price when dates exist", func(t *testing.T) {
		tourDates := []dates.TourDate{{PriceBasic: 99, Status: dates.DateStatusScheduled}}
		assert.Equal(t, 99.0, FallbackPrice(tourDates, 149))
	})

	t.Run("falls back to price_from when no dates", func(t *testing.T) {
		assert.Equal(t, 149.0, FallbackPrice(nil, 149))
	})
}
