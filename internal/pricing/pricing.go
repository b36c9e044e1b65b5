// Package pricing holds the pure price computation shared by the checkout
// flow and the tour builder sidebar. No I/O happens here.
package pricing

import (
	"time"

	"mtour/internal/dates"
	"mtour/internal/routes"
	"mtour/internal/tariffs"
)

// AddonSelection is one luggage addon picked during checkout.
type AddonSelection struct {
	AddonID  string  `json:"addon_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// DiscountBadge is an informational discount shown on the quote. The
// amounts are never subtracted from the total, invoicing applies them
// downstream if at all.
type DiscountBadge struct {
	Kind       string     `json:"kind"` // "early_bird" or "promo"
	Percent    float64    `json:"percent"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	PromoCode  *string    `json:"promo_code,omitempty"`
	StillValid bool       `json:"still_valid"`
}

// Quote is the full price breakdown for a checkout selection.
type Quote struct {
	BasePrice       float64          `json:"base_price"`
	PriceModifier   float64          `json:"price_modifier"`
	PricePerPerson  float64          `json:"price_per_person"`
	PickupSurcharge float64          `json:"pickup_surcharge"`
	PriceWithPickup float64          `json:"price_with_pickup"`
	Participants    int              `json:"participants"`
	BaseTotal       float64          `json:"base_total"`
	Addons          []AddonSelection `json:"addons,omitempty"`
	AddonsTotal     float64          `json:"addons_total"`
	Total           float64          `json:"total"`
	Discounts       []DiscountBadge  `json:"discounts,omitempty"`
}

// BasePrice resolves the per-person base price of a date for a tariff tier.
// The smart, flex and business columns are nullable and fall back to basic.
// Unknown tariff slugs also resolve to basic so a price is always produced.
func BasePrice(date *dates.TourDate, tariffSlug string) float64 {
	var tier *float64
	switch tariffSlug {
	case tariffs.SlugBasic:
		return date.PriceBasic
	case tariffs.SlugSmart:
		tier = date.PriceSmart
	case tariffs.SlugFlex:
		tier = date.PriceFlex
	case tariffs.SlugBusiness:
		tier = date.PriceBusiness
	default:
		return date.PriceBasic
	}
	if tier == nil {
		return date.PriceBasic
	}
	return *tier
}

// ComputeQuote builds the full breakdown for a selected date, tariff,
// optional pickup stop, participant count and addon selections.
//
//	pricePerPerson  = basePrice + tariff.price_modifier
//	priceWithPickup = pricePerPerson + stop.surcharge (0 if no stop)
//	baseTotal       = priceWithPickup * participants
//	total           = baseTotal + sum(addon.price * quantity)
func ComputeQuote(date *dates.TourDate, tariff *tariffs.Tariff, stop *routes.PickupStop, participants int, addons []AddonSelection) Quote {
	base := BasePrice(date, tariff.Slug)
	perPerson := base + tariff.PriceModifier

	var surcharge float64
	if stop != nil {
		surcharge = stop.Surcharge
	}
	withPickup := perPerson + surcharge
	baseTotal := withPickup * float64(participants)

	var addonsTotal float64
	for _, a := range addons {
		addonsTotal += a.Price * float64(a.Quantity)
	}

	return Quote{
		BasePrice:       base,
		PriceModifier:   tariff.PriceModifier,
		PricePerPerson:  perPerson,
		PickupSurcharge: surcharge,
		PriceWithPickup: withPickup,
		Participants:    participants,
		BaseTotal:       baseTotal,
		Addons:          addons,
		AddonsTotal:     addonsTotal,
		Total:           baseTotal + addonsTotal,
		Discounts:       DiscountBadges(date, time.Now()),
	}
}

// DiscountBadges lists the informational early-bird and promo discounts of
// a date. They are displayed next to the quote but never change the total.
func DiscountBadges(date *dates.TourDate, now time.Time) []DiscountBadge {
	var badges []DiscountBadge
	if date.EarlyBirdDiscountPct != nil && *date.EarlyBirdDiscountPct > 0 {
		badges = append(badges, DiscountBadge{
			Kind:       "early_bird",
			Percent:    *date.EarlyBirdDiscountPct,
			Deadline:   date.EarlyBirdDeadline,
			StillValid: date.EarlyBirdDeadline == nil || now.Before(*date.EarlyBirdDeadline),
		})
	}
	if date.PromoDiscountPct != nil && *date.PromoDiscountPct > 0 {
		badges = append(badges, DiscountBadge{
			Kind:       "promo",
			Percent:    *date.PromoDiscountPct,
			PromoCode:  date.PromoCode,
			StillValid: true,
		})
	}
	return badges
}

// LowestDatePrice returns the cheapest basic price across the given dates,
// skipping cancelled departures. The bool reports whether any date counted.
func LowestDatePrice(tourDates []dates.TourDate) (float64, bool) {
	var lowest float64
	found := false
	for _, d := range tourDates {
		if d.Status == dates.DateStatusCancelled {
			continue
		}
		if !found || d.PriceBasic < lowest {
			lowest = d.PriceBasic
			found = true
		}
	}
	return lowest, found
}

// FallbackPrice is shown when no date or tariff has been selected yet: the
// lowest available date price, else the tour's stored price_from.
func FallbackPrice(tourDates []dates.TourDate, priceFrom float64) float64 {
	if lowest, ok := LowestDatePrice(tourDates); ok {
		return lowest
	}
	return priceFrom
}
