package dates

import (
	"time"

	"github.com/google/uuid"
)

// TourDate is one bookable departure instance of a tour with its own
// capacity and per-tariff base prices. The smart/flex/business tiers are
// nullable and fall back to the basic price.
type TourDate struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TourID        uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	DepartureDate time.Time `json:"departure_date" gorm:"not null"`
	ReturnDate    time.Time `json:"return_date" gorm:"not null"`
	DurationDays  int       `json:"duration_days"`

	PriceBasic    float64  `json:"price_basic" gorm:"not null"`
	PriceSmart    *float64 `json:"price_smart"`
	PriceFlex     *float64 `json:"price_flex"`
	PriceBusiness *float64 `json:"price_business"`

	TotalSeats  int        `json:"total_seats" gorm:"not null;check:total_seats > 0"`
	BookedSeats int        `json:"booked_seats" gorm:"default:0;check:booked_seats >= 0"`
	Status      DateStatus `json:"status" gorm:"type:varchar(20);default:'scheduled'"`

	EarlyBirdDiscountPct *float64   `json:"early_bird_discount_percent"`
	EarlyBirdDeadline    *time.Time `json:"early_bird_deadline"`
	PromoCode            *string    `json:"promo_code"`
	PromoDiscountPct     *float64   `json:"promo_discount_percent"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type DateStatus string

const (
	DateStatusScheduled DateStatus = "scheduled"
	DateStatusCancelled DateStatus = "cancelled"
	DateStatusCompleted DateStatus = "completed"
)

// Availability labels used by booking surfaces. Display hints only, seat
// capacity itself is enforced by the reservation transaction.
const (
	AvailabilitySoldOut   = "sold_out"
	AvailabilityFewSeats  = "few_seats"
	AvailabilityAvailable = "available"

	fewSeatsThreshold = 5
)

// AvailableSeats returns the remaining capacity floored at zero for display.
// The stored booked_seats value is never clamped here.
func (d *TourDate) AvailableSeats() int {
	available := d.TotalSeats - d.BookedSeats
	if available < 0 {
		return 0
	}
	return available
}

// AvailabilityLabel classifies remaining capacity for badges.
func (d *TourDate) AvailabilityLabel() string {
	available := d.AvailableSeats()
	switch {
	case available == 0:
		return AvailabilitySoldOut
	case available <= fewSeatsThreshold:
		return AvailabilityFewSeats
	default:
		return AvailabilityAvailable
	}
}

// DurationDaysBetween derives the inclusive trip length in whole days.
// A return date before the departure yields a non-positive value which is
// stored as-is, mirroring what the booking surfaces tolerate.
func DurationDaysBetween(departure, ret time.Time) int {
	return int(ret.Sub(departure).Hours()/24) + 1
}

type TourDateResponse struct {
	ID            string    `json:"id"`
	TourID        string    `json:"tour_id"`
	DepartureDate time.Time `json:"departure_date"`
	ReturnDate    time.Time `json:"return_date"`
	DurationDays  int       `json:"duration_days"`

	PriceBasic    float64  `json:"price_basic"`
	PriceSmart    *float64 `json:"price_smart"`
	PriceFlex     *float64 `json:"price_flex"`
	PriceBusiness *float64 `json:"price_business"`

	TotalSeats        int        `json:"total_seats"`
	BookedSeats       int        `json:"booked_seats"`
	AvailableSeats    int        `json:"available_seats"`
	AvailabilityLabel string     `json:"availability_label"`
	Status            DateStatus `json:"status"`

	EarlyBirdDiscountPct *float64   `json:"early_bird_discount_percent"`
	EarlyBirdDeadline    *time.Time `json:"early_bird_deadline"`
	PromoCode            *string    `json:"promo_code"`
	PromoDiscountPct     *float64   `json:"promo_discount_percent"`
}

func (d *TourDate) ToResponse() TourDateResponse {
	return TourDateResponse{
		ID:                   d.ID.String(),
		TourID:               d.TourID.String(),
		DepartureDate:        d.DepartureDate,
		ReturnDate:           d.ReturnDate,
		DurationDays:         d.DurationDays,
		PriceBasic:           d.PriceBasic,
		PriceSmart:           d.PriceSmart,
		PriceFlex:            d.PriceFlex,
		PriceBusiness:        d.PriceBusiness,
		TotalSeats:           d.TotalSeats,
		BookedSeats:          d.BookedSeats,
		AvailableSeats:       d.AvailableSeats(),
		AvailabilityLabel:    d.AvailabilityLabel(),
		Status:               d.Status,
		EarlyBirdDiscountPct: d.EarlyBirdDiscountPct,
		EarlyBirdDeadline:    d.EarlyBirdDeadline,
		PromoCode:            d.PromoCode,
		PromoDiscountPct:     d.PromoDiscountPct,
	}
}
