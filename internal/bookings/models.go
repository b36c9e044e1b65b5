package bookings

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mtour/internal/pricing"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Passenger is one traveller on a booking, stored as jsonb.
type Passenger struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
}

type PassengerList []Passenger

func (p PassengerList) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	return json.Marshal(p)
}

func (p *PassengerList) Scan(value interface{}) error {
	return scanJSON(value, p, "PassengerList")
}

// AddonList snapshots the luggage addon selections with the prices that
// were charged, stored as jsonb.
type AddonList []pricing.AddonSelection

func (a AddonList) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	return json.Marshal(a)
}

func (a *AddonList) Scan(value interface{}) error {
	return scanJSON(value, a, "AddonList")
}

func scanJSON(value interface{}, dest interface{}, name string) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %s", value, name)
	}

	return json.Unmarshal(bytes, dest)
}

// Booking is a confirmed checkout. The price fields are a snapshot of the
// quote at booking time, later tariff or date edits never change them.
type Booking struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingNumber string    `json:"booking_number" gorm:"not null;uniqueIndex;size:40"`

	TourID       uuid.UUID  `json:"tour_id" gorm:"type:uuid;not null;index"`
	DateID       uuid.UUID  `json:"date_id" gorm:"type:uuid;not null;index"`
	TariffID     uuid.UUID  `json:"tariff_id" gorm:"type:uuid;not null"`
	RouteID      *uuid.UUID `json:"route_id" gorm:"type:uuid"`
	PickupStopID *uuid.UUID `json:"pickup_stop_id" gorm:"type:uuid"`

	Participants int           `json:"participants" gorm:"not null;check:participants > 0"`
	Passengers   PassengerList `json:"passengers" gorm:"type:jsonb;default:'[]'"`
	Addons       AddonList     `json:"addons" gorm:"type:jsonb;default:'[]'"`

	PricePerPerson  float64 `json:"price_per_person" gorm:"not null"`
	PickupSurcharge float64 `json:"pickup_surcharge" gorm:"default:0"`
	BaseTotal       float64 `json:"base_total" gorm:"not null"`
	AddonsTotal     float64 `json:"addons_total" gorm:"default:0"`
	TotalPrice      float64 `json:"total_price" gorm:"not null"`

	ContactName  string `json:"contact_name" gorm:"not null;size:255"`
	ContactEmail string `json:"contact_email" gorm:"not null;size:255"`
	ContactPhone string `json:"contact_phone" gorm:"size:50"`

	Status      Status     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

type BookingResponse struct {
	ID              string        `json:"id"`
	BookingNumber   string        `json:"booking_number"`
	TourID          string        `json:"tour_id"`
	DateID          string        `json:"date_id"`
	TariffID        string        `json:"tariff_id"`
	RouteID         *string       `json:"route_id,omitempty"`
	PickupStopID    *string       `json:"pickup_stop_id,omitempty"`
	Participants    int           `json:"participants"`
	Passengers      PassengerList `json:"passengers"`
	Addons          AddonList     `json:"addons"`
	PricePerPerson  float64       `json:"price_per_person"`
	PickupSurcharge float64       `json:"pickup_surcharge"`
	BaseTotal       float64       `json:"base_total"`
	AddonsTotal     float64       `json:"addons_total"`
	TotalPrice      float64       `json:"total_price"`
	ContactName     string        `json:"contact_name"`
	ContactEmail    string        `json:"contact_email"`
	ContactPhone    string        `json:"contact_phone"`
	Status          Status        `json:"status"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:              b.ID.String(),
		BookingNumber:   b.BookingNumber,
		TourID:          b.TourID.String(),
		DateID:          b.DateID.String(),
		TariffID:        b.TariffID.String(),
		Participants:    b.Participants,
		Passengers:      b.Passengers,
		Addons:          b.Addons,
		PricePerPerson:  b.PricePerPerson,
		PickupSurcharge: b.PickupSurcharge,
		BaseTotal:       b.BaseTotal,
		AddonsTotal:     b.AddonsTotal,
		TotalPrice:      b.TotalPrice,
		ContactName:     b.ContactName,
		ContactEmail:    b.ContactEmail,
		ContactPhone:    b.ContactPhone,
		Status:          b.Status,
		CancelledAt:     b.CancelledAt,
		CreatedAt:       b.CreatedAt,
	}
	if b.RouteID != nil {
		id := b.RouteID.String()
		resp.RouteID = &id
	}
	if b.PickupStopID != nil {
		id := b.PickupStopID.String()
		resp.PickupStopID = &id
	}
	return resp
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}
