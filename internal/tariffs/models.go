package tariffs

import (
	"time"

	"github.com/google/uuid"
)

// Tariff is a named fare class of a tour (Basic/Smart/Flex/Business). Its
// price_modifier is a delta over the selected date's base price.
type Tariff struct {
	ID                    uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TourID                uuid.UUID      `json:"tour_id" gorm:"type:uuid;not null;index"`
	Name                  string         `json:"name" gorm:"not null;size:255"`
	Slug                  string         `json:"slug" gorm:"not null;size:100"`
	PriceModifier         float64        `json:"price_modifier" gorm:"default:0"`
	HandLuggageOnly       bool           `json:"hand_luggage_only" gorm:"default:false"`
	SuitcaseIncluded      bool           `json:"suitcase_included" gorm:"default:false"`
	SuitcaseWeightKg      int            `json:"suitcase_weight_kg" gorm:"default:0"`
	SeatReservation       bool           `json:"seat_reservation" gorm:"default:false"`
	IsRefundable          bool           `json:"is_refundable" gorm:"default:false"`
	CancellationDays      int            `json:"cancellation_days" gorm:"default:0"`
	CancellationFeePct    float64        `json:"cancellation_fee_percent" gorm:"column:cancellation_fee_percent;default:0"`
	IncludedFeatures      FeatureList    `json:"included_features" gorm:"type:jsonb"`
	IsRecommended         bool           `json:"is_recommended" gorm:"default:false"`
	IsActive              bool           `json:"is_active" gorm:"default:true"`
	SortOrder             int            `json:"sort_order" gorm:"default:0"`
	CreatedAt             time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt             time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// Well-known tariff slugs mapped to per-date price tiers.
const (
	SlugBasic    = "basic"
	SlugSmart    = "smart"
	SlugFlex     = "flex"
	SlugBusiness = "business"
)

type TariffResponse struct {
	ID                 string   `json:"id"`
	TourID             string   `json:"tour_id"`
	Name               string   `json:"name"`
	Slug               string   `json:"slug"`
	PriceModifier      float64  `json:"price_modifier"`
	HandLuggageOnly    bool     `json:"hand_luggage_only"`
	SuitcaseIncluded   bool     `json:"suitcase_included"`
	SuitcaseWeightKg   int      `json:"suitcase_weight_kg"`
	SeatReservation    bool     `json:"seat_reservation"`
	IsRefundable       bool     `json:"is_refundable"`
	CancellationDays   int      `json:"cancellation_days"`
	CancellationFeePct float64  `json:"cancellation_fee_percent"`
	IncludedFeatures   []string `json:"included_features"`
	IsRecommended      bool     `json:"is_recommended"`
	IsActive           bool     `json:"is_active"`
	SortOrder          int      `json:"sort_order"`

	CancellationPolicy CancellationPolicy `json:"cancellation_policy"`
}

func (t *Tariff) ToResponse() TariffResponse {
	return TariffResponse{
		ID:                 t.ID.String(),
		TourID:             t.TourID.String(),
		Name:               t.Name,
		Slug:               t.Slug,
		PriceModifier:      t.PriceModifier,
		HandLuggageOnly:    t.HandLuggageOnly,
		SuitcaseIncluded:   t.SuitcaseIncluded,
		SuitcaseWeightKg:   t.SuitcaseWeightKg,
		SeatReservation:    t.SeatReservation,
		IsRefundable:       t.IsRefundable,
		CancellationDays:   t.CancellationDays,
		CancellationFeePct: t.CancellationFeePct,
		IncludedFeatures:   t.IncludedFeatures,
		IsRecommended:      t.IsRecommended,
		IsActive:           t.IsActive,
		SortOrder:          t.SortOrder,
		CancellationPolicy: t.Policy(),
	}
}
