package tariffs

// payload for creating a tariff under a tour
type CreateTariffRequest struct {
	Name               string   `json:"name" binding:"required,min=2,max=255"`
	Slug               string   `json:"slug" binding:"required,min=2,max=100"`
	PriceModifier      float64  `json:"price_modifier"`
	HandLuggageOnly    bool     `json:"hand_luggage_only"`
	SuitcaseIncluded   bool     `json:"suitcase_included"`
	SuitcaseWeightKg   int      `json:"suitcase_weight_kg" binding:"min=0,max=50"`
	SeatReservation    bool     `json:"seat_reservation"`
	IsRefundable       bool     `json:"is_refundable"`
	CancellationDays   int      `json:"cancellation_days" binding:"min=0"`
	CancellationFeePct float64  `json:"cancellation_fee_percent" binding:"min=0,max=100"`
	IncludedFeatures   []string `json:"included_features"`
	IsRecommended      bool     `json:"is_recommended"`
	IsActive           *bool    `json:"is_active"`
	SortOrder          int      `json:"sort_order"`
}

// payload for partial tariff updates
type UpdateTariffRequest struct {
	Name               *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Slug               *string  `json:"slug" binding:"omitempty,min=2,max=100"`
	PriceModifier      *float64 `json:"price_modifier"`
	HandLuggageOnly    *bool    `json:"hand_luggage_only"`
	SuitcaseIncluded   *bool    `json:"suitcase_included"`
	SuitcaseWeightKg   *int     `json:"suitcase_weight_kg" binding:"omitempty,min=0,max=50"`
	SeatReservation    *bool    `json:"seat_reservation"`
	IsRefundable       *bool    `json:"is_refundable"`
	CancellationDays   *int     `json:"cancellation_days" binding:"omitempty,min=0"`
	CancellationFeePct *float64 `json:"cancellation_fee_percent" binding:"omitempty,min=0,max=100"`
	IncludedFeatures   []string `json:"included_features"`
	IsRecommended      *bool    `json:"is_recommended"`
	IsActive           *bool    `json:"is_active"`
	SortOrder          *int     `json:"sort_order"`
}
