package dates

import "time"

// payload for creating a departure date under a tour
type CreateDateRequest struct {
	DepartureDate time.Time `json:"departure_date" binding:"required"`
	ReturnDate    time.Time `json:"return_date" binding:"required"`

	PriceBasic    float64  `json:"price_basic" binding:"required,min=0"`
	PriceSmart    *float64 `json:"price_smart" binding:"omitempty,min=0"`
	PriceFlex     *float64 `json:"price_flex" binding:"omitempty,min=0"`
	PriceBusiness *float64 `json:"price_business" binding:"omitempty,min=0"`

	TotalSeats int `json:"total_seats" binding:"required,min=1"`

	EarlyBirdDiscountPct *float64   `json:"early_bird_discount_percent" binding:"omitempty,min=0,max=100"`
	EarlyBirdDeadline    *time.Time `json:"early_bird_deadline"`
	PromoCode            *string    `json:"promo_code"`
	PromoDiscountPct     *float64   `json:"promo_discount_percent" binding:"omitempty,min=0,max=100"`
}

// payload for partial date updates
type UpdateDateRequest struct {
	DepartureDate *time.Time `json:"departure_date"`
	ReturnDate    *time.Time `json:"return_date"`

	PriceBasic    *float64 `json:"price_basic" binding:"omitempty,min=0"`
	PriceSmart    *float64 `json:"price_smart" binding:"omitempty,min=0"`
	PriceFlex     *float64 `json:"price_flex" binding:"omitempty,min=0"`
	PriceBusiness *float64 `json:"price_business" binding:"omitempty,min=0"`

	TotalSeats *int        `json:"total_seats" binding:"omitempty,min=1"`
	Status     *DateStatus `json:"status"`

	EarlyBirdDiscountPct *float64   `json:"early_bird_discount_percent" binding:"omitempty,min=0,max=100"`
	EarlyBirdDeadline    *time.Time `json:"early_bird_deadline"`
	PromoCode            *string    `json:"promo_code"`
	PromoDiscountPct     *float64   `json:"promo_discount_percent" binding:"omitempty,min=0,max=100"`
}
