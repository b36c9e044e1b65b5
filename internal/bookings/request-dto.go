package bookings

// CheckoutQuoteQuery seeds the checkout wizard from URL query parameters.
// The weekend-trip entry point uses routeId/from/passengers instead of the
// date-first parameters.
type CheckoutQuoteQuery struct {
	Tour   string `form:"tour"`
	Date   string `form:"date"`
	Tariff string `form:"tariff"`
	Pax    int    `form:"pax" binding:"omitempty,min=1"`

	RouteID    string `form:"routeId"`
	From       string `form:"from"`
	To         string `form:"to"`
	Passengers int    `form:"passengers" binding:"omitempty,min=1"`

	PickupStop string `form:"pickupStop"`
}

type PassengerInput struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	DateOfBirth string `json:"date_of_birth" binding:"omitempty"`
}

type AddonInput struct {
	AddonID  string `json:"addon_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

type ContactInput struct {
	Name  string `json:"name" binding:"required,min=1,max=255"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,max=50"`
}

type CreateBookingRequest struct {
	TourID       string           `json:"tour_id" binding:"required,uuid"`
	DateID       string           `json:"date_id" binding:"required,uuid"`
	TariffID     string           `json:"tariff_id" binding:"required,uuid"`
	RouteID      string           `json:"route_id" binding:"omitempty,uuid"`
	PickupStopID string           `json:"pickup_stop_id" binding:"omitempty,uuid"`
	Participants int              `json:"participants" binding:"required,min=1"`
	Passengers   []PassengerInput `json:"passengers" binding:"required,min=1,dive"`
	Addons       []AddonInput     `json:"addons" binding:"omitempty,dive"`
	Contact      ContactInput     `json:"contact" binding:"required"`
	HoldID       string           `json:"hold_id" binding:"omitempty,uuid"`
}

type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	TourID string `form:"tour_id" binding:"omitempty,uuid"`
	DateID string `form:"date_id" binding:"omitempty,uuid"`
	Search string `form:"search"`
}

type HoldRequest struct {
	DateID string `json:"date_id" binding:"required,uuid"`
	Seats  int    `json:"seats" binding:"required,min=1"`
}
