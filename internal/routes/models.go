package routes

import (
	"time"

	"github.com/google/uuid"
)

// Route is a named boarding itinerary for a tour, an ordered list of
// pickup stops.
type Route struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	TourID    uuid.UUID `json:"tour_id" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Stops []PickupStop `json:"stops,omitempty" gorm:"foreignKey:RouteID"`
}

// PickupStop is a boarding location on a route. The surcharge is an
// additive per-person charge applied during checkout.
type PickupStop struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RouteID       uuid.UUID `json:"route_id" gorm:"type:uuid;not null;index"`
	City          string    `json:"city" gorm:"not null;size:255"`
	LocationName  string    `json:"location_name" gorm:"not null;size:255"`
	DepartureTime string    `json:"departure_time" gorm:"size:10"` // "HH:MM"
	Surcharge     float64   `json:"surcharge" gorm:"default:0"`
	MaxPassengers int       `json:"max_passengers" gorm:"default:0"` // 0 = unlimited
	SortOrder     int       `json:"sort_order" gorm:"default:0"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type RouteResponse struct {
	ID        string               `json:"id"`
	TourID    string               `json:"tour_id"`
	Name      string               `json:"name"`
	SortOrder int                  `json:"sort_order"`
	Stops     []PickupStopResponse `json:"stops"`
}

type PickupStopResponse struct {
	ID            string  `json:"id"`
	RouteID       string  `json:"route_id"`
	City          string  `json:"city"`
	LocationName  string  `json:"location_name"`
	DepartureTime string  `json:"departure_time"`
	Surcharge     float64 `json:"surcharge"`
	MaxPassengers int     `json:"max_passengers"`
	SortOrder     int     `json:"sort_order"`
}

func (r *Route) ToResponse() RouteResponse {
	stops := make([]PickupStopResponse, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = s.ToResponse()
	}
	return RouteResponse{
		ID:        r.ID.String(),
		TourID:    r.TourID.String(),
		Name:      r.Name,
		SortOrder: r.SortOrder,
		Stops:     stops,
	}
}

func (s *PickupStop) ToResponse() PickupStopResponse {
	return PickupStopResponse{
		ID:            s.ID.String(),
		RouteID:       s.RouteID.String(),
		City:          s.City,
		LocationName:  s.LocationName,
		DepartureTime: s.DepartureTime,
		Surcharge:     s.Surcharge,
		MaxPassengers: s.MaxPassengers,
		SortOrder:     s.SortOrder,
	}
}
