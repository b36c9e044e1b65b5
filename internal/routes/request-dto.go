package routes

// payload for creating a route under a tour
type CreateRouteRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=255"`
	SortOrder int    `json:"sort_order"`
}

// payload for partial route updates
type UpdateRouteRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	SortOrder *int    `json:"sort_order"`
}

// payload for creating a pickup stop on a route
type CreateStopRequest struct {
	City          string  `json:"city" binding:"required,min=2,max=255"`
	LocationName  string  `json:"location_name" binding:"required,min=2,max=255"`
	DepartureTime string  `json:"departure_time" binding:"omitempty,len=5"` // "HH:MM"
	Surcharge     float64 `json:"surcharge" binding:"min=0"`
	MaxPassengers int     `json:"max_passengers" binding:"min=0"`
	SortOrder     int     `json:"sort_order"`
}

// payload for partial pickup stop updates
type UpdateStopRequest struct {
	City          *string  `json:"city" binding:"omitempty,min=2,max=255"`
	LocationName  *string  `json:"location_name" binding:"omitempty,min=2,max=255"`
	DepartureTime *string  `json:"departure_time" binding:"omitempty,len=5"`
	Surcharge     *float64 `json:"surcharge" binding:"omitempty,min=0"`
	MaxPassengers *int     `json:"max_passengers" binding:"omitempty,min=0"`
	SortOrder     *int     `json:"sort_order"`
}
