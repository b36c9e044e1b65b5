package ops

import "time"

// VehiclePositionRequest is one telemetry ping from a vehicle.
type VehiclePositionRequest struct {
	Vehicle      string  `json:"vehicle" binding:"required,max=100"`
	RouteID      *string `json:"route_id" binding:"omitempty,uuid"`
	Latitude     float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude    float64 `json:"longitude" binding:"required,min=-180,max=180"`
	DelayMinutes int     `json:"delay_minutes" binding:"min=0"`
}

type CreateIncidentRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	Severity    string  `json:"severity" binding:"required,oneof=low medium high critical"`
	RouteID     *string `json:"route_id" binding:"omitempty,uuid"`
	Vehicle     string  `json:"vehicle" binding:"omitempty,max=100"`
}

type UpdateIncidentRequest struct {
	Status string `json:"status" binding:"required,oneof=open acknowledged resolved"`
}

type TicketScanRequest struct {
	BookingID *string `json:"booking_id" binding:"omitempty,uuid"`
	Vehicle   string  `json:"vehicle" binding:"omitempty,max=100"`
	Valid     bool    `json:"valid"`
	Reason    string  `json:"reason" binding:"omitempty,max=255"`
	// ScannedAt defaults to now when the scanner device sends no timestamp.
	ScannedAt *time.Time `json:"scanned_at"`
}

type StartShiftRequest struct {
	Driver  string  `json:"driver" binding:"required,max=100"`
	Vehicle string  `json:"vehicle" binding:"omitempty,max=100"`
	RouteID *string `json:"route_id" binding:"omitempty,uuid"`
}

type SystemStatusRequest struct {
	Component string `json:"component" binding:"required,max=100"`
	State     string `json:"state" binding:"required,oneof=operational degraded down"`
	Message   string `json:"message" binding:"omitempty,max=255"`
}
