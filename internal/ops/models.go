package ops

import (
	"time"

	"github.com/google/uuid"
)

// IncidentSeverity ranks how disruptive an incident is for dispatch.
type IncidentSeverity string

const (
	SeverityLow      IncidentSeverity = "low"
	SeverityMedium   IncidentSeverity = "medium"
	SeverityHigh     IncidentSeverity = "high"
	SeverityCritical IncidentSeverity = "critical"
)

func (s IncidentSeverity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type IncidentStatus string

const (
	IncidentOpen         IncidentStatus = "open"
	IncidentAcknowledged IncidentStatus = "acknowledged"
	IncidentResolved     IncidentStatus = "resolved"
)

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentOpen, IncidentAcknowledged, IncidentResolved:
		return true
	}
	return false
}

type ShiftStatus string

const (
	ShiftActive    ShiftStatus = "active"
	ShiftCompleted ShiftStatus = "completed"
)

// ComponentState reflects the health of one platform component on the
// status board.
type ComponentState string

const (
	StateOperational ComponentState = "operational"
	StateDegraded    ComponentState = "degraded"
	StateDown        ComponentState = "down"
)

func (s ComponentState) IsValid() bool {
	switch s {
	case StateOperational, StateDegraded, StateDown:
		return true
	}
	return false
}

// VehiclePosition is the latest reported position of one vehicle. Each
// telemetry ping upserts the row keyed by vehicle name.
type VehiclePosition struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Vehicle      string     `json:"vehicle" gorm:"not null;uniqueIndex;size:100"`
	RouteID      *uuid.UUID `json:"route_id" gorm:"type:uuid;index"`
	Latitude     float64    `json:"latitude" gorm:"not null"`
	Longitude    float64    `json:"longitude" gorm:"not null"`
	DelayMinutes int        `json:"delay_minutes" gorm:"default:0"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (VehiclePosition) TableName() string {
	return "vehicle_positions"
}

type Incident struct {
	ID          uuid.UUID        `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title       string           `json:"title" gorm:"not null;size:255"`
	Description string           `json:"description" gorm:"type:text"`
	Severity    IncidentSeverity `json:"severity" gorm:"type:varchar(20);not null"`
	Status      IncidentStatus   `json:"status" gorm:"type:varchar(20);default:'open'"`
	RouteID     *uuid.UUID       `json:"route_id" gorm:"type:uuid;index"`
	Vehicle     string           `json:"vehicle" gorm:"size:100"`
	ResolvedAt  *time.Time       `json:"resolved_at"`
	CreatedAt   time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Incident) TableName() string {
	return "incidents"
}

// TicketScan records one ticket check at boarding. Invalid scans stay in
// the table so the check-in rate reflects rejected tickets too.
type TicketScan struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingID *uuid.UUID `json:"booking_id" gorm:"type:uuid;index"`
	Vehicle   string     `json:"vehicle" gorm:"size:100"`
	Valid     bool       `json:"valid" gorm:"not null"`
	Reason    string     `json:"reason" gorm:"size:255"`
	ScannedAt time.Time  `json:"scanned_at" gorm:"not null;index"`
}

func (TicketScan) TableName() string {
	return "ticket_scans"
}

type DriverShift struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Driver    string      `json:"driver" gorm:"not null;size:100"`
	Vehicle   string      `json:"vehicle" gorm:"size:100"`
	RouteID   *uuid.UUID  `json:"route_id" gorm:"type:uuid;index"`
	Status    ShiftStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	StartedAt time.Time   `json:"started_at" gorm:"not null"`
	EndedAt   *time.Time  `json:"ended_at"`
	CreatedAt time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

func (DriverShift) TableName() string {
	return "driver_shifts"
}

// SystemStatus is one row per platform component on the status board,
// upserted by component name.
type SystemStatus struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Component string         `json:"component" gorm:"not null;uniqueIndex;size:100"`
	State     ComponentState `json:"state" gorm:"type:varchar(20);default:'operational'"`
	Message   string         `json:"message" gorm:"size:255"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (SystemStatus) TableName() string {
	return "system_status"
}

// KPISnapshot is the aggregate the dashboard polls. It is recomputed on a
// timer and whenever a watched table changes, then cached.
type KPISnapshot struct {
	AverageDelayMinutes float64   `json:"average_delay_minutes"`
	CheckInRate         float64   `json:"check_in_rate"`
	ScansPerMinute      float64   `json:"scans_per_minute"`
	OpenIncidents       int64     `json:"open_incidents"`
	ActiveShifts        int64     `json:"active_shifts"`
	BookingsLastHour    int64     `json:"bookings_last_hour"`
	ComputedAt          time.Time `json:"computed_at"`
}

// ScanStats are the raw scan counters for one time window.
type ScanStats struct {
	Total int64
	Valid int64
}

// CheckInRate returns the share of valid scans, 0 when nothing was scanned.
func (s ScanStats) CheckInRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Valid) / float64(s.Total)
}

// ScansPerMinute spreads the window's scan count over its minutes.
func (s ScanStats) ScansPerMinute(window time.Duration) float64 {
	minutes := window.Minutes()
	if minutes <= 0 {
		return 0
	}
	return float64(s.Total) / minutes
}
