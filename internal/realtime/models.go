package realtime

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ChangeType classifies a row mutation on a watched table.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// Watched table names. Consumers subscribe per table or with TableAll.
const (
	TableTours            = "tours"
	TableTourDates        = "tour_dates"
	TableBookings         = "bookings"
	TableInquiries        = "inquiries"
	TableVehiclePositions = "vehicle_positions"
	TableIncidents        = "incidents"
	TableTicketScans      = "ticket_scans"
	TableDriverShifts     = "driver_shifts"
	TableSystemStatus     = "system_status"

	TableAll = "*"
)

// ChangeEvent announces that a row of a watched table changed. Consumers
// refetch what they need keyed by table and row id, no row payload is
// carried on the wire.
type ChangeEvent struct {
	ID         uuid.UUID  `json:"id"`
	Table      string     `json:"table"`
	Type       ChangeType `json:"type"`
	RowID      string     `json:"row_id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// NewChangeEvent builds a change event for a row mutation.
func NewChangeEvent(table string, changeType ChangeType, rowID string) *ChangeEvent {
	return &ChangeEvent{
		ID:         uuid.New(),
		Table:      table,
		Type:       changeType,
		RowID:      rowID,
		OccurredAt: time.Now(),
	}
}

func (e *ChangeEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ChangeEventFromJSON(data []byte) (*ChangeEvent, error) {
	var event ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// PartitionKey routes all events of one table to the same partition so
// per-table ordering is preserved.
func (e *ChangeEvent) PartitionKey() string {
	return e.Table
}
