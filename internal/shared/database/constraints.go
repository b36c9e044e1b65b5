package database

import (
	"gorm.io/gorm"
)

// constraintStatements are applied in order after AutoMigrate. Each must be
// idempotent so repeated boots are safe.
var constraintStatements = []string{
	// booked_seats must never exceed capacity even if application-level
	// checks are bypassed. ADD CONSTRAINT has no IF NOT EXISTS form in
	// Postgres, so the existence check goes through pg_constraint.
	`
	DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint
			WHERE conname = 'chk_tour_dates_capacity'
			AND conrelid = 'tour_dates'::regclass
		) THEN
			ALTER TABLE tour_dates
			ADD CONSTRAINT chk_tour_dates_capacity
			CHECK (booked_seats >= 0 AND booked_seats <= total_seats);
		END IF;
	END
	$$;
	`,

	// Published catalog pages resolve tours by slug
	`
	CREATE UNIQUE INDEX IF NOT EXISTS idx_tours_slug_published
	ON tours (slug)
	WHERE publish_status = 'published' AND slug <> '';
	`,

	// Checkout lists bookable dates per tour by departure
	`
	CREATE INDEX IF NOT EXISTS idx_tour_dates_tour_departure
	ON tour_dates (tour_id, departure_date);
	`,

	// Admin console filters bookings by tour and date
	`
	CREATE INDEX IF NOT EXISTS idx_bookings_tour_date
	ON bookings (tour_id, date_id);
	`,

	// KPI scan-rate query scans a rolling window
	`
	CREATE INDEX IF NOT EXISTS idx_ticket_scans_scanned_at
	ON ticket_scans (scanned_at);
	`,
}

// MigrateConstraints adds constraints the booking path relies on beyond
// what AutoMigrate derives from the model tags.
func MigrateConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
