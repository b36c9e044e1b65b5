package database

import (
	"mtour/internal/bookings"
	"mtour/internal/content"
	"mtour/internal/dates"
	"mtour/internal/inquiries"
	"mtour/internal/ops"
	"mtour/internal/routes"
	"mtour/internal/tariffs"
	"mtour/internal/tours"
	"mtour/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension present before AutoMigrate
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&users.User{},
		&tours.Tour{},
		&tariffs.Tariff{},
		&dates.TourDate{},
		&routes.Route{},
		&routes.PickupStop{},
		&content.Inclusion{},
		&content.LegalSection{},
		&content.LuggageAddon{},
		&bookings.Booking{},
		&inquiries.Inquiry{},
		&ops.VehiclePosition{},
		&ops.Incident{},
		&ops.TicketScan{},
		&ops.DriverShift{},
		&ops.SystemStatus{},
	)
}
