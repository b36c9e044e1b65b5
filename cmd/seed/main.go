package main

import (
	"fmt"
	"log"
	"time"

	"mtour/internal/content"
	"mtour/internal/dates"
	"mtour/internal/routes"
	"mtour/internal/shared/config"
	"mtour/internal/shared/database"
	"mtour/internal/tariffs"
	"mtour/internal/tours"
	"mtour/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting mtour Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"ticket_scans",
		"bookings",
		"inquiries",
		"vehicle_positions",
		"incidents",
		"driver_shifts",
		"system_status",
		"pickup_stops",
		"routes",
		"tour_dates",
		"tariffs",
		"inclusions",
		"legal_sections",
		"luggage_addons",
		"tours",
		"users",
	}

	for _, table := range tables {
		if err := s.db.PostgreSQL.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)).Error; err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

// SeedAll seeds an admin account plus one fully built, published demo tour
func (s *Seeder) SeedAll() error {
	admin, err := s.seedUsers()
	if err != nil {
		return err
	}

	tour, err := s.seedTour(admin)
	if err != nil {
		return err
	}

	if err := s.seedTariffs(tour); err != nil {
		return err
	}
	if err := s.seedDates(tour); err != nil {
		return err
	}
	if err := s.seedRoutes(tour); err != nil {
		return err
	}
	if err := s.seedContent(tour); err != nil {
		return err
	}

	return nil
}

func (s *Seeder) seedUsers() (*users.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &users.User{
		FirstName: "Maya",
		LastName:  "Admin",
		Email:     "admin@mtour.example",
		Password:  string(hash),
		Role:      users.RoleAdmin,
	}
	if err := s.db.PostgreSQL.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	staffHash, err := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	staff := &users.User{
		FirstName: "Sam",
		LastName:  "Dispatcher",
		Email:     "staff@mtour.example",
		Password:  string(staffHash),
		Role:      users.RoleStaff,
	}
	if err := s.db.PostgreSQL.Create(staff).Error; err != nil {
		return nil, fmt.Errorf("failed to create staff user: %w", err)
	}

	fmt.Println("  👤 Seeded users: admin@mtour.example / staff@mtour.example")
	return admin, nil
}

func (s *Seeder) seedTour(admin *users.User) (*tours.Tour, error) {
	now := time.Now()
	tour := &tours.Tour{
		Destination:      "Gardasee",
		Location:         "Riva del Garda",
		Country:          "Italien",
		ShortDescription: "Eine Woche am Nordufer des Gardasees mit Ausflügen nach Verona und Venedig.",
		Description:      "Busreise an den Gardasee mit Hotelaufenthalt in Riva del Garda. Tagesausflüge nach Verona, Venedig und zur Insel Sirmione. Begleitete Wanderungen am Monte Baldo optional zubuchbar.",
		Highlights:       tours.Highlights{"Hotel direkt am See", "Tagesausflug nach Venedig", "Weinprobe in Bardolino"},
		HeroImageURL:     "https://images.mtour.example/gardasee-hero.jpg",
		FallbackImageURL: "https://images.mtour.example/gardasee-fallback.jpg",
		DurationDays:     7,
		PriceFrom:        199,
		MinParticipants:  20,
		PublishStatus:    tours.StatusPublished,
		Slug:             "gardasee",
		PublishedAt:      &now,
		IsActive:         true,
		CreatedBy:        admin.ID,
	}

	if err := s.db.PostgreSQL.Create(tour).Error; err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	fmt.Println("  🚌 Seeded tour: Gardasee")
	return tour, nil
}

func (s *Seeder) seedTariffs(tour *tours.Tour) error {
	seedTariffs := []tariffs.Tariff{
		{
			TourID:           tour.ID,
			Name:             "Basic",
			Slug:             tariffs.SlugBasic,
			PriceModifier:    0,
			HandLuggageOnly:  true,
			IncludedFeatures: tariffs.FeatureList{"Sitzplatz im Reisebus", "Handgepäck"},
			SortOrder:        1,
		},
		{
			TourID:           tour.ID,
			Name:             "Smart",
			Slug:             tariffs.SlugSmart,
			PriceModifier:    15,
			SuitcaseIncluded: true,
			SuitcaseWeightKg: 20,
			IncludedFeatures: tariffs.FeatureList{"Koffer bis 20 kg", "Handgepäck"},
			IsRecommended:    true,
			SortOrder:        2,
		},
		{
			TourID:             tour.ID,
			Name:               "Flex",
			Slug:               tariffs.SlugFlex,
			PriceModifier:      35,
			SuitcaseIncluded:   true,
			SuitcaseWeightKg:   20,
			SeatReservation:    true,
			IsRefundable:       true,
			CancellationDays:   14,
			CancellationFeePct: 20,
			IncludedFeatures:   tariffs.FeatureList{"Koffer bis 20 kg", "Sitzplatzreservierung", "Stornierbar bis 14 Tage vor Abfahrt"},
			SortOrder:          3,
		},
		{
			TourID:             tour.ID,
			Name:               "Business",
			Slug:               tariffs.SlugBusiness,
			PriceModifier:      60,
			SuitcaseIncluded:   true,
			SuitcaseWeightKg:   30,
			SeatReservation:    true,
			IsRefundable:       true,
			CancellationDays:   7,
			CancellationFeePct: 0,
			IncludedFeatures:   tariffs.FeatureList{"Koffer bis 30 kg", "Komfortsitz vorne", "Kostenlose Stornierung bis 7 Tage vor Abfahrt"},
			SortOrder:          4,
		},
	}

	for i := range seedTariffs {
		if err := s.db.PostgreSQL.Create(&seedTariffs[i]).Error; err != nil {
			return fmt.Errorf("failed to create tariff %s: %w", seedTariffs[i].Name, err)
		}
	}

	fmt.Println("  🎫 Seeded 4 tariffs")
	return nil
}

func (s *Seeder) seedDates(tour *tours.Tour) error {
	smart := 214.0
	flex := 229.0
	business := 249.0
	earlyBird := 10.0

	departures := []time.Time{
		time.Now().AddDate(0, 1, 0),
		time.Now().AddDate(0, 2, 0),
		time.Now().AddDate(0, 3, 0),
	}

	for i, departure := range departures {
		deadline := departure.AddDate(0, 0, -30)
		promo := "SOMMER25"
		promoPct := 5.0

		date := &dates.TourDate{
			TourID:               tour.ID,
			DepartureDate:        departure,
			ReturnDate:           departure.AddDate(0, 0, 6),
			DurationDays:         7,
			PriceBasic:           199 + float64(i)*20,
			PriceSmart:           &smart,
			PriceFlex:            &flex,
			PriceBusiness:        &business,
			TotalSeats:           48,
			Status:               dates.DateStatusScheduled,
			EarlyBirdDiscountPct: &earlyBird,
			EarlyBirdDeadline:    &deadline,
			PromoCode:            &promo,
			PromoDiscountPct:     &promoPct,
		}
		if err := s.db.PostgreSQL.Create(date).Error; err != nil {
			return fmt.Errorf("failed to create tour date: %w", err)
		}
	}

	fmt.Println("  📅 Seeded 3 departure dates")
	return nil
}

func (s *Seeder) seedRoutes(tour *tours.Tour) error {
	route := &routes.Route{
		TourID:    tour.ID,
		Name:      "Nordroute",
		SortOrder: 1,
	}
	if err := s.db.PostgreSQL.Create(route).Error; err != nil {
		return fmt.Errorf("failed to create route: %w", err)
	}

	stops := []routes.PickupStop{
		{RouteID: route.ID, City: "Hamburg", LocationName: "ZOB Hamburg", DepartureTime: "05:30", Surcharge: 0, SortOrder: 1},
		{RouteID: route.ID, City: "Hannover", LocationName: "ZOB Hannover", DepartureTime: "07:15", Surcharge: 0, SortOrder: 2},
		{RouteID: route.ID, City: "Kassel", LocationName: "Bahnhof Wilhelmshöhe", DepartureTime: "08:45", Surcharge: 10, SortOrder: 3},
		{RouteID: route.ID, City: "München", LocationName: "ZOB München", DepartureTime: "12:30", Surcharge: 25, MaxPassengers: 12, SortOrder: 4},
	}
	for i := range stops {
		if err := s.db.PostgreSQL.Create(&stops[i]).Error; err != nil {
			return fmt.Errorf("failed to create pickup stop: %w", err)
		}
	}

	fmt.Println("  🗺️  Seeded route with 4 pickup stops")
	return nil
}

func (s *Seeder) seedContent(tour *tours.Tour) error {
	inclusions := []content.Inclusion{
		{TourID: tour.ID, Title: "Fahrt im modernen Fernreisebus", Category: content.CategoryIncluded, SortOrder: 1},
		{TourID: tour.ID, Title: "6 Übernachtungen mit Halbpension", Category: content.CategoryIncluded, SortOrder: 2},
		{TourID: tour.ID, Title: "Tagesausflug Venedig", Category: content.CategoryOptional, SortOrder: 3},
		{TourID: tour.ID, Title: "Reiserücktrittsversicherung", Category: content.CategoryNotIncluded, SortOrder: 4},
	}
	for i := range inclusions {
		if err := s.db.PostgreSQL.Create(&inclusions[i]).Error; err != nil {
			return fmt.Errorf("failed to create inclusion: %w", err)
		}
	}

	legal := []content.LegalSection{
		{TourID: tour.ID, Title: "Reisebedingungen", Content: "Es gelten die allgemeinen Reisebedingungen des Veranstalters.", SortOrder: 1},
		{TourID: tour.ID, Title: "Pass- und Visabestimmungen", Content: "Für die Einreise nach Italien genügt ein gültiger Personalausweis.", SortOrder: 2},
	}
	for i := range legal {
		if err := s.db.PostgreSQL.Create(&legal[i]).Error; err != nil {
			return fmt.Errorf("failed to create legal section: %w", err)
		}
	}

	addons := []content.LuggageAddon{
		{TourID: tour.ID, Name: "Zusatzkoffer", Description: "Ein weiterer Koffer bis 20 kg", Price: 25, IsActive: true, SortOrder: 1},
		{TourID: tour.ID, Name: "Fahrradmitnahme", Description: "Stellplatz im Fahrradanhänger", Price: 35, IsActive: true, SortOrder: 2},
	}
	for i := range addons {
		if err := s.db.PostgreSQL.Create(&addons[i]).Error; err != nil {
			return fmt.Errorf("failed to create luggage addon: %w", err)
		}
	}

	fmt.Println("  📝 Seeded inclusions, legal sections and luggage addons")
	return nil
}
