package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mtour/internal/content"
	"mtour/internal/dates"
	"mtour/internal/pricing"
	"mtour/internal/realtime"
	"mtour/internal/routes"
	"mtour/internal/tariffs"
	"mtour/internal/tours"
	"mtour/pkg/logger"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrDateUnavailable  = errors.New("departure date is not bookable")
	ErrTourMismatch     = errors.New("selection does not belong to the tour")
	ErrPassengerCount   = errors.New("passenger list does not match participant count")
)

type Service interface {
	CheckoutQuote(ctx context.Context, query CheckoutQuoteQuery) (*CheckoutQuote, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error)
	GetBooking(ctx context.Context, id string) (*BookingResponse, error)
	GetBookingByNumber(ctx context.Context, number string) (*BookingResponse, error)
	ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error)
	CancelBooking(ctx context.Context, id string) (*BookingResponse, error)

	CreateHold(ctx context.Context, req HoldRequest) (*HoldResponse, error)
	ReleaseHold(ctx context.Context, dateID, holdID string) error
}

type service struct {
	repo        Repository
	tourRepo    tours.Repository
	dateRepo    dates.Repository
	tariffRepo  tariffs.Repository
	routeRepo   routes.Repository
	contentRepo content.Repository
	holds       *SeatHolds
	holdTTL     time.Duration
	producer    realtime.Producer
	log         *logger.Logger
}

func NewService(
	repo Repository,
	tourRepo tours.Repository,
	dateRepo dates.Repository,
	tariffRepo tariffs.Repository,
	routeRepo routes.Repository,
	contentRepo content.Repository,
	holds *SeatHolds,
	holdTTL time.Duration,
	producer realtime.Producer,
	log *logger.Logger,
) Service {
	return &service{
		repo:        repo,
		tourRepo:    tourRepo,
		dateRepo:    dateRepo,
		tariffRepo:  tariffRepo,
		routeRepo:   routeRepo,
		contentRepo: contentRepo,
		holds:       holds,
		holdTTL:     holdTTL,
		producer:    producer,
		log:         log,
	}
}

// CheckoutQuote prices the current wizard selection. With no date or
// tariff selected yet it falls back to the tour's cheapest date price, or
// the stored price_from when no dates exist.
func (s *service) CheckoutQuote(ctx context.Context, query CheckoutQuoteQuery) (*CheckoutQuote, error) {
	if query.Tour == "" {
		return nil, fmt.Errorf("tour parameter is required")
	}
	tourUUID, err := uuid.Parse(query.Tour)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	participants := query.Pax
	if participants == 0 {
		participants = query.Passengers
	}
	if participants == 0 {
		participants = 1
	}

	result := &CheckoutQuote{TourID: query.Tour, Participants: participants}

	if query.Date == "" || query.Tariff == "" {
		return s.fallbackQuote(ctx, tourUUID, result)
	}

	dateUUID, err := uuid.Parse(query.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date ID: %w", err)
	}
	date, err := s.dateRepo.GetByID(ctx, dateUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get date: %w", err)
	}
	if date.TourID != tourUUID {
		return nil, ErrTourMismatch
	}

	tariff, err := s.resolveTariff(ctx, tourUUID, query.Tariff)
	if err != nil {
		return nil, err
	}

	stop, err := s.resolveStop(ctx, query)
	if err != nil {
		return nil, err
	}

	quote := pricing.ComputeQuote(date, tariff, stop, participants, nil)

	dateResp := date.ToResponse()
	tariffResp := tariff.ToResponse()
	result.Date = &dateResp
	result.Tariff = &tariffResp
	if stop != nil {
		stopResp := stop.ToResponse()
		result.PickupStop = &stopResp
	}
	result.Availability = date.AvailabilityLabel()
	result.Quote = &quote

	return result, nil
}

func (s *service) fallbackQuote(ctx context.Context, tourUUID uuid.UUID, result *CheckoutQuote) (*CheckoutQuote, error) {
	tour, err := s.tourRepo.GetByID(ctx, tourUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	tourDates, err := s.dateRepo.GetByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dates: %w", err)
	}

	price := pricing.FallbackPrice(tourDates, tour.PriceFrom)
	result.FallbackPrice = &price
	return result, nil
}

// resolveTariff accepts either a tariff ID or a tariff slug, the two forms
// the checkout URLs use.
func (s *service) resolveTariff(ctx context.Context, tourUUID uuid.UUID, ref string) (*tariffs.Tariff, error) {
	if tariffUUID, err := uuid.Parse(ref); err == nil {
		tariff, err := s.tariffRepo.GetByID(ctx, tariffUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("failed to get tariff: %w", err)
		}
		if tariff.TourID != tourUUID {
			return nil, ErrTourMismatch
		}
		return tariff, nil
	}

	tariff, err := s.tariffRepo.GetByTourAndSlug(ctx, tourUUID, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}
	return tariff, nil
}

// resolveStop finds the pickup stop either directly by ID or, on the
// weekend-trip entry point, by route plus boarding city.
func (s *service) resolveStop(ctx context.Context, query CheckoutQuoteQuery) (*routes.PickupStop, error) {
	if query.PickupStop != "" {
		stopUUID, err := uuid.Parse(query.PickupStop)
		if err != nil {
			return nil, fmt.Errorf("invalid pickup stop ID: %w", err)
		}
		stop, err := s.routeRepo.GetStopByID(ctx, stopUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("failed to get pickup stop: %w", err)
		}
		return stop, nil
	}

	if query.RouteID != "" && query.From != "" {
		routeUUID, err := uuid.Parse(query.RouteID)
		if err != nil {
			return nil, fmt.Errorf("invalid route ID: %w", err)
		}
		stops, err := s.routeRepo.GetStopsByRouteID(ctx, routeUUID)
		if err != nil {
			return nil, fmt.Errorf("failed to load stops: %w", err)
		}
		for i := range stops {
			if strings.EqualFold(stops[i].City, query.From) {
				return &stops[i], nil
			}
		}
	}

	return nil, nil
}

func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	tourUUID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}
	dateUUID, err := uuid.Parse(req.DateID)
	if err != nil {
		return nil, fmt.Errorf("invalid date ID: %w", err)
	}
	tariffUUID, err := uuid.Parse(req.TariffID)
	if err != nil {
		return nil, fmt.Errorf("invalid tariff ID: %w", err)
	}

	if len(req.Passengers) != req.Participants {
		return nil, ErrPassengerCount
	}

	date, err := s.dateRepo.GetByID(ctx, dateUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get date: %w", err)
	}
	if date.TourID != tourUUID {
		return nil, ErrTourMismatch
	}
	if date.Status != dates.DateStatusScheduled {
		return nil, ErrDateUnavailable
	}

	tariff, err := s.tariffRepo.GetByID(ctx, tariffUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}
	if tariff.TourID != tourUUID {
		return nil, ErrTourMismatch
	}

	var routeID, stopID *uuid.UUID
	var stop *routes.PickupStop
	if req.PickupStopID != "" {
		parsed, err := uuid.Parse(req.PickupStopID)
		if err != nil {
			return nil, fmt.Errorf("invalid pickup stop ID: %w", err)
		}
		stop, err = s.routeRepo.GetStopByID(ctx, parsed)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("failed to get pickup stop: %w", err)
		}
		stopID = &stop.ID
		routeID = &stop.RouteID
	} else if req.RouteID != "" {
		parsed, err := uuid.Parse(req.RouteID)
		if err != nil {
			return nil, fmt.Errorf("invalid route ID: %w", err)
		}
		routeID = &parsed
	}

	addons, err := s.resolveAddons(ctx, tourUUID, req.Addons)
	if err != nil {
		return nil, err
	}

	// The quote is always recomputed server-side, client totals are ignored
	quote := pricing.ComputeQuote(date, tariff, stop, req.Participants, addons)

	passengers := make(PassengerList, len(req.Passengers))
	for i, p := range req.Passengers {
		passengers[i] = Passenger{FirstName: p.FirstName, LastName: p.LastName, DateOfBirth: p.DateOfBirth}
	}

	booking := &Booking{
		BookingNumber:   GenerateBookingNumber(),
		TourID:          tourUUID,
		DateID:          dateUUID,
		TariffID:        tariffUUID,
		RouteID:         routeID,
		PickupStopID:    stopID,
		Participants:    req.Participants,
		Passengers:      passengers,
		Addons:          AddonList(addons),
		PricePerPerson:  quote.PricePerPerson,
		PickupSurcharge: quote.PickupSurcharge,
		BaseTotal:       quote.BaseTotal,
		AddonsTotal:     quote.AddonsTotal,
		TotalPrice:      quote.Total,
		ContactName:     req.Contact.Name,
		ContactEmail:    req.Contact.Email,
		ContactPhone:    req.Contact.Phone,
		Status:          StatusConfirmed,
	}

	err = s.repo.CreateWithReservation(ctx, booking, func(tx *gorm.DB) error {
		return s.dateRepo.ReserveSeats(ctx, tx, dateUUID, req.Participants)
	})
	if err != nil {
		if errors.Is(err, dates.ErrInsufficientSeats) {
			s.log.LogSeatReservationRejected(ctx, req.DateID, req.Participants)
			return nil, dates.ErrInsufficientSeats
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if req.HoldID != "" {
		if _, err := s.holds.ReleaseHold(ctx, req.DateID, req.HoldID); err != nil {
			s.log.ErrorWithContext(ctx, "failed to release checkout hold", err, map[string]interface{}{
				"hold_id": req.HoldID,
			})
		}
	}

	s.log.LogBookingCreated(ctx, booking.BookingNumber, req.TourID, req.DateID, req.Participants)
	s.publishChange(ctx, realtime.TableBookings, realtime.ChangeInsert, booking.ID.String())
	s.publishChange(ctx, realtime.TableTourDates, realtime.ChangeUpdate, req.DateID)

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) resolveAddons(ctx context.Context, tourUUID uuid.UUID, inputs []AddonInput) ([]pricing.AddonSelection, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	selections := make([]pricing.AddonSelection, 0, len(inputs))
	for _, input := range inputs {
		addonUUID, err := uuid.Parse(input.AddonID)
		if err != nil {
			return nil, fmt.Errorf("invalid addon ID: %w", err)
		}
		addon, err := s.contentRepo.GetLuggageAddonByID(ctx, addonUUID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, fmt.Errorf("failed to get addon: %w", err)
		}
		if addon.TourID != tourUUID {
			return nil, ErrTourMismatch
		}
		selections = append(selections, pricing.AddonSelection{
			AddonID:  addon.ID.String(),
			Name:     addon.Name,
			Price:    addon.Price,
			Quantity: input.Quantity,
		})
	}
	return selections, nil
}

func (s *service) GetBooking(ctx context.Context, id string) (*BookingResponse, error) {
	bookingUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, bookingUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) GetBookingByNumber(ctx context.Context, number string) (*BookingResponse, error) {
	booking, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	resp := booking.ToResponse()
	return &resp, nil
}

func (s *service) ListBookings(ctx context.Context, query BookingListQuery) (*PaginatedBookings, error) {
	bookings, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	page := query.Page
	if page == 0 {
		page = 1
	}
	limit := query.Limit
	if limit == 0 {
		limit = 20
	}

	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = b.ToResponse()
	}

	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: int((totalCount + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *service) CancelBooking(ctx context.Context, id string) (*BookingResponse, error) {
	bookingUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, bookingUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}

	err = s.repo.CancelWithRelease(ctx, bookingUUID, func(tx *gorm.DB) error {
		return s.dateRepo.ReleaseSeats(ctx, tx, booking.DateID, booking.Participants)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.log.LogBookingCancelled(ctx, booking.BookingNumber)
	s.publishChange(ctx, realtime.TableBookings, realtime.ChangeUpdate, booking.ID.String())
	s.publishChange(ctx, realtime.TableTourDates, realtime.ChangeUpdate, booking.DateID.String())

	updated, err := s.repo.GetByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) CreateHold(ctx context.Context, req HoldRequest) (*HoldResponse, error) {
	dateUUID, err := uuid.Parse(req.DateID)
	if err != nil {
		return nil, fmt.Errorf("invalid date ID: %w", err)
	}

	date, err := s.dateRepo.GetByID(ctx, dateUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get date: %w", err)
	}
	if date.Status != dates.DateStatusScheduled {
		return nil, ErrDateUnavailable
	}

	holdID := uuid.New().String()
	if err := s.holds.HoldSeats(ctx, req.DateID, holdID, req.Seats, date.AvailableSeats()); err != nil {
		return nil, err
	}

	return &HoldResponse{
		HoldID:     holdID,
		DateID:     req.DateID,
		Seats:      req.Seats,
		TTLSeconds: int(s.holdTTL.Seconds()),
	}, nil
}

func (s *service) ReleaseHold(ctx context.Context, dateID, holdID string) error {
	if _, err := uuid.Parse(holdID); err != nil {
		return fmt.Errorf("invalid hold ID: %w", err)
	}
	_, err := s.holds.ReleaseHold(ctx, dateID, holdID)
	return err
}

func (s *service) publishChange(ctx context.Context, table string, changeType realtime.ChangeType, rowID string) {
	event := realtime.NewChangeEvent(table, changeType, rowID)
	if err := s.producer.PublishChange(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish change event", err, map[string]interface{}{
			"table":  table,
			"row_id": rowID,
		})
	}
}
