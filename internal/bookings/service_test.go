package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mtour/internal/dates"
	"mtour/internal/realtime"
	"mtour/internal/tariffs"
	"mtour/pkg/logger"
)

type fakeBookingStore struct {
	Repository

	created []*Booking
}

func (f *fakeBookingStore) CreateWithReservation(ctx context.Context, booking *Booking, reserve func(tx *gorm.DB) error) error {
	if err := reserve(nil); err != nil {
		return err
	}
	f.created = append(f.created, booking)
	return nil
}

type fakeDateRepo struct {
	dates.Repository

	date *dates.TourDate
}

func (f *fakeDateRepo) GetByID(ctx context.Context, id uuid.UUID) (*dates.TourDate, error) {
	if f.date == nil || f.date.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	snapshot := *f.date
	return &snapshot, nil
}

func (f *fakeDateRepo) ReserveSeats(ctx context.Context, tx *gorm.DB, dateID uuid.UUID, seats int) error {
	if f.date == nil || f.date.ID != dateID {
		return gorm.ErrRecordNotFound
	}
	if f.date.BookedSeats+seats > f.date.TotalSeats {
		return dates.ErrInsufficientSeats
	}
	f.date.BookedSeats += seats
	return nil
}

type fakeTariffRepo struct {
	tariffs.Repository

	tariff *tariffs.Tariff
}

func (f *fakeTariffRepo) GetByID(ctx context.Context, id uuid.UUID) (*tariffs.Tariff, error) {
	if f.tariff == nil || f.tariff.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.tariff, nil
}

func newBookingTestFixture(totalSeats, bookedSeats int) (*fakeBookingStore, *fakeDateRepo, Service, CreateBookingRequest) {
	tourID := uuid.New()
	date := &dates.TourDate{
		ID:            uuid.New(),
		TourID:        tourID,
		DepartureDate: time.Now().AddDate(0, 1, 0),
		ReturnDate:    time.Now().AddDate(0, 1, 6),
		PriceBasic:    199,
		TotalSeats:    totalSeats,
		BookedSeats:   bookedSeats,
		Status:        dates.DateStatusScheduled,
	}
	tariff := &tariffs.Tariff{
		ID:            uuid.New(),
		TourID:        tourID,
		Name:          "Smart",
		Slug:          tariffs.SlugSmart,
		PriceModifier: 15,
		IsActive:      true,
	}

	store := &fakeBookingStore{}
	dateRepo := &fakeDateRepo{date: date}
	tariffRepo := &fakeTariffRepo{tariff: tariff}

	svc := NewService(store, nil, dateRepo, tariffRepo, nil, nil, nil, 10*time.Minute,
		realtime.NewNoopProducer(), logger.New())

	req := CreateBookingRequest{
		TourID:       tourID.String(),
		DateID:       date.ID.String(),
		TariffID:     tariff.ID.String(),
		Participants: 2,
		Passengers: []PassengerInput{
			{FirstName: "Anna", LastName: "Berg"},
			{FirstName: "Jonas", LastName: "Berg"},
		},
		Contact: ContactInput{Name: "Anna Berg", Email: "anna.berg@example.com"},
	}

	return store, dateRepo, svc, req
}

func TestCreateBookingReservesSeats(t *testing.T) {
	store, dateRepo, svc, req := newBookingTestFixture(48, 44)

	resp, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, resp.Status)
	assert.Equal(t, 46, dateRepo.date.BookedSeats)
	require.Len(t, store.created, 1)
	assert.Equal(t, 2, store.created[0].Participants)
	assert.Equal(t, 428.0, store.created[0].TotalPrice)
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	store, dateRepo, svc, req := newBookingTestFixture(48, 47)

	resp, err := svc.CreateBooking(context.Background(), req)
	require.Error(t, err)

	assert.ErrorIs(t, err, dates.ErrInsufficientSeats)
	assert.Nil(t, resp)
	assert.Empty(t, store.created, "no booking row may persist when the reservation fails")
	assert.Equal(t, 47, dateRepo.date.BookedSeats)
}

func TestCreateBookingSecondRequestLosesLastSeats(t *testing.T) {
	store, dateRepo, svc, req := newBookingTestFixture(48, 46)

	_, err := svc.CreateBooking(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, dates.ErrInsufficientSeats)

	assert.Equal(t, 48, dateRepo.date.BookedSeats)
	assert.Len(t, store.created, 1)
}

func TestCreateBookingRejectsPassengerMismatch(t *testing.T) {
	_, _, svc, req := newBookingTestFixture(48, 0)
	req.Passengers = req.Passengers[:1]

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrPassengerCount)
}
