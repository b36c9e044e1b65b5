package ops

import (
	"context"
	"testing"
	"time"

	"mtour/internal/bookings"
	"mtour/internal/realtime"
	"mtour/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeOpsRepo struct {
	Repository

	avgDelay      float64
	scanStats     ScanStats
	openIncidents int64
	activeShifts  int64

	positions []VehiclePosition
	scans     []TicketScan
}

func (f *fakeOpsRepo) AverageDelayMinutes(ctx context.Context) (float64, error) {
	return f.avgDelay, nil
}

func (f *fakeOpsRepo) ScanStatsSince(ctx context.Context, since time.Time) (ScanStats, error) {
	return f.scanStats, nil
}

func (f *fakeOpsRepo) CountOpenIncidents(ctx context.Context) (int64, error) {
	return f.openIncidents, nil
}

func (f *fakeOpsRepo) CountActiveShifts(ctx context.Context) (int64, error) {
	return f.activeShifts, nil
}

func (f *fakeOpsRepo) UpsertVehiclePosition(ctx context.Context, pos *VehiclePosition) error {
	pos.ID = uuid.New()
	f.positions = append(f.positions, *pos)
	return nil
}

func (f *fakeOpsRepo) CreateTicketScan(ctx context.Context, scan *TicketScan) error {
	scan.ID = uuid.New()
	f.scans = append(f.scans, *scan)
	return nil
}

type fakeBookingRepo struct {
	countSince int64
}

func (f *fakeBookingRepo) CreateWithReservation(ctx context.Context, booking *bookings.Booking, reserve func(tx *gorm.DB) error) error {
	return nil
}

func (f *fakeBookingRepo) CancelWithRelease(ctx context.Context, id uuid.UUID, release func(tx *gorm.DB) error) error {
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*bookings.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) GetByNumber(ctx context.Context, number string) (*bookings.Booking, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBookingRepo) GetAll(ctx context.Context, query bookings.BookingListQuery) ([]bookings.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return f.countSince, nil
}

func newTestService(repo *fakeOpsRepo, bookingRepo *fakeBookingRepo) Service {
	return NewService(repo, bookingRepo, nil, realtime.NewNoopProducer(), logger.New(), time.Hour)
}

func TestRefreshKPIs(t *testing.T) {
	repo := &fakeOpsRepo{
		avgDelay:      4.5,
		scanStats:     ScanStats{Total: 120, Valid: 90},
		openIncidents: 3,
		activeShifts:  7,
	}
	svc := newTestService(repo, &fakeBookingRepo{countSince: 12})

	snapshot, err := svc.RefreshKPIs(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 4.5, snapshot.AverageDelayMinutes, 0.0001)
	assert.InDelta(t, 0.75, snapshot.CheckInRate, 0.0001)
	assert.InDelta(t, 2.0, snapshot.ScansPerMinute, 0.0001)
	assert.Equal(t, int64(3), snapshot.OpenIncidents)
	assert.Equal(t, int64(7), snapshot.ActiveShifts)
	assert.Equal(t, int64(12), snapshot.BookingsLastHour)
	assert.False(t, snapshot.ComputedAt.IsZero())
}

func TestReportVehiclePositionInvalidRoute(t *testing.T) {
	svc := newTestService(&fakeOpsRepo{}, &fakeBookingRepo{})

	bad := "not-a-uuid"
	_, err := svc.ReportVehiclePosition(context.Background(), VehiclePositionRequest{
		Vehicle:  "MT-101",
		RouteID:  &bad,
		Latitude: 52.52, Longitude: 13.405,
	})
	assert.Error(t, err)
}

func TestReportVehiclePositionUpserts(t *testing.T) {
	repo := &fakeOpsRepo{}
	svc := newTestService(repo, &fakeBookingRepo{})

	pos, err := svc.ReportVehiclePosition(context.Background(), VehiclePositionRequest{
		Vehicle:      "MT-101",
		Latitude:     52.52,
		Longitude:    13.405,
		DelayMinutes: 6,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, pos.ID)
	assert.Equal(t, "MT-101", pos.Vehicle)
	assert.Len(t, repo.positions, 1)
}

func TestRecordTicketScanDefaultsTimestamp(t *testing.T) {
	repo := &fakeOpsRepo{}
	svc := newTestService(repo, &fakeBookingRepo{})

	scan, err := svc.RecordTicketScan(context.Background(), TicketScanRequest{
		Vehicle: "MT-101",
		Valid:   true,
	})
	require.NoError(t, err)

	assert.False(t, scan.ScannedAt.IsZero())
	assert.Len(t, repo.scans, 1)
}
