package ops

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mtour/internal/bookings"
	"mtour/internal/realtime"
	"mtour/internal/shared/constants"
	"mtour/pkg/cache"
	"mtour/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrIncidentNotFound = errors.New("incident not found")
	ErrShiftNotFound    = errors.New("driver shift not found")
)

type Service interface {
	// Telemetry ingest
	ReportVehiclePosition(ctx context.Context, req VehiclePositionRequest) (*VehiclePosition, error)
	RecordTicketScan(ctx context.Context, req TicketScanRequest) (*TicketScan, error)

	// Dashboard reads
	GetVehiclePositions(ctx context.Context) ([]VehiclePosition, error)
	GetIncidents(ctx context.Context, status string) ([]Incident, error)
	GetDriverShifts(ctx context.Context, status string) ([]DriverShift, error)
	GetSystemStatus(ctx context.Context) ([]SystemStatus, error)
	GetKPISnapshot(ctx context.Context) (*KPISnapshot, error)

	// Console actions
	CreateIncident(ctx context.Context, req CreateIncidentRequest) (*Incident, error)
	UpdateIncidentStatus(ctx context.Context, id string, req UpdateIncidentRequest) (*Incident, error)
	StartDriverShift(ctx context.Context, req StartShiftRequest) (*DriverShift, error)
	CompleteDriverShift(ctx context.Context, id string) error
	SetSystemStatus(ctx context.Context, req SystemStatusRequest) (*SystemStatus, error)

	// RefreshKPIs recomputes the snapshot and replaces the cached copy.
	RefreshKPIs(ctx context.Context) (*KPISnapshot, error)
}

type service struct {
	repo         Repository
	bookingRepo  bookings.Repository
	cacheService cache.Service
	producer     realtime.Producer
	log          *logger.Logger
	scanWindow   time.Duration
}

func NewService(repo Repository, bookingRepo bookings.Repository, cacheService cache.Service, producer realtime.Producer, log *logger.Logger, scanWindow time.Duration) Service {
	if scanWindow <= 0 {
		scanWindow = time.Hour
	}
	return &service{
		repo:         repo,
		bookingRepo:  bookingRepo,
		cacheService: cacheService,
		producer:     producer,
		log:          log,
		scanWindow:   scanWindow,
	}
}

func (s *service) ReportVehiclePosition(ctx context.Context, req VehiclePositionRequest) (*VehiclePosition, error) {
	routeID, err := parseOptionalUUID(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route id: %w", err)
	}

	pos := &VehiclePosition{
		Vehicle:      req.Vehicle,
		RouteID:      routeID,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		DelayMinutes: req.DelayMinutes,
		UpdatedAt:    time.Now(),
	}
	if err := s.repo.UpsertVehiclePosition(ctx, pos); err != nil {
		return nil, fmt.Errorf("failed to store vehicle position: %w", err)
	}

	s.publishChange(ctx, realtime.TableVehiclePositions, realtime.ChangeUpdate, pos.ID.String())
	return pos, nil
}

func (s *service) RecordTicketScan(ctx context.Context, req TicketScanRequest) (*TicketScan, error) {
	bookingID, err := parseOptionalUUID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id: %w", err)
	}

	scannedAt := time.Now()
	if req.ScannedAt != nil {
		scannedAt = *req.ScannedAt
	}

	scan := &TicketScan{
		BookingID: bookingID,
		Vehicle:   req.Vehicle,
		Valid:     req.Valid,
		Reason:    req.Reason,
		ScannedAt: scannedAt,
	}
	if err := s.repo.CreateTicketScan(ctx, scan); err != nil {
		return nil, fmt.Errorf("failed to record ticket scan: %w", err)
	}

	s.publishChange(ctx, realtime.TableTicketScans, realtime.ChangeInsert, scan.ID.String())
	return scan, nil
}

func (s *service) GetVehiclePositions(ctx context.Context) ([]VehiclePosition, error) {
	positions, err := s.repo.GetVehiclePositions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle positions: %w", err)
	}
	return positions, nil
}

func (s *service) GetIncidents(ctx context.Context, status string) ([]Incident, error) {
	filter := IncidentStatus(status)
	if status != "" && !filter.IsValid() {
		return nil, fmt.Errorf("invalid incident status %q", status)
	}
	incidents, err := s.repo.GetIncidents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get incidents: %w", err)
	}
	return incidents, nil
}

func (s *service) GetDriverShifts(ctx context.Context, status string) ([]DriverShift, error) {
	shifts, err := s.repo.GetDriverShifts(ctx, ShiftStatus(status))
	if err != nil {
		return nil, fmt.Errorf("failed to get driver shifts: %w", err)
	}
	return shifts, nil
}

func (s *service) GetSystemStatus(ctx context.Context) ([]SystemStatus, error) {
	rows, err := s.repo.GetSystemStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get system status: %w", err)
	}
	return rows, nil
}

func (s *service) CreateIncident(ctx context.Context, req CreateIncidentRequest) (*Incident, error) {
	routeID, err := parseOptionalUUID(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route id: %w", err)
	}

	incident := &Incident{
		Title:       req.Title,
		Description: req.Description,
		Severity:    IncidentSeverity(req.Severity),
		Status:      IncidentOpen,
		RouteID:     routeID,
		Vehicle:     req.Vehicle,
	}
	if err := s.repo.CreateIncident(ctx, incident); err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}

	s.log.InfoWithContext(ctx, "Incident reported", map[string]interface{}{
		"incident_id": incident.ID.String(),
		"severity":    string(incident.Severity),
	})
	s.publishChange(ctx, realtime.TableIncidents, realtime.ChangeInsert, incident.ID.String())
	return incident, nil
}

func (s *service) UpdateIncidentStatus(ctx context.Context, id string, req UpdateIncidentRequest) (*Incident, error) {
	incidentID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid incident id: %w", err)
	}

	updates := map[string]interface{}{
		"status": IncidentStatus(req.Status),
	}
	if IncidentStatus(req.Status) == IncidentResolved {
		updates["resolved_at"] = time.Now()
	}

	if err := s.repo.UpdateIncident(ctx, incidentID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("failed to update incident: %w", err)
	}

	incident, err := s.repo.GetIncidentByID(ctx, incidentID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload incident: %w", err)
	}

	s.publishChange(ctx, realtime.TableIncidents, realtime.ChangeUpdate, id)
	return incident, nil
}

func (s *service) StartDriverShift(ctx context.Context, req StartShiftRequest) (*DriverShift, error) {
	routeID, err := parseOptionalUUID(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route id: %w", err)
	}

	shift := &DriverShift{
		Driver:    req.Driver,
		Vehicle:   req.Vehicle,
		RouteID:   routeID,
		Status:    ShiftActive,
		StartedAt: time.Now(),
	}
	if err := s.repo.CreateDriverShift(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to start driver shift: %w", err)
	}

	s.publishChange(ctx, realtime.TableDriverShifts, realtime.ChangeInsert, shift.ID.String())
	return shift, nil
}

func (s *service) CompleteDriverShift(ctx context.Context, id string) error {
	shiftID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid shift id: %w", err)
	}

	if err := s.repo.CompleteDriverShift(ctx, shiftID, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShiftNotFound
		}
		return fmt.Errorf("failed to complete driver shift: %w", err)
	}

	s.publishChange(ctx, realtime.TableDriverShifts, realtime.ChangeUpdate, id)
	return nil
}

func (s *service) SetSystemStatus(ctx context.Context, req SystemStatusRequest) (*SystemStatus, error) {
	status := &SystemStatus{
		Component: req.Component,
		State:     ComponentState(req.State),
		Message:   req.Message,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.UpsertSystemStatus(ctx, status); err != nil {
		return nil, fmt.Errorf("failed to store system status: %w", err)
	}

	s.publishChange(ctx, realtime.TableSystemStatus, realtime.ChangeUpdate, status.ID.String())
	return status, nil
}

func (s *service) GetKPISnapshot(ctx context.Context) (*KPISnapshot, error) {
	if s.cacheService != nil {
		var cached KPISnapshot
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_OPS_KPI, &cached); err == nil {
			return &cached, nil
		}
	}
	return s.RefreshKPIs(ctx)
}

func (s *service) RefreshKPIs(ctx context.Context) (*KPISnapshot, error) {
	avgDelay, err := s.repo.AverageDelayMinutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute average delay: %w", err)
	}

	stats, err := s.repo.ScanStatsSince(ctx, time.Now().Add(-s.scanWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to compute scan stats: %w", err)
	}

	openIncidents, err := s.repo.CountOpenIncidents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count open incidents: %w", err)
	}

	activeShifts, err := s.repo.CountActiveShifts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active shifts: %w", err)
	}

	bookingsLastHour, err := s.bookingRepo.CountSince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent bookings: %w", err)
	}

	snapshot := &KPISnapshot{
		AverageDelayMinutes: avgDelay,
		CheckInRate:         stats.CheckInRate(),
		ScansPerMinute:      stats.ScansPerMinute(s.scanWindow),
		OpenIncidents:       openIncidents,
		ActiveShifts:        activeShifts,
		BookingsLastHour:    bookingsLastHour,
		ComputedAt:          time.Now(),
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, constants.CACHE_KEY_OPS_KPI, snapshot, constants.TTL_OPS_KPI); err != nil {
			s.log.ErrorWithContext(ctx, "Failed to cache KPI snapshot", err, nil)
		}
	}

	return snapshot, nil
}

// publishChange mirrors the write to the change feed. Feed failures are
// logged and never fail the request.
func (s *service) publishChange(ctx context.Context, table string, changeType realtime.ChangeType, rowID string) {
	if s.producer == nil {
		return
	}
	event := realtime.NewChangeEvent(table, changeType, rowID)
	if err := s.producer.PublishChange(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish change event", err, map[string]interface{}{
			"table":  table,
			"row_id": rowID,
		})
	}
}

func parseOptionalUUID(value *string) (*uuid.UUID, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
