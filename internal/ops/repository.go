package ops

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Vehicle telemetry
	UpsertVehiclePosition(ctx context.Context, pos *VehiclePosition) error
	GetVehiclePositions(ctx context.Context) ([]VehiclePosition, error)
	AverageDelayMinutes(ctx context.Context) (float64, error)

	// Incidents
	CreateIncident(ctx context.Context, incident *Incident) error
	GetIncidentByID(ctx context.Context, id uuid.UUID) (*Incident, error)
	GetIncidents(ctx context.Context, status IncidentStatus) ([]Incident, error)
	UpdateIncident(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	CountOpenIncidents(ctx context.Context) (int64, error)

	// Ticket scans
	CreateTicketScan(ctx context.Context, scan *TicketScan) error
	ScanStatsSince(ctx context.Context, since time.Time) (ScanStats, error)

	// Driver shifts
	CreateDriverShift(ctx context.Context, shift *DriverShift) error
	GetDriverShifts(ctx context.Context, status ShiftStatus) ([]DriverShift, error)
	CompleteDriverShift(ctx context.Context, id uuid.UUID, endedAt time.Time) error
	CountActiveShifts(ctx context.Context) (int64, error)

	// Status board
	UpsertSystemStatus(ctx context.Context, status *SystemStatus) error
	GetSystemStatus(ctx context.Context) ([]SystemStatus, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) UpsertVehiclePosition(ctx context.Context, pos *VehiclePosition) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "vehicle"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"route_id", "latitude", "longitude", "delay_minutes", "updated_at",
		}),
	}).Create(pos).Error
}

func (r *repository) GetVehiclePositions(ctx context.Context) ([]VehiclePosition, error) {
	var positions []VehiclePosition
	err := r.db.WithContext(ctx).Order("vehicle ASC").Find(&positions).Error
	return positions, err
}

func (r *repository) AverageDelayMinutes(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&VehiclePosition{}).
		Select("AVG(delay_minutes)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

func (r *repository) CreateIncident(ctx context.Context, incident *Incident) error {
	return r.db.WithContext(ctx).Create(incident).Error
}

func (r *repository) GetIncidentByID(ctx context.Context, id uuid.UUID) (*Incident, error) {
	var incident Incident
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&incident).Error
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

func (r *repository) GetIncidents(ctx context.Context, status IncidentStatus) ([]Incident, error) {
	var incidents []Incident
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&incidents).Error
	return incidents, err
}

func (r *repository) UpdateIncident(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&Incident{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountOpenIncidents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Incident{}).
		Where("status <> ?", IncidentResolved).
		Count(&count).Error
	return count, err
}

func (r *repository) CreateTicketScan(ctx context.Context, scan *TicketScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *repository) ScanStatsSince(ctx context.Context, since time.Time) (ScanStats, error) {
	var stats ScanStats
	err := r.db.WithContext(ctx).
		Model(&TicketScan{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE valid) AS valid").
		Where("scanned_at >= ?", since).
		Scan(&stats).Error
	return stats, err
}

func (r *repository) CreateDriverShift(ctx context.Context, shift *DriverShift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *repository) GetDriverShifts(ctx context.Context, status ShiftStatus) ([]DriverShift, error) {
	var shifts []DriverShift
	query := r.db.WithContext(ctx).Order("started_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&shifts).Error
	return shifts, err
}

func (r *repository) CompleteDriverShift(ctx context.Context, id uuid.UUID, endedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&DriverShift{}).
		Where("id = ? AND status = ?", id, ShiftActive).
		Updates(map[string]interface{}{
			"status":   ShiftCompleted,
			"ended_at": endedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CountActiveShifts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DriverShift{}).
		Where("status = ?", ShiftActive).
		Count(&count).Error
	return count, err
}

func (r *repository) UpsertSystemStatus(ctx context.Context, status *SystemStatus) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "component"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "message", "updated_at"}),
	}).Create(status).Error
}

func (r *repository) GetSystemStatus(ctx context.Context) ([]SystemStatus, error) {
	var rows []SystemStatus
	err := r.db.WithContext(ctx).Order("component ASC").Find(&rows).Error
	return rows, err
}
