package dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientSeats is returned when a reservation would exceed capacity.
var ErrInsufficientSeats = errors.New("not enough seats available")

// Repository interface for tour date operations
type Repository interface {
	Create(ctx context.Context, date *TourDate) error
	GetByID(ctx context.Context, id uuid.UUID) (*TourDate, error)
	GetByTourID(ctx context.Context, tourID uuid.UUID) ([]TourDate, error)
	GetUpcomingByTourID(ctx context.Context, tourID uuid.UUID) ([]TourDate, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)

	// ReserveSeats increments booked_seats with an atomic capacity check.
	// The optional tx lets the booking insert share the transaction so the
	// reservation and the booking commit or roll back together.
	ReserveSeats(ctx context.Context, tx *gorm.DB, dateID uuid.UUID, seats int) error
	ReleaseSeats(ctx context.Context, tx *gorm.DB, dateID uuid.UUID, seats int) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new tour date repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, date *TourDate) error {
	return r.db.WithContext(ctx).Create(date).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*TourDate, error) {
	var date TourDate
	err := r.db.WithContext(ctx).First(&date, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &date, nil
}

func (r *repository) GetByTourID(ctx context.Context, tourID uuid.UUID) ([]TourDate, error) {
	var dates []TourDate
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("departure_date ASC").
		Find(&dates).Error
	return dates, err
}

func (r *repository) GetUpcomingByTourID(ctx context.Context, tourID uuid.UUID) ([]TourDate, error) {
	var dates []TourDate
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND status = ? AND departure_date >= CURRENT_DATE", tourID, DateStatusScheduled).
		Order("departure_date ASC").
		Find(&dates).Error
	return dates, err
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&TourDate{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&TourDate{}, "id = ?", id).Error
}

func (r *repository) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&TourDate{}).Where("tour_id = ?", tourID).Count(&count).Error
	return count, err
}

func (r *repository) ReserveSeats(ctx context.Context, tx *gorm.DB, dateID uuid.UUID, seats int) error {
	if seats <= 0 {
		return fmt.Errorf("seat count must be positive, got %d", seats)
	}

	// Single conditional UPDATE so the capacity check and the increment are
	// one atomic statement. Concurrent reservations serialize on the row and
	// the loser sees RowsAffected == 0.
	run := func(tx *gorm.DB) error {
		result := tx.Model(&TourDate{}).
			Where("id = ? AND booked_seats + ? <= total_seats", dateID, seats).
			Update("booked_seats", gorm.Expr("booked_seats + ?", seats))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&TourDate{}).Where("id = ?", dateID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrInsufficientSeats
		}
		return nil
	}

	if tx != nil {
		return run(tx.WithContext(ctx))
	}
	return r.db.WithContext(ctx).Transaction(run)
}

func (r *repository) ReleaseSeats(ctx context.Context, tx *gorm.DB, dateID uuid.UUID, seats int) error {
	if seats <= 0 {
		return fmt.Errorf("seat count must be positive, got %d", seats)
	}

	run := func(tx *gorm.DB) error {
		result := tx.Model(&TourDate{}).
			Where("id = ?", dateID).
			Update("booked_seats", gorm.Expr("GREATEST(booked_seats - ?, 0)", seats))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}

	if tx != nil {
		return run(tx.WithContext(ctx))
	}
	return r.db.WithContext(ctx).Transaction(run)
}
