package bookings

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// CreateWithReservation inserts the booking and runs reserve inside one
	// transaction, so the seat increment and the booking row commit or roll
	// back together.
	CreateWithReservation(ctx context.Context, booking *Booking, reserve func(tx *gorm.DB) error) error
	// CancelWithRelease flips the booking to cancelled and runs release in
	// the same transaction.
	CancelWithRelease(ctx context.Context, id uuid.UUID, release func(tx *gorm.DB) error) error

	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByNumber(ctx context.Context, number string) (*Booking, error)
	GetAll(ctx context.Context, query BookingListQuery) ([]Booking, int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithReservation(ctx context.Context, booking *Booking, reserve func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reserve(tx); err != nil {
			return err
		}
		return tx.Create(booking).Error
	})
}

func (r *repository) CancelWithRelease(ctx context.Context, id uuid.UUID, release func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&Booking{}).
			Where("id = ? AND status <> ?", id, StatusCancelled).
			Updates(map[string]interface{}{
				"status":       StatusCancelled,
				"cancelled_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return release(tx)
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetByNumber(ctx context.Context, number string) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).First(&booking, "booking_number = ?", number).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetAll(ctx context.Context, query BookingListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Booking{})

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.TourID != "" {
		db = db.Where("tour_id = ?", query.TourID)
	}
	if query.DateID != "" {
		db = db.Where("date_id = ?", query.DateID)
	}
	if query.Search != "" {
		term := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(booking_number) LIKE ? OR LOWER(contact_name) LIKE ? OR LOWER(contact_email) LIKE ?",
			term, term, term)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Booking{}).
		Where("created_at >= ? AND status <> ?", since, StatusCancelled).
		Count(&count).Error
	return count, err
}
