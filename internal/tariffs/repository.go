package tariffs

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for tariff operations
type Repository interface {
	Create(ctx context.Context, tariff *Tariff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tariff, error)
	GetByTourID(ctx context.Context, tourID uuid.UUID) ([]Tariff, error)
	GetActiveByTourID(ctx context.Context, tourID uuid.UUID) ([]Tariff, error)
	GetByTourAndSlug(ctx context.Context, tourID uuid.UUID, slug string) (*Tariff, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new tariff repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tariff *Tariff) error {
	return r.db.WithContext(ctx).Create(tariff).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Tariff, error) {
	var tariff Tariff
	err := r.db.WithContext(ctx).First(&tariff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (r *repository) GetByTourID(ctx context.Context, tourID uuid.UUID) ([]Tariff, error) {
	var tariffs []Tariff
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("sort_order ASC, created_at ASC").
		Find(&tariffs).Error
	return tariffs, err
}

func (r *repository) GetActiveByTourID(ctx context.Context, tourID uuid.UUID) ([]Tariff, error) {
	var tariffs []Tariff
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND is_active = true", tourID).
		Order("sort_order ASC, created_at ASC").
		Find(&tariffs).Error
	return tariffs, err
}

func (r *repository) GetByTourAndSlug(ctx context.Context, tourID uuid.UUID, slug string) (*Tariff, error) {
	var tariff Tariff
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND slug = ?", tourID, slug).
		First(&tariff).Error
	if err != nil {
		return nil, err
	}
	return &tariff, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Tariff{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Tariff{}, "id = ?", id).Error
}

func (r *repository) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Tariff{}).Where("tour_id = ?", tourID).Count(&count).Error
	return count, err
}
