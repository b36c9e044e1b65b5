package tours

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, tour *Tour) error
	GetByID(ctx context.Context, id uuid.UUID) (*Tour, error)
	GetBySlug(ctx context.Context, slug string) (*Tour, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Tour, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, query TourListQuery) ([]Tour, int64, error)
	GetPublished(ctx context.Context, query TourListQuery) ([]Tour, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tour *Tour) error {
	return r.db.WithContext(ctx).Create(tour).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Tour, error) {
	var tour Tour
	if err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Tour, error) {
	var tour Tour
	if err := r.db.WithContext(ctx).First(&tour, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*Tour, error) {
	var tour Tour
	if err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&tour).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Tour{}, "id = ?", id).Error
}

func (r *repository) GetAll(ctx context.Context, query TourListQuery) ([]Tour, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Tour{}), query)
}

func (r *repository) GetPublished(ctx context.Context, query TourListQuery) ([]Tour, int64, error) {
	db := r.db.WithContext(ctx).Model(&Tour{}).
		Where("publish_status = ? AND is_active = true", StatusPublished)
	return r.list(ctx, db, query)
}

func (r *repository) list(ctx context.Context, db *gorm.DB, query TourListQuery) ([]Tour, int64, error) {
	var tours []Tour
	var totalCount int64

	if query.Search != "" {
		term := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(destination) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?",
			term, term, term)
	}

	if query.Country != "" {
		db = db.Where("LOWER(country) = ?", strings.ToLower(query.Country))
	}

	if query.Status != "" {
		db = db.Where("publish_status = ?", query.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	err := db.Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&tours).Error

	return tours, totalCount, err
}
