package inquiries

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	GetAll(ctx context.Context, query InquiryListQuery) ([]Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inquiry *Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	var inquiry Inquiry
	if err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *repository) GetAll(ctx context.Context, query InquiryListQuery) ([]Inquiry, int64, error) {
	var inquiries []Inquiry
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Inquiry{})

	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.TourID != "" {
		db = db.Where("tour_id = ?", query.TourID)
	}
	if query.Search != "" {
		term := "%" + strings.ToLower(query.Search) + "%"
		db = db.Where("LOWER(inquiry_number) LIKE ? OR LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ?",
			term, term, term, term)
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
		Find(&inquiries).Error

	return inquiries, totalCount, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return r.db.WithContext(ctx).Model(&Inquiry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Inquiry{}, "id = ?", id).Error
}
