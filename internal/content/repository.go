package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for tour CMS children
type Repository interface {
	// Inclusions
	CreateInclusion(ctx context.Context, inclusion *Inclusion) error
	GetInclusionsByTourID(ctx context.Context, tourID uuid.UUID) ([]Inclusion, error)
	UpdateInclusion(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteInclusion(ctx context.Context, id uuid.UUID) error
	CountInclusionsByCategory(ctx context.Context, tourID uuid.UUID, category InclusionCategory) (int64, error)

	// Legal sections
	CreateLegalSection(ctx context.Context, section *LegalSection) error
	GetLegalSectionsByTourID(ctx context.Context, tourID uuid.UUID) ([]LegalSection, error)
	UpdateLegalSection(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteLegalSection(ctx context.Context, id uuid.UUID) error
	CountLegalSectionsByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)

	// Luggage addons
	CreateLuggageAddon(ctx context.Context, addon *LuggageAddon) error
	GetLuggageAddonByID(ctx context.Context, id uuid.UUID) (*LuggageAddon, error)
	GetLuggageAddonsByTourID(ctx context.Context, tourID uuid.UUID) ([]LuggageAddon, error)
	UpdateLuggageAddon(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteLuggageAddon(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new content repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ============= INCLUSIONS =============

func (r *repository) CreateInclusion(ctx context.Context, inclusion *Inclusion) error {
	return r.db.WithContext(ctx).Create(inclusion).Error
}

func (r *repository) GetInclusionsByTourID(ctx context.Context, tourID uuid.UUID) ([]Inclusion, error) {
	var inclusions []Inclusion
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("sort_order ASC, created_at ASC").
		Find(&inclusions).Error
	return inclusions, err
}

func (r *repository) UpdateInclusion(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Inclusion{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteInclusion(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Inclusion{}, "id = ?", id).Error
}

func (r *repository) CountInclusionsByCategory(ctx context.Context, tourID uuid.UUID, category InclusionCategory) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Inclusion{}).
		Where("tour_id = ? AND category = ?", tourID, category).
		Count(&count).Error
	return count, err
}

// ============= LEGAL SECTIONS =============

func (r *repository) CreateLegalSection(ctx context.Context, section *LegalSection) error {
	return r.db.WithContext(ctx).Create(section).Error
}

func (r *repository) GetLegalSectionsByTourID(ctx context.Context, tourID uuid.UUID) ([]LegalSection, error) {
	var sections []LegalSection
	err := r.db.WithContext(ctx).
		Where("tour_id = ?", tourID).
		Order("sort_order ASC, created_at ASC").
		Find(&sections).Error
	return sections, err
}

func (r *repository) UpdateLegalSection(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&LegalSection{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteLegalSection(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&LegalSection{}, "id = ?", id).Error
}

func (r *repository) CountLegalSectionsByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LegalSection{}).Where("tour_id = ?", tourID).Count(&count).Error
	return count, err
}

// ============= LUGGAGE ADDONS =============

func (r *repository) CreateLuggageAddon(ctx context.Context, addon *LuggageAddon) error {
	return r.db.WithContext(ctx).Create(addon).Error
}

func (r *repository) GetLuggageAddonByID(ctx context.Context, id uuid.UUID) (*LuggageAddon, error) {
	var addon LuggageAddon
	err := r.db.WithContext(ctx).First(&addon, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (r *repository) GetLuggageAddonsByTourID(ctx context.Context, tourID uuid.UUID) ([]LuggageAddon, error) {
	var addons []LuggageAddon
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND is_active = true", tourID).
		Order("sort_order ASC, created_at ASC").
		Find(&addons).Error
	return addons, err
}

func (r *repository) UpdateLuggageAddon(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&LuggageAddon{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteLuggageAddon(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&LuggageAddon{}, "id = ?", id).Error
}
