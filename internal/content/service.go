package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInclusionNotFound    = errors.New("inclusion not found")
	ErrLegalSectionNotFound = errors.New("legal section not found")
	ErrLuggageAddonNotFound = errors.New("luggage addon not found")
)

// Service interface defines the contract for tour content business logic
type Service interface {
	// Inclusions
	CreateInclusion(ctx context.Context, tourID string, req CreateInclusionRequest) (*Inclusion, error)
	GetGroupedInclusions(ctx context.Context, tourID string) (*GroupedInclusions, error)
	UpdateInclusion(ctx context.Context, id string, req UpdateInclusionRequest) error
	DeleteInclusion(ctx context.Context, id string) error

	// Legal sections
	CreateLegalSection(ctx context.Context, tourID string, req CreateLegalSectionRequest) (*LegalSection, error)
	GetLegalSections(ctx context.Context, tourID string) ([]LegalSection, error)
	UpdateLegalSection(ctx context.Context, id string, req UpdateLegalSectionRequest) error
	DeleteLegalSection(ctx context.Context, id string) error

	// Luggage addons
	CreateLuggageAddon(ctx context.Context, tourID string, req CreateLuggageAddonRequest) (*LuggageAddon, error)
	GetLuggageAddons(ctx context.Context, tourID string) ([]LuggageAddon, error)
	UpdateLuggageAddon(ctx context.Context, id string, req UpdateLuggageAddonRequest) error
	DeleteLuggageAddon(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new content service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// ============= INCLUSIONS =============

func (s *service) CreateInclusion(ctx context.Context, tourID string, req CreateInclusionRequest) (*Inclusion, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	category := InclusionCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid inclusion category: %s", req.Category)
	}

	inclusion := &Inclusion{
		TourID:    tourUUID,
		Title:     req.Title,
		Category:  category,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.CreateInclusion(ctx, inclusion); err != nil {
		return nil, fmt.Errorf("failed to create inclusion: %w", err)
	}
	return inclusion, nil
}

func (s *service) GetGroupedInclusions(ctx context.Context, tourID string) (*GroupedInclusions, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	inclusions, err := s.repo.GetInclusionsByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inclusions: %w", err)
	}

	grouped := GroupInclusions(inclusions)
	return &grouped, nil
}

func (s *service) UpdateInclusion(ctx context.Context, id string, req UpdateInclusionRequest) error {
	inclusionUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid inclusion ID: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Category != nil {
		category := InclusionCategory(*req.Category)
		if !category.IsValid() {
			return fmt.Errorf("invalid inclusion category: %s", *req.Category)
		}
		updates["category"] = category
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdateInclusion(ctx, inclusionUUID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInclusionNotFound
		}
		return fmt.Errorf("failed to update inclusion: %w", err)
	}
	return nil
}

func (s *service) DeleteInclusion(ctx context.Context, id string) error {
	inclusionUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid inclusion ID: %w", err)
	}
	return s.repo.DeleteInclusion(ctx, inclusionUUID)
}

// ============= LEGAL SECTIONS =============

func (s *service) CreateLegalSection(ctx context.Context, tourID string, req CreateLegalSectionRequest) (*LegalSection, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	section := &LegalSection{
		TourID:    tourUUID,
		Title:     req.Title,
		Content:   req.Content,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.CreateLegalSection(ctx, section); err != nil {
		return nil, fmt.Errorf("failed to create legal section: %w", err)
	}
	return section, nil
}

func (s *service) GetLegalSections(ctx context.Context, tourID string) ([]LegalSection, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	sections, err := s.repo.GetLegalSectionsByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get legal sections: %w", err)
	}
	return sections, nil
}

func (s *service) UpdateLegalSection(ctx context.Context, id string, req UpdateLegalSectionRequest) error {
	sectionUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid legal section ID: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdateLegalSection(ctx, sectionUUID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLegalSectionNotFound
		}
		return fmt.Errorf("failed to update legal section: %w", err)
	}
	return nil
}

func (s *service) DeleteLegalSection(ctx context.Context, id string) error {
	sectionUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid legal section ID: %w", err)
	}
	return s.repo.DeleteLegalSection(ctx, sectionUUID)
}

// ============= LUGGAGE ADDONS =============

func (s *service) CreateLuggageAddon(ctx context.Context, tourID string, req CreateLuggageAddonRequest) (*LuggageAddon, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	addon := &LuggageAddon{
		TourID:      tourUUID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
		SortOrder:   req.SortOrder,
	}

	if err := s.repo.CreateLuggageAddon(ctx, addon); err != nil {
		return nil, fmt.Errorf("failed to create luggage addon: %w", err)
	}
	return addon, nil
}

func (s *service) GetLuggageAddons(ctx context.Context, tourID string) ([]LuggageAddon, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	addons, err := s.repo.GetLuggageAddonsByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get luggage addons: %w", err)
	}
	return addons, nil
}

func (s *service) UpdateLuggageAddon(ctx context.Context, id string, req UpdateLuggageAddonRequest) error {
	addonUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid luggage addon ID: %w", err)
	}

	if _, err := s.repo.GetLuggageAddonByID(ctx, addonUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLuggageAddonNotFound
		}
		return fmt.Errorf("failed to get luggage addon: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdateLuggageAddon(ctx, addonUUID, updates); err != nil {
		return fmt.Errorf("failed to update luggage addon: %w", err)
	}
	return nil
}

func (s *service) DeleteLuggageAddon(ctx context.Context, id string) error {
	addonUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid luggage addon ID: %w", err)
	}
	return s.repo.DeleteLuggageAddon(ctx, addonUUID)
}
