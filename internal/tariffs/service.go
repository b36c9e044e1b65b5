package tariffs

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTariffNotFound = errors.New("tariff not found")

// Service interface defines the contract for tariff business logic
type Service interface {
	CreateTariff(ctx context.Context, tourID string, req CreateTariffRequest) (*TariffResponse, error)
	GetTariff(ctx context.Context, id string) (*TariffResponse, error)
	GetTariffsByTour(ctx context.Context, tourID string) ([]TariffResponse, error)
	UpdateTariff(ctx context.Context, id string, req UpdateTariffRequest) (*TariffResponse, error)
	DeleteTariff(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new tariff service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateTariff(ctx context.Context, tourID string, req CreateTariffRequest) (*TariffResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	// Slug uniqueness is a builder convention per tour, not a stored constraint
	if existing, err := s.repo.GetByTourAndSlug(ctx, tourUUID, req.Slug); err == nil && existing != nil {
		return nil, fmt.Errorf("tariff slug %q already exists for this tour", req.Slug)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	tariff := &Tariff{
		TourID:             tourUUID,
		Name:               req.Name,
		Slug:               req.Slug,
		PriceModifier:      req.PriceModifier,
		HandLuggageOnly:    req.HandLuggageOnly,
		SuitcaseIncluded:   req.SuitcaseIncluded,
		SuitcaseWeightKg:   req.SuitcaseWeightKg,
		SeatReservation:    req.SeatReservation,
		IsRefundable:       req.IsRefundable,
		CancellationDays:   req.CancellationDays,
		CancellationFeePct: req.CancellationFeePct,
		IncludedFeatures:   FeatureList(req.IncludedFeatures),
		IsRecommended:      req.IsRecommended,
		IsActive:           active,
		SortOrder:          req.SortOrder,
	}

	if err := s.repo.Create(ctx, tariff); err != nil {
		return nil, fmt.Errorf("failed to create tariff: %w", err)
	}

	resp := tariff.ToResponse()
	return &resp, nil
}

func (s *service) GetTariff(ctx context.Context, id string) (*TariffResponse, error) {
	tariffUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tariff ID: %w", err)
	}

	tariff, err := s.repo.GetByID(ctx, tariffUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTariffNotFound
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}

	resp := tariff.ToResponse()
	return &resp, nil
}

func (s *service) GetTariffsByTour(ctx context.Context, tourID string) ([]TariffResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	tariffs, err := s.repo.GetByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tariffs: %w", err)
	}

	responses := make([]TariffResponse, len(tariffs))
	for i, t := range tariffs {
		responses[i] = t.ToResponse()
	}
	return responses, nil
}

func (s *service) UpdateTariff(ctx context.Context, id string, req UpdateTariffRequest) (*TariffResponse, error) {
	tariffUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tariff ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, tariffUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTariffNotFound
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.PriceModifier != nil {
		updates["price_modifier"] = *req.PriceModifier
	}
	if req.HandLuggageOnly != nil {
		updates["hand_luggage_only"] = *req.HandLuggageOnly
	}
	if req.SuitcaseIncluded != nil {
		updates["suitcase_included"] = *req.SuitcaseIncluded
	}
	if req.SuitcaseWeightKg != nil {
		updates["suitcase_weight_kg"] = *req.SuitcaseWeightKg
	}
	if req.SeatReservation != nil {
		updates["seat_reservation"] = *req.SeatReservation
	}
	if req.IsRefundable != nil {
		updates["is_refundable"] = *req.IsRefundable
	}
	if req.CancellationDays != nil {
		updates["cancellation_days"] = *req.CancellationDays
	}
	if req.CancellationFeePct != nil {
		updates["cancellation_fee_percent"] = *req.CancellationFeePct
	}
	if req.IncludedFeatures != nil {
		updates["included_features"] = FeatureList(req.IncludedFeatures)
	}
	if req.IsRecommended != nil {
		updates["is_recommended"] = *req.IsRecommended
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, tariffUUID, updates); err != nil {
			return nil, fmt.Errorf("failed to update tariff: %w", err)
		}
	}

	tariff, err := s.repo.GetByID(ctx, tariffUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload tariff: %w", err)
	}

	resp := tariff.ToResponse()
	return &resp, nil
}

func (s *service) DeleteTariff(ctx context.Context, id string) error {
	tariffUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid tariff ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, tariffUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTariffNotFound
		}
		return fmt.Errorf("failed to get tariff: %w", err)
	}

	return s.repo.Delete(ctx, tariffUUID)
}
