package dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDateNotFound = errors.New("tour date not found")

// Service interface defines the contract for tour date business logic
type Service interface {
	CreateDate(ctx context.Context, tourID string, req CreateDateRequest) (*TourDateResponse, error)
	GetDate(ctx context.Context, id string) (*TourDateResponse, error)
	GetDatesByTour(ctx context.Context, tourID string) ([]TourDateResponse, error)
	GetUpcomingDatesByTour(ctx context.Context, tourID string) ([]TourDateResponse, error)
	UpdateDate(ctx context.Context, id string, req UpdateDateRequest) (*TourDateResponse, error)
	DeleteDate(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new tour date service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDate(ctx context.Context, tourID string, req CreateDateRequest) (*TourDateResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	date := &TourDate{
		TourID:        tourUUID,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		// Recomputed on every save; a return before departure yields a
		// non-positive duration that is stored unchanged.
		DurationDays: DurationDaysBetween(req.DepartureDate, req.ReturnDate),

		PriceBasic:    req.PriceBasic,
		PriceSmart:    req.PriceSmart,
		PriceFlex:     req.PriceFlex,
		PriceBusiness: req.PriceBusiness,

		TotalSeats: req.TotalSeats,
		Status:     DateStatusScheduled,

		EarlyBirdDiscountPct: req.EarlyBirdDiscountPct,
		EarlyBirdDeadline:    req.EarlyBirdDeadline,
		PromoCode:            req.PromoCode,
		PromoDiscountPct:     req.PromoDiscountPct,
	}

	if err := s.repo.Create(ctx, date); err != nil {
		return nil, fmt.Errorf("failed to create tour date: %w", err)
	}

	resp := date.ToResponse()
	return &resp, nil
}

func (s *service) GetDate(ctx context.Context, id string) (*TourDateResponse, error) {
	dateUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid date ID: %w", err)
	}

	date, err := s.repo.GetByID(ctx, dateUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDateNotFound
		}
		return nil, fmt.Errorf("failed to get tour date: %w", err)
	}

	resp := date.ToResponse()
	return &resp, nil
}

func (s *service) GetDatesByTour(ctx context.Context, tourID string) ([]TourDateResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	dates, err := s.repo.GetByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tour dates: %w", err)
	}

	return toResponses(dates), nil
}

func (s *service) GetUpcomingDatesByTour(ctx context.Context, tourID string) ([]TourDateResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	dates, err := s.repo.GetUpcomingByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming dates: %w", err)
	}

	return toResponses(dates), nil
}

func (s *service) UpdateDate(ctx context.Context, id string, req UpdateDateRequest) (*TourDateResponse, error) {
	dateUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid date ID: %w", err)
	}

	date, err := s.repo.GetByID(ctx, dateUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDateNotFound
		}
		return nil, fmt.Errorf("failed to get tour date: %w", err)
	}

	updates := make(map[string]interface{})

	departure := date.DepartureDate
	ret := date.ReturnDate
	if req.DepartureDate != nil {
		departure = *req.DepartureDate
		updates["departure_date"] = departure
	}
	if req.ReturnDate != nil {
		ret = *req.ReturnDate
		updates["return_date"] = ret
	}
	if req.DepartureDate != nil || req.ReturnDate != nil {
		updates["duration_days"] = DurationDaysBetween(departure, ret)
	}

	if req.PriceBasic != nil {
		updates["price_basic"] = *req.PriceBasic
	}
	if req.PriceSmart != nil {
		updates["price_smart"] = *req.PriceSmart
	}
	if req.PriceFlex != nil {
		updates["price_flex"] = *req.PriceFlex
	}
	if req.PriceBusiness != nil {
		updates["price_business"] = *req.PriceBusiness
	}
	if req.TotalSeats != nil {
		updates["total_seats"] = *req.TotalSeats
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.EarlyBirdDiscountPct != nil {
		updates["early_bird_discount_pct"] = *req.EarlyBirdDiscountPct
	}
	if req.EarlyBirdDeadline != nil {
		updates["early_bird_deadline"] = *req.EarlyBirdDeadline
	}
	if req.PromoCode != nil {
		updates["promo_code"] = *req.PromoCode
	}
	if req.PromoDiscountPct != nil {
		updates["promo_discount_pct"] = *req.PromoDiscountPct
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, dateUUID, updates); err != nil {
			return nil, fmt.Errorf("failed to update tour date: %w", err)
		}
	}

	date, err = s.repo.GetByID(ctx, dateUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload tour date: %w", err)
	}

	resp := date.ToResponse()
	return &resp, nil
}

func (s *service) DeleteDate(ctx context.Context, id string) error {
	dateUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid date ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, dateUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDateNotFound
		}
		return fmt.Errorf("failed to get tour date: %w", err)
	}

	return s.repo.Delete(ctx, dateUUID)
}

func toResponses(dates []TourDate) []TourDateResponse {
	responses := make([]TourDateResponse, len(dates))
	for i, d := range dates {
		responses[i] = d.ToResponse()
	}
	return responses
}
