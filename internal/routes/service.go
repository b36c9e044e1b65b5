package routes

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRouteNotFound = errors.New("route not found")
	ErrStopNotFound  = errors.New("pickup stop not found")
)

// Service interface defines the contract for route business logic
type Service interface {
	CreateRoute(ctx context.Context, tourID string, req CreateRouteRequest) (*RouteResponse, error)
	GetRoute(ctx context.Context, id string) (*RouteResponse, error)
	GetRoutesByTour(ctx context.Context, tourID string) ([]RouteResponse, error)
	UpdateRoute(ctx context.Context, id string, req UpdateRouteRequest) (*RouteResponse, error)
	DeleteRoute(ctx context.Context, id string) error

	CreateStop(ctx context.Context, routeID string, req CreateStopRequest) (*PickupStopResponse, error)
	UpdateStop(ctx context.Context, id string, req UpdateStopRequest) (*PickupStopResponse, error)
	DeleteStop(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

// NewService creates a new route service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateRoute(ctx context.Context, tourID string, req CreateRouteRequest) (*RouteResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	route := &Route{
		TourID:    tourUUID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}

	if err := s.repo.CreateRoute(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) GetRoute(ctx context.Context, id string) (*RouteResponse, error) {
	routeUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID: %w", err)
	}

	route, err := s.repo.GetRouteByID(ctx, routeUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) GetRoutesByTour(ctx context.Context, tourID string) ([]RouteResponse, error) {
	tourUUID, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	routes, err := s.repo.GetRoutesByTourID(ctx, tourUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to get routes: %w", err)
	}

	responses := make([]RouteResponse, len(routes))
	for i, r := range routes {
		responses[i] = r.ToResponse()
	}
	return responses, nil
}

func (s *service) UpdateRoute(ctx context.Context, id string, req UpdateRouteRequest) (*RouteResponse, error) {
	routeUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID: %w", err)
	}

	if _, err := s.repo.GetRouteByID(ctx, routeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateRoute(ctx, routeUUID, updates); err != nil {
			return nil, fmt.Errorf("failed to update route: %w", err)
		}
	}

	route, err := s.repo.GetRouteByID(ctx, routeUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload route: %w", err)
	}

	resp := route.ToResponse()
	return &resp, nil
}

func (s *service) DeleteRoute(ctx context.Context, id string) error {
	routeUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid route ID: %w", err)
	}

	if _, err := s.repo.GetRouteByID(ctx, routeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRouteNotFound
		}
		return fmt.Errorf("failed to get route: %w", err)
	}

	return s.repo.DeleteRoute(ctx, routeUUID)
}

func (s *service) CreateStop(ctx context.Context, routeID string, req CreateStopRequest) (*PickupStopResponse, error) {
	routeUUID, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID: %w", err)
	}

	if _, err := s.repo.GetRouteByID(ctx, routeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	stop := &PickupStop{
		RouteID:       routeUUID,
		City:          req.City,
		LocationName:  req.LocationName,
		DepartureTime: req.DepartureTime,
		Surcharge:     req.Surcharge,
		MaxPassengers: req.MaxPassengers,
		SortOrder:     req.SortOrder,
	}

	if err := s.repo.CreateStop(ctx, stop); err != nil {
		return nil, fmt.Errorf("failed to create pickup stop: %w", err)
	}

	resp := stop.ToResponse()
	return &resp, nil
}

func (s *service) UpdateStop(ctx context.Context, id string, req UpdateStopRequest) (*PickupStopResponse, error) {
	stopUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid stop ID: %w", err)
	}

	if _, err := s.repo.GetStopByID(ctx, stopUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStopNotFound
		}
		return nil, fmt.Errorf("failed to get pickup stop: %w", err)
	}

	updates := make(map[string]interface{})
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.LocationName != nil {
		updates["location_name"] = *req.LocationName
	}
	if req.DepartureTime != nil {
		updates["departure_time"] = *req.DepartureTime
	}
	if req.Surcharge != nil {
		updates["surcharge"] = *req.Surcharge
	}
	if req.MaxPassengers != nil {
		updates["max_passengers"] = *req.MaxPassengers
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateStop(ctx, stopUUID, updates); err != nil {
			return nil, fmt.Errorf("failed to update pickup stop: %w", err)
		}
	}

	stop, err := s.repo.GetStopByID(ctx, stopUUID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload pickup stop: %w", err)
	}

	resp := stop.ToResponse()
	return &resp, nil
}

func (s *service) DeleteStop(ctx context.Context, id string) error {
	stopUUID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid stop ID: %w", err)
	}

	if _, err := s.repo.GetStopByID(ctx, stopUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStopNotFound
		}
		return fmt.Errorf("failed to get pickup stop: %w", err)
	}

	return s.repo.DeleteStop(ctx, stopUUID)
}
