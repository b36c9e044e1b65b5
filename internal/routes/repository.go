package routes

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for route and pickup stop operations
type Repository interface {
	// Routes
	CreateRoute(ctx context.Context, route *Route) error
	GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error)
	GetRoutesByTourID(ctx context.Context, tourID uuid.UUID) ([]Route, error)
	UpdateRoute(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error
	CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error)

	// Pickup stops
	CreateStop(ctx context.Context, stop *PickupStop) error
	GetStopByID(ctx context.Context, id uuid.UUID) (*PickupStop, error)
	GetStopsByRouteID(ctx context.Context, routeID uuid.UUID) ([]PickupStop, error)
	UpdateStop(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteStop(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new route repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ============= ROUTES =============

func (r *repository) CreateRoute(ctx context.Context, route *Route) error {
	return r.db.WithContext(ctx).Create(route).Error
}

func (r *repository) GetRouteByID(ctx context.Context, id uuid.UUID) (*Route, error) {
	var route Route
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&route, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *repository) GetRoutesByTourID(ctx context.Context, tourID uuid.UUID) ([]Route, error) {
	var routes []Route
	err := r.db.WithContext(ctx).
		Preload("Stops", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("tour_id = ?", tourID).
		Order("sort_order ASC, created_at ASC").
		Find(&routes).Error
	return routes, err
}

func (r *repository) UpdateRoute(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Route{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	// Child stops are removed explicitly, no cascade is assumed
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&PickupStop{}, "route_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Route{}, "id = ?", id).Error
	})
}

func (r *repository) CountByTourID(ctx context.Context, tourID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Route{}).Where("tour_id = ?", tourID).Count(&count).Error
	return count, err
}

// ============= PICKUP STOPS =============

func (r *repository) CreateStop(ctx context.Context, stop *PickupStop) error {
	return r.db.WithContext(ctx).Create(stop).Error
}

func (r *repository) GetStopByID(ctx context.Context, id uuid.UUID) (*PickupStop, error) {
	var stop PickupStop
	err := r.db.WithContext(ctx).First(&stop, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stop, nil
}

func (r *repository) GetStopsByRouteID(ctx context.Context, routeID uuid.UUID) ([]PickupStop, error) {
	var stops []PickupStop
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("sort_order ASC").
		Find(&stops).Error
	return stops, err
}

func (r *repository) UpdateStop(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&PickupStop{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteStop(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&PickupStop{}, "id = ?", id).Error
}
