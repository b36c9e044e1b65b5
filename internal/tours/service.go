package tours

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mtour/internal/content"
	"mtour/internal/dates"
	"mtour/internal/pricing"
	"mtour/internal/realtime"
	"mtour/internal/routes"
	"mtour/internal/shared/constants"
	"mtour/internal/tariffs"
	"mtour/pkg/cache"
	"mtour/pkg/logger"
)

var (
	ErrTourNotFound    = errors.New("tour not found")
	ErrPublishBlocked  = errors.New("tour has publish-blocking validation errors")
	ErrAlreadyDraft    = errors.New("tour is already a draft")
	ErrNotPublished    = errors.New("tour is not published")
	ErrSlugUnavailable = errors.New("slug is already in use")
)

type Service interface {
	CreateTour(ctx context.Context, userID string, req CreateTourRequest) (*TourResponse, error)
	GetTour(ctx context.Context, id string) (*TourResponse, error)
	GetPublishedTour(ctx context.Context, id string) (*TourResponse, error)
	GetPublishedTourBySlug(ctx context.Context, slug string) (*TourResponse, error)
	ListTours(ctx context.Context, query TourListQuery) (*PaginatedTours, error)
	ListPublishedTours(ctx context.Context, query TourListQuery) (*PaginatedTours, error)
	UpdateTour(ctx context.Context, id, userID string, req UpdateTourRequest) (*TourResponse, error)
	DeleteTour(ctx context.Context, id string) error
	Validate(ctx context.Context, id string) ([]ValidationError, error)
	Publish(ctx context.Context, id string) (*PublishResult, error)
	Unpublish(ctx context.Context, id string) (*TourResponse, error)

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo        Repository
	tariffRepo  tariffs.Repository
	dateRepo    dates.Repository
	routeRepo   routes.Repository
	contentRepo content.Repository
	producer    realtime.Producer
	log         *logger.Logger

	cacheService cache.Service
}

func NewService(
	repo Repository,
	tariffRepo tariffs.Repository,
	dateRepo dates.Repository,
	routeRepo routes.Repository,
	contentRepo content.Repository,
	producer realtime.Producer,
	log *logger.Logger,
) Service {
	return &service{
		repo:        repo,
		tariffRepo:  tariffRepo,
		dateRepo:    dateRepo,
		routeRepo:   routeRepo,
		contentRepo: contentRepo,
		producer:    producer,
		log:         log,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateTour(ctx context.Context, userID string, req CreateTourRequest) (*TourResponse, error) {
	creator, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %w", err)
	}

	minParticipants := req.MinParticipants
	if minParticipants == 0 {
		minParticipants = 1
	}

	tour := &Tour{
		Destination:      req.Destination,
		Location:         req.Location,
		Country:          req.Country,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Highlights:       Highlights(req.Highlights),
		HeroImageURL:     req.HeroImageURL,
		FallbackImageURL: req.FallbackImageURL,
		MinParticipants:  minParticipants,
		PublishStatus:    StatusDraft,
		IsActive:         false,
		CreatedBy:        creator,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	s.publishChange(ctx, realtime.ChangeInsert, tour.ID.String())

	resp := tour.ToResponse()
	return &resp, nil
}

func (s *service) GetTour(ctx context.Context, id string) (*TourResponse, error) {
	tour, err := s.getTour(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := tour.ToResponse()
	return &resp, nil
}

// GetPublishedTour is the by-ID read for public surfaces. Drafts resolve
// to not found, same as the slug lookup.
func (s *service) GetPublishedTour(ctx context.Context, id string) (*TourResponse, error) {
	tour, err := s.getTour(ctx, id)
	if err != nil {
		return nil, err
	}
	if tour.PublishStatus != StatusPublished {
		return nil, ErrTourNotFound
	}
	resp := tour.ToResponse()
	return &resp, nil
}

func (s *service) GetPublishedTourBySlug(ctx context.Context, slug string) (*TourResponse, error) {
	cacheKey := constants.BuildTourDetailKey(slug)
	if s.cacheService != nil {
		var cached TourResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	tour, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}

	// Drafts are invisible on public surfaces
	if tour.PublishStatus != StatusPublished {
		return nil, ErrTourNotFound
	}

	resp := tour.ToResponse()
	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_TOUR_DETAIL); err != nil {
			s.log.ErrorWithContext(ctx, "failed to cache tour detail", err, nil)
		}
	}
	return &resp, nil
}

func (s *service) ListTours(ctx context.Context, query TourListQuery) (*PaginatedTours, error) {
	tours, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return paginate(tours, totalCount, query), nil
}

func (s *service) ListPublishedTours(ctx context.Context, query TourListQuery) (*PaginatedTours, error) {
	// Search results are too varied to be worth caching
	cacheable := s.cacheService != nil && query.Search == ""
	cacheKey := constants.BuildCatalogListKey(query.Page, query.Limit, query.Country)

	if cacheable {
		var cached PaginatedTours
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	tours, totalCount, err := s.repo.GetPublished(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	result := paginate(tours, totalCount, query)
	if cacheable {
		if err := s.cacheService.Set(ctx, cacheKey, result, constants.TTL_CATALOG_LIST); err != nil {
			s.log.ErrorWithContext(ctx, "failed to cache catalog listing", err, nil)
		}
	}
	return result, nil
}

func (s *service) UpdateTour(ctx context.Context, id, userID string, req UpdateTourRequest) (*TourResponse, error) {
	tourUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	updates := make(map[string]interface{})
	if req.Destination != nil {
		updates["destination"] = *req.Destination
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Country != nil {
		updates["country"] = *req.Country
	}
	if req.ShortDescription != nil {
		updates["short_description"] = *req.ShortDescription
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Highlights != nil {
		updates["highlights"] = Highlights(req.Highlights)
	}
	if req.HeroImageURL != nil {
		updates["hero_image_url"] = *req.HeroImageURL
	}
	if req.FallbackImageURL != nil {
		updates["fallback_image_url"] = *req.FallbackImageURL
	}
	if req.MinParticipants != nil {
		updates["min_participants"] = *req.MinParticipants
	}

	if updater, err := uuid.Parse(userID); err == nil {
		updates["updated_by"] = updater
	}

	tour, err := s.repo.Update(ctx, tourUUID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to update tour: %w", err)
	}

	s.publishChange(ctx, realtime.ChangeUpdate, tour.ID.String())
	s.invalidateCatalogCache(ctx)

	resp := tour.ToResponse()
	return &resp, nil
}

func (s *service) DeleteTour(ctx context.Context, id string) error {
	tour, err := s.getTour(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tour.ID); err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
	}

	s.publishChange(ctx, realtime.ChangeDelete, tour.ID.String())
	s.invalidateCatalogCache(ctx)
	return nil
}

func (s *service) Validate(ctx context.Context, id string) ([]ValidationError, error) {
	tour, err := s.getTour(ctx, id)
	if err != nil {
		return nil, err
	}

	check, err := s.buildPublishCheck(ctx, tour)
	if err != nil {
		return nil, err
	}

	return ValidatePublish(check), nil
}

func (s *service) Publish(ctx context.Context, id string) (*PublishResult, error) {
	tour, err := s.getTour(ctx, id)
	if err != nil {
		return nil, err
	}

	check, err := s.buildPublishCheck(ctx, tour)
	if err != nil {
		return nil, err
	}

	findings := ValidatePublish(check)
	blocking := BlockingErrors(findings)
	warnings := warningsOf(findings)

	if len(blocking) > 0 {
		messages := make([]string, len(blocking))
		for i, f := range blocking {
			messages[i] = f.Message
		}
		return &PublishResult{Published: false, Errors: blocking, Warnings: warnings},
			fmt.Errorf("%w: %s", ErrPublishBlocked, strings.Join(messages, "; "))
	}

	slug := tour.Slug
	if slug == "" {
		slug = GenerateSlug(tour.Destination)
	}

	updates := map[string]interface{}{
		"publish_status": StatusPublished,
		"slug":           slug,
		"published_at":   time.Now(),
		"is_active":      true,
	}

	// The catalog "from" price is snapshotted from the cheapest date
	tourDates, err := s.dateRepo.GetByTourID(ctx, tour.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dates: %w", err)
	}
	if lowest, ok := pricing.LowestDatePrice(tourDates); ok {
		updates["price_from"] = lowest
	}

	updated, err := s.repo.Update(ctx, tour.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to publish tour: %w", err)
	}

	s.log.LogTourPublished(ctx, updated.ID.String(), updated.Slug)
	s.publishChange(ctx, realtime.ChangeUpdate, updated.ID.String())
	s.invalidateCatalogCache(ctx)

	resp := updated.ToResponse()
	return &PublishResult{Published: true, Tour: &resp, Warnings: warnings}, nil
}

func (s *service) Unpublish(ctx context.Context, id string) (*TourResponse, error) {
	tour, err := s.getTour(ctx, id)
	if err != nil {
		return nil, err
	}

	if tour.PublishStatus != StatusPublished {
		return nil, ErrNotPublished
	}

	updates := map[string]interface{}{
		"publish_status": StatusDraft,
		"published_at":   nil,
		"is_active":      false,
	}

	updated, err := s.repo.Update(ctx, tour.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to unpublish tour: %w", err)
	}

	s.log.LogTourUnpublished(ctx, updated.ID.String())
	s.publishChange(ctx, realtime.ChangeUpdate, updated.ID.String())
	s.invalidateCatalogCache(ctx)

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) getTour(ctx context.Context, id string) (*Tour, error) {
	tourUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID: %w", err)
	}

	tour, err := s.repo.GetByID(ctx, tourUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	return tour, nil
}

func (s *service) buildPublishCheck(ctx context.Context, tour *Tour) (PublishCheck, error) {
	tariffCount, err := s.tariffRepo.CountByTourID(ctx, tour.ID)
	if err != nil {
		return PublishCheck{}, fmt.Errorf("failed to count tariffs: %w", err)
	}

	dateCount, err := s.dateRepo.CountByTourID(ctx, tour.ID)
	if err != nil {
		return PublishCheck{}, fmt.Errorf("failed to count dates: %w", err)
	}

	tourRoutes, err := s.routeRepo.GetRoutesByTourID(ctx, tour.ID)
	if err != nil {
		return PublishCheck{}, fmt.Errorf("failed to load routes: %w", err)
	}
	summaries := make([]RouteSummary, len(tourRoutes))
	for i, route := range tourRoutes {
		summaries[i] = RouteSummary{
			RouteID:   route.ID.String(),
			Name:      route.Name,
			StopCount: len(route.Stops),
		}
	}

	legalCount, err := s.contentRepo.CountLegalSectionsByTourID(ctx, tour.ID)
	if err != nil {
		return PublishCheck{}, fmt.Errorf("failed to count legal sections: %w", err)
	}

	includedCount, err := s.contentRepo.CountInclusionsByCategory(ctx, tour.ID, content.CategoryIncluded)
	if err != nil {
		return PublishCheck{}, fmt.Errorf("failed to count inclusions: %w", err)
	}

	return PublishCheck{
		Tour:                   tour,
		TariffCount:            tariffCount,
		DateCount:              dateCount,
		Routes:                 summaries,
		LegalSectionCount:      legalCount,
		IncludedInclusionCount: includedCount,
	}, nil
}

func (s *service) invalidateCatalogCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_CATALOG_ALL); err != nil {
		s.log.ErrorWithContext(ctx, "failed to invalidate catalog cache", err, nil)
	}
}

func (s *service) publishChange(ctx context.Context, changeType realtime.ChangeType, rowID string) {
	event := realtime.NewChangeEvent(realtime.TableTours, changeType, rowID)
	if err := s.producer.PublishChange(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish tour change event", err, map[string]interface{}{
			"row_id": rowID,
		})
	}
}

func warningsOf(findings []ValidationError) []ValidationError {
	var warnings []ValidationError
	for _, f := range findings {
		if f.Severity == SeverityWarning {
			warnings = append(warnings, f)
		}
	}
	return warnings
}

func paginate(tours []Tour, totalCount int64, query TourListQuery) *PaginatedTours {
	page := query.Page
	if page == 0 {
		page = 1
	}
	limit := query.Limit
	if limit == 0 {
		limit = 10
	}

	responses := make([]TourResponse, len(tours))
	for i, t := range tours {
		responses[i] = t.ToResponse()
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	return &PaginatedTours{
		Tours:      responses,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
