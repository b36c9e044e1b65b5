package inquiries

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mtour/internal/realtime"
	"mtour/pkg/logger"
)

var (
	ErrInquiryNotFound   = errors.New("inquiry not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type Service interface {
	CreateInquiry(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error)
	GetInquiry(ctx context.Context, id string) (*Inquiry, error)
	ListInquiries(ctx context.Context, query InquiryListQuery) (*PaginatedInquiries, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Inquiry, error)
	DeleteInquiry(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	producer realtime.Producer
	log      *logger.Logger
}

func NewService(repo Repository, producer realtime.Producer, log *logger.Logger) Service {
	return &service{repo: repo, producer: producer, log: log}
}

func (s *service) CreateInquiry(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error) {
	inquiry := &Inquiry{
		InquiryNumber: GenerateInquiryNumber(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Subject:       req.Subject,
		Message:       req.Message,
		Status:        StatusNew,
	}

	if req.TourID != "" {
		tourUUID, err := uuid.Parse(req.TourID)
		if err != nil {
			return nil, fmt.Errorf("invalid tour ID: %w", err)
		}
		inquiry.TourID = &tourUUID
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.publishChange(ctx, realtime.ChangeInsert, inquiry.ID.String())
	return inquiry, nil
}

func (s *service) GetInquiry(ctx context.Context, id string) (*Inquiry, error) {
	inquiryUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid inquiry ID: %w", err)
	}

	inquiry, err := s.repo.GetByID(ctx, inquiryUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	return inquiry, nil
}

func (s *service) ListInquiries(ctx context.Context, query InquiryListQuery) (*PaginatedInquiries, error) {
	inquiries, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	page := query.Page
	if page == 0 {
		page = 1
	}
	limit := query.Limit
	if limit == 0 {
		limit = 20
	}

	return &PaginatedInquiries{
		Inquiries:  inquiries,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
		TotalPages: int((totalCount + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Inquiry, error) {
	inquiry, err := s.GetInquiry(ctx, id)
	if err != nil {
		return nil, err
	}

	next := Status(req.Status)
	if !inquiry.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, inquiry.Status, next)
	}

	if err := s.repo.UpdateStatus(ctx, inquiry.ID, next); err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	s.publishChange(ctx, realtime.ChangeUpdate, inquiry.ID.String())

	inquiry.Status = next
	return inquiry, nil
}

func (s *service) DeleteInquiry(ctx context.Context, id string) error {
	inquiry, err := s.GetInquiry(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, inquiry.ID); err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	s.publishChange(ctx, realtime.ChangeDelete, inquiry.ID.String())
	return nil
}

func (s *service) publishChange(ctx context.Context, changeType realtime.ChangeType, rowID string) {
	event := realtime.NewChangeEvent(realtime.TableInquiries, changeType, rowID)
	if err := s.producer.PublishChange(ctx, event); err != nil {
		s.log.ErrorWithContext(ctx, "failed to publish inquiry change event", err, map[string]interface{}{
			"row_id": rowID,
		})
	}
}
