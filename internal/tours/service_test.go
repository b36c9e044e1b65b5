package tours

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mtour/internal/realtime"
	"mtour/pkg/logger"
)

type fakeTourRepo struct {
	Repository

	tours map[uuid.UUID]*Tour
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id uuid.UUID) (*Tour, error) {
	tour, ok := f.tours[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tour, nil
}

func newTestTourService(stored ...*Tour) Service {
	repo := &fakeTourRepo{tours: map[uuid.UUID]*Tour{}}
	for _, tour := range stored {
		repo.tours[tour.ID] = tour
	}
	return NewService(repo, nil, nil, nil, nil, realtime.NewNoopProducer(), logger.New())
}

func TestGetPublishedTourHidesDrafts(t *testing.T) {
	draft := &Tour{
		ID:            uuid.New(),
		Destination:   "Gardasee",
		PublishStatus: StatusDraft,
	}
	svc := newTestTourService(draft)

	resp, err := svc.GetPublishedTour(context.Background(), draft.ID.String())

	assert.ErrorIs(t, err, ErrTourNotFound)
	assert.Nil(t, resp)

	// The console read still sees the draft
	resp, err = svc.GetTour(context.Background(), draft.ID.String())
	require.NoError(t, err)
	assert.Equal(t, StatusDraft, resp.PublishStatus)
}

func TestGetPublishedTourReturnsPublished(t *testing.T) {
	published := &Tour{
		ID:            uuid.New(),
		Destination:   "Gardasee",
		Slug:          "gardasee",
		PublishStatus: StatusPublished,
	}
	svc := newTestTourService(published)

	resp, err := svc.GetPublishedTour(context.Background(), published.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "gardasee", resp.Slug)
}
