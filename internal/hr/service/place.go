package service

import (
	"context"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

// PlaceService handles place business logic
type PlaceService struct {
	places    PlaceStore
	publisher EventPublisher
	logger    *logger.Logger
}

// NewPlaceService creates a new place service
func NewPlaceService(places PlaceStore, publisher EventPublisher, log *logger.Logger) *PlaceService {
	return &PlaceService{
		places:    places,
		publisher: publisher,
		logger:    log.WithComponent("place"),
	}
}

// List lists all places
func (s *PlaceService) List(ctx context.Context) ([]repository.Place, error) {
	return s.places.List(ctx)
}

// GetByID gets a place by ID
func (s *PlaceService) GetByID(ctx context.Context, id int64) (*repository.Place, error) {
	return s.places.GetByID(ctx, id)
}

// Create stores a new place. Any id on the input is ignored.
func (s *PlaceService) Create(ctx context.Context, place *repository.Place) (*repository.Place, error) {
	created, err := s.places.Create(ctx, place)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("place_id", created.ID).Msg("place created")
	s.publisher.PlaceCreated(ctx, created)

	return created, nil
}
