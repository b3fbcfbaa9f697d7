package service

import (
	"context"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/pkg/errors"
	"github.com/hrdesk/hr-backend/pkg/logger"
)

// SectionService handles section business logic
type SectionService struct {
	sections  SectionStore
	publisher EventPublisher
	logger    *logger.Logger
}

// NewSectionService creates a new section service
func NewSectionService(sections SectionStore, publisher EventPublisher, log *logger.Logger) *SectionService {
	return &SectionService{
		sections:  sections,
		publisher: publisher,
		logger:    log.WithComponent("section"),
	}
}

// List lists all sections
func (s *SectionService) List(ctx context.Context) ([]repository.Section, error) {
	return s.sections.List(ctx)
}

// GetByID gets a section by ID
func (s *SectionService) GetByID(ctx context.Context, id int64) (*repository.Section, error) {
	return s.sections.GetByID(ctx, id)
}

// Rename changes a section's name. A nil name is rejected.
func (s *SectionService) Rename(ctx context.Context, id int64, name *string) error {
	if name == nil {
		return errors.BadRequest("sectionName is required")
	}

	if err := s.sections.UpdateName(ctx, id, *name); err != nil {
		return err
	}

	s.logger.Info().Int64("section_id", id).Str("section_name", *name).Msg("section renamed")
	s.publisher.SectionRenamed(ctx, id, *name)

	return nil
}
