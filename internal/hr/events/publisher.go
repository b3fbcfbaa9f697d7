package events

import (
	"context"

	"github.com/hrdesk/hr-backend/internal/hr/repository"
	"github.com/hrdesk/hr-backend/pkg/httputil"
	"github.com/hrdesk/hr-backend/pkg/logger"
	"github.com/hrdesk/hr-backend/pkg/messaging"
)

// Source identifies this service on every published event
const Source = "hr-service"

// Publisher is satisfied by *messaging.Publisher
type Publisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// HREventPublisher publishes HR change events.
// Failures are logged and never reach the caller: the database write has already happened.
type HREventPublisher struct {
	publisher Publisher
	logger    *logger.Logger
}

// NewHREventPublisher creates a publisher bound to exchange on rmq
func NewHREventPublisher(rmq *messaging.RabbitMQ, exchange string, log *logger.Logger) (*HREventPublisher, error) {
	publisher, err := messaging.NewPublisher(rmq, exchange, Source, log)
	if err != nil {
		return nil, err
	}

	return NewWithPublisher(publisher, log), nil
}

// NewWithPublisher wraps an existing publisher
func NewWithPublisher(publisher Publisher, log *logger.Logger) *HREventPublisher {
	return &HREventPublisher{
		publisher: publisher,
		logger:    log.WithComponent("events"),
	}
}

// PhoneUpdated publishes a phone updated event
func (p *HREventPublisher) PhoneUpdated(ctx context.Context, staffID int64, phone *string) {
	data := messaging.StaffPhoneUpdatedEvent{
		StaffID:     staffID,
		PhoneNumber: phone,
	}

	if err := p.publish(ctx, messaging.EventStaffPhoneUpdated, data); err != nil {
		p.logger.Error().Err(err).Int64("staff_id", staffID).Msg("failed to publish phone updated event")
	}
}

// SectionRenamed publishes a section renamed event
func (p *HREventPublisher) SectionRenamed(ctx context.Context, sectionID int64, name string) {
	data := messaging.SectionRenamedEvent{
		SectionID:   sectionID,
		SectionName: name,
	}

	if err := p.publish(ctx, messaging.EventSectionRenamed, data); err != nil {
		p.logger.Error().Err(err).Int64("section_id", sectionID).Msg("failed to publish section renamed event")
	}
}

// PlaceCreated publishes a place created event
func (p *HREventPublisher) PlaceCreated(ctx context.Context, place *repository.Place) {
	data := messaging.PlaceCreatedEvent{
		PlaceID: place.ID,
		City:    place.City,
		StateID: place.StateID,
	}

	if err := p.publish(ctx, messaging.EventPlaceCreated, data); err != nil {
		p.logger.Error().Err(err).Int64("place_id", place.ID).Msg("failed to publish place created event")
	}
}

// publish tags the event with the HTTP request id so consumers can trace it back.
func (p *HREventPublisher) publish(ctx context.Context, eventType string, data interface{}) error {
	if requestID := httputil.GetRequestID(ctx); requestID != "" {
		ctx = messaging.WithCorrelationID(ctx, requestID)
	}
	return p.publisher.Publish(ctx, eventType, data)
}

// Noop discards every event. It is used when RabbitMQ is disabled.
type Noop struct{}

func (Noop) PhoneUpdated(context.Context, int64, *string)    {}
func (Noop) SectionRenamed(context.Context, int64, string)   {}
func (Noop) PlaceCreated(context.Context, *repository.Place) {}
