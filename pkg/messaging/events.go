package messaging

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types. They double as routing keys on the HR exchange.
const (
	EventStaffPhoneUpdated = "hr.staff.phone_updated"
	EventSectionRenamed    = "hr.section.renamed"
	EventPlaceCreated      = "hr.place.created"
)

// ExchangeHREvents is the default topic exchange
const ExchangeHREvents = "hr.events"

// Event is the base event structure
type Event struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Source        string          `json:"source"`
	Timestamp     time.Time       `json:"timestamp"`
	CorrelationID string          `json:"correlation_id"`
	Data          json.RawMessage `json:"data"`
}

// NewEvent creates a new event with the given type and data
func NewEvent(eventType, source, correlationID string, data interface{}) (*Event, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:            GenerateEventID(),
		Type:          eventType,
		Source:        source,
		Timestamp:     time.Now().UTC(),
		CorrelationID: correlationID,
		Data:          dataBytes,
	}, nil
}

// UnmarshalData unmarshals the event data into the provided struct
func (e *Event) UnmarshalData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// StaffPhoneUpdatedEvent is published after a staff member's phone number changes
type StaffPhoneUpdatedEvent struct {
	StaffID     int64   `json:"staff_id"`
	PhoneNumber *string `json:"phone_number"`
}

// SectionRenamedEvent is published after a section's name changes
type SectionRenamedEvent struct {
	SectionID   int64  `json:"section_id"`
	SectionName string `json:"section_name"`
}

// PlaceCreatedEvent is published after a place is inserted
type PlaceCreatedEvent struct {
	PlaceID int64   `json:"place_id"`
	City    *string `json:"city,omitempty"`
	StateID *string `json:"state_id,omitempty"`
}

// GenerateEventID generates a unique event ID
func GenerateEventID() string {
	return uuid.NewString()
}
