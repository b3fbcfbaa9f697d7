package messaging_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrdesk/hr-backend/pkg/logger"
	"github.com/hrdesk/hr-backend/pkg/messaging"
)

var (
	_ messaging.Channel = (*amqp.Channel)(nil)
	_ messaging.Channel = (*messaging.RabbitMQ)(nil)
)

type recordedPublish struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	published []recordedPublish
	err       error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, recordedPublish{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	pub := messaging.NewPublisherWithChannel(ch, messaging.ExchangeHREvents, "hr-service", logger.Nop())

	ctx := messaging.WithCorrelationID(context.Background(), "corr-1")
	err := pub.Publish(ctx, messaging.EventSectionRenamed, messaging.SectionRenamedEvent{SectionID: 10, SectionName: "Finance"})
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	assert.Equal(t, "hr.events", got.exchange)
	assert.Equal(t, "hr.section.renamed", got.key)
	assert.Equal(t, "corr-1", got.msg.CorrelationId)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var event messaging.Event
	require.NoError(t, json.Unmarshal(got.msg.Body, &event))
	assert.Equal(t, "hr-service", event.Source)
	assert.Equal(t, got.msg.MessageId, event.ID)

	var data messaging.SectionRenamedEvent
	require.NoError(t, event.UnmarshalData(&data))
	assert.Equal(t, int64(10), data.SectionID)
	assert.Equal(t, "Finance", data.SectionName)
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	pub := messaging.NewPublisherWithChannel(ch, messaging.ExchangeHREvents, "hr-service", logger.Nop())

	err := pub.Publish(context.Background(), messaging.EventPlaceCreated, messaging.PlaceCreatedEvent{PlaceID: 1})
	assert.ErrorContains(t, err, "channel closed")
}

func TestGenerateEventID_Unique(t *testing.T) {
	assert.NotEqual(t, messaging.GenerateEventID(), messaging.GenerateEventID())
}
