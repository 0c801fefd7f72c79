package events

import (
	"context"

	"staybook/pkg/kafka"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

const (
	EventBookingCreated = "booking.created"

	schemaVersion = "1"
	source        = "staybook"
)

// Publisher emits booking lifecycle events to Kafka, keyed by
// homestay_id so events for one homestay stay ordered.
type Publisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewPublisher(producer *kafka.Producer, log *logger.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		log:      log,
	}
}

func (p *Publisher) BookingCreated(ctx context.Context, booking *model.Booking) error {
	msg := kafka.NewMessage().
		WithKey(booking.HomestayID).
		WithValue(booking).
		WithEventType(EventBookingCreated).
		WithSchemaVersion(schemaVersion).
		WithSource(source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		return err
	}

	p.log.Debug("Published booking event",
		"event_type", EventBookingCreated,
		"event_id", msg.GetEventID(),
		"booking_id", booking.ID,
	)
	return nil
}

// Close flushes the underlying producer.
func (p *Publisher) Close() error {
	return p.producer.Close()
}
