package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/kafka"
)

type DomainEventPublisher struct {
	logger      *slog.Logger
	kafkaClient *kafka.KafkaClient
	topic       string
}

func NewDomainEventPublisher(
	logger *slog.Logger,
	kafkaClient *kafka.KafkaClient,
	topic string,
) *DomainEventPublisher {
	return &DomainEventPublisher{
		logger:      logger,
		kafkaClient: kafkaClient,
		topic:       topic,
	}
}

// NewEvent builds the envelope for a written aggregate. Marshalling the
// payload here keeps services free of serialization concerns.
func NewEvent(eventType string, aggregateType string, aggregateID int64, payload any) domain.DomainEvent {
	raw, err := json.Marshal(payload)
	if err != nil {
		raw = nil
	}

	return domain.DomainEvent{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		OccurredAt:    time.Now().UTC(),
		Payload:       raw,
	}
}

// Publish sends a batch of domain events to the event topic.
func (p *DomainEventPublisher) Publish(ctx context.Context, events ...domain.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	kafkaMessages := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		eventBytes, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to marshal domain event",
				"error", err,
				"event_id", event.EventID,
				"event_type", event.EventType)
			continue
		}

		kafkaMessages = append(kafkaMessages, kafka.Message{
			// Partition by aggregate for per-aggregate ordering
			Key:   fmt.Sprintf("%s-%d", event.AggregateType, event.AggregateID),
			Value: eventBytes,
			Headers: map[string]string{
				"event_id":       event.EventID,
				"event_type":     event.EventType,
				"aggregate_type": event.AggregateType,
				"source_service": "vamsa-api",
				"schema_version": "v1",
			},
		})
	}

	if err := p.kafkaClient.Producer(kafkaMessages, p.topic); err != nil {
		return fmt.Errorf("failed to publish domain events to topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published domain events",
		"topic", p.topic,
		"events_count", len(kafkaMessages))

	return nil
}

// PublishAsync publishes best-effort in the background. Write paths never
// fail because of event publishing; a nil publisher or missing broker config
// turns this into a no-op.
func (p *DomainEventPublisher) PublishAsync(events ...domain.DomainEvent) {
	if p == nil || p.kafkaClient == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := p.Publish(ctx, events...); err != nil {
			p.logger.Error("Failed to publish domain events", "error", err)
		}
	}()
}
