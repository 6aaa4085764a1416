package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/honeynil/CampusMarket/internal/infrastructure/kafka"
	"github.com/honeynil/CampusMarket/internal/models"
)

// EventPublisher sends committed domain events to Kafka. Failures are logged
// and never reach the caller: the state change is already committed.
type EventPublisher struct {
	producer kafka.KafkaProducer
	topic    string
}

func NewEventPublisher(producer kafka.KafkaProducer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

func (p *EventPublisher) Publish(ctx context.Context, events ...models.Event) {
	if p == nil || p.producer == nil {
		return
	}
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			slog.Error("failed to marshal event", "type", e.Type, "error", err)
			continue
		}
		if err := p.producer.Send(ctx, p.topic, e.SubjectID, value); err != nil {
			slog.Error("failed to publish event", "type", e.Type, "subject_id", e.SubjectID, "error", err)
			continue
		}
	}
}

func newEvent(t models.EventType, actorID, subjectID int64, payload any) models.Event {
	e := models.Event{
		Type:       t,
		ActorID:    actorID,
		SubjectID:  subjectID,
		OccurredAt: timeNow().UTC(),
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			e.Payload = raw
		}
	}
	return e
}
