package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/honeynil/CampusMarket/internal/models"
	"github.com/honeynil/CampusMarket/internal/repository"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the part of *kafka.Reader the consumer relies on.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer persists marketplace events into the activity log read by the
// admin dashboard.
type Consumer struct {
	reader   MessageReader
	uow      repository.UnitOfWork
	backoff  time.Duration
	attempts int
}

const (
	defaultBackoff  = 500 * time.Millisecond
	defaultAttempts = 3
)

// ErrUndecodable marks events that no retry can fix.
var ErrUndecodable = errors.New("undecodable event")

func NewConsumer(brokers []string, topic, groupID string, uow repository.UnitOfWork) *Consumer {
	return NewConsumerWithReader(kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	}), uow)
}

func NewConsumerWithReader(reader MessageReader, uow repository.UnitOfWork) *Consumer {
	return &Consumer{reader: reader, uow: uow, backoff: defaultBackoff, attempts: defaultAttempts}
}

// Consume blocks until ctx is cancelled.
func (c *Consumer) Consume(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				slog.Info("Kafka consumer stopped")
				return
			}
			slog.Error("failed to read Kafka message", "error", err)
			if !sleep(ctx, c.backoff) {
				slog.Info("Kafka consumer stopped")
				return
			}
			continue
		}

		slog.Debug("Kafka message received", "topic", msg.Topic, "key", string(msg.Key), "offset", msg.Offset)

		if err := c.handleWithRetry(ctx, msg); err != nil {
			// Недекодируемые сообщения пропускаем, чтобы не блокировать партицию
			slog.Error("failed to handle event", "topic", msg.Topic, "offset", msg.Offset, "error", err)
		}
	}
}

// handleWithRetry retries store failures with a linear backoff. The reader
// commits offsets on read, so a message that exhausts its attempts is lost.
func (c *Consumer) handleWithRetry(ctx context.Context, msg kafka.Message) error {
	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		err = c.Handle(ctx, msg)
		if err == nil || errors.Is(err, ErrUndecodable) {
			return err
		}
		slog.Warn("retrying event", "offset", msg.Offset, "attempt", attempt, "error", err)
		if attempt < c.attempts && !sleep(ctx, time.Duration(attempt)*c.backoff) {
			return ctx.Err()
		}
	}
	return err
}

// sleep waits for d and reports false if ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Handle decodes one event and appends it to the activity log.
func (c *Consumer) Handle(ctx context.Context, msg kafka.Message) error {
	var event models.Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: failed to unmarshal event: %v", ErrUndecodable, err)
	}
	if event.Type == "" {
		return fmt.Errorf("%w: event has no type", ErrUndecodable)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = msg.Time
	}

	entry := &models.ActivityEntry{
		Type:       event.Type,
		ActorID:    event.ActorID,
		SubjectID:  event.SubjectID,
		Payload:    event.Payload,
		OccurredAt: event.OccurredAt,
	}
	err := c.uow.Do(ctx, func(ctx context.Context, repos repository.Repositories) error {
		return repos.Activity().Append(ctx, entry)
	})
	if err != nil {
		return err
	}

	slog.Info("activity recorded", "type", entry.Type, "actor_id", entry.ActorID, "subject_id", entry.SubjectID)
	return nil
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
