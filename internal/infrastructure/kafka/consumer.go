package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loveacts-service/internal/config"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// messageReader is the part of *kafka.Reader the consumer uses
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer feeds domain events into the notification service
type Consumer struct {
	reader              messageReader
	notificationService service.NotificationService
	log                 logrus.FieldLogger
}

// NewConsumer creates a new Kafka consumer in the configured group
func NewConsumer(
	cfg *config.KafkaConfig,
	notificationService service.NotificationService,
	log logrus.FieldLogger,
) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		GroupID:        cfg.GroupID,
		Topic:          cfg.Topic,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.LastOffset,
	})

	return &Consumer{
		reader:              reader,
		notificationService: notificationService,
		log:                 log,
	}
}

// Start consumes messages until ctx is cancelled. A message is committed once
// handled; a message that fails to decode or handle is logged and committed
// too, so one bad event cannot block the partition.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("starting kafka consumer")

	for {
		message, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.log.Info("stopping kafka consumer")
				return nil
			}
			c.log.WithError(err).Error("failed to read message")
			continue
		}

		if err := c.processMessage(ctx, message); err != nil {
			c.log.WithError(err).WithFields(logrus.Fields{
				"partition": message.Partition,
				"offset":    message.Offset,
			}).Error("failed to process message")
		}

		if err := c.reader.CommitMessages(ctx, message); err != nil && ctx.Err() == nil {
			c.log.WithError(err).Warn("failed to commit message")
		}
	}
}

// processMessage decodes a message and hands it to the notification service
func (c *Consumer) processMessage(ctx context.Context, message kafka.Message) error {
	var event entity.Event
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	c.log.WithFields(logrus.Fields{
		"event_type": event.EventType,
		"event_id":   event.EventID,
	}).Debug("received event")

	return c.notificationService.HandleEvent(ctx, &event)
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.reader != nil {
		return c.reader.Close()
	}
	return nil
}
