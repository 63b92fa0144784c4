package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loveacts-service/internal/config"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// messageWriter is the part of *kafka.Writer the producer uses
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes domain events to Kafka as JSON
type Producer struct {
	writer messageWriter
	log    logrus.FieldLogger
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg *config.KafkaConfig, log logrus.FieldLogger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}

	return &Producer{
		writer: writer,
		log:    log,
	}
}

// Publish writes an event keyed by its user ID, so a user's events stay ordered
func (p *Producer) Publish(ctx context.Context, event *entity.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.EventType, err)
	}

	p.log.WithFields(logrus.Fields{
		"event_type": event.EventType,
		"event_id":   event.EventID,
		"user_id":    event.UserID,
	}).Debug("published event")
	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

// NopPublisher drops every event, used when Kafka is disabled
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *entity.Event) error { return nil }

func (NopPublisher) Close() error { return nil }

var (
	_ service.EventPublisher = (*Producer)(nil)
	_ service.EventPublisher = NopPublisher{}
)
