package service

import (
	"context"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/metrics"

	"github.com/sirupsen/logrus"
)

// eventEmitter publishes domain events on a best-effort basis:
// a failed publish is logged and counted, never returned to the caller
type eventEmitter struct {
	publisher service.EventPublisher
	log       logrus.FieldLogger
}

func newEventEmitter(publisher service.EventPublisher, log logrus.FieldLogger) eventEmitter {
	return eventEmitter{publisher: publisher, log: log}
}

func (e eventEmitter) emit(ctx context.Context, event *entity.Event) {
	if e.publisher == nil {
		return
	}

	err := e.publisher.Publish(ctx, event)
	metrics.RecordEventPublished(string(event.EventType), err == nil)
	if err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"event_type": event.EventType,
			"user_id":    event.UserID,
		}).Warn("failed to publish event")
	}
}
