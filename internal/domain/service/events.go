package service

import (
	"context"

	"loveacts-service/internal/domain/entity"
)

//go:generate mockgen -source=events.go -destination=mocks/events_mock.go -package=mocks

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(ctx context.Context, event *entity.Event) error
	Close() error
}

// Mailer sends notification e-mails
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationService reacts to domain events
type NotificationService interface {
	HandleEvent(ctx context.Context, event *entity.Event) error
}
