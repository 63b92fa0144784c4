package app

import (
	"context"
	"errors"
	"fmt"

	"loveacts-service/internal/config"
	infradb "loveacts-service/internal/infrastructure/db"
	"loveacts-service/internal/infrastructure/kafka"
	"loveacts-service/internal/infrastructure/postgres"
	"loveacts-service/internal/infrastructure/smtp"
	svc "loveacts-service/internal/service"

	"github.com/sirupsen/logrus"
)

// RunNotifier consumes domain events and e-mails users until ctx is cancelled.
// It reads users from PostgreSQL, so the memory driver cannot back it.
func RunNotifier(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) error {
	if !cfg.Kafka.Enabled {
		return errors.New("notifier requires kafka to be enabled")
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		return fmt.Errorf("notifier requires the %s storage driver", config.StoragePostgres)
	}

	pool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer pool.Close()
	log.Info("connected to PostgreSQL")

	notificationService := svc.NewNotificationService(
		postgres.NewUserRepository(pool),
		smtp.NewClient(&cfg.SMTP),
		log,
	)

	consumer := kafka.NewConsumer(&cfg.Kafka, notificationService, log)
	defer func() {
		if err := consumer.Close(); err != nil {
			log.WithError(err).Warn("error closing Kafka consumer")
		}
	}()

	log.WithFields(logrus.Fields{
		"topic":    cfg.Kafka.Topic,
		"group_id": cfg.Kafka.GroupID,
	}).Info("notifier started")

	return consumer.Start(ctx)
}
