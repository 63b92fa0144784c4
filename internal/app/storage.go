package app

import (
	"context"
	"fmt"

	"loveacts-service/internal/config"
	"loveacts-service/internal/domain/repository"
	infradb "loveacts-service/internal/infrastructure/db"
	"loveacts-service/internal/infrastructure/memory"
	"loveacts-service/internal/infrastructure/migrations"
	"loveacts-service/internal/infrastructure/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// repositories bundles one implementation of every domain repository
type repositories struct {
	users        repository.UserRepository
	couples      repository.CoupleRepository
	activities   repository.ActivityRepository
	moods        repository.MoodRepository
	achievements repository.AchievementRepository
	close        func()
}

func openStorage(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return &repositories{
			users:        store.Users(),
			couples:      store.Couples(),
			activities:   store.Activities(),
			moods:        store.Moods(),
			achievements: store.Achievements(),
			close:        func() {},
		}, nil

	case config.StoragePostgres:
		if cfg.Storage.MigrateOnBoot {
			if err := migrateUp(&cfg.Database, log); err != nil {
				return nil, err
			}
		}

		pool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("connected to PostgreSQL")

		return postgresRepositories(pool), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func postgresRepositories(pool *pgxpool.Pool) *repositories {
	return &repositories{
		users:        postgres.NewUserRepository(pool),
		couples:      postgres.NewCoupleRepository(pool),
		activities:   postgres.NewActivityRepository(pool),
		moods:        postgres.NewMoodRepository(pool),
		achievements: postgres.NewAchievementRepository(pool),
		close:        pool.Close,
	}
}

func migrateUp(cfg *config.DatabaseConfig, log logrus.FieldLogger) error {
	migrator, err := migrations.New(cfg.GetMigrateDSN(), log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}
