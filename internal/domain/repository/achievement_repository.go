package repository

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AchievementRepository defines methods for achievement data access
type AchievementRepository interface {
	// Create stores the achievement unless the user already has one of that
	// type. Returns true if it was stored.
	Create(ctx context.Context, achievement *entity.Achievement) (bool, error)

	// ListByUser returns the user's achievements, most recently unlocked first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)

	// ListTypesByUser returns the set of types the user has unlocked
	ListTypesByUser(ctx context.Context, userID uuid.UUID) (map[entity.AchievementType]bool, error)

	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
