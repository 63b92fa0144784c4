package service

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AchievementService defines the achievement engine
type AchievementService interface {
	// Evaluate checks every unlock rule for the user and stores what is newly
	// unlocked. Safe to call any number of times.
	Evaluate(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)

	// Unlock stores an achievement of the given type unless already present
	Unlock(ctx context.Context, userID uuid.UUID, achievementType entity.AchievementType) (*entity.Achievement, error)

	// ListAchievements returns the user's achievements, newest first
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error)
}
