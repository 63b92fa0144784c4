package service

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// MoodService defines business logic for daily moods
type MoodService interface {
	// LogMood creates or overwrites today's mood, returns true if created
	LogMood(ctx context.Context, userID uuid.UUID, emoji entity.MoodEmoji, note *string) (*entity.Mood, bool, error)

	// MyMoods returns the user's most recent moods
	MyMoods(ctx context.Context, userID uuid.UUID) ([]*entity.Mood, error)

	// PartnerMoodToday returns the partner's mood for today, nil if none
	PartnerMoodToday(ctx context.Context, userID uuid.UUID) (*entity.Mood, error)
}
