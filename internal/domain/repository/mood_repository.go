package repository

import (
	"context"
	"time"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// MoodRepository defines methods for mood data access
type MoodRepository interface {
	// Upsert stores the mood as the user's entry for the UTC day of mood.Date.
	// An existing entry for that day keeps its ID and gets emoji, note and date
	// overwritten; mood.ID is set to the stored ID. Returns true if a new entry was created.
	Upsert(ctx context.Context, mood *entity.Mood) (bool, error)

	// GetInRange returns the user's mood with date in [from, to), ErrNotFound if none
	GetInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.Mood, error)

	// GetLatest returns the user's most recent mood, ErrNotFound if none
	GetLatest(ctx context.Context, userID uuid.UUID) (*entity.Mood, error)

	// ListRecent returns up to limit moods, newest first
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Mood, error)
}
