package service

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// SpecialMemoriesLimit caps the number of special memories returned
const SpecialMemoriesLimit = 10

// ActivityService defines business logic for acts of love
type ActivityService interface {
	// CreateActivity logs an activity from the giver to their partner
	CreateActivity(ctx context.Context, giverID uuid.UUID, activityCreate *entity.ActivityCreate) (*entity.Activity, error)

	// RateActivity rates a received activity, once
	RateActivity(ctx context.Context, activityID, raterID uuid.UUID, rating int, comment *string) error

	// ListGiven returns activities given by the user, newest first
	ListGiven(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// ListReceived returns activities received by the user, newest first
	ListReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// ListPending returns received activities still waiting for a rating
	ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)

	// SpecialMemories returns a random selection of 5 star activities involving the user
	SpecialMemories(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error)
}
