package repository

import (
	"context"
	"time"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// ActivityRepository defines methods for activity data access.
// List methods return activities by creation time, newest first.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)

	// Rate sets rating, comment and rated_at if the activity is still unrated,
	// ErrAlreadyRated otherwise
	Rate(ctx context.Context, id uuid.UUID, rating int, comment *string, ratedAt time.Time) error

	ListByGiver(ctx context.Context, giverID uuid.UUID) ([]*entity.Activity, error)

	ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*entity.Activity, error)

	ListPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*entity.Activity, error)

	// ListWithRatingInvolving returns activities with the given rating where the
	// user is giver or receiver, in no particular order
	ListWithRatingInvolving(ctx context.Context, userID uuid.UUID, rating int) ([]*entity.Activity, error)

	CountByGiver(ctx context.Context, giverID uuid.UUID) (int, error)

	CountByGiverWithRating(ctx context.Context, giverID uuid.UUID, rating int) (int, error)

	CountByReceiver(ctx context.Context, receiverID uuid.UUID) (int, error)

	CountPendingByReceiver(ctx context.Context, receiverID uuid.UUID) (int, error)

	// AverageRatingByGiver averages the ratings of rated activities given by the user, 0 if none
	AverageRatingByGiver(ctx context.Context, giverID uuid.UUID) (float64, error)

	// AverageRatingByReceiver averages the ratings of rated activities received by the user, 0 if none
	AverageRatingByReceiver(ctx context.Context, receiverID uuid.UUID) (float64, error)

	// ListGiverIDs returns every user that gave at least one activity
	ListGiverIDs(ctx context.Context) ([]uuid.UUID, error)
}
