package memory

import (
	"context"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
)

type activityRepository struct {
	s *Store
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.activities[activity.ID]; ok {
		return repository.ErrDuplicate
	}
	r.s.activities[activity.ID] = copyActivity(activity)
	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.activities[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyActivity(a), nil
}

func (r *activityRepository) Rate(ctx context.Context, id uuid.UUID, rating int, comment *string, ratedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.activities[id]
	if !ok {
		return repository.ErrNotFound
	}
	if a.Rating != nil {
		return repository.ErrAlreadyRated
	}

	a.Rating = &rating
	if comment != nil {
		c := *comment
		a.Comment = &c
	}
	a.RatedAt = &ratedAt
	return nil
}

func (r *activityRepository) filter(keep func(a *entity.Activity) bool) []*entity.Activity {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]*entity.Activity, 0)
	for _, a := range r.s.activities {
		if keep(a) {
			list = append(list, copyActivity(a))
		}
	}
	sortActivitiesNewestFirst(list)
	return list
}

func (r *activityRepository) ListByGiver(ctx context.Context, giverID uuid.UUID) ([]*entity.Activity, error) {
	return r.filter(func(a *entity.Activity) bool { return a.GiverID == giverID }), nil
}

func (r *activityRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*entity.Activity, error) {
	return r.filter(func(a *entity.Activity) bool { return a.ReceiverID == receiverID }), nil
}

func (r *activityRepository) ListPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*entity.Activity, error) {
	return r.filter(func(a *entity.Activity) bool {
		return a.ReceiverID == receiverID && !a.IsRated()
	}), nil
}

func (r *activityRepository) ListWithRatingInvolving(ctx context.Context, userID uuid.UUID, rating int) ([]*entity.Activity, error) {
	return r.filter(func(a *entity.Activity) bool {
		return a.Involves(userID) && a.HasRating(rating)
	}), nil
}

func (r *activityRepository) count(keep func(a *entity.Activity) bool) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, a := range r.s.activities {
		if keep(a) {
			n++
		}
	}
	return n
}

func (r *activityRepository) CountByGiver(ctx context.Context, giverID uuid.UUID) (int, error) {
	return r.count(func(a *entity.Activity) bool { return a.GiverID == giverID }), nil
}

func (r *activityRepository) CountByGiverWithRating(ctx context.Context, giverID uuid.UUID, rating int) (int, error) {
	return r.count(func(a *entity.Activity) bool {
		return a.GiverID == giverID && a.HasRating(rating)
	}), nil
}

func (r *activityRepository) CountByReceiver(ctx context.Context, receiverID uuid.UUID) (int, error) {
	return r.count(func(a *entity.Activity) bool { return a.ReceiverID == receiverID }), nil
}

func (r *activityRepository) CountPendingByReceiver(ctx context.Context, receiverID uuid.UUID) (int, error) {
	return r.count(func(a *entity.Activity) bool {
		return a.ReceiverID == receiverID && !a.IsRated()
	}), nil
}

func (r *activityRepository) average(keep func(a *entity.Activity) bool) float64 {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sum, n := 0, 0
	for _, a := range r.s.activities {
		if a.Rating != nil && keep(a) {
			sum += *a.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func (r *activityRepository) AverageRatingByGiver(ctx context.Context, giverID uuid.UUID) (float64, error) {
	return r.average(func(a *entity.Activity) bool { return a.GiverID == giverID }), nil
}

func (r *activityRepository) AverageRatingByReceiver(ctx context.Context, receiverID uuid.UUID) (float64, error) {
	return r.average(func(a *entity.Activity) bool { return a.ReceiverID == receiverID }), nil
}

func (r *activityRepository) ListGiverIDs(ctx context.Context) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0)
	for _, a := range r.s.activities {
		if _, ok := seen[a.GiverID]; ok {
			continue
		}
		seen[a.GiverID] = struct{}{}
		ids = append(ids, a.GiverID)
	}
	return ids, nil
}
