package memory

import (
	"context"
	"sort"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
)

type moodRepository struct {
	s *Store
}

func (r *moodRepository) Upsert(ctx context.Context, mood *entity.Mood) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	start, end := entity.DayBounds(mood.Date)
	for _, m := range r.s.moods {
		if m.UserID == mood.UserID && !m.Date.Before(start) && m.Date.Before(end) {
			mood.ID = m.ID
			r.s.moods[m.ID] = copyMood(mood)
			return false, nil
		}
	}

	r.s.moods[mood.ID] = copyMood(mood)
	return true, nil
}

func (r *moodRepository) GetInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.Mood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.moods {
		if m.UserID == userID && !m.Date.Before(from) && m.Date.Before(to) {
			return copyMood(m), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *moodRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*entity.Mood, error) {
	list, err := r.ListRecent(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, repository.ErrNotFound
	}
	return list[0], nil
}

func (r *moodRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Mood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]*entity.Mood, 0)
	for _, m := range r.s.moods {
		if m.UserID == userID {
			list = append(list, copyMood(m))
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return newestFirst(list[i].Date, list[j].Date) })
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
