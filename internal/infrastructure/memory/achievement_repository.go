package memory

import (
	"context"
	"sort"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

type achievementRepository struct {
	s *Store
}

func (r *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, a := range r.s.achievements {
		if a.UserID == achievement.UserID && a.Type == achievement.Type {
			return false, nil
		}
	}
	cp := *achievement
	r.s.achievements[achievement.ID] = &cp
	return true, nil
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	list := make([]*entity.Achievement, 0)
	for _, a := range r.s.achievements {
		if a.UserID == userID {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return newestFirst(list[i].UnlockedAt, list[j].UnlockedAt) })
	return list, nil
}

func (r *achievementRepository) ListTypesByUser(ctx context.Context, userID uuid.UUID) (map[entity.AchievementType]bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	types := make(map[entity.AchievementType]bool)
	for _, a := range r.s.achievements {
		if a.UserID == userID {
			types[a.Type] = true
		}
	}
	return types, nil
}

func (r *achievementRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	types, err := r.ListTypesByUser(ctx, userID)
	return len(types), err
}
