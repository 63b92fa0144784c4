// Package memory keeps the whole domain in process memory. It backs the
// "memory" storage driver and the service tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every entity behind one lock so multi-entity writes stay atomic
type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]*entity.User
	couples      []*entity.Couple
	activities   map[uuid.UUID]*entity.Activity
	moods        map[uuid.UUID]*entity.Mood
	achievements map[uuid.UUID]*entity.Achievement
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]*entity.User),
		activities:   make(map[uuid.UUID]*entity.Activity),
		moods:        make(map[uuid.UUID]*entity.Mood),
		achievements: make(map[uuid.UUID]*entity.Achievement),
	}
}

// Users returns the user repository view of the store
func (s *Store) Users() repository.UserRepository { return &userRepository{s} }

// Couples returns the couple repository view of the store
func (s *Store) Couples() repository.CoupleRepository { return &coupleRepository{s} }

// Activities returns the activity repository view of the store
func (s *Store) Activities() repository.ActivityRepository { return &activityRepository{s} }

// Moods returns the mood repository view of the store
func (s *Store) Moods() repository.MoodRepository { return &moodRepository{s} }

// Achievements returns the achievement repository view of the store
func (s *Store) Achievements() repository.AchievementRepository {
	return &achievementRepository{s}
}

// CoupleCount returns how many links were recorded
func (s *Store) CoupleCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.couples)
}

func copyUser(u *entity.User) *entity.User {
	cp := *u
	if u.PartnerID != nil {
		id := *u.PartnerID
		cp.PartnerID = &id
	}
	return &cp
}

func copyActivity(a *entity.Activity) *entity.Activity {
	cp := *a
	if a.Rating != nil {
		r := *a.Rating
		cp.Rating = &r
	}
	if a.Comment != nil {
		c := *a.Comment
		cp.Comment = &c
	}
	if a.RatedAt != nil {
		t := *a.RatedAt
		cp.RatedAt = &t
	}
	return &cp
}

func copyMood(m *entity.Mood) *entity.Mood {
	cp := *m
	if m.Note != nil {
		n := *m.Note
		cp.Note = &n
	}
	return &cp
}

func sortActivitiesNewestFirst(list []*entity.Activity) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func newestFirst(a, b time.Time) bool {
	return a.After(b)
}
