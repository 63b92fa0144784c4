package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addUser(t *testing.T, s *Store, email, code string) *entity.User {
	t.Helper()
	u := &entity.User{
		ID:          uuid.New(),
		Name:        email,
		Email:       email,
		PartnerCode: code,
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestUserCreateRejectsDuplicates(t *testing.T) {
	s := NewStore()
	addUser(t, s, "ana@example.com", "AAAAAA")

	err := s.Users().Create(context.Background(), &entity.User{ID: uuid.New(), Email: "ANA@example.com", PartnerCode: "BBBBBB"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	err = s.Users().Create(context.Background(), &entity.User{ID: uuid.New(), Email: "bob@example.com", PartnerCode: "AAAAAA"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestReturnedUserIsACopy(t *testing.T) {
	s := NewStore()
	u := addUser(t, s, "ana@example.com", "AAAAAA")

	got, err := s.Users().GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	got.Name = "changed"

	again, err := s.Users().GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", again.Name)
}

func TestLinkSetsBothPartners(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	a := addUser(t, s, "a@example.com", "AAAAAA")
	b := addUser(t, s, "b@example.com", "BBBBBB")

	require.NoError(t, s.Couples().Link(ctx, &entity.Couple{ID: uuid.New(), Code: b.PartnerCode, User1ID: a.ID, User2ID: b.ID}))

	gotA, _ := s.Users().GetByID(ctx, a.ID)
	gotB, _ := s.Users().GetByID(ctx, b.ID)
	assert.True(t, gotA.IsPartnerOf(b.ID))
	assert.True(t, gotB.IsPartnerOf(a.ID))
	assert.Equal(t, 1, s.CoupleCount())
}

func TestConcurrentLinksOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	target := addUser(t, s, "t@example.com", "TTTTTT")

	const n = 20
	initiators := make([]*entity.User, n)
	for i := range initiators {
		initiators[i] = addUser(t, s, uuid.NewString()+"@example.com", uuid.NewString()[:6])
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := range initiators {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Couples().Link(ctx, &entity.Couple{
				ID: uuid.New(), Code: target.PartnerCode, User1ID: initiators[i].ID, User2ID: target.ID,
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, repository.ErrPartnerTaken)
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, s.CoupleCount())
}

func TestRateOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	a := &entity.Activity{ID: uuid.New(), GiverID: uuid.New(), ReceiverID: uuid.New(), CreatedAt: time.Now()}
	require.NoError(t, s.Activities().Create(ctx, a))

	require.NoError(t, s.Activities().Rate(ctx, a.ID, 4, nil, time.Now()))
	assert.ErrorIs(t, s.Activities().Rate(ctx, a.ID, 5, nil, time.Now()), repository.ErrAlreadyRated)
	assert.ErrorIs(t, s.Activities().Rate(ctx, uuid.New(), 5, nil, time.Now()), repository.ErrNotFound)

	got, err := s.Activities().GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, *got.Rating)
}

func TestActivityAggregates(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	giver, receiver := uuid.New(), uuid.New()
	base := time.Now().Add(-time.Hour)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		a := &entity.Activity{ID: uuid.New(), GiverID: giver, ReceiverID: receiver, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		require.NoError(t, s.Activities().Create(ctx, a))
		ids = append(ids, a.ID)
	}
	require.NoError(t, s.Activities().Rate(ctx, ids[0], 5, nil, time.Now()))
	require.NoError(t, s.Activities().Rate(ctx, ids[1], 4, nil, time.Now()))

	given, _ := s.Activities().ListByGiver(ctx, giver)
	require.Len(t, given, 3)
	assert.Equal(t, ids[2], given[0].ID)

	pending, _ := s.Activities().CountPendingByReceiver(ctx, receiver)
	assert.Equal(t, 1, pending)

	fives, _ := s.Activities().CountByGiverWithRating(ctx, giver, 5)
	assert.Equal(t, 1, fives)

	avg, _ := s.Activities().AverageRatingByGiver(ctx, giver)
	assert.InDelta(t, 4.5, avg, 0.001)

	none, _ := s.Activities().AverageRatingByReceiver(ctx, giver)
	assert.Zero(t, none)

	givers, _ := s.Activities().ListGiverIDs(ctx)
	assert.Equal(t, []uuid.UUID{giver}, givers)
}

func TestMoodUpsertSameDayKeepsID(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	user := uuid.New()
	day := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	first := &entity.Mood{ID: uuid.New(), UserID: user, Emoji: entity.MoodSad, Date: day}
	created, err := s.Moods().Upsert(ctx, first)
	require.NoError(t, err)
	assert.True(t, created)

	second := &entity.Mood{ID: uuid.New(), UserID: user, Emoji: entity.MoodHappy, Date: day.Add(10 * time.Hour)}
	created, err = s.Moods().Upsert(ctx, second)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	list, _ := s.Moods().ListRecent(ctx, user, 30)
	require.Len(t, list, 1)
	assert.Equal(t, entity.MoodHappy, list[0].Emoji)

	next := &entity.Mood{ID: uuid.New(), UserID: user, Emoji: entity.MoodNeutral, Date: day.AddDate(0, 0, 1)}
	created, err = s.Moods().Upsert(ctx, next)
	require.NoError(t, err)
	assert.True(t, created)

	latest, err := s.Moods().GetLatest(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entity.MoodNeutral, latest.Emoji)
}

func TestAchievementCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	user := uuid.New()

	created, err := s.Achievements().Create(ctx, entity.NewAchievement(user, entity.AchievementFirstActivity, time.Now()))
	require.NoError(t, err)
	assert.True(t, created)

	created, err = s.Achievements().Create(ctx, entity.NewAchievement(user, entity.AchievementFirstActivity, time.Now()))
	require.NoError(t, err)
	assert.False(t, created)

	count, _ := s.Achievements().CountByUser(ctx, user)
	assert.Equal(t, 1, count)
}

func TestSessionStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	session := &entity.Session{ID: uuid.New(), UserID: uuid.New(), ExpiresAt: now.Add(time.Minute)}
	require.NoError(t, store.Set(ctx, session))

	ok, _ := store.Exists(ctx, session.ID)
	assert.True(t, ok)

	store.now = func() time.Time { return now.Add(2 * time.Minute) }
	ok, _ = store.Exists(ctx, session.ID)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, &entity.Session{ID: uuid.New(), UserID: session.UserID, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, store.DeleteByUserID(ctx, session.UserID))
	assert.Empty(t, store.sessions)
}
