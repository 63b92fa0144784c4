package service

import (
	"context"
	"testing"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, b := f.couple(t)
	f.give(t, a.ID, b.ID, "hug")

	unlocked, err := f.achievements.Evaluate(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, unlocked, "already unlocked during create")

	count, err := f.store.Achievements().CountByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count) // partner_linked + first_activity
}

func TestEvaluateFiveFiveStars(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, b := f.couple(t)

	for i := 0; i < 5; i++ {
		act := f.give(t, a.ID, b.ID, "star")
		require.NoError(t, f.activities.RateActivity(ctx, act.ID, b.ID, 5, nil))
	}

	types, err := f.store.Achievements().ListTypesByUser(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, types[entity.AchievementFirstFiveStars])
	assert.True(t, types[entity.AchievementFiveFiveStars])
	assert.False(t, types[entity.AchievementDailyMoodWeek])
}

func TestEvaluateReturnsNewUnlocks(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, b := f.couple(t)

	// store directly so no engine run happens on create
	act := &entity.Activity{ID: uuid.New(), GiverID: a.ID, ReceiverID: b.ID, Title: "t", Description: "d", Category: entity.CategoryGeneral}
	require.NoError(t, f.store.Activities().Create(ctx, act))

	unlocked, err := f.achievements.Evaluate(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, entity.AchievementFirstActivity, unlocked[0].Type)
	assert.Equal(t, entity.AchievementCatalog[entity.AchievementFirstActivity].Title, unlocked[0].Title)
}

func TestDailyMoodWeekNeverUnlocks(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := f.register(t, "ana")

	for i := 0; i < 10; i++ {
		_, _, err := f.moods.LogMood(ctx, user.ID, entity.MoodHappy, nil)
		require.NoError(t, err)
	}

	unlocked, err := f.achievements.Evaluate(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestUnlockTwiceReturnsNil(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := f.register(t, "ana")

	first, err := f.achievements.Unlock(ctx, user.ID, entity.AchievementPartnerLinked)
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := f.achievements.Unlock(ctx, user.ID, entity.AchievementPartnerLinked)
	require.NoError(t, err)
	assert.Nil(t, again)
}

func TestEvaluateRepairsMissedPartnerLinked(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a := f.register(t, "ana")
	b := f.register(t, "ben")

	// link in the store only, as if the unlock after the link had failed
	require.NoError(t, f.store.Couples().Link(ctx, &entity.Couple{
		ID:      uuid.New(),
		Code:    b.PartnerCode,
		User1ID: a.ID,
		User2ID: b.ID,
	}))

	unlocked, err := f.achievements.Evaluate(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, unlocked, 1)
	assert.Equal(t, entity.AchievementPartnerLinked, unlocked[0].Type)

	again, err := f.achievements.Evaluate(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, again)
}
