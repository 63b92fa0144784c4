package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, b := f.couple(t)

	ratings := []int{5, 4, 4}
	for _, r := range ratings {
		act := f.give(t, a.ID, b.ID, "act")
		require.NoError(t, f.activities.RateActivity(ctx, act.ID, b.ID, r, nil))
	}
	f.give(t, a.ID, b.ID, "pending")
	back := f.give(t, b.ID, a.ID, "back")
	require.NoError(t, f.activities.RateActivity(ctx, back.ID, a.ID, 2, nil))

	stats, err := f.dashboard.GetStats(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalActivitiesGiven)
	assert.Equal(t, 1, stats.TotalActivitiesReceived)
	assert.Equal(t, 4.3, stats.AverageRatingGiven)
	assert.Equal(t, 2.0, stats.AverageRatingReceived)
	assert.Equal(t, 0, stats.PendingRatings)
	assert.Equal(t, 0, stats.CurrentStreak)
	// partner_linked, first_activity, first_five_stars
	assert.Equal(t, 3, stats.AchievementsCount)

	stats, err = f.dashboard.GetStats(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PendingRatings)
	assert.Equal(t, 2.0, stats.AverageRatingGiven)
	assert.Equal(t, 4.3, stats.AverageRatingReceived)
}

func TestDashboardStatsEmpty(t *testing.T) {
	f := newFixture(t, nil)
	user := f.register(t, "solo")

	stats, err := f.dashboard.GetStats(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalActivitiesGiven)
	assert.Zero(t, stats.AverageRatingGiven)
	assert.Zero(t, stats.AverageRatingReceived)
}

func TestRoundOneDecimal(t *testing.T) {
	assert.Equal(t, 4.3, roundOneDecimal(13.0/3.0))
	assert.Equal(t, 0.0, roundOneDecimal(0))
}
