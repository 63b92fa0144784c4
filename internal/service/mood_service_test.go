package service

import (
	"context"
	"testing"
	"time"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setClock(f *fixture, now time.Time) {
	f.moods.(*moodService).now = func() time.Time { return now }
}

func TestLogMoodSameDayOverwrites(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := f.register(t, "ana")
	morning := time.Date(2025, 5, 1, 7, 30, 0, 0, time.UTC)

	setClock(f, morning)
	first, created, err := f.moods.LogMood(ctx, user.ID, entity.MoodSad, nil)
	require.NoError(t, err)
	assert.True(t, created)

	setClock(f, morning.Add(12*time.Hour))
	note := "better now"
	second, created, err := f.moods.LogMood(ctx, user.ID, entity.MoodHappy, &note)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	moods, err := f.moods.MyMoods(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, entity.MoodHappy, moods[0].Emoji)
	assert.Equal(t, "better now", *moods[0].Note)
	assert.Equal(t, morning.Add(12*time.Hour), moods[0].Date)
}

func TestLogMoodNewDayCreates(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := f.register(t, "ana")
	lateNight := time.Date(2025, 5, 1, 23, 59, 59, 0, time.UTC)

	setClock(f, lateNight)
	_, created, err := f.moods.LogMood(ctx, user.ID, entity.MoodSad, nil)
	require.NoError(t, err)
	assert.True(t, created)

	setClock(f, lateNight.Add(2*time.Second))
	_, created, err = f.moods.LogMood(ctx, user.ID, entity.MoodHappy, nil)
	require.NoError(t, err)
	assert.True(t, created)

	moods, err := f.moods.MyMoods(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, moods, 2)
	assert.Equal(t, entity.MoodHappy, moods[0].Emoji)
}

func TestLogMoodRejectsUnknownEmoji(t *testing.T) {
	f := newFixture(t, nil)
	user := f.register(t, "ana")

	_, _, err := f.moods.LogMood(context.Background(), user.ID, "🤖", nil)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestMyMoodsCapsAtThirty(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := f.register(t, "ana")
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 35; i++ {
		setClock(f, start.AddDate(0, 0, i))
		_, _, err := f.moods.LogMood(ctx, user.ID, entity.MoodNeutral, nil)
		require.NoError(t, err)
	}

	moods, err := f.moods.MyMoods(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, moods, entity.MyMoodsLimit)
	assert.Equal(t, start.AddDate(0, 0, 34), moods[0].Date)
}

func TestPartnerMoodToday(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	a, b := f.couple(t)
	today := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)

	setClock(f, today.AddDate(0, 0, -1))
	_, _, err := f.moods.LogMood(ctx, b.ID, entity.MoodVerySad, nil)
	require.NoError(t, err)

	setClock(f, today)
	mood, err := f.moods.PartnerMoodToday(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, mood, "yesterday's mood does not count")

	_, _, err = f.moods.LogMood(ctx, b.ID, entity.MoodVeryHappy, nil)
	require.NoError(t, err)

	mood, err = f.moods.PartnerMoodToday(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, mood)
	assert.Equal(t, entity.MoodVeryHappy, mood.Emoji)

	solo := f.register(t, "solo")
	_, err = f.moods.PartnerMoodToday(ctx, solo.ID)
	assert.ErrorIs(t, err, apperr.ErrNoPartner)
}
