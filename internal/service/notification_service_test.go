package service

import (
	"context"
	"errors"
	"testing"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service/mocks"
	"loveacts-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifyActivityReceived(t *testing.T) {
	f := newFixture(t, nil)
	a, b := f.couple(t)

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	svc := NewNotificationService(f.store.Users(), mailer, logger.Discard())

	event := entity.NewEvent(entity.EventActivityCreated, a.ID)
	event.PartnerID = b.ID.String()
	event.Title = "Breakfast in bed"

	mailer.EXPECT().
		Send(gomock.Any(), "ben@example.com", "Your partner did something for you", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			assert.Contains(t, body, "Breakfast in bed")
			assert.Contains(t, body, "Hi ben")
			return nil
		})

	require.NoError(t, svc.HandleEvent(context.Background(), event))
}

func TestNotifyAchievementUnlocked(t *testing.T) {
	f := newFixture(t, nil)
	user := f.register(t, "ana")

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	svc := NewNotificationService(f.store.Users(), mailer, logger.Discard())

	event := entity.NewEvent(entity.EventAchievementUnlocked, user.ID)
	event.AchievementType = entity.AchievementPartnerLinked

	mailer.EXPECT().
		Send(gomock.Any(), "ana@example.com", "Achievement unlocked: 💕 United Hearts", gomock.Any()).
		Return(nil)

	require.NoError(t, svc.HandleEvent(context.Background(), event))
}

func TestNotifyIgnoresOtherEvents(t *testing.T) {
	f := newFixture(t, nil)
	user := f.register(t, "ana")

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	svc := NewNotificationService(f.store.Users(), mailer, logger.Discard())

	require.NoError(t, svc.HandleEvent(context.Background(), entity.NewEvent(entity.EventMoodLogged, user.ID)))
	require.NoError(t, svc.HandleEvent(context.Background(), entity.NewEvent(entity.EventPartnerLinked, user.ID)))
}

func TestNotifyErrors(t *testing.T) {
	f := newFixture(t, nil)
	user := f.register(t, "ana")

	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)
	svc := NewNotificationService(f.store.Users(), mailer, logger.Discard())

	t.Run("bad user id", func(t *testing.T) {
		event := entity.NewEvent(entity.EventAchievementUnlocked, user.ID)
		event.UserID = "nope"
		event.AchievementType = entity.AchievementFirstActivity
		assert.Error(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("unknown achievement", func(t *testing.T) {
		event := entity.NewEvent(entity.EventAchievementUnlocked, user.ID)
		event.AchievementType = "bogus"
		assert.Error(t, svc.HandleEvent(context.Background(), event))
	})

	t.Run("mailer failure", func(t *testing.T) {
		event := entity.NewEvent(entity.EventAchievementUnlocked, user.ID)
		event.AchievementType = entity.AchievementFirstActivity
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		assert.ErrorContains(t, svc.HandleEvent(context.Background(), event), "smtp down")
	})
}
