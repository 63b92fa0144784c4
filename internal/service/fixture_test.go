package service

import (
	"context"
	"testing"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/infrastructure/kafka"
	"loveacts-service/internal/infrastructure/memory"
	"loveacts-service/pkg/hash"
	pkgjwt "loveacts-service/pkg/jwt"
	"loveacts-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fixture wires every service against one in-memory store
type fixture struct {
	store        *memory.Store
	sessions     *memory.SessionStore
	auth         service.AuthService
	couples      service.CoupleService
	activities   service.ActivityService
	moods        service.MoodService
	achievements service.AchievementService
	dashboard    service.DashboardService
}

func newFixture(t *testing.T, publisher service.EventPublisher) *fixture {
	t.Helper()
	if publisher == nil {
		publisher = kafka.NopPublisher{}
	}

	log := logger.Discard()
	store := memory.NewStore()
	sessions := memory.NewSessionStore()

	achievements := NewAchievementService(store.Users(), store.Achievements(), store.Activities(), publisher, log)

	return &fixture{
		store:        store,
		sessions:     sessions,
		auth:         NewAuthService(store.Users(), sessions, hash.NewHasher(bcrypt.MinCost), pkgjwt.NewTokenManager("test-secret", time.Hour, "test"), log),
		couples:      NewCoupleService(store.Users(), store.Couples(), store.Moods(), achievements, publisher, log),
		activities:   NewActivityService(store.Users(), store.Activities(), achievements, publisher, log),
		moods:        NewMoodService(store.Users(), store.Moods(), publisher, log),
		achievements: achievements,
		dashboard:    NewDashboardService(store.Activities(), store.Achievements()),
	}
}

func (f *fixture) register(t *testing.T, name string) *entity.User {
	t.Helper()
	res, err := f.auth.Register(context.Background(), &entity.UserCreate{
		Name:     name,
		Email:    name + "@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	return res.User
}

// couple registers two users and links them, returning (initiator, respondent)
func (f *fixture) couple(t *testing.T) (*entity.User, *entity.User) {
	t.Helper()
	a := f.register(t, "ana")
	b := f.register(t, "ben")
	_, err := f.couples.LinkPartner(context.Background(), a.ID, b.PartnerCode)
	require.NoError(t, err)
	return a, b
}

func (f *fixture) give(t *testing.T, giver, receiver uuid.UUID, title string) *entity.Activity {
	t.Helper()
	activity, err := f.activities.CreateActivity(context.Background(), giver, &entity.ActivityCreate{
		Title:       title,
		Description: "because",
		Category:    entity.CategoryEmotional,
		ReceiverID:  receiver,
	})
	require.NoError(t, err)
	return activity
}
