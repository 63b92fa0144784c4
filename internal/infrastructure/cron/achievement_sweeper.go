package cron

import (
	"context"
	"fmt"
	"time"

	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// AchievementSweeper periodically re-evaluates achievements for every giver
// and every linked user, catching unlocks missed by a failed request
type AchievementSweeper struct {
	achievementService service.AchievementService
	userRepo           repository.UserRepository
	activityRepo       repository.ActivityRepository
	cron               *cron.Cron
	interval           time.Duration
	log                logrus.FieldLogger
}

// NewAchievementSweeper creates a new achievement sweeper
func NewAchievementSweeper(
	achievementService service.AchievementService,
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	checkInterval time.Duration,
	log logrus.FieldLogger,
) *AchievementSweeper {
	return &AchievementSweeper{
		achievementService: achievementService,
		userRepo:           userRepo,
		activityRepo:       activityRepo,
		cron:               cron.New(),
		interval:           checkInterval,
		log:                log,
	}
}

// Start starts the sweeper
func (s *AchievementSweeper) Start() error {
	cronExpr := fmt.Sprintf("@every %s", s.interval.String())

	s.log.WithField("interval", s.interval).Info("starting achievement sweeper")

	_, err := s.cron.AddFunc(cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.Sweep(ctx)
	})

	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the sweeper and waits for a running sweep to finish
func (s *AchievementSweeper) Stop() {
	s.log.Info("stopping achievement sweeper")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep evaluates every giver and linked user once and returns how many
// achievements were unlocked
func (s *AchievementSweeper) Sweep(ctx context.Context) int {
	userIDs, err := s.candidates(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to list sweep candidates")
		return 0
	}

	unlocked := 0
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}
		achievements, err := s.achievementService.Evaluate(ctx, userID)
		if err != nil {
			s.log.WithError(err).WithField("user_id", userID).Warn("failed to evaluate achievements")
			continue
		}
		unlocked += len(achievements)
	}

	s.log.WithFields(logrus.Fields{
		"users":    len(userIDs),
		"unlocked": unlocked,
	}).Info("achievement sweep completed")

	return unlocked
}

// candidates merges givers and linked users without duplicates
func (s *AchievementSweeper) candidates(ctx context.Context) ([]uuid.UUID, error) {
	givers, err := s.activityRepo.ListGiverIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list givers: %w", err)
	}
	linked, err := s.userRepo.ListLinkedIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list linked users: %w", err)
	}

	seen := make(map[uuid.UUID]struct{}, len(givers)+len(linked))
	ids := make([]uuid.UUID, 0, len(givers)+len(linked))
	for _, id := range append(givers, linked...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
