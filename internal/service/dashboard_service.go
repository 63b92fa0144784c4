package service

import (
	"context"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"

	"github.com/google/uuid"
)

type dashboardService struct {
	activityRepo    repository.ActivityRepository
	achievementRepo repository.AchievementRepository
}

// NewDashboardService creates the dashboard aggregator
func NewDashboardService(
	activityRepo repository.ActivityRepository,
	achievementRepo repository.AchievementRepository,
) service.DashboardService {
	return &dashboardService{
		activityRepo:    activityRepo,
		achievementRepo: achievementRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	var err error

	if stats.TotalActivitiesGiven, err = s.activityRepo.CountByGiver(ctx, userID); err != nil {
		return nil, s.fail(err)
	}
	if stats.TotalActivitiesReceived, err = s.activityRepo.CountByReceiver(ctx, userID); err != nil {
		return nil, s.fail(err)
	}
	if stats.AverageRatingGiven, err = s.activityRepo.AverageRatingByGiver(ctx, userID); err != nil {
		return nil, s.fail(err)
	}
	if stats.AverageRatingReceived, err = s.activityRepo.AverageRatingByReceiver(ctx, userID); err != nil {
		return nil, s.fail(err)
	}
	if stats.PendingRatings, err = s.activityRepo.CountPendingByReceiver(ctx, userID); err != nil {
		return nil, s.fail(err)
	}
	if stats.AchievementsCount, err = s.achievementRepo.CountByUser(ctx, userID); err != nil {
		return nil, s.fail(err)
	}

	stats.AverageRatingGiven = roundOneDecimal(stats.AverageRatingGiven)
	stats.AverageRatingReceived = roundOneDecimal(stats.AverageRatingReceived)
	// streaks are not tracked yet
	stats.CurrentStreak = 0

	return &stats, nil
}

func (s *dashboardService) fail(err error) error {
	return apperr.Internal(apperr.CodeInternal, "failed to compute dashboard", err)
}
