package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type achievementService struct {
	userRepo        repository.UserRepository
	achievementRepo repository.AchievementRepository
	activityRepo    repository.ActivityRepository
	events          eventEmitter
	log             logrus.FieldLogger
	now             func() time.Time
}

// NewAchievementService creates the achievement engine
func NewAchievementService(
	userRepo repository.UserRepository,
	achievementRepo repository.AchievementRepository,
	activityRepo repository.ActivityRepository,
	publisher service.EventPublisher,
	log logrus.FieldLogger,
) service.AchievementService {
	return &achievementService{
		userRepo:        userRepo,
		achievementRepo: achievementRepo,
		activityRepo:    activityRepo,
		events:          newEventEmitter(publisher, log),
		log:             log,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *achievementService) Evaluate(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	owned, err := s.achievementRepo.ListTypesByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load achievements", err)
	}

	unlocked := make([]*entity.Achievement, 0)
	for _, achievementType := range entity.AchievementTypes {
		if owned[achievementType] {
			continue
		}

		ok, err := s.qualifies(ctx, userID, achievementType)
		if err != nil {
			return unlocked, apperr.Internal(apperr.CodeInternal, "failed to evaluate achievements", err)
		}
		if !ok {
			continue
		}

		achievement, err := s.Unlock(ctx, userID, achievementType)
		if err != nil {
			return unlocked, err
		}
		if achievement != nil {
			unlocked = append(unlocked, achievement)
		}
	}

	return unlocked, nil
}

// qualifies checks the unlock rule of one type
func (s *achievementService) qualifies(ctx context.Context, userID uuid.UUID, achievementType entity.AchievementType) (bool, error) {
	switch achievementType {
	case entity.AchievementFirstActivity, entity.AchievementTenActivities:
		given, err := s.activityRepo.CountByGiver(ctx, userID)
		if err != nil {
			return false, err
		}
		if achievementType == entity.AchievementFirstActivity {
			return given >= 1, nil
		}
		return given >= 10, nil

	case entity.AchievementFirstFiveStars, entity.AchievementFiveFiveStars:
		fives, err := s.activityRepo.CountByGiverWithRating(ctx, userID, entity.MaxRating)
		if err != nil {
			return false, err
		}
		if achievementType == entity.AchievementFirstFiveStars {
			return fives >= 1, nil
		}
		return fives >= 5, nil

	case entity.AchievementDailyMoodWeek:
		// no rule defined yet
		return false, nil

	case entity.AchievementPartnerLinked:
		// the linking flow unlocks it; this catches a link whose unlock failed
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return user.HasPartner(), nil

	default:
		return false, fmt.Errorf("unknown achievement type %q", achievementType)
	}
}

func (s *achievementService) Unlock(ctx context.Context, userID uuid.UUID, achievementType entity.AchievementType) (*entity.Achievement, error) {
	achievement := entity.NewAchievement(userID, achievementType, s.now())

	created, err := s.achievementRepo.Create(ctx, achievement)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to store achievement", err)
	}
	if !created {
		return nil, nil
	}

	metrics.RecordAchievementUnlocked(string(achievementType))
	s.log.WithFields(logrus.Fields{
		"user_id":          userID,
		"achievement_type": achievementType,
	}).Info("achievement unlocked")

	event := entity.NewEvent(entity.EventAchievementUnlocked, userID)
	event.AchievementType = achievementType
	event.Title = achievement.Title
	s.events.emit(ctx, event)

	return achievement, nil
}

func (s *achievementService) ListAchievements(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	achievements, err := s.achievementRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to list achievements", err)
	}
	return achievements, nil
}
