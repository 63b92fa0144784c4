package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/pkg/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type activityService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	achievements service.AchievementService
	events       eventEmitter
	log          logrus.FieldLogger
	now          func() time.Time
	shuffle      func(n int, swap func(i, j int))
}

// NewActivityService creates the activity service
func NewActivityService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	achievements service.AchievementService,
	publisher service.EventPublisher,
	log logrus.FieldLogger,
) service.ActivityService {
	return &activityService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		achievements: achievements,
		events:       newEventEmitter(publisher, log),
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
		shuffle:      rand.Shuffle,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, giverID uuid.UUID, activityCreate *entity.ActivityCreate) (*entity.Activity, error) {
	if err := validation.ValidateTitle(activityCreate.Title); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}
	if err := validation.ValidateText("description", activityCreate.Description, validation.MaxTextLength); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}
	if _, err := entity.ParseCategory(string(activityCreate.Category)); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}

	giver, err := loadUser(ctx, s.userRepo, giverID)
	if err != nil {
		return nil, err
	}
	if !giver.HasPartner() {
		return nil, apperr.ErrNeedPartner
	}
	if !giver.IsPartnerOf(activityCreate.ReceiverID) {
		return nil, apperr.ErrWrongReceiver
	}

	activity := &entity.Activity{
		ID:          uuid.New(),
		Title:       activityCreate.Title,
		Description: activityCreate.Description,
		Category:    activityCreate.Category,
		GiverID:     giver.ID,
		ReceiverID:  activityCreate.ReceiverID,
		CreatedAt:   s.now(),
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to create activity", err)
	}

	s.evaluate(ctx, giver.ID)

	event := entity.NewEvent(entity.EventActivityCreated, giver.ID)
	event.PartnerID = activity.ReceiverID.String()
	event.ActivityID = activity.ID.String()
	event.Title = activity.Title
	s.events.emit(ctx, event)

	return activity, nil
}

func (s *activityService) RateActivity(ctx context.Context, activityID, raterID uuid.UUID, rating int, comment *string) error {
	if !entity.ValidRating(rating) {
		return apperr.ErrInvalidRating
	}
	if err := validation.ValidateOptionalText("comment", comment); err != nil {
		return apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}

	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.ErrActivityNotFound
		}
		return apperr.Internal(apperr.CodeInternal, "failed to load activity", err)
	}
	if activity.ReceiverID != raterID {
		return apperr.ErrNotReceiver
	}
	if activity.IsRated() {
		return apperr.ErrAlreadyRated
	}

	if err := s.activityRepo.Rate(ctx, activityID, rating, comment, s.now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyRated):
			return apperr.ErrAlreadyRated
		case errors.Is(err, repository.ErrNotFound):
			return apperr.ErrActivityNotFound
		default:
			return apperr.Internal(apperr.CodeInternal, "failed to rate activity", err)
		}
	}

	s.evaluate(ctx, activity.GiverID)

	event := entity.NewEvent(entity.EventActivityRated, activity.GiverID)
	event.PartnerID = raterID.String()
	event.ActivityID = activity.ID.String()
	event.Title = activity.Title
	event.Rating = rating
	s.events.emit(ctx, event)

	return nil
}

// evaluate runs the achievement engine after a committed write. A failure is
// logged only; the periodic sweep retries it.
func (s *activityService) evaluate(ctx context.Context, userID uuid.UUID) {
	if _, err := s.achievements.Evaluate(ctx, userID); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("failed to evaluate achievements")
	}
}

func (s *activityService) ListGiven(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	activities, err := s.activityRepo.ListByGiver(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to list activities", err)
	}
	return activities, nil
}

func (s *activityService) ListReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	activities, err := s.activityRepo.ListByReceiver(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to list activities", err)
	}
	return activities, nil
}

func (s *activityService) ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	activities, err := s.activityRepo.ListPendingByReceiver(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to list pending activities", err)
	}
	return activities, nil
}

func (s *activityService) SpecialMemories(ctx context.Context, userID uuid.UUID) ([]*entity.Activity, error) {
	activities, err := s.activityRepo.ListWithRatingInvolving(ctx, userID, entity.MaxRating)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to list special memories", err)
	}

	s.shuffle(len(activities), func(i, j int) {
		activities[i], activities[j] = activities[j], activities[i]
	})
	if len(activities) > service.SpecialMemoriesLimit {
		activities = activities[:service.SpecialMemoriesLimit]
	}

	return activities, nil
}
