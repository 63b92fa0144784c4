package service

import (
	"context"
	"errors"
	"time"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/pkg/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type moodService struct {
	userRepo repository.UserRepository
	moodRepo repository.MoodRepository
	events   eventEmitter
	now      func() time.Time
}

// NewMoodService creates the mood service
func NewMoodService(
	userRepo repository.UserRepository,
	moodRepo repository.MoodRepository,
	publisher service.EventPublisher,
	log logrus.FieldLogger,
) service.MoodService {
	return &moodService{
		userRepo: userRepo,
		moodRepo: moodRepo,
		events:   newEventEmitter(publisher, log),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *moodService) LogMood(ctx context.Context, userID uuid.UUID, emoji entity.MoodEmoji, note *string) (*entity.Mood, bool, error) {
	if emoji.Level() == 0 {
		return nil, false, apperr.Validation(apperr.CodeInvalidInput, "unknown mood")
	}
	if err := validation.ValidateOptionalText("note", note); err != nil {
		return nil, false, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}

	mood := &entity.Mood{
		ID:     uuid.New(),
		UserID: userID,
		Emoji:  emoji,
		Note:   note,
		Date:   s.now(),
	}

	created, err := s.moodRepo.Upsert(ctx, mood)
	if err != nil {
		return nil, false, apperr.Internal(apperr.CodeInternal, "failed to save mood", err)
	}

	event := entity.NewEvent(entity.EventMoodLogged, userID)
	event.MoodEmoji = emoji
	s.events.emit(ctx, event)

	return mood, created, nil
}

func (s *moodService) MyMoods(ctx context.Context, userID uuid.UUID) ([]*entity.Mood, error) {
	moods, err := s.moodRepo.ListRecent(ctx, userID, entity.MyMoodsLimit)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to list moods", err)
	}
	return moods, nil
}

func (s *moodService) PartnerMoodToday(ctx context.Context, userID uuid.UUID) (*entity.Mood, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasPartner() {
		return nil, apperr.ErrNoPartner
	}

	start, end := entity.DayBounds(s.now())
	mood, err := s.moodRepo.GetInRange(ctx, *user.PartnerID, start, end)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load partner mood", err)
	}

	return mood, nil
}
