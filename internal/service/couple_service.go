package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/pkg/partnercode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type coupleService struct {
	userRepo     repository.UserRepository
	coupleRepo   repository.CoupleRepository
	moodRepo     repository.MoodRepository
	achievements service.AchievementService
	events       eventEmitter
	log          logrus.FieldLogger
	now          func() time.Time
}

// NewCoupleService creates the partner linking service
func NewCoupleService(
	userRepo repository.UserRepository,
	coupleRepo repository.CoupleRepository,
	moodRepo repository.MoodRepository,
	achievements service.AchievementService,
	publisher service.EventPublisher,
	log logrus.FieldLogger,
) service.CoupleService {
	return &coupleService{
		userRepo:     userRepo,
		coupleRepo:   coupleRepo,
		moodRepo:     moodRepo,
		achievements: achievements,
		events:       newEventEmitter(publisher, log),
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *coupleService) LinkPartner(ctx context.Context, initiatorID uuid.UUID, code string) (*entity.Couple, error) {
	initiator, err := loadUser(ctx, s.userRepo, initiatorID)
	if err != nil {
		return nil, err
	}
	if initiator.HasPartner() {
		return nil, apperr.ErrAlreadyLinked
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if !partnercode.Valid(code) {
		return nil, apperr.ErrInvalidCode
	}

	respondent, err := s.userRepo.GetByPartnerCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrInvalidCode
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to look up partner code", err)
	}
	if respondent.ID == initiator.ID {
		return nil, apperr.ErrSelfLink
	}
	if respondent.HasPartner() {
		return nil, apperr.ErrPartnerTaken
	}

	couple := &entity.Couple{
		ID:        uuid.New(),
		Code:      respondent.PartnerCode,
		User1ID:   initiator.ID,
		User2ID:   respondent.ID,
		CreatedAt: s.now(),
	}

	if err := s.coupleRepo.Link(ctx, couple); err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyLinked):
			return nil, apperr.ErrAlreadyLinked
		case errors.Is(err, repository.ErrPartnerTaken):
			return nil, apperr.ErrPartnerTaken
		default:
			return nil, apperr.Internal(apperr.CodeInternal, "failed to link partners", err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"couple_id": couple.ID,
		"user1_id":  couple.User1ID,
		"user2_id":  couple.User2ID,
	}).Info("partners linked")

	for _, pair := range [][2]uuid.UUID{{couple.User1ID, couple.User2ID}, {couple.User2ID, couple.User1ID}} {
		// the link is committed; a failed unlock must not turn it into an error
		if _, err := s.achievements.Unlock(ctx, pair[0], entity.AchievementPartnerLinked); err != nil {
			s.log.WithError(err).WithField("user_id", pair[0]).Warn("failed to unlock partner achievement")
		}

		event := entity.NewEvent(entity.EventPartnerLinked, pair[0])
		event.PartnerID = pair[1].String()
		s.events.emit(ctx, event)
	}

	return couple, nil
}

func (s *coupleService) GetPartner(ctx context.Context, userID uuid.UUID) (*entity.PartnerInfo, error) {
	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasPartner() {
		return nil, apperr.ErrNoPartner
	}

	partner, err := s.userRepo.GetByID(ctx, *user.PartnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Internal(apperr.CodePartnerMissing, "partner not found", err)
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load partner", err)
	}

	info := &entity.PartnerInfo{
		ID:   partner.ID,
		Name: partner.Name,
	}

	mood, err := s.moodRepo.GetLatest(ctx, partner.ID)
	switch {
	case err == nil:
		info.LatestMood = &mood.Emoji
		info.MoodNote = mood.Note
		info.MoodDate = &mood.Date
	case !errors.Is(err, repository.ErrNotFound):
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load partner mood", err)
	}

	return info, nil
}
