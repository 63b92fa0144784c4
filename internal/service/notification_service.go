package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/internal/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	activityReceivedTemplate = template.Must(template.New("activity_received").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #E91E63;">Your partner did something for you 💕</h2>
        <p>Hi {{.Receiver}},</p>
        <p>{{.Giver}} just logged an act of love for you: <strong>{{.Title}}</strong>.</p>
        <p>Open LoveActs to rate it.</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated email, please do not reply.</p>
    </div>
</body>
</html>
`))

	achievementUnlockedTemplate = template.Must(template.New("achievement_unlocked").Parse(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #FF9800;">Achievement unlocked!</h2>
        <p>Hi {{.Name}},</p>
        <p><strong>{{.Title}}</strong>: {{.Description}}</p>
        <hr style="border: none; border-top: 1px solid #eee; margin: 30px 0;">
        <p style="color: #999; font-size: 12px;">This is an automated email, please do not reply.</p>
    </div>
</body>
</html>
`))
)

type notificationService struct {
	userRepo repository.UserRepository
	mailer   service.Mailer
	log      logrus.FieldLogger
}

// NewNotificationService creates the service that e-mails users about events
func NewNotificationService(
	userRepo repository.UserRepository,
	mailer service.Mailer,
	log logrus.FieldLogger,
) service.NotificationService {
	return &notificationService{
		userRepo: userRepo,
		mailer:   mailer,
		log:      log,
	}
}

func (s *notificationService) HandleEvent(ctx context.Context, event *entity.Event) error {
	var err error
	switch event.EventType {
	case entity.EventActivityCreated:
		err = s.notifyActivityReceived(ctx, event)
	case entity.EventAchievementUnlocked:
		err = s.notifyAchievementUnlocked(ctx, event)
	default:
		return nil
	}

	metrics.RecordNotificationSent(string(event.EventType), err == nil)
	return err
}

func (s *notificationService) notifyActivityReceived(ctx context.Context, event *entity.Event) error {
	giver, err := s.userFromEvent(ctx, event.UserID)
	if err != nil {
		return err
	}
	receiver, err := s.userFromEvent(ctx, event.PartnerID)
	if err != nil {
		return err
	}

	body, err := render(activityReceivedTemplate, map[string]string{
		"Receiver": receiver.Name,
		"Giver":    giver.Name,
		"Title":    event.Title,
	})
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, receiver.Email, "Your partner did something for you", body); err != nil {
		return fmt.Errorf("failed to notify receiver: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":     receiver.ID,
		"activity_id": event.ActivityID,
	}).Info("activity notification sent")
	return nil
}

func (s *notificationService) notifyAchievementUnlocked(ctx context.Context, event *entity.Event) error {
	user, err := s.userFromEvent(ctx, event.UserID)
	if err != nil {
		return err
	}

	info, ok := entity.AchievementCatalog[event.AchievementType]
	if !ok {
		return fmt.Errorf("unknown achievement type %q", event.AchievementType)
	}

	body, err := render(achievementUnlockedTemplate, map[string]string{
		"Name":        user.Name,
		"Title":       info.Title,
		"Description": info.Description,
	})
	if err != nil {
		return err
	}

	if err := s.mailer.Send(ctx, user.Email, "Achievement unlocked: "+info.Title, body); err != nil {
		return fmt.Errorf("failed to notify achievement: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id":          user.ID,
		"achievement_type": event.AchievementType,
	}).Info("achievement notification sent")
	return nil
}

func (s *notificationService) userFromEvent(ctx context.Context, rawID string) (*entity.User, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", rawID, err)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("user %s not found", id)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s email: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
