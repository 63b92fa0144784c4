package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a domain event published to the event stream
type EventType string

const (
	EventPartnerLinked       EventType = "partner.linked"
	EventActivityCreated     EventType = "activity.created"
	EventActivityRated       EventType = "activity.rated"
	EventAchievementUnlocked EventType = "achievement.unlocked"
	EventMoodLogged          EventType = "mood.logged"
)

// Event is the payload of a domain event
type Event struct {
	EventID         string          `json:"event_id"`
	EventType       EventType       `json:"event_type"`
	OccurredAt      time.Time       `json:"occurred_at"`
	UserID          string          `json:"user_id"`
	PartnerID       string          `json:"partner_id,omitempty"`
	ActivityID      string          `json:"activity_id,omitempty"`
	Title           string          `json:"title,omitempty"`
	Rating          int             `json:"rating,omitempty"`
	AchievementType AchievementType `json:"achievement_type,omitempty"`
	MoodEmoji       MoodEmoji       `json:"mood_emoji,omitempty"`
}

// NewEvent creates an event of the given type for a user
func NewEvent(eventType EventType, userID uuid.UUID) *Event {
	return &Event{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		UserID:     userID.String(),
	}
}
