package entity

import (
	"time"

	"github.com/google/uuid"
)

// AchievementType identifies a one-time unlock
type AchievementType string

const (
	AchievementFirstActivity  AchievementType = "first_activity"
	AchievementTenActivities  AchievementType = "ten_activities"
	AchievementFirstFiveStars AchievementType = "first_five_stars"
	AchievementFiveFiveStars  AchievementType = "five_five_stars"
	AchievementDailyMoodWeek  AchievementType = "daily_mood_week"
	AchievementPartnerLinked  AchievementType = "partner_linked"
)

// AchievementTypes lists every type in evaluation order
var AchievementTypes = []AchievementType{
	AchievementFirstActivity,
	AchievementTenActivities,
	AchievementFirstFiveStars,
	AchievementFiveFiveStars,
	AchievementDailyMoodWeek,
	AchievementPartnerLinked,
}

// AchievementInfo holds the display texts of an achievement type
type AchievementInfo struct {
	Title       string
	Description string
}

// AchievementCatalog holds the display texts for every type
var AchievementCatalog = map[AchievementType]AchievementInfo{
	AchievementFirstActivity: {
		Title:       "First Activity!",
		Description: "You logged your first act of love",
	},
	AchievementTenActivities: {
		Title:       "Dedicated Lover!",
		Description: "You logged 10 acts of love",
	},
	AchievementFirstFiveStars: {
		Title:       "⭐ First Golden Star",
		Description: "You received your first 5 star rating",
	},
	AchievementFiveFiveStars: {
		Title:       "⭐ Master of Love",
		Description: "You earned 5 ratings of 5 stars",
	},
	AchievementDailyMoodWeek: {
		Title:       "Mood Week",
		Description: "You logged your mood every day for a week",
	},
	AchievementPartnerLinked: {
		Title:       "💕 United Hearts",
		Description: "You linked with your partner",
	},
}

// Achievement is a one-time unlock recorded for a user
type Achievement struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Type        AchievementType `json:"achievement_type" db:"achievement_type"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	UnlockedAt  time.Time       `json:"unlocked_at" db:"unlocked_at"`
}

// NewAchievement builds an achievement of the given type with its catalog texts
func NewAchievement(userID uuid.UUID, achievementType AchievementType, now time.Time) *Achievement {
	info := AchievementCatalog[achievementType]
	return &Achievement{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        achievementType,
		Title:       info.Title,
		Description: info.Description,
		UnlockedAt:  now,
	}
}
