package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MoodEmoji represents one of the five mood levels
type MoodEmoji string

const (
	MoodVerySad   MoodEmoji = "😢"
	MoodSad       MoodEmoji = "😔"
	MoodNeutral   MoodEmoji = "😐"
	MoodHappy     MoodEmoji = "😊"
	MoodVeryHappy MoodEmoji = "🥰"
)

// MyMoodsLimit is how many mood entries a user gets back from their history
const MyMoodsLimit = 30

var moodNames = map[string]MoodEmoji{
	"very_sad":   MoodVerySad,
	"sad":        MoodSad,
	"neutral":    MoodNeutral,
	"happy":      MoodHappy,
	"very_happy": MoodVeryHappy,
}

// ParseMoodEmoji accepts the emoji itself or its level name
func ParseMoodEmoji(s string) (MoodEmoji, error) {
	value := strings.TrimSpace(s)

	switch m := MoodEmoji(value); m {
	case MoodVerySad, MoodSad, MoodNeutral, MoodHappy, MoodVeryHappy:
		return m, nil
	}

	if m, ok := moodNames[strings.ToLower(value)]; ok {
		return m, nil
	}

	return "", fmt.Errorf("unknown mood %q", s)
}

// Level returns the mood on a 1 (very sad) to 5 (very happy) scale
func (m MoodEmoji) Level() int {
	switch m {
	case MoodVerySad:
		return 1
	case MoodSad:
		return 2
	case MoodNeutral:
		return 3
	case MoodHappy:
		return 4
	case MoodVeryHappy:
		return 5
	default:
		return 0
	}
}

// Mood is a user's daily mood entry. Date is the time of the last submission.
type Mood struct {
	ID     uuid.UUID `json:"id" db:"id"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`
	Emoji  MoodEmoji `json:"mood_emoji" db:"mood_emoji"`
	Note   *string   `json:"note" db:"note"`
	Date   time.Time `json:"date" db:"date"`
}

// DayBounds returns the half-open UTC calendar day [start, end) containing t
func DayBounds(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
