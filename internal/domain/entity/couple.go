package entity

import (
	"time"

	"github.com/google/uuid"
)

// Couple is the historical record of a successful partner link.
// User1ID is the initiator, User2ID the owner of the code.
type Couple struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	User1ID   uuid.UUID `json:"user1_id" db:"user1_id"`
	User2ID   uuid.UUID `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PartnerInfo is what a user sees about their partner
type PartnerInfo struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	LatestMood *MoodEmoji `json:"latest_mood"`
	MoodNote   *string    `json:"mood_note"`
	MoodDate   *time.Time `json:"mood_date"`
}
