package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category represents the kind of act of love
type Category string

const (
	CategoryPhysical  Category = "physical"
	CategoryEmotional Category = "emotional"
	CategoryPractical Category = "practical"
	CategoryGeneral   Category = "general"
)

// Rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// categoryAliases maps the Spanish values sent by older mobile clients
var categoryAliases = map[string]Category{
	"físico":    CategoryPhysical,
	"fisico":    CategoryPhysical,
	"emocional": CategoryEmotional,
	"práctico":  CategoryPractical,
	"practico":  CategoryPractical,
}

// ParseCategory converts a wire value into a Category, rejecting unknown values
func ParseCategory(s string) (Category, error) {
	value := strings.ToLower(strings.TrimSpace(s))

	switch c := Category(value); c {
	case CategoryPhysical, CategoryEmotional, CategoryPractical, CategoryGeneral:
		return c, nil
	}

	if c, ok := categoryAliases[value]; ok {
		return c, nil
	}

	return "", fmt.Errorf("unknown category %q", s)
}

// Activity is an act of love logged by the giver for their partner
type Activity struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Category    Category   `json:"category" db:"category"`
	GiverID     uuid.UUID  `json:"giver_id" db:"giver_id"`
	ReceiverID  uuid.UUID  `json:"receiver_id" db:"receiver_id"`
	Rating      *int       `json:"rating" db:"rating"`
	Comment     *string    `json:"comment" db:"comment"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	RatedAt     *time.Time `json:"rated_at" db:"rated_at"`
}

// ActivityCreate represents data needed to log a new activity
type ActivityCreate struct {
	Title       string
	Description string
	Category    Category
	ReceiverID  uuid.UUID
}

// IsRated returns true once the receiver has rated the activity
func (a *Activity) IsRated() bool {
	return a.Rating != nil
}

// HasRating returns true if the activity carries exactly the given rating
func (a *Activity) HasRating(rating int) bool {
	return a.Rating != nil && *a.Rating == rating
}

// Involves returns true if the user is the giver or the receiver
func (a *Activity) Involves(userID uuid.UUID) bool {
	return a.GiverID == userID || a.ReceiverID == userID
}

// ValidRating checks the rating bounds
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
