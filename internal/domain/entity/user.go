package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered member of a couple
type User struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // Never expose in JSON
	PartnerCode  string     `json:"partner_code" db:"partner_code"`
	PartnerID    *uuid.UUID `json:"partner_id,omitempty" db:"partner_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// UserCreate represents data needed to register a new user
type UserCreate struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse represents user data for API responses (without sensitive data)
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	PartnerCode string     `json:"partner_code"`
	HasPartner  bool       `json:"has_partner"`
	PartnerID   *uuid.UUID `json:"partner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// HasPartner reports whether the user is linked to a partner
func (u *User) HasPartner() bool {
	return u.PartnerID != nil
}

// IsPartnerOf reports whether other is the user's linked partner
func (u *User) IsPartnerOf(other uuid.UUID) bool {
	return u.PartnerID != nil && *u.PartnerID == other
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PartnerCode: u.PartnerCode,
		HasPartner:  u.HasPartner(),
		PartnerID:   u.PartnerID,
		CreatedAt:   u.CreatedAt,
	}
}
