package service

import (
	"context"
	"time"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// AuthResult is returned by Register and Login
type AuthResult struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
	SessionID   uuid.UUID
}

// Identity is the authenticated caller extracted from a token
type Identity struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
}

// AuthService defines business logic for authentication
type AuthService interface {
	// Register creates a user with a fresh partner code and opens a session
	Register(ctx context.Context, userCreate *entity.UserCreate) (*AuthResult, error)

	// Login authenticates by email and password and opens a session
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Authenticate validates an access token
	Authenticate(ctx context.Context, accessToken string) (*Identity, error)

	// Me returns the caller's own user record
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Logout revokes the session behind the caller's token
	Logout(ctx context.Context, identity *Identity) error
}
