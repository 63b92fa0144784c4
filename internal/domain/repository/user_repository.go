package repository

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines methods for user data access
type UserRepository interface {
	// Create creates a new user, ErrDuplicate if email or partner code is taken
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByPartnerCode retrieves the user who owns a partner code
	GetByPartnerCode(ctx context.Context, code string) (*entity.User, error)

	// EmailExists checks if email is already taken
	EmailExists(ctx context.Context, email string) (bool, error)

	// PartnerCodeExists checks if a partner code is already issued
	PartnerCodeExists(ctx context.Context, code string) (bool, error)

	// ListLinkedIDs returns the ids of every user with a partner
	ListLinkedIDs(ctx context.Context) ([]uuid.UUID, error)
}
