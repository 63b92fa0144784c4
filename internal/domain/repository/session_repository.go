package repository

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionStore keeps issued sessions so tokens can be revoked before expiry
type SessionStore interface {
	// Set stores a session until its expiry
	Set(ctx context.Context, session *entity.Session) error

	// Exists checks if a session is still active
	Exists(ctx context.Context, sessionID uuid.UUID) (bool, error)

	// Delete revokes a session
	Delete(ctx context.Context, sessionID uuid.UUID) error

	// DeleteByUserID revokes every session of a user
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
