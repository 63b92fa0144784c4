package service

import (
	"context"
	"errors"
	"math"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
)

// loadUser fetches the acting user, mapping a missing row to ErrUserNotFound
func loadUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load user", err)
	}
	return user, nil
}

// roundOneDecimal rounds half away from zero to one decimal place
func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
