package service

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardService aggregates per-user statistics
type DashboardService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.DashboardStats, error)
}
