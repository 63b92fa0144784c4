package service

import (
	"context"

	"loveacts-service/internal/domain/entity"

	"github.com/google/uuid"
)

// CoupleService defines business logic for partner linking
type CoupleService interface {
	// LinkPartner links the initiator with the owner of code
	LinkPartner(ctx context.Context, initiatorID uuid.UUID, code string) (*entity.Couple, error)

	// GetPartner returns the partner's name and latest mood
	GetPartner(ctx context.Context, userID uuid.UUID) (*entity.PartnerInfo, error)
}
