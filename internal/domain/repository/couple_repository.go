package repository

import (
	"context"

	"loveacts-service/internal/domain/entity"
)

// CoupleRepository defines methods for partner links
type CoupleRepository interface {
	// Link atomically stores the couple and sets partner_id on both users.
	// Both users must still be unlinked, otherwise ErrAlreadyLinked (User1)
	// or ErrPartnerTaken (User2) is returned and nothing is written.
	Link(ctx context.Context, couple *entity.Couple) error
}
