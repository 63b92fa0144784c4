package postgres

import (
	"context"
	"fmt"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
)

type coupleRepository struct {
	pool DB
}

// NewCoupleRepository creates a new PostgreSQL couple repository
func NewCoupleRepository(pool DB) repository.CoupleRepository {
	return &coupleRepository{pool: pool}
}

// Link stores the couple and sets partner_id on both users in one transaction.
// Both rows are locked in id order so two crossing links cannot deadlock.
func (r *coupleRepository) Link(ctx context.Context, couple *entity.Couple) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT id, partner_id IS NOT NULL
		FROM users
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE
	`, []uuid.UUID{couple.User1ID, couple.User2ID})
	if err != nil {
		return fmt.Errorf("failed to lock users: %w", err)
	}

	linked := make(map[uuid.UUID]bool, 2)
	for rows.Next() {
		var id uuid.UUID
		var hasPartner bool
		if err := rows.Scan(&id, &hasPartner); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan user: %w", err)
		}
		linked[id] = hasPartner
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to lock users: %w", err)
	}

	initiatorLinked, ok := linked[couple.User1ID]
	if !ok {
		return repository.ErrNotFound
	}
	respondentLinked, ok := linked[couple.User2ID]
	if !ok {
		return repository.ErrNotFound
	}
	if initiatorLinked {
		return repository.ErrAlreadyLinked
	}
	if respondentLinked {
		return repository.ErrPartnerTaken
	}

	setPartner := `UPDATE users SET partner_id = $2 WHERE id = $1 AND partner_id IS NULL`
	if _, err := tx.Exec(ctx, setPartner, couple.User1ID, couple.User2ID); err != nil {
		return fmt.Errorf("failed to set initiator partner: %w", err)
	}
	if _, err := tx.Exec(ctx, setPartner, couple.User2ID, couple.User1ID); err != nil {
		return fmt.Errorf("failed to set respondent partner: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO couples (id, code, user1_id, user2_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, couple.ID, couple.Code, couple.User1ID, couple.User2ID, couple.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create couple: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit link: %w", err)
	}

	return nil
}
