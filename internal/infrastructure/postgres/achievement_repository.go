package postgres

import (
	"context"
	"fmt"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
)

type achievementRepository struct {
	pool DB
}

// NewAchievementRepository creates a new PostgreSQL achievement repository
func NewAchievementRepository(pool DB) repository.AchievementRepository {
	return &achievementRepository{pool: pool}
}

func (r *achievementRepository) Create(ctx context.Context, achievement *entity.Achievement) (bool, error) {
	query := `
		INSERT INTO achievements (id, user_id, type, title, description, unlocked_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, type) DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query,
		achievement.ID,
		achievement.UserID,
		achievement.Type,
		achievement.Title,
		achievement.Description,
		achievement.UnlockedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create achievement: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Achievement, error) {
	query := `
		SELECT id, user_id, type, title, description, unlocked_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY unlocked_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	achievements := make([]*entity.Achievement, 0)
	for rows.Next() {
		var a entity.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &a.Title, &a.Description, &a.UnlockedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievements: %w", err)
	}

	return achievements, nil
}

func (r *achievementRepository) ListTypesByUser(ctx context.Context, userID uuid.UUID) (map[entity.AchievementType]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT type FROM achievements WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievement types: %w", err)
	}
	defer rows.Close()

	types := make(map[entity.AchievementType]bool)
	for rows.Next() {
		var t entity.AchievementType
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan achievement type: %w", err)
		}
		types[t] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating achievement types: %w", err)
	}

	return types, nil
}

func (r *achievementRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM achievements WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return count, nil
}
