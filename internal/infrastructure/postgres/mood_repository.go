package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const moodColumns = `id, user_id, mood_emoji, note, date`

type moodRepository struct {
	pool DB
}

// NewMoodRepository creates a new PostgreSQL mood repository
func NewMoodRepository(pool DB) repository.MoodRepository {
	return &moodRepository{pool: pool}
}

// Upsert relies on the (user_id, mood_day) unique index; xmax = 0 only for freshly inserted rows
func (r *moodRepository) Upsert(ctx context.Context, mood *entity.Mood) (bool, error) {
	query := `
		INSERT INTO moods (id, user_id, mood_emoji, note, date, mood_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, mood_day) DO UPDATE
		SET mood_emoji = EXCLUDED.mood_emoji, note = EXCLUDED.note, date = EXCLUDED.date
		RETURNING id, (xmax = 0)
	`

	day, _ := entity.DayBounds(mood.Date)

	var created bool
	err := r.pool.QueryRow(ctx, query,
		mood.ID,
		mood.UserID,
		mood.Emoji,
		mood.Note,
		mood.Date,
		day,
	).Scan(&mood.ID, &created)

	if err != nil {
		return false, fmt.Errorf("failed to upsert mood: %w", err)
	}

	return created, nil
}

func (r *moodRepository) GetInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*entity.Mood, error) {
	query := `
		SELECT ` + moodColumns + `
		FROM moods
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC
		LIMIT 1
	`
	return r.getOne(ctx, query, userID, from, to)
}

func (r *moodRepository) GetLatest(ctx context.Context, userID uuid.UUID) (*entity.Mood, error) {
	query := `SELECT ` + moodColumns + ` FROM moods WHERE user_id = $1 ORDER BY date DESC LIMIT 1`
	return r.getOne(ctx, query, userID)
}

func (r *moodRepository) getOne(ctx context.Context, query string, args ...any) (*entity.Mood, error) {
	mood, err := scanMood(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mood: %w", err)
	}
	return mood, nil
}

func (r *moodRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Mood, error) {
	if limit <= 0 {
		limit = entity.MyMoodsLimit
	}

	query := `SELECT ` + moodColumns + ` FROM moods WHERE user_id = $1 ORDER BY date DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	defer rows.Close()

	moods := make([]*entity.Mood, 0)
	for rows.Next() {
		mood, err := scanMood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		moods = append(moods, mood)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating moods: %w", err)
	}

	return moods, nil
}

func scanMood(row pgx.Row) (*entity.Mood, error) {
	var mood entity.Mood
	if err := row.Scan(&mood.ID, &mood.UserID, &mood.Emoji, &mood.Note, &mood.Date); err != nil {
		return nil, err
	}
	mood.Date = mood.Date.UTC()
	return &mood, nil
}
