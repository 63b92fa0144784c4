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

const activityColumns = `id, title, description, category, giver_id, receiver_id, rating, comment, created_at, rated_at`

type activityRepository struct {
	pool DB
}

// NewActivityRepository creates a new PostgreSQL activity repository
func NewActivityRepository(pool DB) repository.ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (
			id, title, description, category, giver_id, receiver_id, rating, comment, created_at, rated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	_, err := r.pool.Exec(ctx, query,
		activity.ID,
		activity.Title,
		activity.Description,
		activity.Category,
		activity.GiverID,
		activity.ReceiverID,
		activity.Rating,
		activity.Comment,
		activity.CreatedAt,
		activity.RatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create activity: %w", err)
	}

	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	activity, err := scanActivity(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return activity, nil
}

// Rate only touches an unrated row; zero affected rows means a lost race or a missing row
func (r *activityRepository) Rate(ctx context.Context, id uuid.UUID, rating int, comment *string, ratedAt time.Time) error {
	query := `
		UPDATE activities
		SET rating = $2, comment = $3, rated_at = $4
		WHERE id = $1 AND rating IS NULL
	`

	tag, err := r.pool.Exec(ctx, query, id, rating, comment, ratedAt)
	if err != nil {
		return fmt.Errorf("failed to rate activity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM activities WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check activity existence: %w", err)
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrAlreadyRated
	}

	return nil
}

func (r *activityRepository) ListByGiver(ctx context.Context, giverID uuid.UUID) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE giver_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, giverID)
}

func (r *activityRepository) ListByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE receiver_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, receiverID)
}

func (r *activityRepository) ListPendingByReceiver(ctx context.Context, receiverID uuid.UUID) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE receiver_id = $1 AND rating IS NULL
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, receiverID)
}

func (r *activityRepository) ListWithRatingInvolving(ctx context.Context, userID uuid.UUID, rating int) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE (giver_id = $1 OR receiver_id = $1) AND rating = $2
	`
	return r.list(ctx, query, userID, rating)
}

func (r *activityRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Activity, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := make([]*entity.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

func (r *activityRepository) CountByGiver(ctx context.Context, giverID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM activities WHERE giver_id = $1`, giverID)
}

func (r *activityRepository) CountByGiverWithRating(ctx context.Context, giverID uuid.UUID, rating int) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM activities WHERE giver_id = $1 AND rating = $2`, giverID, rating)
}

func (r *activityRepository) CountByReceiver(ctx context.Context, receiverID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM activities WHERE receiver_id = $1`, receiverID)
}

func (r *activityRepository) CountPendingByReceiver(ctx context.Context, receiverID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM activities WHERE receiver_id = $1 AND rating IS NULL`, receiverID)
}

func (r *activityRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

func (r *activityRepository) AverageRatingByGiver(ctx context.Context, giverID uuid.UUID) (float64, error) {
	return r.average(ctx, `SELECT COALESCE(AVG(rating), 0)::float8 FROM activities WHERE giver_id = $1 AND rating IS NOT NULL`, giverID)
}

func (r *activityRepository) AverageRatingByReceiver(ctx context.Context, receiverID uuid.UUID) (float64, error) {
	return r.average(ctx, `SELECT COALESCE(AVG(rating), 0)::float8 FROM activities WHERE receiver_id = $1 AND rating IS NOT NULL`, receiverID)
}

func (r *activityRepository) average(ctx context.Context, query string, userID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average ratings: %w", err)
	}
	return avg, nil
}

func (r *activityRepository) ListGiverIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT giver_id FROM activities`)
	if err != nil {
		return nil, fmt.Errorf("failed to list givers: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan giver: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating givers: %w", err)
	}

	return ids, nil
}

func scanActivity(row pgx.Row) (*entity.Activity, error) {
	var activity entity.Activity
	var rating *int16
	err := row.Scan(
		&activity.ID,
		&activity.Title,
		&activity.Description,
		&activity.Category,
		&activity.GiverID,
		&activity.ReceiverID,
		&rating,
		&activity.Comment,
		&activity.CreatedAt,
		&activity.RatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rating != nil {
		v := int(*rating)
		activity.Rating = &v
	}
	return &activity, nil
}
