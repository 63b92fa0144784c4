package postgres

import (
	"context"
	"testing"
	"time"

	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

const (
	rateSQL        = `UPDATE activities\s+SET rating = \$2, comment = \$3, rated_at = \$4\s+WHERE id = \$1 AND rating IS NULL`
	activityExists = `SELECT EXISTS\(SELECT 1 FROM activities WHERE id = \$1\)`
)

func TestActivityRate(t *testing.T) {
	comment := "lovely"
	ratedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		affected int64
		exists   bool
		wantErr  error
	}{
		{"unrated row is updated", 1, true, nil},
		{"rated row loses", 0, true, repository.ErrAlreadyRated},
		{"missing row", 0, false, repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			id := uuid.New()

			mock.ExpectExec(rateSQL).
				WithArgs(id, 5, &comment, ratedAt).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.affected))
			if tt.affected == 0 {
				mock.ExpectQuery(activityExists).
					WithArgs(id).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			}

			err := NewActivityRepository(mock).Rate(context.Background(), id, 5, &comment, ratedAt)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
