package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockUsersSQL  = `FROM users\s+WHERE id = ANY\(\$1\)\s+ORDER BY id\s+FOR UPDATE`
	setPartnerSQL = `UPDATE users SET partner_id = \$2 WHERE id = \$1 AND partner_id IS NULL`
	insertCouple  = `INSERT INTO couples`
)

func testCouple() *entity.Couple {
	return &entity.Couple{
		ID:        uuid.New(),
		Code:      "ABC123",
		User1ID:   uuid.New(),
		User2ID:   uuid.New(),
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func lockedRows(couple *entity.Couple, initiatorLinked, respondentLinked bool) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "linked"}).
		AddRow(couple.User1ID, initiatorLinked).
		AddRow(couple.User2ID, respondentLinked)
}

func TestCoupleLinkCommits(t *testing.T) {
	mock := newMockPool(t)
	couple := testCouple()

	mock.ExpectBegin()
	mock.ExpectQuery(lockUsersSQL).
		WithArgs([]uuid.UUID{couple.User1ID, couple.User2ID}).
		WillReturnRows(lockedRows(couple, false, false))
	mock.ExpectExec(setPartnerSQL).
		WithArgs(couple.User1ID, couple.User2ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(setPartnerSQL).
		WithArgs(couple.User2ID, couple.User1ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertCouple).
		WithArgs(couple.ID, couple.Code, couple.User1ID, couple.User2ID, couple.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := NewCoupleRepository(mock).Link(context.Background(), couple)
	require.NoError(t, err)
}

func TestCoupleLinkRechecksLockedRows(t *testing.T) {
	tests := []struct {
		name             string
		initiatorLinked  bool
		respondentLinked bool
		wantErr          error
	}{
		{"initiator already linked", true, false, repository.ErrAlreadyLinked},
		{"respondent taken", false, true, repository.ErrPartnerTaken},
		{"both linked reports initiator first", true, true, repository.ErrAlreadyLinked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			couple := testCouple()

			mock.ExpectBegin()
			mock.ExpectQuery(lockUsersSQL).
				WithArgs([]uuid.UUID{couple.User1ID, couple.User2ID}).
				WillReturnRows(lockedRows(couple, tt.initiatorLinked, tt.respondentLinked))
			mock.ExpectRollback()

			err := NewCoupleRepository(mock).Link(context.Background(), couple)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCoupleLinkMissingUser(t *testing.T) {
	mock := newMockPool(t)
	couple := testCouple()

	mock.ExpectBegin()
	mock.ExpectQuery(lockUsersSQL).
		WithArgs([]uuid.UUID{couple.User1ID, couple.User2ID}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "linked"}).AddRow(couple.User1ID, false))
	mock.ExpectRollback()

	err := NewCoupleRepository(mock).Link(context.Background(), couple)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCoupleLinkRollsBackOnInsertFailure(t *testing.T) {
	mock := newMockPool(t)
	couple := testCouple()
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(lockUsersSQL).
		WithArgs([]uuid.UUID{couple.User1ID, couple.User2ID}).
		WillReturnRows(lockedRows(couple, false, false))
	mock.ExpectExec(setPartnerSQL).
		WithArgs(couple.User1ID, couple.User2ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(setPartnerSQL).
		WithArgs(couple.User2ID, couple.User1ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(insertCouple).
		WithArgs(couple.ID, couple.Code, couple.User1ID, couple.User2ID, couple.CreatedAt).
		WillReturnError(boom)
	mock.ExpectRollback()

	err := NewCoupleRepository(mock).Link(context.Background(), couple)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to create couple")
}
