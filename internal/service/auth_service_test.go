package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/pkg/partnercode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesTokenAndPartnerCode(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	res, err := f.auth.Register(ctx, &entity.UserCreate{Name: "Ana", Email: "Ana@Example.com", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", res.User.Email)
	assert.True(t, partnercode.Valid(res.User.PartnerCode))
	assert.False(t, res.User.HasPartner())
	assert.NotEmpty(t, res.AccessToken)

	identity, err := f.auth.Authenticate(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, identity.UserID)
	assert.Equal(t, res.SessionID, identity.SessionID)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input entity.UserCreate
	}{
		{"missing name", entity.UserCreate{Email: "a@example.com", Password: "secret123"}},
		{"bad email", entity.UserCreate{Name: "A", Email: "nope", Password: "secret123"}},
		{"short password", entity.UserCreate{Name: "A", Email: "a@example.com", Password: "123"}},
		{"password over bcrypt limit", entity.UserCreate{Name: "A", Email: "a@example.com", Password: strings.Repeat("a", 100)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Register(ctx, &tt.input)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t, nil)
	f.register(t, "ana")

	_, err := f.auth.Register(context.Background(), &entity.UserCreate{Name: "Other", Email: "ANA@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestRegisterRetriesPartnerCodeCollision(t *testing.T) {
	f := newFixture(t, nil)
	existing := f.register(t, "ana")

	auth := f.auth.(*authService)
	codes := []string{existing.PartnerCode, existing.PartnerCode, "ZZZZZ9"}
	auth.generateCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	res, err := auth.Register(context.Background(), &entity.UserCreate{Name: "Ben", Email: "ben@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "ZZZZZ9", res.User.PartnerCode)
}

func TestRegisterGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newFixture(t, nil)
	existing := f.register(t, "ana")

	auth := f.auth.(*authService)
	calls := 0
	auth.generateCode = func() (string, error) {
		calls++
		return existing.PartnerCode, nil
	}

	_, err := auth.Register(context.Background(), &entity.UserCreate{Name: "Ben", Email: "ben@example.com", Password: "secret123"})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.Equal(t, partnerCodeAttempts, calls)
}

func TestRegisterCodeGeneratorFailure(t *testing.T) {
	f := newFixture(t, nil)
	auth := f.auth.(*authService)
	auth.generateCode = func() (string, error) { return "", errors.New("entropy exhausted") }

	_, err := auth.Register(context.Background(), &entity.UserCreate{Name: "Ben", Email: "ben@example.com", Password: "secret123"})
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	user := f.register(t, "ana")

	res, err := f.auth.Login(ctx, " ANA@example.com ", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	_, err = f.auth.Login(ctx, "ana@example.com", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	f.register(t, "ana")

	res, err := f.auth.Login(ctx, "ana@example.com", "secret123")
	require.NoError(t, err)

	identity, err := f.auth.Authenticate(ctx, res.AccessToken)
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, identity))

	_, err = f.auth.Authenticate(ctx, res.AccessToken)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestAuthenticateRejectsGarbage(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.auth.Authenticate(context.Background(), "garbage")
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestMe(t *testing.T) {
	f := newFixture(t, nil)
	a, b := f.couple(t)

	me, err := f.auth.Me(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, me.IsPartnerOf(b.ID))

	resp := me.ToResponse()
	assert.True(t, resp.HasPartner)
	assert.Equal(t, a.PartnerCode, resp.PartnerCode)
}
