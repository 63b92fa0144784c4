package service

import (
	"context"
	"errors"
	"time"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
	"loveacts-service/internal/domain/service"
	"loveacts-service/pkg/hash"
	pkgjwt "loveacts-service/pkg/jwt"
	"loveacts-service/pkg/partnercode"
	"loveacts-service/pkg/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// partnerCodeAttempts bounds the retries on a partner code collision
const partnerCodeAttempts = 5

// authService implements service.AuthService
type authService struct {
	userRepo     repository.UserRepository
	sessions     repository.SessionStore
	hasher       *hash.Hasher
	tokenManager *pkgjwt.TokenManager
	generateCode func() (string, error)
	log          logrus.FieldLogger
	now          func() time.Time
}

// NewAuthService creates a new auth service. sessions may be nil, in which
// case tokens stay valid until they expire.
func NewAuthService(
	userRepo repository.UserRepository,
	sessions repository.SessionStore,
	hasher *hash.Hasher,
	tokenManager *pkgjwt.TokenManager,
	log logrus.FieldLogger,
) service.AuthService {
	return &authService{
		userRepo:     userRepo,
		sessions:     sessions,
		hasher:       hasher,
		tokenManager: tokenManager,
		generateCode: partnercode.Generate,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Register registers a new user and creates session
func (s *authService) Register(ctx context.Context, userCreate *entity.UserCreate) (*service.AuthResult, error) {
	if err := validation.ValidateName(userCreate.Name); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}
	if err := validation.ValidateEmail(userCreate.Email); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}
	if err := validation.ValidatePassword(userCreate.Password); err != nil {
		return nil, apperr.Validation(apperr.CodeInvalidInput, err.Error())
	}

	email := validation.NormalizeEmail(userCreate.Email)

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to check email", err)
	}
	if exists {
		return nil, apperr.ErrEmailTaken
	}

	passwordHash, err := s.hasher.HashPassword(userCreate.Password)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to hash password", err)
	}

	code, err := s.uniquePartnerCode(ctx)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         userCreate.Name,
		Email:        email,
		PasswordHash: passwordHash,
		PartnerCode:  code,
		CreatedAt:    s.now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race on the email or, far less likely, on the code
			if taken, _ := s.userRepo.EmailExists(ctx, email); taken {
				return nil, apperr.ErrEmailTaken
			}
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to create user", err)
	}

	s.log.WithField("user_id", user.ID).Info("user registered")

	return s.openSession(ctx, user)
}

func (s *authService) uniquePartnerCode(ctx context.Context) (string, error) {
	for i := 0; i < partnerCodeAttempts; i++ {
		code, err := s.generateCode()
		if err != nil {
			return "", apperr.Internal(apperr.CodeInternal, "failed to generate partner code", err)
		}

		taken, err := s.userRepo.PartnerCodeExists(ctx, code)
		if err != nil {
			return "", apperr.Internal(apperr.CodeInternal, "failed to check partner code", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", apperr.Internal(apperr.CodeInternal, "could not allocate a partner code", nil)
}

// Login authenticates user and creates session
func (s *authService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load user", err)
	}

	if err := s.hasher.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, hash.ErrMismatch) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to verify password", err)
	}

	return s.openSession(ctx, user)
}

func (s *authService) openSession(ctx context.Context, user *entity.User) (*service.AuthResult, error) {
	sessionID := uuid.New()

	accessToken, expiresAt, err := s.tokenManager.GenerateAccessToken(user.ID, sessionID)
	if err != nil {
		return nil, apperr.Internal(apperr.CodeInternal, "failed to issue token", err)
	}

	if s.sessions != nil {
		now := s.now()
		session := &entity.Session{
			ID:             sessionID,
			UserID:         user.ID,
			ExpiresAt:      expiresAt,
			CreatedAt:      now,
			LastActivityAt: now,
		}
		if err := s.sessions.Set(ctx, session); err != nil {
			return nil, apperr.Internal(apperr.CodeInternal, "failed to store session", err)
		}
	}

	return &service.AuthResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		SessionID:   sessionID,
	}, nil
}

// Authenticate validates an access token and, with a session store, that its session is still open
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*service.Identity, error) {
	claims, err := s.tokenManager.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, apperr.ErrInvalidToken
	}

	if s.sessions != nil {
		exists, err := s.sessions.Exists(ctx, claims.SessionID)
		if err != nil {
			return nil, apperr.Internal(apperr.CodeInternal, "failed to check session", err)
		}
		if !exists {
			return nil, apperr.ErrInvalidToken
		}
	}

	return &service.Identity{UserID: userID, SessionID: claims.SessionID}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, apperr.Internal(apperr.CodeInternal, "failed to load user", err)
	}
	return user, nil
}

// Logout invalidates user session
func (s *authService) Logout(ctx context.Context, identity *service.Identity) error {
	if s.sessions == nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, identity.SessionID); err != nil {
		return apperr.Internal(apperr.CodeInternal, "failed to delete session", err)
	}

	s.log.WithField("user_id", identity.UserID).Info("user logged out")
	return nil
}
