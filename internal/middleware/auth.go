package middleware

import (
	"context"
	"net/http"
	"strings"

	"loveacts-service/internal/domain/apperr"
	"loveacts-service/internal/domain/service"

	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware validates bearer tokens against the auth service
type AuthMiddleware struct {
	authService service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Auth validates JWT token from Authorization header
func (m *AuthMiddleware) Auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, apperr.CodeInvalidToken, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			writeError(w, http.StatusUnauthorized, apperr.CodeInvalidToken, "invalid authorization header format")
			return
		}

		identity, err := m.authService.Authenticate(r.Context(), parts[1])
		if err != nil {
			status := http.StatusUnauthorized
			code := apperr.CodeInvalidToken
			if apperr.KindOf(err) == apperr.KindInternal {
				status = http.StatusInternalServerError
				code = apperr.CodeInternal
			}
			writeError(w, status, code, "could not validate credentials")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	}
}

// WithIdentity stores the authenticated caller in ctx
func WithIdentity(ctx context.Context, identity *service.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity extracts the authenticated caller from request context
func GetIdentity(r *http.Request) *service.Identity {
	identity, ok := r.Context().Value(identityKey).(*service.Identity)
	if !ok {
		return nil
	}
	return identity
}

// GetUserID extracts user ID from request context, uuid.Nil if unauthenticated
func GetUserID(r *http.Request) uuid.UUID {
	if identity := GetIdentity(r); identity != nil {
		return identity.UserID
	}
	return uuid.Nil
}
