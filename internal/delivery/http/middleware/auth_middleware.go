package middleware

import (
	"errors"
	"strings"

	"design-radar/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const sessionLocalsKey = "session"

// Session is the authenticated caller, stored in request locals by the
// auth guard and read back by handlers through SessionFrom.
type Session struct {
	UserID uuid.UUID
	Email  string
}

// SessionFrom returns the session placed by the auth guard. ok is false
// on routes that skipped it.
func SessionFrom(c fiber.Ctx) (Session, bool) {
	s, ok := c.Locals(sessionLocalsKey).(Session)
	return s, ok
}

type AuthMiddleware struct {
	tokens jwt.Service
}

func NewAuthMiddleware(tokens jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Middleware rejects requests without a valid access token. Refresh
// tokens parse against the fallback secret but never grant API access.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Missing bearer token", nil, nil)
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Session expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid access token", nil, err)
		}
		if claims.TokenType != jwt.TokenTypeAccess || m.tokens.IsRefreshToken(claims) || claims.UserID == uuid.Nil {
			return NewAppError(fiber.StatusUnauthorized, "Invalid access token", nil, nil)
		}

		c.Locals(sessionLocalsKey, Session{UserID: claims.UserID, Email: claims.Email})
		return c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
