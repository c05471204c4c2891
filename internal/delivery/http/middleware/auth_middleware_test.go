package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"design-radar/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type stubTokens struct {
	claims jwt.Claims
	err    error
}

func (s *stubTokens) GenerateAccessToken(uuid.UUID, string) (string, error) { return "", nil }
func (s *stubTokens) GenerateRefreshToken(uuid.UUID) (string, error)        { return "", nil }
func (s *stubTokens) ValidateToken(string) (jwt.Claims, error)              { return s.claims, s.err }
func (s *stubTokens) IsRefreshToken(c jwt.Claims) bool {
	return c.TokenType == jwt.TokenTypeRefresh
}

func authApp(tokens jwt.Service) *fiber.App {
	app := fiber.New()
	app.Use(NewErrorMiddleware(log.New(io.Discard, "", 0)).Middleware())
	app.Use(NewAuthMiddleware(tokens).Middleware())
	app.Get("/whoami", func(c fiber.Ctx) error {
		sess, ok := SessionFrom(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"user_id": sess.UserID.String(), "email": sess.Email})
	})
	return app
}

func TestAuthGuard_RejectsMissingOrMalformedHeader(t *testing.T) {
	app := authApp(&stubTokens{})

	headers := []string{"", "abc", "Token abc", "Bearer ", "Bearer"}
	for _, h := range headers {
		req := httptest.NewRequest("GET", "/whoami", nil)
		if h != "" {
			req.Header.Set(fiber.HeaderAuthorization, h)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", h, resp.StatusCode)
		}
	}
}

func TestAuthGuard_RejectsExpiredToken(t *testing.T) {
	app := authApp(&stubTokens{err: jwt.ErrTokenExpired})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer stale")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthGuard_RejectsRefreshToken(t *testing.T) {
	app := authApp(&stubTokens{claims: jwt.Claims{
		UserID:    uuid.New(),
		TokenType: jwt.TokenTypeRefresh,
	}})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer refresh-as-access")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthGuard_StoresSession(t *testing.T) {
	userID := uuid.New()
	app := authApp(&stubTokens{claims: jwt.Claims{
		UserID:    userID,
		Email:     "dana@example.com",
		TokenType: jwt.TokenTypeAccess,
	}})

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer good")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.UserID != userID.String() || body.Email != "dana@example.com" {
		t.Fatalf("session not propagated: %+v", body)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"  Bearer abc  ", "abc", true},
		{"Bearer  abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"abc", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		token, ok := bearerToken(tc.header)
		if ok != tc.ok || token != tc.token {
			t.Fatalf("header %q: got (%q,%v) want (%q,%v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}
