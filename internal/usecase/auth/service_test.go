package auth

import (
	"context"
	"errors"
	"testing"

	"design-radar/internal/domain/user"
	"design-radar/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byID      map[uuid.UUID]user.User
	byEmail   map[string]user.User
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (m *mockUserRepo) CreateUser(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

type stubTokenService struct {
	failAccess bool
}

func (s *stubTokenService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	if s.failAccess {
		return "", errors.New("signing failed")
	}
	return "access:" + userID.String(), nil
}

func (s *stubTokenService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return "refresh:" + userID.String(), nil
}

func (s *stubTokenService) ValidateToken(string) (jwt.Claims, error) {
	return jwt.Claims{}, jwt.ErrTokenInvalid
}

func (s *stubTokenService) IsRefreshToken(jwt.Claims) bool { return false }

func TestRegister_ValidatesInput(t *testing.T) {
	svc := NewService(newMockUserRepo(), &stubTokenService{})

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"blank email", RegisterInput{Email: "   ", Password: "longenough"}},
		{"short password", RegisterInput{Email: "dana@example.com", Password: "short"}},
		{"whitespace password", RegisterInput{Email: "dana@example.com", Password: "        "}},
	}
	for _, tc := range cases {
		if _, _, err := svc.Register(context.Background(), tc.in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestRegister_CreatesUserAndIssuesTokens(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, &stubTokenService{})

	u, pair, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Dana@Example.COM ",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "dana@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked on the returned user")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	stored, ok := repo.byEmail["dana@example.com"]
	if !ok {
		t.Fatal("user not persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse battery")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, &stubTokenService{})

	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "DANA@example.com", Password: "longenough"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_CreateRaceReportsConflict(t *testing.T) {
	repo := &raceUserRepo{mockUserRepo: newMockUserRepo()}
	svc := NewService(repo, &stubTokenService{})

	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "longenough"}); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

// raceUserRepo fails the insert but reports the email as taken
// afterwards, mimicking a concurrent registration hitting the unique
// index first.
type raceUserRepo struct {
	*mockUserRepo
}

func (r *raceUserRepo) CreateUser(context.Context, user.User) error {
	return errors.New("unique violation")
}

func (r *raceUserRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return true, nil
}

func TestLogin(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo, &stubTokenService{})

	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "longenough"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, pair, err := svc.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "longenough"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatal("password hash leaked on login")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}

	if _, _, err := svc.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "wrong password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "longenough"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegister_TokenFailure(t *testing.T) {
	svc := NewService(newMockUserRepo(), &stubTokenService{failAccess: true})

	if _, _, err := svc.Register(context.Background(), RegisterInput{Email: "dana@example.com", Password: "longenough"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
