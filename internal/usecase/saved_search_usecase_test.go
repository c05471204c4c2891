package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"design-radar/internal/repository"
	"design-radar/internal/search"

	"github.com/google/uuid"
)

type mockSavedSearchRepo struct {
	byUser map[uuid.UUID][]repository.SavedSearch
}

func newMockSavedSearchRepo() *mockSavedSearchRepo {
	return &mockSavedSearchRepo{byUser: map[uuid.UUID][]repository.SavedSearch{}}
}

func (m *mockSavedSearchRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]repository.SavedSearch, error) {
	return m.byUser[userID], nil
}

func (m *mockSavedSearchRepo) Create(_ context.Context, s repository.SavedSearch) error {
	m.byUser[s.UserID] = append(m.byUser[s.UserID], s)
	return nil
}

func (m *mockSavedSearchRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	items := m.byUser[userID]
	for i, s := range items {
		if s.ID == id {
			m.byUser[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return repository.ErrSavedSearchNotFound
}

func TestSavedSearchCreate_ValidatesName(t *testing.T) {
	uc := NewSavedSearchUsecase(newMockSavedSearchRepo())
	userID := uuid.New()

	if _, err := uc.Create(context.Background(), userID, SavedSearchInput{Name: "  "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}

	long := strings.Repeat("x", 101)
	if _, err := uc.Create(context.Background(), userID, SavedSearchInput{Name: long}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("long name: expected ErrInvalidInput, got %v", err)
	}
}

func TestSavedSearchCreate_DefaultsSortMode(t *testing.T) {
	repo := newMockSavedSearchRepo()
	uc := NewSavedSearchUsecase(repo)
	userID := uuid.New()

	created, err := uc.Create(context.Background(), userID, SavedSearchInput{
		Name:    "APAC remote",
		Filters: search.DefaultFilters(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.SortMode != search.SortRandom {
		t.Fatalf("expected random default, got %v", created.SortMode)
	}

	listed, err := uc.List(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "APAC remote" {
		t.Fatalf("unexpected list %+v", listed)
	}
}

func TestSavedSearchDelete(t *testing.T) {
	repo := newMockSavedSearchRepo()
	uc := NewSavedSearchUsecase(repo)
	userID := uuid.New()

	created, err := uc.Create(context.Background(), userID, SavedSearchInput{
		Name:    "Sydney onsite",
		Filters: search.DefaultFilters(),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), userID, created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.Delete(context.Background(), userID, created.ID); !errors.Is(err, ErrSavedSearchNotFound) {
		t.Fatalf("expected ErrSavedSearchNotFound, got %v", err)
	}
}
