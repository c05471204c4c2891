package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"

	"github.com/google/uuid"
)

func TestCalculateMatch_UnknownJob(t *testing.T) {
	userID := uuid.New()
	uc := NewMatchUsecase(
		&mockJobRepo{byID: map[string]job.Listing{}},
		&mockProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}},
		nil,
	)

	_, err := uc.CalculateMatch(context.Background(), userID, "missing")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestCalculateMatch_MissingProfile(t *testing.T) {
	j := feedListings()[0]
	uc := NewMatchUsecase(
		&mockJobRepo{byID: map[string]job.Listing{j.ID: j}},
		&mockProfileRepo{},
		nil,
	)

	_, err := uc.CalculateMatch(context.Background(), uuid.New(), j.ID)
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestCalculateMatch_ReturnsBreakdown(t *testing.T) {
	userID := uuid.New()
	j := feedListings()[0]
	uc := NewMatchUsecase(
		&mockJobRepo{byID: map[string]job.Listing{j.ID: j}},
		&mockProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}},
		nil,
	)

	score, err := uc.CalculateMatch(context.Background(), userID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if score.Overall <= 0 || score.Overall > 100 {
		t.Fatalf("overall out of range: %d", score.Overall)
	}
	if len(score.Reasons) == 0 {
		t.Fatalf("expected reasons")
	}
}

func TestCalculateMatch_MemoizedOnContentHash(t *testing.T) {
	userID := uuid.New()
	j := feedListings()[0]
	cache := newMockCache()
	repo := &mockJobRepo{byID: map[string]job.Listing{j.ID: j}}
	uc := NewMatchUsecase(
		repo,
		&mockProfileRepo{profiles: map[uuid.UUID]profile.Profile{userID: completeProfile(userID)}},
		cache,
	)

	first, err := uc.CalculateMatch(context.Background(), userID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := uc.CalculateMatch(context.Background(), userID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("memoized score differs: %+v vs %+v", first, second)
	}
	if cache.sets != 1 {
		t.Fatalf("cache hit still wrote: sets=%d", cache.sets)
	}
}
