package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"design-radar/internal/domain/job"
)

type mockInvalidator struct {
	calls int
	err   error
}

func (m *mockInvalidator) InvalidateJobData(context.Context) error {
	m.calls++
	return m.err
}

func ingestListings() []job.Listing {
	posted := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	return []job.Listing{
		{
			ID:       "batch-1",
			Role:     "Product Designer",
			Company:  "Canva",
			Location: "Remote",
			PostedAt: posted,
		},
		{
			ID:       "batch-2",
			Role:     "UX Designer",
			Company:  "Atlassian",
			Location: "Sydney, Australia",
			PostedAt: posted,
		},
	}
}

func TestRefreshJobs_RejectsInvalidInput(t *testing.T) {
	uc := NewIngestUsecase(&mockJobRepo{}, newMockCache(), &mockInvalidator{}, nil)

	if _, err := uc.RefreshJobs(context.Background(), "  ", ingestListings()); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("blank batch: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.RefreshJobs(context.Background(), "batch-2024", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty listings: expected ErrInvalidInput, got %v", err)
	}
}

func TestRefreshJobs_StoresAndInvalidates(t *testing.T) {
	repo := &mockJobRepo{}
	inv := &mockInvalidator{}
	uc := NewIngestUsecase(repo, newMockCache(), inv, nil)

	written, err := uc.RefreshJobs(context.Background(), "batch-2024", ingestListings())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written, got %d", written)
	}
	if len(repo.upserted) != 1 || len(repo.upserted[0]) != 2 {
		t.Fatalf("unexpected upsert calls %+v", repo.upserted)
	}
	if inv.calls != 1 {
		t.Fatalf("expected one invalidation, got %d", inv.calls)
	}
}

func TestRefreshJobs_DuplicateBatchSkipped(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewIngestUsecase(repo, newMockCache(), &mockInvalidator{}, nil)

	if _, err := uc.RefreshJobs(context.Background(), "batch-2024", ingestListings()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	written, err := uc.RefreshJobs(context.Background(), "batch-2024", ingestListings())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if written != 0 {
		t.Fatalf("duplicate batch should write nothing, got %d", written)
	}
	if len(repo.upserted) != 1 {
		t.Fatalf("duplicate batch should not reach the repository, upserts=%d", len(repo.upserted))
	}
}

func TestRefreshJobs_InvalidationErrorIsNonFatal(t *testing.T) {
	repo := &mockJobRepo{}
	inv := &mockInvalidator{err: errors.New("redis down")}
	uc := NewIngestUsecase(repo, newMockCache(), inv, nil)

	written, err := uc.RefreshJobs(context.Background(), "batch-2024", ingestListings())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 written, got %d", written)
	}
}
