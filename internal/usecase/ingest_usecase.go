package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"design-radar/internal/domain/job"
	"design-radar/internal/repository"
)

type jobDataInvalidator interface {
	InvalidateJobData(ctx context.Context) error
}

type IngestUsecase interface {
	RefreshJobs(ctx context.Context, batchID string, listings []job.Listing) (int, error)
}

type Ingest struct {
	jobs        repository.JobRepository
	cache       Cache
	invalidator jobDataInvalidator
	logger      *log.Logger
}

func NewIngestUsecase(jobs repository.JobRepository, cache Cache, invalidator jobDataInvalidator, logger *log.Logger) *Ingest {
	return &Ingest{jobs: jobs, cache: cache, invalidator: invalidator, logger: logger}
}

// RefreshJobs persists a job batch delivered by the external fetch
// collaborator and drops every cached view derived from the old
// collection. A short SetNX lock absorbs duplicate webhook deliveries.
func (u *Ingest) RefreshJobs(ctx context.Context, batchID string, listings []job.Listing) (int, error) {
	batchID = strings.TrimSpace(batchID)
	if batchID == "" || len(listings) == 0 {
		return 0, ErrInvalidInput
	}

	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, RefreshLockKey(batchID), "1", 60*time.Second)
		if err == nil && !ok {
			if u.logger != nil {
				u.logger.Printf("[Ingest] Duplicate batch skipped | batch=%s", batchID)
			}
			return 0, nil
		}
	}

	written, err := u.jobs.UpsertBatch(ctx, listings)
	if err != nil {
		return 0, ErrInternal
	}

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateJobData(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Ingest] Cache invalidation error | batch=%s err=%v", batchID, err)
		}
	}

	if u.logger != nil {
		u.logger.Printf("[Ingest] Batch stored | batch=%s jobs=%d", batchID, written)
	}
	return written, nil
}
