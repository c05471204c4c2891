package usecase

import (
	"context"
	"errors"

	"design-radar/internal/domain/job"
	"design-radar/internal/matching"
	"design-radar/internal/repository"

	"github.com/google/uuid"
)

type MatchUsecase interface {
	CalculateMatch(ctx context.Context, userID uuid.UUID, jobID string) (job.MatchScore, error)
}

type Match struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	cache    Cache
}

func NewMatchUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, cache Cache) *Match {
	return &Match{jobs: jobs, profiles: profiles, cache: cache}
}

// CalculateMatch returns the score breakdown for one listing against
// the caller's profile. Results are memoized on content hash: the same
// (job, profile) pair always yields the same score, so a hit is safe.
func (u *Match) CalculateMatch(ctx context.Context, userID uuid.UUID, jobID string) (job.MatchScore, error) {
	if userID == uuid.Nil {
		return job.MatchScore{}, ErrUnauthorized
	}
	if jobID == "" {
		return job.MatchScore{}, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.MatchScore{}, ErrJobNotFound
		}
		return job.MatchScore{}, ErrInternal
	}

	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return job.MatchScore{}, ErrProfileNotFound
		}
		return job.MatchScore{}, ErrInternal
	}

	cacheKey := ""
	if u.cache != nil {
		cacheKey = MatchCacheKey(j, p)
		var cached job.MatchScore
		hit, cerr := u.cache.GetJSON(ctx, cacheKey, &cached)
		if cerr == nil && hit {
			return cached, nil
		}
	}

	score := matching.Calculate(j, p)

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, score, 0)
	}
	return score, nil
}
