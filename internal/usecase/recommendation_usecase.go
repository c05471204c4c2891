package usecase

import (
	"context"
	"errors"

	"design-radar/internal/domain/job"
	"design-radar/internal/matching"
	"design-radar/internal/repository"

	"github.com/google/uuid"
)

const (
	recommendationMinScore = 60
	recommendationCap      = 50
)

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]job.Matched, error)
}

type Recommendation struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
}

func NewRecommendationUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository) *Recommendation {
	return &Recommendation{jobs: jobs, profiles: profiles}
}

// GetRecommendations returns the strongest matches for the user: ranked
// design listings scoring at least 60 overall, capped at 50 entries.
// Requires a complete profile, since the cut-off is score-based.
func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]job.Matched, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}
	if !p.Complete() {
		return nil, ErrProfileIncomplete
	}

	listings, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if len(listings) == 0 {
		return nil, ErrNoJobsFound
	}

	ranked := matching.RankJobs(listings, p)

	out := make([]job.Matched, 0, recommendationCap)
	for _, m := range ranked {
		if m.MatchScore.Overall < recommendationMinScore {
			continue
		}
		out = append(out, m)
		if len(out) == recommendationCap {
			break
		}
	}
	return out, nil
}
