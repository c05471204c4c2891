package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
	"design-radar/internal/matching"
	"design-radar/internal/repository"
	"design-radar/internal/search"

	"github.com/google/uuid"
)

type FeedParams struct {
	Filters search.Filters
	Sort    search.SortMode
}

type JobFeedUsecase interface {
	GetFeed(ctx context.Context, userID uuid.UUID, params FeedParams) ([]job.Matched, error)
}

type JobFeed struct {
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	cache    Cache
	logger   *log.Logger

	// seed feeds the shuffle for random sort; injectable for tests.
	seed func() int64
}

func NewJobFeedUsecase(jobs repository.JobRepository, profiles repository.ProfileRepository, cache Cache, logger *log.Logger) *JobFeed {
	return &JobFeed{
		jobs:     jobs,
		profiles: profiles,
		cache:    cache,
		logger:   logger,
		seed:     func() int64 { return time.Now().UnixNano() },
	}
}

// GetFeed assembles the user's job feed: design listings only, ranked
// against the profile when it is complete, then filtered and sorted.
// Deterministic sorts are cached on the content of (profile, filters,
// sort); random feeds are rebuilt every call.
func (u *JobFeed) GetFeed(ctx context.Context, userID uuid.UUID, params FeedParams) ([]job.Matched, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if !validSortMode(params.Sort) {
		return nil, ErrInvalidInput
	}

	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrInternal
	}

	cacheable := params.Sort != search.SortRandom
	cacheKey := ""
	if cacheable && u.cache != nil {
		cacheKey = FeedCacheKey(p, params.Filters, params.Sort)
		var cached []job.Matched
		hit, cerr := u.cache.GetJSON(ctx, cacheKey, &cached)
		if cerr == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Feed] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	listings, err := u.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	ranked := rankOrWrap(listings, p)
	filtered := search.Apply(ranked, params.Filters, time.Now().UTC())

	var rng *rand.Rand
	if params.Sort == search.SortRandom {
		rng = rand.New(rand.NewSource(u.seed()))
	}
	out := search.Sort(filtered, params.Sort, rng)

	if cacheable && u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if u.logger != nil {
			u.logger.Printf("[Feed] Cache SET: %s", cacheKey)
		}
	}
	return out, nil
}

// rankOrWrap ranks the design listings when the profile can support
// scoring; otherwise it keeps the design listings unscored so the feed
// still works before onboarding finishes.
func rankOrWrap(listings []job.Listing, p profile.Profile) []job.Matched {
	if p.Complete() {
		return matching.RankJobs(listings, p)
	}

	out := make([]job.Matched, 0, len(listings))
	for _, l := range listings {
		if !matching.IsDesignRole(l.Role) {
			continue
		}
		out = append(out, job.Matched{Listing: l})
	}
	return out
}

func validSortMode(m search.SortMode) bool {
	switch m {
	case search.SortRandom, search.SortDate, search.SortCompany, search.SortMatch:
		return true
	}
	return false
}
