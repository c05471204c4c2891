package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
	"design-radar/internal/search"
)

// Cache keys are content hashes, never object identities: jobs and
// profiles may be reconstructed between calls, so equal content must
// produce equal keys.

type feedCacheKeyInput struct {
	Profile profile.Profile `json:"profile"`
	Filters search.Filters  `json:"filters"`
	Sort    search.SortMode `json:"sort"`
}

func FeedCacheKey(p profile.Profile, f search.Filters, sort search.SortMode) string {
	return "feed:" + contentHash(feedCacheKeyInput{Profile: p, Filters: f, Sort: sort})
}

type matchCacheKeyInput struct {
	Job     job.Listing     `json:"job"`
	Profile profile.Profile `json:"profile"`
}

func MatchCacheKey(j job.Listing, p profile.Profile) string {
	return "match:" + contentHash(matchCacheKeyInput{Job: j, Profile: p})
}

func RefreshLockKey(batchID string) string {
	return "jobs:refresh:lock:" + batchID
}

func contentHash(v any) string {
	b, _ := json.Marshal(v)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
