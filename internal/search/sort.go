package search

import (
	"math/rand"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"design-radar/internal/domain/job"
)

type SortMode string

const (
	SortRandom  SortMode = "random"
	SortDate    SortMode = "date"
	SortCompany SortMode = "company"
	SortMatch   SortMode = "match"
)

// Sort orders a fresh copy of jobs by the given mode. Every mode except
// random is deterministic and stable: equal keys keep input order.
// Random shuffles with the injected source so tests can seed it; rng is
// only consulted in that mode.
func Sort(jobs []job.Matched, mode SortMode, rng *rand.Rand) []job.Matched {
	out := make([]job.Matched, len(jobs))
	copy(out, jobs)

	switch mode {
	case SortRandom:
		if rng != nil {
			rng.Shuffle(len(out), func(i, j int) {
				out[i], out[j] = out[j], out[i]
			})
		}
	case SortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PostedAt.After(out[j].PostedAt)
		})
	case SortCompany:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Company, out[j].Company) < 0
		})
	case SortMatch:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].MatchScore.Overall > out[j].MatchScore.Overall
		})
	}

	return out
}
