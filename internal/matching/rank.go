package matching

import (
	"fmt"
	"sort"
	"strings"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
)

// RankJobs scores every listing against the profile, exposes the
// matched/missing skill lists alongside the score, attaches a one-line
// recommendation, drops non-design listings, and orders the rest by
// overall score descending. Ties keep their input order.
func RankJobs(jobs []job.Listing, p profile.Profile) []job.Matched {
	out := make([]job.Matched, 0, len(jobs))

	for _, j := range jobs {
		score := Calculate(j, p)
		if score.Overall == 0 {
			continue
		}

		jobSkills := ExtractSkills(jobText(j))
		matched, missing := overlapSkills(jobSkills, p.ExtractedSkills)

		out = append(out, job.Matched{
			Listing:        j,
			MatchScore:     score,
			MatchedSkills:  matched,
			MissingSkills:  missing,
			Recommendation: recommendation(j, p, score, len(matched)),
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].MatchScore.Overall > out[k].MatchScore.Overall
	})
	return out
}

// recommendation turns the overall score into a qualitative sentence,
// optionally extended with a skills count and a remote-preference note.
func recommendation(j job.Listing, p profile.Profile, score job.MatchScore, matchedCount int) string {
	parts := make([]string, 0, 3)

	switch {
	case score.Overall >= 85:
		parts = append(parts, "Excellent match for your profile!")
	case score.Overall >= 70:
		parts = append(parts, "Strong match with your experience.")
	case score.Overall >= 55:
		parts = append(parts, "Good potential match with some transferable skills.")
	default:
		parts = append(parts, "Review if this aligns with your career goals.")
	}

	if score.Skills >= 70 && matchedCount > 0 {
		parts = append(parts, fmt.Sprintf("You have %d matching skills.", matchedCount))
	}

	if j.RemoteStatus == job.RemoteStatusRemote && p.WorkStyle == profile.WorkStyleRemote {
		parts = append(parts, "Fully remote position matches your preference.")
	}

	return strings.Join(parts, " ")
}
