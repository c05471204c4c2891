package matching

import (
	"fmt"
	"math"
	"strings"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
)

// Aggregation weights. Role fit and skills dominate; the six weights
// sum to 1.0.
const (
	weightRole       = 0.30
	weightSkills     = 0.25
	weightExperience = 0.15
	weightLocation   = 0.15
	weightSalary     = 0.10
	weightIndustry   = 0.05
)

// Calculate scores one listing against one profile. Titles outside the
// design discipline are hard-gated to zero rather than weighted down.
func Calculate(j job.Listing, p profile.Profile) job.MatchScore {
	if !IsDesignRole(j.Role) {
		return job.MatchScore{Reasons: []string{"Not a design role"}}
	}

	skillScore, matched, _ := scoreSkills(j, p.ExtractedSkills)
	roleScore := scoreRole(j, p.PreferredRoles)
	expScore := scoreExperience(j, p.ExperienceLevel, p.YearsOfExperience)
	locScore, _ := scoreLocation(j, p.Location, p.WorkStyle)
	salaryScore := scoreSalary(j, p.SalaryExpectation)
	industryScore := scoreIndustry(j, p.PreferredIndustries)

	overall := int(math.Round(
		float64(roleScore)*weightRole +
			float64(skillScore)*weightSkills +
			float64(expScore)*weightExperience +
			float64(locScore)*weightLocation +
			float64(salaryScore)*weightSalary +
			float64(industryScore)*weightIndustry,
	))

	reasons := buildReasons(j, roleScore, skillScore, locScore, expScore, salaryScore, industryScore, matched)

	return job.MatchScore{
		Overall:    overall,
		Skills:     skillScore,
		Experience: expScore,
		Location:   locScore,
		Salary:     salaryScore,
		Culture:    industryScore,
		Reasons:    reasons,
	}
}

func buildReasons(j job.Listing, roleScore, skillScore, locScore, expScore, salaryScore, industryScore int, matched []string) []string {
	reasons := make([]string, 0, 6)

	if roleScore >= 80 {
		reasons = append(reasons, "Perfect role match")
	} else if roleScore >= 60 {
		reasons = append(reasons, "Good role alignment")
	}

	if skillScore >= 80 {
		top := matched
		if len(top) > 2 {
			top = top[:2]
		}
		reasons = append(reasons, fmt.Sprintf("Strong skills match (%s)", strings.Join(top, ", ")))
	} else if skillScore >= 50 {
		reasons = append(reasons, "Relevant skills")
	}

	if locScore >= 90 {
		if j.RemoteStatus == job.RemoteStatusRemote {
			reasons = append(reasons, "Fully remote")
		} else {
			reasons = append(reasons, "Great location match")
		}
	}

	if expScore >= 80 {
		reasons = append(reasons, "Experience level aligns")
	}
	if salaryScore >= 80 {
		reasons = append(reasons, "Salary meets expectations")
	}
	if industryScore >= 80 {
		reasons = append(reasons, "Preferred industry")
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Design role match")
	}
	return reasons
}
