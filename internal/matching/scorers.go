package matching

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
)

// Dimension scorers. Each is a total mapping (job, profile fields) ->
// score in [0,100]; missing optional data resolves to a documented
// neutral score rather than an error.

const (
	neutralSkillScore = 50
	neutralPrefScore  = 70
)

// jobText is the free text a listing exposes for extraction.
func jobText(j job.Listing) string {
	return j.Role + " " + j.DescriptionSummary
}

// overlapSkills partitions jobSkills into those matched by the user's
// skills (case-insensitive substring overlap in either direction) and
// those missing. Short skill names can overlap-match inside longer ones;
// accepted as a known imprecision of the heuristic.
func overlapSkills(jobSkills, userSkills []string) (matched, missing []string) {
	matched = make([]string, 0, len(jobSkills))
	missing = make([]string, 0, len(jobSkills))

	for _, js := range jobSkills {
		jsLower := strings.ToLower(js)
		hit := false
		for _, us := range userSkills {
			usLower := strings.ToLower(us)
			if strings.Contains(jsLower, usLower) || strings.Contains(usLower, jsLower) {
				hit = true
				break
			}
		}
		if hit {
			matched = append(matched, js)
		} else {
			missing = append(missing, js)
		}
	}
	return matched, missing
}

// scoreSkills rates how much of the listing's extractable skill set the
// user covers. A listing with no extractable skills scores a neutral 50.
func scoreSkills(j job.Listing, userSkills []string) (score int, matched, missing []string) {
	jobSkills := ExtractSkills(jobText(j))
	if len(jobSkills) == 0 {
		return neutralSkillScore, nil, nil
	}

	matched, missing = overlapSkills(jobSkills, userSkills)
	ratio := float64(len(matched)) / float64(len(jobSkills))
	score = roundScore(ratio * 100)
	if score > 100 {
		score = 100
	}
	return score, matched, missing
}

// scoreRole compares the title against the user's preferred roles. Exact
// equality is a perfect match; containment and shared significant words
// degrade from there. The floor of 30 reflects that the title already
// passed the domain check.
func scoreRole(j job.Listing, preferredRoles []string) int {
	if len(preferredRoles) == 0 {
		return neutralPrefScore
	}

	jobRole := strings.ToLower(j.Role)
	best := 0

	for _, preferred := range preferredRoles {
		pref := strings.ToLower(preferred)

		if jobRole == pref {
			return 100
		}
		if strings.Contains(jobRole, pref) || strings.Contains(pref, jobRole) {
			if best < 90 {
				best = 90
			}
		}

		common := commonSignificantWords(jobRole, pref)
		if common > 0 {
			partial := common * 30
			if partial > 100 {
				partial = 100
			}
			if partial > best {
				best = partial
			}
		}
	}

	if best == 0 {
		return 30
	}
	return best
}

func commonSignificantWords(a, b string) int {
	bWords := make(map[string]struct{})
	for _, w := range strings.Fields(b) {
		bWords[w] = struct{}{}
	}

	n := 0
	for _, w := range strings.Fields(a) {
		if len(w) <= 2 {
			continue
		}
		if _, ok := bWords[w]; ok {
			n++
		}
	}
	return n
}

// scoreExperience measures seniority alignment on a 1-5 ordinal scale,
// with a leniency bonus for over-qualified users and a risk penalty when
// the listing demands substantially more years.
func scoreExperience(j job.Listing, userLevel Level, userYears int) int {
	jobLevel, jobYears := DetectExperience(jobText(j))

	diff := levelOrdinal(userLevel) - levelOrdinal(jobLevel)
	if diff < 0 {
		diff = -diff
	}
	score := 100 - diff*25
	if score < 0 {
		score = 0
	}

	if float64(userYears) >= float64(jobYears)*1.5 {
		score += 15
		if score > 100 {
			score = 100
		}
	}
	if float64(jobYears) > float64(userYears)*1.5 {
		score -= 20
		if score < 0 {
			score = 0
		}
	}

	return score
}

// scoreLocation rates geographic fit. The returned priority is the APAC
// relevance weight of the listing's location, an auxiliary signal only.
func scoreLocation(j job.Listing, userLocation string, workStyle profile.WorkStyle) (score, priority int) {
	jobLoc := strings.ToLower(j.Location)
	userLoc := strings.ToLower(userLocation)

	priority = 1
	for _, lp := range locationPriorities {
		if strings.Contains(jobLoc, lp.keyword) && lp.priority > priority {
			priority = lp.priority
		}
	}

	// Remote listings fit everyone; a stated remote or flexible
	// preference makes them perfect.
	if j.RemoteStatus == job.RemoteStatusRemote {
		if workStyle == profile.WorkStyleRemote || workStyle == profile.WorkStyleFlexible {
			return 100, priority
		}
		return 85, priority
	}

	if locationContains(jobLoc, userLoc) {
		return 100, priority
	}

	userCountry := containedCountry(userLoc)
	jobCountry := containedCountry(jobLoc)
	if userCountry != "" && userCountry == jobCountry {
		return 90, priority
	}

	if workStyle == profile.WorkStyleHybrid || workStyle == profile.WorkStyleFlexible {
		if j.RemoteStatus == job.RemoteStatusHybrid {
			return 75, priority
		}
		return 50, priority
	}

	if workStyle == profile.WorkStyleOnsite {
		return 20, priority
	}
	return 40, priority
}

func locationContains(jobLoc, userLoc string) bool {
	if strings.Contains(jobLoc, userLoc) {
		return true
	}
	for _, part := range strings.Split(userLoc, ",") {
		if strings.Contains(jobLoc, strings.TrimSpace(part)) {
			return true
		}
	}
	return false
}

func containedCountry(loc string) string {
	for _, c := range knownCountries {
		if strings.Contains(loc, c) {
			return c
		}
	}
	return ""
}

var salaryFigure = regexp.MustCompile(`\$?([\d,]+)`)

// scoreSalary compares the smallest figure in the salary range text to
// the user's expectation. Unset or unparseable salary data is neutral.
func scoreSalary(j job.Listing, expectation *int) int {
	if expectation == nil || j.SalaryRange == "" || j.SalaryRange == "Not disclosed" {
		return neutralPrefScore
	}

	minSalary := -1
	for _, m := range salaryFigure.FindAllStringSubmatch(j.SalaryRange, -1) {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if minSalary < 0 || n < minSalary {
			minSalary = n
		}
	}
	if minSalary < 0 {
		return neutralPrefScore
	}

	want := float64(*expectation)
	switch {
	case float64(minSalary) >= want:
		return 100
	case float64(minSalary) >= want*0.8:
		return 80
	case float64(minSalary) >= want*0.6:
		return 50
	default:
		return 30
	}
}

// scoreIndustry rewards listings in a preferred industry; no stated
// preference is neutral.
func scoreIndustry(j job.Listing, preferredIndustries []string) int {
	if len(preferredIndustries) == 0 {
		return neutralPrefScore
	}

	jobIndustry := strings.ToLower(j.Industry)
	for _, ind := range preferredIndustries {
		if strings.Contains(jobIndustry, strings.ToLower(ind)) {
			return 100
		}
	}
	return 60
}

func roundScore(v float64) int {
	return int(math.Round(v))
}
