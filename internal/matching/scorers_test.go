package matching

import (
	"reflect"
	"testing"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
)

func TestScoreSkills_NoExtractableSkillsIsNeutral(t *testing.T) {
	j := job.Listing{Role: "Product Designer", DescriptionSummary: "great team, great snacks"}
	score, matched, missing := scoreSkills(j, []string{"Figma"})
	if score != neutralSkillScore {
		t.Fatalf("expected %d, got %d", neutralSkillScore, score)
	}
	if matched != nil || missing != nil {
		t.Fatalf("expected nil skill lists, got %v / %v", matched, missing)
	}
}

func TestScoreSkills_CoverageRatio(t *testing.T) {
	j := job.Listing{Role: "Product Designer", DescriptionSummary: "must know Figma and css"}
	score, matched, missing := scoreSkills(j, []string{"Figma"})
	if score != 50 {
		t.Fatalf("expected 50, got %d", score)
	}
	if !reflect.DeepEqual(matched, []string{"Figma"}) {
		t.Fatalf("unexpected matched %v", matched)
	}
	if !reflect.DeepEqual(missing, []string{"Css"}) {
		t.Fatalf("unexpected missing %v", missing)
	}
}

func TestOverlapSkills_BothDirections(t *testing.T) {
	matched, missing := overlapSkills(
		[]string{"Design Systems", "Css"},
		[]string{"systems", "Tailwind Css"},
	)
	if !reflect.DeepEqual(matched, []string{"Design Systems", "Css"}) {
		t.Fatalf("unexpected matched %v", matched)
	}
	if len(missing) != 0 {
		t.Fatalf("unexpected missing %v", missing)
	}
}

func TestScoreRole(t *testing.T) {
	cases := []struct {
		name  string
		role  string
		prefs []string
		want  int
	}{
		{"no preferences is neutral", "Product Designer", nil, neutralPrefScore},
		{"exact match", "Product Designer", []string{"product designer"}, 100},
		{"containment", "Senior Product Designer", []string{"Product Designer"}, 90},
		{"shared significant word", "Motion Designer", []string{"Brand Designer"}, 30},
		{"no overlap floors at 30", "Product Designer", []string{"Architect"}, 30},
	}

	for _, c := range cases {
		j := job.Listing{Role: c.role}
		if got := scoreRole(j, c.prefs); got != c.want {
			t.Fatalf("%s: scoreRole = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestScoreExperience_AlignedLevels(t *testing.T) {
	j := job.Listing{Role: "Senior Product Designer", DescriptionSummary: "5+ years required"}
	if got := scoreExperience(j, LevelSenior, 5); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreExperience_OverDemandingJobPenalized(t *testing.T) {
	j := job.Listing{Role: "Product Designer", DescriptionSummary: "10+ years required"}
	// Job detects as lead (ordinal 4); mid user (ordinal 2) loses 50,
	// then 20 more because 10 years is far beyond the user's 2.
	if got := scoreExperience(j, LevelMid, 2); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestScoreLocation_RemoteJob(t *testing.T) {
	j := job.Listing{Role: "Product Designer", Location: "Remote", RemoteStatus: job.RemoteStatusRemote}

	if score, _ := scoreLocation(j, "Sydney", profile.WorkStyleRemote); score != 100 {
		t.Fatalf("remote preference: expected 100, got %d", score)
	}
	if score, _ := scoreLocation(j, "Sydney", profile.WorkStyleFlexible); score != 100 {
		t.Fatalf("flexible preference: expected 100, got %d", score)
	}
	if score, _ := scoreLocation(j, "Sydney", profile.WorkStyleOnsite); score != 85 {
		t.Fatalf("onsite preference: expected 85, got %d", score)
	}
}

func TestScoreLocation_CityAndCountryTiers(t *testing.T) {
	j := job.Listing{Role: "Product Designer", Location: "Sydney, Australia", RemoteStatus: job.RemoteStatusOnSite}

	if score, _ := scoreLocation(j, "Sydney", profile.WorkStyleOnsite); score != 100 {
		t.Fatalf("same city: expected 100, got %d", score)
	}
	if score, _ := scoreLocation(j, "Somewhere in Australia", profile.WorkStyleOnsite); score != 90 {
		t.Fatalf("same country: expected 90, got %d", score)
	}
	if score, _ := scoreLocation(j, "Tokyo, Japan", profile.WorkStyleOnsite); score != 20 {
		t.Fatalf("onsite mismatch: expected 20, got %d", score)
	}
	if score, _ := scoreLocation(j, "Tokyo, Japan", profile.WorkStyleRemote); score != 40 {
		t.Fatalf("remote preference, onsite job elsewhere: expected 40, got %d", score)
	}
}

func TestScoreLocation_HybridPreference(t *testing.T) {
	hybrid := job.Listing{Role: "Product Designer", Location: "Singapore", RemoteStatus: job.RemoteStatusHybrid}
	if score, _ := scoreLocation(hybrid, "Tokyo, Japan", profile.WorkStyleHybrid); score != 75 {
		t.Fatalf("hybrid on hybrid: expected 75, got %d", score)
	}

	onsite := job.Listing{Role: "Product Designer", Location: "Singapore", RemoteStatus: job.RemoteStatusOnSite}
	if score, _ := scoreLocation(onsite, "Tokyo, Japan", profile.WorkStyleHybrid); score != 50 {
		t.Fatalf("hybrid on onsite: expected 50, got %d", score)
	}
}

func TestScoreLocation_PriorityFromLexicon(t *testing.T) {
	j := job.Listing{Role: "Product Designer", Location: "Sydney, Australia", RemoteStatus: job.RemoteStatusOnSite}
	if _, priority := scoreLocation(j, "Sydney", profile.WorkStyleOnsite); priority != 10 {
		t.Fatalf("expected priority 10, got %d", priority)
	}
}

func TestScoreSalary(t *testing.T) {
	want := func(n int) *int { return &n }

	cases := []struct {
		name        string
		salaryRange string
		expectation *int
		wantScore   int
	}{
		{"no expectation is neutral", "$100,000", nil, neutralPrefScore},
		{"undisclosed is neutral", "Not disclosed", want(100000), neutralPrefScore},
		{"unparseable is neutral", "Competitive", want(100000), neutralPrefScore},
		{"meets expectation", "$90,000 - $120,000", want(80000), 100},
		{"within 80 percent", "$90,000 - $120,000", want(100000), 80},
		{"within 60 percent", "$90,000 - $120,000", want(140000), 50},
		{"far below", "$90,000 - $120,000", want(200000), 30},
	}

	for _, c := range cases {
		j := job.Listing{Role: "Product Designer", SalaryRange: c.salaryRange}
		if got := scoreSalary(j, c.expectation); got != c.wantScore {
			t.Fatalf("%s: scoreSalary = %d, want %d", c.name, got, c.wantScore)
		}
	}
}

func TestScoreIndustry(t *testing.T) {
	j := job.Listing{Role: "Product Designer", Industry: "FinTech"}

	if got := scoreIndustry(j, nil); got != neutralPrefScore {
		t.Fatalf("no preferences: expected %d, got %d", neutralPrefScore, got)
	}
	if got := scoreIndustry(j, []string{"fintech"}); got != 100 {
		t.Fatalf("preferred industry: expected 100, got %d", got)
	}
	if got := scoreIndustry(j, []string{"Healthcare"}); got != 60 {
		t.Fatalf("other industry: expected 60, got %d", got)
	}
}
