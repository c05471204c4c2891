package matching

import (
	"regexp"
	"strconv"
	"strings"

	"design-radar/internal/domain/profile"
)

// Level is the coarse seniority scale shared with user profiles.
type Level = profile.ExperienceLevel

const (
	LevelEntry     = profile.LevelEntry
	LevelMid       = profile.LevelMid
	LevelSenior    = profile.LevelSenior
	LevelLead      = profile.LevelLead
	LevelExecutive = profile.LevelExecutive
)

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

// DetectExperience infers a seniority level and years-of-experience from
// free text. When several year figures appear the largest wins; when no
// level cue matches, years alone decide the level.
func DetectExperience(text string) (Level, int) {
	t := strings.ToLower(text)

	years := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(t, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years {
			years = n
		}
	}

	for _, entry := range experienceIndicators {
		for _, ind := range entry.indicators {
			if strings.Contains(t, ind) {
				return entry.level, years
			}
		}
	}

	switch {
	case years >= 10:
		return LevelExecutive, years
	case years >= 8:
		return LevelLead, years
	case years >= 5:
		return LevelSenior, years
	case years >= 2:
		return LevelMid, years
	default:
		return LevelEntry, years
	}
}

var levelOrdinals = map[Level]int{
	LevelEntry:     1,
	LevelMid:       2,
	LevelSenior:    3,
	LevelLead:      4,
	LevelExecutive: 5,
}

func levelOrdinal(l Level) int {
	if v, ok := levelOrdinals[l]; ok {
		return v
	}
	return 2
}
