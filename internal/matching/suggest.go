package matching

import (
	"strings"

	"design-radar/internal/domain/profile"
)

type Suggestions struct {
	Roles     []string `json:"roles"`
	Skills    []string `json:"skills"`
	Locations []string `json:"locations"`
}

var defaultSuggestedRoles = []string{"Product Designer", "UX Designer", "UI Designer"}

// Suggest proposes filter starting points from the profile: the user's
// preferred roles (or sensible defaults), their strongest extracted
// skills, and locations with their own city first when recognized.
func Suggest(p profile.Profile) Suggestions {
	roles := p.PreferredRoles
	if len(roles) == 0 {
		roles = defaultSuggestedRoles
	}

	skills := p.ExtractedSkills
	if len(skills) > 10 {
		skills = skills[:10]
	}

	locations := []string{"Australia", "New Zealand", "Singapore", "Remote"}
	loc := strings.ToLower(p.Location)
	if strings.Contains(loc, "sydney") {
		locations = append([]string{"Sydney"}, locations...)
	} else if strings.Contains(loc, "melbourne") {
		locations = append([]string{"Melbourne"}, locations...)
	}

	return Suggestions{Roles: roles, Skills: skills, Locations: locations}
}
