package profile

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelExecutive ExperienceLevel = "executive"
)

type WorkStyle string

const (
	WorkStyleRemote   WorkStyle = "remote"
	WorkStyleHybrid   WorkStyle = "hybrid"
	WorkStyleOnsite   WorkStyle = "onsite"
	WorkStyleFlexible WorkStyle = "flexible"
)

// Profile is the searcher's identity and matching preferences. The matching
// core receives it read-only for a single scoring pass.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  string
	Email     string
	Phone     string
	Location  string

	ResumeText      string
	ExtractedSkills []string

	ExperienceLevel   ExperienceLevel
	YearsOfExperience int

	PreferredRoles      []string
	PreferredIndustries []string
	WorkStyle           WorkStyle
	SalaryExpectation   *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complete reports whether the profile carries enough signal to rank jobs
// against it. An incomplete profile leaves the feed unranked.
func (p Profile) Complete() bool {
	return p.ResumeText != "" && len(p.ExtractedSkills) > 0
}
