package job

import "time"

type RemoteStatus string

const (
	RemoteStatusRemote RemoteStatus = "Remote"
	RemoteStatusHybrid RemoteStatus = "Hybrid"
	RemoteStatusOnSite RemoteStatus = "On-site"
)

// Listing is a posted position as supplied by the job-data collaborator.
// Immutable once ingested; the matching core only reads it.
type Listing struct {
	ID           string
	Company      string
	Role         string
	RoleType     string
	Location     string
	RemoteStatus RemoteStatus
	SalaryRange  string
	SalaryMin    *int
	SalaryMax    *int
	URL          string
	PostedAt     time.Time
	ScrapedAt    time.Time
	Source       string

	// AI-extracted fields, optional.
	Skills             []string
	Industry           string
	YearsExperience    string
	DescriptionSummary string
}

// MatchScore is the 0-100 aggregate plus its dimension breakdown.
type MatchScore struct {
	Overall    int      `json:"overall"`
	Skills     int      `json:"skills"`
	Experience int      `json:"experience"`
	Location   int      `json:"location"`
	Salary     int      `json:"salary"`
	Culture    int      `json:"culture"`
	Reasons    []string `json:"reasons"`
}

// Matched is a Listing augmented with its score against one profile.
type Matched struct {
	Listing

	MatchScore     MatchScore
	MatchedSkills  []string
	MissingSkills  []string
	Recommendation string
}
