package dto

import (
	"time"

	"design-radar/internal/domain/job"
)

// JobIngestItem mirrors the payload the job-data collaborator posts to the
// refresh webhook. Timestamps arrive as RFC 3339 strings.
type JobIngestItem struct {
	ID           string `json:"id"`
	Company      string `json:"company"`
	Role         string `json:"role"`
	RoleType     string `json:"role_type"`
	Location     string `json:"location"`
	RemoteStatus string `json:"remote_status"`
	SalaryRange  string `json:"salary_range"`
	SalaryMin    *int   `json:"salary_min"`
	SalaryMax    *int   `json:"salary_max"`
	URL          string `json:"url"`
	PostedAt     string `json:"posted_at"`
	ScrapedAt    string `json:"scraped_at"`
	Source       string `json:"source"`

	Skills             []string `json:"skills"`
	Industry           string   `json:"industry"`
	YearsExperience    string   `json:"years_experience"`
	DescriptionSummary string   `json:"description_summary"`
}

func (r JobIngestItem) ToListing() (job.Listing, error) {
	postedAt, err := time.Parse(time.RFC3339, r.PostedAt)
	if err != nil {
		return job.Listing{}, err
	}

	scrapedAt := postedAt
	if r.ScrapedAt != "" {
		scrapedAt, err = time.Parse(time.RFC3339, r.ScrapedAt)
		if err != nil {
			return job.Listing{}, err
		}
	}

	return job.Listing{
		ID:                 r.ID,
		Company:            r.Company,
		Role:               r.Role,
		RoleType:           r.RoleType,
		Location:           r.Location,
		RemoteStatus:       job.RemoteStatus(r.RemoteStatus),
		SalaryRange:        r.SalaryRange,
		SalaryMin:          r.SalaryMin,
		SalaryMax:          r.SalaryMax,
		URL:                r.URL,
		PostedAt:           postedAt,
		ScrapedAt:          scrapedAt,
		Source:             r.Source,
		Skills:             r.Skills,
		Industry:           r.Industry,
		YearsExperience:    r.YearsExperience,
		DescriptionSummary: r.DescriptionSummary,
	}, nil
}
