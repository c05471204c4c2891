package dto

import (
	"time"

	"design-radar/internal/domain/job"
)

type JobResponse struct {
	ID           string    `json:"id"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	RoleType     string    `json:"role_type,omitempty"`
	Location     string    `json:"location"`
	RemoteStatus string    `json:"remote_status"`
	SalaryRange  string    `json:"salary_range"`
	SalaryMin    *int      `json:"salary_min,omitempty"`
	SalaryMax    *int      `json:"salary_max,omitempty"`
	URL          string    `json:"url"`
	PostedAt     time.Time `json:"posted_at"`
	Source       string    `json:"source"`

	Skills             []string `json:"skills,omitempty"`
	Industry           string   `json:"industry,omitempty"`
	YearsExperience    string   `json:"years_experience,omitempty"`
	DescriptionSummary string   `json:"description_summary,omitempty"`
}

type MatchedJobResponse struct {
	JobResponse

	MatchScore     *job.MatchScore `json:"match_score,omitempty"`
	MatchedSkills  []string        `json:"matched_skills,omitempty"`
	MissingSkills  []string        `json:"missing_skills,omitempty"`
	Recommendation string          `json:"recommendation,omitempty"`
}

func FromListing(j job.Listing) JobResponse {
	return JobResponse{
		ID:                 j.ID,
		Company:            j.Company,
		Role:               j.Role,
		RoleType:           j.RoleType,
		Location:           j.Location,
		RemoteStatus:       string(j.RemoteStatus),
		SalaryRange:        j.SalaryRange,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		URL:                j.URL,
		PostedAt:           j.PostedAt,
		Source:             j.Source,
		Skills:             j.Skills,
		Industry:           j.Industry,
		YearsExperience:    j.YearsExperience,
		DescriptionSummary: j.DescriptionSummary,
	}
}

func FromMatched(m job.Matched) MatchedJobResponse {
	out := MatchedJobResponse{
		JobResponse:    FromListing(m.Listing),
		MatchedSkills:  m.MatchedSkills,
		MissingSkills:  m.MissingSkills,
		Recommendation: m.Recommendation,
	}
	if m.MatchScore.Overall > 0 || len(m.MatchScore.Reasons) > 0 {
		score := m.MatchScore
		out.MatchScore = &score
	}
	return out
}

func FromMatchedList(items []job.Matched) []MatchedJobResponse {
	out := make([]MatchedJobResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMatched(m))
	}
	return out
}
