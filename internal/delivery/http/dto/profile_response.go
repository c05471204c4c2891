package dto

import (
	"time"

	"design-radar/internal/domain/profile"

	"github.com/google/uuid"
)

type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
	Location string    `json:"location"`

	ExtractedSkills []string `json:"extracted_skills"`
	ExperienceLevel string   `json:"experience_level"`

	PreferredRoles      []string `json:"preferred_roles"`
	PreferredIndustries []string `json:"preferred_industries"`
	WorkStyle           string   `json:"work_style"`
	SalaryExpectation   *int     `json:"salary_expectation,omitempty"`

	Complete  bool      `json:"complete"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProfile(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		FullName:            p.FullName,
		Email:               p.Email,
		Phone:               p.Phone,
		Location:            p.Location,
		ExtractedSkills:     p.ExtractedSkills,
		ExperienceLevel:     string(p.ExperienceLevel),
		PreferredRoles:      p.PreferredRoles,
		PreferredIndustries: p.PreferredIndustries,
		WorkStyle:           string(p.WorkStyle),
		SalaryExpectation:   p.SalaryExpectation,
		Complete:            p.Complete(),
		UpdatedAt:           p.UpdatedAt,
	}
}
