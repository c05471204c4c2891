package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"design-radar/internal/domain/profile"
	"design-radar/internal/matching"
	"design-radar/internal/repository"
	"design-radar/internal/search"

	"github.com/google/uuid"
)

type ProfileInput struct {
	FullName            string
	Email               string
	Phone               string
	Location            string
	ResumeText          string
	PreferredRoles      []string
	PreferredIndustries []string
	WorkStyle           string
	SalaryExpectation   *int
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Build(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error)
	Suggestions(ctx context.Context, userID uuid.UUID) (matching.Suggestions, error)
	DefaultFilters(ctx context.Context, userID uuid.UUID) (search.Filters, error)
}

type ProfileService struct {
	profiles repository.ProfileRepository
	now      func() time.Time
}

func NewProfileUsecase(profiles repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

// Build creates the profile from onboarding input. Skill extraction and
// experience detection run over the resume text here, once, so the
// matching core can consume precomputed fields on every scoring pass.
func (s *ProfileService) Build(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.ResumeText) == "" {
		return profile.Profile{}, ErrInvalidInput
	}

	now := s.now().UTC()
	p := profile.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
	}
	applyInput(&p, in, now)

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

// Update mutates an existing profile; a changed resume re-derives the
// extracted skills and detected experience.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}

	p, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	if strings.TrimSpace(in.ResumeText) == "" {
		in.ResumeText = p.ResumeText
	}

	applyInput(&p, in, s.now().UTC())

	if err := s.profiles.Upsert(ctx, p); err != nil {
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (s *ProfileService) Suggestions(ctx context.Context, userID uuid.UUID) (matching.Suggestions, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return matching.Suggest(profile.Profile{}), nil
		}
		return matching.Suggestions{}, err
	}
	return matching.Suggest(p), nil
}

// DefaultFilters derives the starting filter state from the profile
// location: APAC defaults with the user's home regions pre-selected and
// a 30-day recency window.
func (s *ProfileService) DefaultFilters(ctx context.Context, userID uuid.UUID) (search.Filters, error) {
	f := search.DefaultFilters()
	f.DateRange = search.DateRange30d
	f.TimezoneMin = 7
	f.TimezoneMax = 12

	p, err := s.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			f.Regions = search.DefaultRegionsForLocation("")
			return f, nil
		}
		return search.Filters{}, err
	}

	f.Regions = search.DefaultRegionsForLocation(p.Location)
	return f, nil
}

func applyInput(p *profile.Profile, in ProfileInput, now time.Time) {
	p.FullName = strings.TrimSpace(in.FullName)
	p.Email = strings.TrimSpace(in.Email)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Location = strings.TrimSpace(in.Location)
	p.PreferredRoles = cleanList(in.PreferredRoles)
	p.PreferredIndustries = cleanList(in.PreferredIndustries)
	p.WorkStyle = parseWorkStyle(in.WorkStyle)
	p.SalaryExpectation = in.SalaryExpectation
	p.UpdatedAt = now

	resume := strings.TrimSpace(in.ResumeText)
	if resume != "" && resume != p.ResumeText {
		p.ResumeText = resume
		p.ExtractedSkills = matching.ExtractSkills(resume)
		level, years := matching.DetectExperience(resume)
		p.ExperienceLevel = level
		p.YearsOfExperience = years
	}
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func parseWorkStyle(s string) profile.WorkStyle {
	switch profile.WorkStyle(strings.ToLower(strings.TrimSpace(s))) {
	case profile.WorkStyleRemote:
		return profile.WorkStyleRemote
	case profile.WorkStyleHybrid:
		return profile.WorkStyleHybrid
	case profile.WorkStyleOnsite:
		return profile.WorkStyleOnsite
	default:
		return profile.WorkStyleFlexible
	}
}
