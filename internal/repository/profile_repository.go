package repository

import (
	"context"
	"errors"

	"design-radar/internal/database"
	"design-radar/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Upsert(ctx context.Context, p profile.Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	var p profile.Profile
	var level, workStyle string

	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, COALESCE(full_name, ''), COALESCE(email, ''),
			COALESCE(phone, ''), COALESCE(location, ''), COALESCE(resume_text, ''),
			COALESCE(extracted_skills, '{}'), COALESCE(experience_level, 'entry'),
			COALESCE(years_of_experience, 0), COALESCE(preferred_roles, '{}'),
			COALESCE(preferred_industries, '{}'), COALESCE(work_style, 'flexible'),
			salary_expectation, created_at, updated_at
		FROM profiles WHERE user_id = $1`, userID)

	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email,
		&p.Phone, &p.Location, &p.ResumeText,
		&p.ExtractedSkills, &level,
		&p.YearsOfExperience, &p.PreferredRoles,
		&p.PreferredIndustries, &workStyle,
		&p.SalaryExpectation, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, ErrProfileNotFound
		}
		return profile.Profile{}, err
	}

	p.ExperienceLevel = profile.ExperienceLevel(level)
	p.WorkStyle = profile.WorkStyle(workStyle)
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (
			id, user_id, full_name, email, phone, location, resume_text,
			extracted_skills, experience_level, years_of_experience,
			preferred_roles, preferred_industries, work_style,
			salary_expectation, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			resume_text = EXCLUDED.resume_text,
			extracted_skills = EXCLUDED.extracted_skills,
			experience_level = EXCLUDED.experience_level,
			years_of_experience = EXCLUDED.years_of_experience,
			preferred_roles = EXCLUDED.preferred_roles,
			preferred_industries = EXCLUDED.preferred_industries,
			work_style = EXCLUDED.work_style,
			salary_expectation = EXCLUDED.salary_expectation,
			updated_at = EXCLUDED.updated_at`,
		p.ID, p.UserID, p.FullName, p.Email, p.Phone, p.Location, p.ResumeText,
		p.ExtractedSkills, string(p.ExperienceLevel), p.YearsOfExperience,
		p.PreferredRoles, p.PreferredIndustries, string(p.WorkStyle),
		p.SalaryExpectation, p.CreatedAt, p.UpdatedAt,
	)
	return err
}
