package repository

import (
	"context"
	"errors"

	"design-radar/internal/database"
	"design-radar/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	GetByID(ctx context.Context, id string) (job.Listing, error)
	ListActive(ctx context.Context) ([]job.Listing, error)
	UpsertBatch(ctx context.Context, listings []job.Listing) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, COALESCE(company, ''), COALESCE(role, ''), COALESCE(role_type, ''),
	COALESCE(location, ''), COALESCE(remote_status, ''), COALESCE(salary_range, ''),
	salary_min, salary_max, COALESCE(url, ''), posted_at, scraped_at, COALESCE(source, ''),
	COALESCE(skills, '{}'), COALESCE(industry, ''), COALESCE(years_experience, ''),
	COALESCE(description_summary, '')`

func (r *PostgresJobRepository) GetByID(ctx context.Context, id string) (job.Listing, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, ErrJobNotFound
		}
		return job.Listing{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context) ([]job.Listing, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY posted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Listing, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertBatch writes a refreshed job batch in one transaction, keyed by
// the collaborator-assigned listing id. Returns the row count written.
func (r *PostgresJobRepository) UpsertBatch(ctx context.Context, listings []job.Listing) (int, error) {
	if len(listings) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	written := 0
	for _, j := range listings {
		if j.ID == "" {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO jobs (
				id, company, role, role_type, location, remote_status,
				salary_range, salary_min, salary_max, url, posted_at,
				scraped_at, source, skills, industry, years_experience,
				description_summary
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
			ON CONFLICT (id) DO UPDATE SET
				company = EXCLUDED.company,
				role = EXCLUDED.role,
				role_type = EXCLUDED.role_type,
				location = EXCLUDED.location,
				remote_status = EXCLUDED.remote_status,
				salary_range = EXCLUDED.salary_range,
				salary_min = EXCLUDED.salary_min,
				salary_max = EXCLUDED.salary_max,
				url = EXCLUDED.url,
				posted_at = EXCLUDED.posted_at,
				scraped_at = EXCLUDED.scraped_at,
				source = EXCLUDED.source,
				skills = EXCLUDED.skills,
				industry = EXCLUDED.industry,
				years_experience = EXCLUDED.years_experience,
				description_summary = EXCLUDED.description_summary`,
			j.ID, j.Company, j.Role, j.RoleType, j.Location, string(j.RemoteStatus),
			j.SalaryRange, j.SalaryMin, j.SalaryMax, j.URL, j.PostedAt,
			j.ScrapedAt, j.Source, j.Skills, j.Industry, j.YearsExperience,
			j.DescriptionSummary,
		)
		if err != nil {
			return 0, err
		}
		written++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return written, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (job.Listing, error) {
	var j job.Listing
	var remoteStatus string
	err := s.Scan(
		&j.ID, &j.Company, &j.Role, &j.RoleType,
		&j.Location, &remoteStatus, &j.SalaryRange,
		&j.SalaryMin, &j.SalaryMax, &j.URL, &j.PostedAt, &j.ScrapedAt, &j.Source,
		&j.Skills, &j.Industry, &j.YearsExperience,
		&j.DescriptionSummary,
	)
	if err != nil {
		return job.Listing{}, err
	}
	j.RemoteStatus = job.RemoteStatus(remoteStatus)
	return j, nil
}
