package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"design-radar/internal/database"
	"design-radar/internal/search"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSavedSearchNotFound = errors.New("saved search not found")

type SavedSearch struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Filters   search.Filters
	SortMode  search.SortMode
	CreatedAt time.Time
}

type SavedSearchRepository interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]SavedSearch, error)
	Create(ctx context.Context, s SavedSearch) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type PostgresSavedSearchRepository struct {
	db database.DB
}

func NewPostgresSavedSearchRepository(db database.DB) *PostgresSavedSearchRepository {
	return &PostgresSavedSearchRepository{db: db}
}

func (r *PostgresSavedSearchRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]SavedSearch, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, COALESCE(name, ''), filters, COALESCE(sort_mode, 'random'), created_at
		FROM saved_searches
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedSearch, 0)
	for rows.Next() {
		var s SavedSearch
		var filtersRaw []byte
		var sortMode string
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &filtersRaw, &sortMode, &s.CreatedAt); err != nil {
			return nil, err
		}
		if len(filtersRaw) > 0 {
			if err := json.Unmarshal(filtersRaw, &s.Filters); err != nil {
				return nil, err
			}
		}
		s.SortMode = search.SortMode(sortMode)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSavedSearchRepository) Create(ctx context.Context, s SavedSearch) error {
	filtersRaw, err := json.Marshal(s.Filters)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO saved_searches (id, user_id, name, filters, sort_mode, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.Name, filtersRaw, string(s.SortMode), s.CreatedAt,
	)
	return err
}

func (r *PostgresSavedSearchRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `
		DELETE FROM saved_searches WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSavedSearchNotFound
		}
		return err
	}
	if affected == 0 {
		return ErrSavedSearchNotFound
	}
	return nil
}
