package dto

import (
	"time"

	"design-radar/internal/repository"
	"design-radar/internal/search"

	"github.com/google/uuid"
)

type SavedSearchResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Filters   search.Filters `json:"filters"`
	SortMode  string         `json:"sort_mode"`
	CreatedAt time.Time      `json:"created_at"`
}

func FromSavedSearch(s repository.SavedSearch) SavedSearchResponse {
	return SavedSearchResponse{
		ID:        s.ID,
		Name:      s.Name,
		Filters:   s.Filters,
		SortMode:  string(s.SortMode),
		CreatedAt: s.CreatedAt,
	}
}

func FromSavedSearchList(items []repository.SavedSearch) []SavedSearchResponse {
	out := make([]SavedSearchResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromSavedSearch(s))
	}
	return out
}
