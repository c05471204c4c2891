package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"design-radar/internal/repository"
	"design-radar/internal/search"

	"github.com/google/uuid"
)

type SavedSearchInput struct {
	Name     string
	Filters  search.Filters
	SortMode search.SortMode
}

type SavedSearchUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]repository.SavedSearch, error)
	Create(ctx context.Context, userID uuid.UUID, in SavedSearchInput) (repository.SavedSearch, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type SavedSearchService struct {
	searches repository.SavedSearchRepository
	now      func() time.Time
}

func NewSavedSearchUsecase(searches repository.SavedSearchRepository) *SavedSearchService {
	return &SavedSearchService{searches: searches, now: time.Now}
}

func (s *SavedSearchService) List(ctx context.Context, userID uuid.UUID) ([]repository.SavedSearch, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := s.searches.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (s *SavedSearchService) Create(ctx context.Context, userID uuid.UUID, in SavedSearchInput) (repository.SavedSearch, error) {
	if userID == uuid.Nil {
		return repository.SavedSearch{}, ErrUnauthorized
	}

	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return repository.SavedSearch{}, ErrInvalidInput
	}
	if in.SortMode == "" {
		in.SortMode = search.SortRandom
	}

	saved := repository.SavedSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Filters:   in.Filters,
		SortMode:  in.SortMode,
		CreatedAt: s.now().UTC(),
	}
	if err := s.searches.Create(ctx, saved); err != nil {
		return repository.SavedSearch{}, ErrInternal
	}
	return saved, nil
}

func (s *SavedSearchService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	if err := s.searches.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrSavedSearchNotFound) {
			return ErrSavedSearchNotFound
		}
		return ErrInternal
	}
	return nil
}
