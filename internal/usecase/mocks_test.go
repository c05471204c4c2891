package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"design-radar/internal/domain/job"
	"design-radar/internal/domain/profile"
	"design-radar/internal/repository"

	"github.com/google/uuid"
)

var (
	errJobRepoNotFound     = repository.ErrJobNotFound
	errProfileRepoNotFound = repository.ErrProfileNotFound
)

func copyJSON(from, to any) error {
	b, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, to)
}

type mockJobRepo struct {
	byID    map[string]job.Listing
	active  []job.Listing
	listErr error
	getErr  error

	upserted [][]job.Listing
}

func (m *mockJobRepo) GetByID(_ context.Context, id string) (job.Listing, error) {
	if m.getErr != nil {
		return job.Listing{}, m.getErr
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Listing{}, errJobRepoNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListActive(context.Context) ([]job.Listing, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.active, nil
}

func (m *mockJobRepo) UpsertBatch(_ context.Context, listings []job.Listing) (int, error) {
	m.upserted = append(m.upserted, listings)
	return len(listings), nil
}

type mockProfileRepo struct {
	profiles map[uuid.UUID]profile.Profile
	findErr  error

	upserted []profile.Profile
}

func (m *mockProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	if m.findErr != nil {
		return profile.Profile{}, m.findErr
	}
	p, ok := m.profiles[userID]
	if !ok {
		return profile.Profile{}, errProfileRepoNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p profile.Profile) error {
	m.upserted = append(m.upserted, p)
	if m.profiles == nil {
		m.profiles = map[uuid.UUID]profile.Profile{}
	}
	m.profiles[p.UserID] = p
	return nil
}

// mockCache is an in-memory Cache storing raw values and replaying them
// through the usual JSON round trip on read.
type mockCache struct {
	mu      sync.Mutex
	entries map[string]any
	locks   map[string]bool

	gets int
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string]any{}, locks: map[string]bool{}}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	return true, copyJSON(raw, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	m.entries[key] = value
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *mockCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[key] {
		return false, nil
	}
	m.locks[key] = true
	return true, nil
}
