package sport

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository is an in-memory Repository used when no database is
// configured. Listing preserves insertion order.
type memoryRepository struct {
	mu     sync.RWMutex
	sports []*Sport
	byID   map[string]*Sport
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[string]*Sport)}
}

func (r *memoryRepository) Create(ctx context.Context, s *Sport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	clone := *s
	r.sports = append(r.sports, &clone)
	r.byID[clone.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Sport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Sport, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.sports)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	start := (filter.Page - 1) * filter.PageSize
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}

	result := make([]*Sport, 0, end-start)
	for _, s := range r.sports[start:end] {
		clone := *s
		result = append(result, &clone)
	}
	return result, total, nil
}

func (r *memoryRepository) Update(ctx context.Context, s *Sport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[s.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Name = s.Name
	existing.ImageURL = s.ImageURL
	existing.Description = s.Description
	return nil
}
