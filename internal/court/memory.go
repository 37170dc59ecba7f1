package court

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
	courts []*Court
	byID   map[string]*Court
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[string]*Court)}
}

func (r *memoryRepository) Create(ctx context.Context, c *Court) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	clone := *c
	r.courts = append(r.courts, &clone)
	r.byID[clone.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Court
	for _, c := range r.courts {
		if filter.SportID != "" && c.SportID != filter.SportID {
			continue
		}
		matched = append(matched, c)
	}

	total := len(matched)

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

	result := make([]*Court, 0, end-start)
	for _, c := range matched[start:end] {
		clone := *c
		result = append(result, &clone)
	}
	return result, total, nil
}
