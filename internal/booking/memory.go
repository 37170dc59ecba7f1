package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryRepository keeps all bookings in one slice guarded by a RWMutex,
// replacing the ambient shared array the original mock mutated. Listing
// preserves insertion order.
type memoryRepository struct {
	mu       sync.RWMutex
	bookings []*Booking
	byID     map[string]*Booking
}

func NewMemoryRepository() Repository {
	return &memoryRepository{byID: make(map[string]*Booking)}
}

func (r *memoryRepository) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now

	clone := *b
	r.bookings = append(r.bookings, &clone)
	r.byID[clone.ID] = &clone
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memoryRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*Booking
	for _, b := range r.bookings {
		if filter.CourtID != "" && b.CourtID != filter.CourtID {
			continue
		}
		if filter.Date != "" && b.Date != filter.Date {
			continue
		}
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		matched = append(matched, b)
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

	result := make([]*Booking, 0, end-start)
	for _, b := range matched[start:end] {
		clone := *b
		result = append(result, &clone)
	}
	return result, total, nil
}

func (r *memoryRepository) Update(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[b.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Status = b.Status
	existing.Start = b.Start
	existing.End = b.End
	existing.UpdatedAt = time.Now().UTC()
	b.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *memoryRepository) ListForDay(ctx context.Context, courtID, date string) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Booking
	for _, b := range r.bookings {
		if b.CourtID != courtID || b.Date != date {
			continue
		}
		clone := *b
		result = append(result, &clone)
	}
	return result, nil
}
