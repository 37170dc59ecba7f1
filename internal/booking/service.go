package booking

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/courtbook/courtbook-backend/internal/court"
)

type CreateRequest struct {
	CourtID   string
	UserID    string
	UserName  string
	Date      string
	StartTime string
	EndTime   string
}

type Stats struct {
	TotalRevenue float64
	ActiveCount  int
	CourtCount   int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Cancel transitions the booking to cancelled. Cancelling an already
	// cancelled booking is a no-op; a missing id is an error.
	Cancel(ctx context.Context, id string) (*Booking, error)

	// Slots returns the day's slot grid for a court with booked slots marked.
	Slots(ctx context.Context, courtID, date string) ([]SlotAvailability, error)

	// DashboardStats aggregates revenue and counts across all bookings.
	DashboardStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo         Repository
	courtService court.Service
	pricing      PricingStrategy

	// slotLocks serializes check-then-insert per (court, date) so two
	// concurrent requests for the same slot cannot both pass the conflict
	// check before either inserts.
	slotLocks keyedMutex
}

func NewService(repo Repository, courtService court.Service, pricing PricingStrategy) Service {
	if pricing == nil {
		pricing = FlatPricing{}
	}
	return &service{
		repo:         repo,
		courtService: courtService,
		pricing:      pricing,
	}
}

// validate checks the request and returns the parsed candidate interval.
func (s *service) validate(req CreateRequest) (Candidate, error) {
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.UserName) == "" {
		return Candidate{}, ErrMissingUser
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return Candidate{}, ErrInvalidDate
	}
	start, err := ParseTimeOfDay(req.StartTime)
	if err != nil {
		return Candidate{}, ErrInvalidTime
	}
	end, err := ParseTimeOfDay(req.EndTime)
	if err != nil {
		return Candidate{}, ErrInvalidTime
	}
	if start >= end {
		return Candidate{}, ErrInvalidTimeRange
	}

	return Candidate{CourtID: req.CourtID, Date: date, Start: start, End: end}, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	cand, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	// Validate the court exists; its sport is denormalized onto the booking.
	crt, err := s.courtService.GetByID(ctx, cand.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	// Conflict check and insert must be one atomic step. The Postgres
	// backend also enforces this with an exclusion constraint.
	unlock := s.slotLocks.lock(cand.CourtID + "|" + cand.Date)
	defer unlock()

	existing, err := s.repo.ListForDay(ctx, cand.CourtID, cand.Date)
	if err != nil {
		return nil, err
	}
	if HasConflict(existing, cand) {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		CourtID:  cand.CourtID,
		SportID:  crt.SportID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Date:     cand.Date,
		Start:    cand.Start,
		End:      cand.End,
		Status:   StatusConfirmed,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	if filter.Date != "" {
		date, err := ParseDate(filter.Date)
		if err != nil {
			return nil, 0, ErrInvalidDate
		}
		filter.Date = date
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusCancelled {
		return b, nil
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Slots(ctx context.Context, courtID, date string) ([]SlotAvailability, error) {
	date, err := ParseDate(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.courtService.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	bookings, err := s.repo.ListForDay(ctx, courtID, date)
	if err != nil {
		return nil, err
	}
	return MarkAvailability(bookings), nil
}

func (s *service) DashboardStats(ctx context.Context) (*Stats, error) {
	courts, courtTotal, err := s.courtService.List(ctx, court.Filter{PageSize: 1000})
	if err != nil {
		return nil, err
	}
	priceByID := make(map[string]float64, len(courts))
	for _, c := range courts {
		priceByID[c.ID] = c.PricePerHour
	}

	stats := &Stats{CourtCount: courtTotal}

	page := 1
	for {
		bookings, total, err := s.repo.List(ctx, Filter{Page: page, PageSize: 1000})
		if err != nil {
			return nil, err
		}
		for _, b := range bookings {
			if b.Status.Active() {
				stats.ActiveCount++
			}
			if b.Status == StatusConfirmed {
				stats.TotalRevenue += s.pricing.Price(priceByID[b.CourtID], b.Start, b.End)
			}
		}
		if page*1000 >= total || len(bookings) == 0 {
			break
		}
		page++
	}

	return stats, nil
}

// keyedMutex hands out one mutex per string key.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
