package court

import (
	"context"
	"strings"

	"github.com/courtbook/courtbook-backend/internal/sport"
)

type CreateRequest struct {
	SportID      string
	Name         string
	Type         string
	PricePerHour float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	List(ctx context.Context, filter Filter) ([]*Court, int, error)
	ListBySport(ctx context.Context, sportID string) ([]*Court, error)
}

type service struct {
	repo         Repository
	sportService sport.Service
}

func NewService(repo Repository, sportService sport.Service) Service {
	return &service{
		repo:         repo,
		sportService: sportService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.SportID == "" {
		return nil, ErrInvalidSport
	}
	if req.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	// Validation: the referenced sport must exist
	if _, err := s.sportService.GetByID(ctx, req.SportID); err != nil {
		return nil, ErrInvalidSport
	}

	c := &Court{
		SportID:      req.SportID,
		Name:         req.Name,
		Type:         req.Type,
		PricePerHour: req.PricePerHour,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Court, int, error) {
	return s.repo.List(ctx, filter)
}

// ListBySport returns every court for the given sport, unpaginated.
// Unknown sport IDs yield an empty list, not an error.
func (s *service) ListBySport(ctx context.Context, sportID string) ([]*Court, error) {
	courts, _, err := s.repo.List(ctx, Filter{SportID: sportID, PageSize: 100})
	return courts, err
}
