package sport

import "context"

type Repository interface {
	Create(ctx context.Context, s *Sport) error
	GetByID(ctx context.Context, id string) (*Sport, error)
	List(ctx context.Context, filter Filter) ([]*Sport, int, error)
	Update(ctx context.Context, s *Sport) error
}
