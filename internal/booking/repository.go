package booking

import "context"

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, booking *Booking) error

	// ListForDay returns every booking (any status) for the court on the
	// given date, in insertion order. Input to conflict detection and slot
	// availability.
	ListForDay(ctx context.Context, courtID, date string) ([]*Booking, error)
}
