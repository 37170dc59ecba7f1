package court

import (
	"net/http"
	"time"

	"github.com/courtbook/courtbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "court not found")
	ErrEmptyName    = apperror.New(http.StatusBadRequest, "court name cannot be empty")
	ErrInvalidSport = apperror.New(http.StatusBadRequest, "invalid sport_id")
	ErrInvalidPrice = apperror.New(http.StatusBadRequest, "price per hour must be positive")
)

// Court represents a bookable court belonging to exactly one sport.
// Courts are append-only: created by an admin, never mutated or deleted.
type Court struct {
	ID           string
	SportID      string
	Name         string
	Type         string // e.g. "Indoor", "Outdoor", "Grass", "Clay"
	PricePerHour float64
	CreatedAt    time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	SportID  string
	Page     int
	PageSize int
}
