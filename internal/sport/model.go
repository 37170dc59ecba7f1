package sport

import (
	"net/http"
	"time"

	"github.com/courtbook/courtbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "sport not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "sport name is required")
	ErrNoImage      = apperror.New(http.StatusNotFound, "sport has no image")
)

// Sport represents a sport category offered by the facility (e.g. Badminton).
// Sports are reference data: seeded at startup or added by an admin, never deleted.
type Sport struct {
	ID          string
	Name        string
	ImageURL    string
	Description string
	CreatedAt   time.Time
}

// Filter defines parameters for listing sports.
type Filter struct {
	Page     int
	PageSize int
}
