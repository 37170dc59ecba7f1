package booking

import (
	"net/http"
	"time"

	"github.com/courtbook/courtbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrTimeConflict     = apperror.New(http.StatusConflict, "time slot already booked")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	ErrInvalidTime      = apperror.New(http.StatusBadRequest, "time must be in HH:MM format")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrCourtNotFound    = apperror.New(http.StatusNotFound, "court not found")
	ErrMissingUser      = apperror.New(http.StatusBadRequest, "user_id and user_name are required")
)

type Status string

const (
	// StatusPending is reserved for future workflows (e.g. awaiting payment).
	// Nothing transitions into it today; it still counts as active for
	// conflict detection.
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Active reports whether the status blocks other bookings of the same slot.
func (s Status) Active() bool {
	return s != StatusCancelled
}

// Booking reserves a half-open time-of-day interval on one court for one
// calendar day. SportID is denormalized from the court for display.
type Booking struct {
	ID        string
	CourtID   string
	SportID   string
	UserID    string
	UserName  string
	Date      string // YYYY-MM-DD, no time component
	Start     TimeOfDay
	End       TimeOfDay
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Filter struct {
	CourtID  string
	Date     string
	Status   string
	UserID   string
	Page     int
	PageSize int
}
