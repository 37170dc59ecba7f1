package http

import (
	"time"

	"github.com/courtbook/courtbook-backend/internal/court"
	"github.com/courtbook/courtbook-backend/internal/pkg/request"
)

// ListCourtsRequest defines query parameters for listing courts.
type ListCourtsRequest struct {
	request.ListParams
	SportID string `form:"sport_id"`
}

// Validate performs custom validation for ListCourtsRequest.
func (r *ListCourtsRequest) Validate() error {
	return nil
}

type CourtResponse struct {
	ID           string    `json:"id"`
	SportID      string    `json:"sport_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	PricePerHour float64   `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:           c.ID,
		SportID:      c.SportID,
		Name:         c.Name,
		Type:         c.Type,
		PricePerHour: c.PricePerHour,
		CreatedAt:    c.CreatedAt,
	}
}

type CreateCourtRequest struct {
	SportID      string  `json:"sport_id" binding:"required"`
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Type         string  `json:"type" binding:"required,min=1,max=50"`
	PricePerHour float64 `json:"price_per_hour" binding:"required,gt=0"`
}

// Validate performs custom validation for CreateCourtRequest.
func (r *CreateCourtRequest) Validate() error {
	return nil
}
