package http

import (
	"time"

	"github.com/courtbook/courtbook-backend/internal/pkg/request"
	"github.com/courtbook/courtbook-backend/internal/sport"
)

// ListSportsRequest defines query parameters for listing sports.
type ListSportsRequest struct {
	request.ListParams
}

// Validate performs custom validation for ListSportsRequest.
func (r *ListSportsRequest) Validate() error {
	return nil
}

type SportResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSportResponse(s *sport.Sport) SportResponse {
	return SportResponse{
		ID:          s.ID,
		Name:        s.Name,
		ImageURL:    s.ImageURL,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
	}
}

type CreateSportRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	Description string `json:"description"`
}

// Validate performs custom validation for CreateSportRequest.
func (r *CreateSportRequest) Validate() error {
	return nil
}
