package http

import (
	"time"

	"github.com/courtbook/courtbook-backend/internal/booking"
	"github.com/courtbook/courtbook-backend/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	CourtID string `form:"court_id"`
	Date    string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	UserID  string `form:"user_id"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	return nil
}

type BookingResponse struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"court_id"`
	SportID   string    `json:"sport_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		CourtID:   b.CourtID,
		SportID:   b.SportID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Date:      b.Date,
		StartTime: b.Start.String(),
		EndTime:   b.End.String(),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	CourtID   string `json:"court_id" binding:"required"`
	UserID    string `json:"user_id" binding:"required"`
	UserName  string `json:"user_name" binding:"required"`
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	start, err := booking.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return booking.ErrInvalidTime
	}
	end, err := booking.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return booking.ErrInvalidTime
	}
	if start >= end {
		return booking.ErrInvalidTimeRange
	}
	return nil
}

// SlotsRequest defines query parameters for the day slot grid.
type SlotsRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Booked    bool   `json:"booked"`
}

func NewSlotResponse(s booking.SlotAvailability) SlotResponse {
	return SlotResponse{
		StartTime: s.Start.String(),
		EndTime:   s.End.String(),
		Booked:    s.Booked,
	}
}

type StatsResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	ActiveCount  int     `json:"active_count"`
	CourtCount   int     `json:"court_count"`
}
