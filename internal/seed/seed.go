// Package seed loads the demo catalog and bookings used in in-memory mode,
// so the API serves data immediately without a database.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/courtbook/courtbook-backend/internal/booking"
	"github.com/courtbook/courtbook-backend/internal/court"
	"github.com/courtbook/courtbook-backend/internal/sport"
)

// Demo populates the stores with a small catalog and a few bookings on
// today's and tomorrow's dates, so the demo always looks fresh.
func Demo(ctx context.Context, sports sport.Service, courts court.Service, bookings booking.Service) error {
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	badminton, err := sports.Create(ctx, sport.CreateRequest{
		Name:        "Badminton",
		ImageURL:    "https://images.unsplash.com/photo-1626224583764-847890e05395?q=80&w=200&auto=format&fit=crop",
		Description: "Indoor wooden courts with BWF standard mats.",
	})
	if err != nil {
		return fmt.Errorf("seed sport: %w", err)
	}
	tennis, err := sports.Create(ctx, sport.CreateRequest{
		Name:        "Tennis",
		ImageURL:    "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c0?q=80&w=200&auto=format&fit=crop",
		Description: "Professional clay and hard courts.",
	})
	if err != nil {
		return fmt.Errorf("seed sport: %w", err)
	}
	futsal, err := sports.Create(ctx, sport.CreateRequest{
		Name:        "Futsal",
		ImageURL:    "https://images.unsplash.com/photo-1529900748604-07564a03e7a6?q=80&w=200&auto=format&fit=crop",
		Description: "5-a-side indoor football turf.",
	})
	if err != nil {
		return fmt.Errorf("seed sport: %w", err)
	}

	courtDefs := []court.CreateRequest{
		{SportID: badminton.ID, Name: "Court A (Premium)", Type: "Indoor", PricePerHour: 15},
		{SportID: badminton.ID, Name: "Court B (Standard)", Type: "Indoor", PricePerHour: 10},
		{SportID: tennis.ID, Name: "Center Court", Type: "Clay", PricePerHour: 25},
		{SportID: tennis.ID, Name: "Practice Court", Type: "Hard", PricePerHour: 18},
		{SportID: futsal.ID, Name: "Arena 1", Type: "Turf", PricePerHour: 30},
	}

	created := make([]*court.Court, 0, len(courtDefs))
	for _, def := range courtDefs {
		c, err := courts.Create(ctx, def)
		if err != nil {
			return fmt.Errorf("seed court %q: %w", def.Name, err)
		}
		created = append(created, c)
	}

	bookingDefs := []booking.CreateRequest{
		{CourtID: created[0].ID, UserID: "u1", UserName: "John Doe", Date: today, StartTime: "10:00", EndTime: "11:00"},
		{CourtID: created[0].ID, UserID: "u2", UserName: "Sarah Smith", Date: today, StartTime: "14:00", EndTime: "16:00"},
		{CourtID: created[2].ID, UserID: "u3", UserName: "Mike Ross", Date: tomorrow, StartTime: "09:00", EndTime: "10:00"},
	}
	for _, def := range bookingDefs {
		if _, err := bookings.Create(ctx, def); err != nil {
			return fmt.Errorf("seed booking for %s: %w", def.UserName, err)
		}
	}

	return nil
}
