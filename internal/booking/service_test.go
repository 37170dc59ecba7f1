package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtbook/courtbook-backend/internal/court"
	"github.com/courtbook/courtbook-backend/internal/sport"
)

type testEnv struct {
	bookings Service
	courts   court.Service
	courtA   *court.Court // $10/h
	courtB   *court.Court // $25/h
	courtC   *court.Court // $999/h
}

func newTestEnv(t *testing.T, pricing PricingStrategy) *testEnv {
	t.Helper()
	ctx := context.Background()

	sportService := sport.NewService(sport.NewMemoryRepository(), nil)
	courtService := court.NewService(court.NewMemoryRepository(), sportService)
	bookingService := NewService(NewMemoryRepository(), courtService, pricing)

	sp, err := sportService.Create(ctx, sport.CreateRequest{Name: "Badminton"})
	require.NoError(t, err)

	mkCourt := func(name string, price float64) *court.Court {
		c, err := courtService.Create(ctx, court.CreateRequest{
			SportID: sp.ID, Name: name, Type: "Indoor", PricePerHour: price,
		})
		require.NoError(t, err)
		return c
	}

	return &testEnv{
		bookings: bookingService,
		courts:   courtService,
		courtA:   mkCourt("Court A", 10),
		courtB:   mkCourt("Court B", 25),
		courtC:   mkCourt("Court C", 999),
	}
}

func createReq(courtID, date, start, end string) CreateRequest {
	return CreateRequest{
		CourtID:   courtID,
		UserID:    "u1",
		UserName:  "John Doe",
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
}

func TestCreateBooking(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	b, err := env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, env.courtA.SportID, b.SportID)
	assert.Equal(t, "10:00", b.Start.String())
	assert.Equal(t, "11:00", b.End.String())

	// Retrievable by date afterwards.
	listed, total, err := env.bookings.List(ctx, Filter{Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listed, 1)
	assert.Equal(t, b.ID, listed[0].ID)
}

func TestCreateBookingValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{"missing user", func(r *CreateRequest) { r.UserID = "" }, ErrMissingUser},
		{"missing user name", func(r *CreateRequest) { r.UserName = " " }, ErrMissingUser},
		{"bad date", func(r *CreateRequest) { r.Date = "01/01/2024" }, ErrInvalidDate},
		{"bad start time", func(r *CreateRequest) { r.StartTime = "10am" }, ErrInvalidTime},
		{"bad end time", func(r *CreateRequest) { r.EndTime = "25:00" }, ErrInvalidTime},
		{"start equals end", func(r *CreateRequest) { r.EndTime = "10:00" }, ErrInvalidTimeRange},
		{"start after end", func(r *CreateRequest) { r.StartTime = "12:00" }, ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createReq(env.courtA.ID, "2024-01-01", "10:00", "11:00")
			tt.mutate(&req)
			_, err := env.bookings.Create(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Nothing was persisted by the failed attempts.
	_, total, err := env.bookings.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCreateBookingUnknownCourt(t *testing.T) {
	env := newTestEnv(t, nil)

	_, err := env.bookings.Create(context.Background(), createReq("nope", "2024-01-01", "10:00", "11:00"))
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestCreateBookingConflict(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	// Partial overlap is rejected.
	_, err = env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "10:30", "11:30"))
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Containment is rejected too (the corrected predicate).
	_, err = env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "09:00", "12:00"))
	assert.ErrorIs(t, err, ErrTimeConflict)

	// Failed attempts never mutate the store.
	_, total, err := env.bookings.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// Same slot on another court or date is fine.
	_, err = env.bookings.Create(ctx, createReq(env.courtB.ID, "2024-01-01", "10:00", "11:00"))
	assert.NoError(t, err)
	_, err = env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-02", "10:00", "11:00"))
	assert.NoError(t, err)

	// A cancelled booking frees its slot.
	b, err := env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "12:00", "13:00"))
	require.NoError(t, err)
	_, err = env.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)
	_, err = env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "12:00", "13:00"))
	assert.NoError(t, err)
}

func TestCancelBooking(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	b, err := env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)

	cancelled, err := env.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	// Idempotent: cancelling again succeeds and stays cancelled.
	again, err := env.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, again.Status)

	// Unknown id is an error, not a silent no-op.
	_, err = env.bookings.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlots(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	_, err := env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "14:00", "16:00"))
	require.NoError(t, err)

	slots, err := env.bookings.Slots(ctx, env.courtA.ID, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, slots, 14)

	for _, s := range slots {
		switch s.Start.String() {
		case "14:00", "15:00":
			assert.True(t, s.Booked, "slot %s should be booked", s.Start)
		default:
			assert.False(t, s.Booked, "slot %s should be available", s.Start)
		}
	}

	// Another court's day is untouched.
	slots, err = env.bookings.Slots(ctx, env.courtB.ID, "2024-01-01")
	require.NoError(t, err)
	for _, s := range slots {
		assert.False(t, s.Booked)
	}

	_, err = env.bookings.Slots(ctx, "nope", "2024-01-01")
	assert.ErrorIs(t, err, ErrCourtNotFound)
	_, err = env.bookings.Slots(ctx, env.courtA.ID, "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDashboardStats(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	// Confirmed on a $10 court and a $25 court, cancelled on a $999 court.
	_, err := env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "10:00", "11:00"))
	require.NoError(t, err)
	// Two hours, but flat pricing charges the hourly rate once.
	_, err = env.bookings.Create(ctx, createReq(env.courtB.ID, "2024-01-01", "14:00", "16:00"))
	require.NoError(t, err)
	b, err := env.bookings.Create(ctx, createReq(env.courtC.ID, "2024-01-01", "09:00", "10:00"))
	require.NoError(t, err)
	_, err = env.bookings.Cancel(ctx, b.ID)
	require.NoError(t, err)

	stats, err := env.bookings.DashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 35.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.ActiveCount)
	assert.Equal(t, 3, stats.CourtCount)
}

func TestDashboardStatsHourlyPricing(t *testing.T) {
	env := newTestEnv(t, HourlyPricing{})
	ctx := context.Background()

	// Two-hour booking on the $25 court.
	_, err := env.bookings.Create(ctx, createReq(env.courtB.ID, "2024-01-01", "14:00", "16:00"))
	require.NoError(t, err)

	stats, err := env.bookings.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stats.TotalRevenue)
}

// Two requests racing for the same slot must not both pass the conflict
// check: exactly one create succeeds.
func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	env := newTestEnv(t, nil)
	ctx := context.Background()

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.bookings.Create(ctx, createReq(env.courtA.ID, "2024-01-01", "10:00", "11:00"))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrTimeConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflicts)

	_, total, err := env.bookings.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}
