package booking

// Operating hours: one-hour slots starting on the hour, 08:00 through 21:00
// inclusive, 14 slots per day. Fixed for every court; per-court hours would
// go here if the catalog ever carries them.
const (
	firstSlotHour = 8
	lastSlotHour  = 21
	slotMinutes   = 60
)

// Slot is one bookable window within the operating day.
type Slot struct {
	Start TimeOfDay
	End   TimeOfDay
}

// SlotAvailability is a Slot annotated with whether any active booking
// covers it.
type SlotAvailability struct {
	Slot
	Booked bool
}

// DaySlots returns the fixed candidate slots for a day, in order.
func DaySlots() []Slot {
	slots := make([]Slot, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		start := TimeOfDay(h * 60)
		slots = append(slots, Slot{Start: start, End: start + slotMinutes})
	}
	return slots
}

// MarkAvailability flags each day slot that intersects an active booking.
// Bookings are assumed to already be filtered to one court and date. A
// multi-hour booking disables every slot it covers, not just the one
// matching its start time.
func MarkAvailability(bookings []*Booking) []SlotAvailability {
	slots := DaySlots()
	marked := make([]SlotAvailability, len(slots))
	for i, s := range slots {
		booked := false
		for _, b := range bookings {
			if b.Status.Active() && Overlaps(s.Start, s.End, b.Start, b.End) {
				booked = true
				break
			}
		}
		marked[i] = SlotAvailability{Slot: s, Booked: booked}
	}
	return marked
}
