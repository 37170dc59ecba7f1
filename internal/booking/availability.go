package booking

// Candidate is a booking request to check against existing bookings.
type Candidate struct {
	CourtID string
	Date    string
	Start   TimeOfDay
	End     TimeOfDay
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}

// LegacyOverlaps is the one-sided predicate the original booking UI shipped
// with. It misses the case where [aStart, aEnd) strictly contains
// [bStart, bEnd), e.g. 09:00-12:00 against an existing 10:00-11:00.
// Kept only for callers that need literal parity with the old behavior;
// Overlaps is the correct test.
func LegacyOverlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return (aStart >= bStart && aStart < bEnd) || (aEnd > bStart && aEnd <= bEnd)
}

// HasConflict reports whether the candidate interval overlaps any active
// booking on the same court and date. Pure over its inputs.
func HasConflict(existing []*Booking, c Candidate) bool {
	for _, b := range existing {
		if b.CourtID != c.CourtID || b.Date != c.Date || !b.Status.Active() {
			continue
		}
		if Overlaps(c.Start, c.End, b.Start, b.End) {
			return true
		}
	}
	return false
}
