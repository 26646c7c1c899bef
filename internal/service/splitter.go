package service

import (
	"time"

	"github.com/MKhiriev/go-trace-warnings/models"
)

// SplitCheckinByDay splits checkin at every UTC midnight that falls strictly
// inside its attendance window. Fragments are ordered, contiguous and each
// lies within one UTC calendar day; all other fields are copied. A check-in
// that starts and ends on the same UTC day, or is still open, is returned
// unchanged as the only element.
func SplitCheckinByDay(checkin models.Checkin) []models.Checkin {
	if checkin.CheckinEndDate == nil {
		return []models.Checkin{checkin}
	}

	start := checkin.CheckinStartDate.UTC()
	end := checkin.CheckinEndDate.UTC()
	if !end.After(start) || sameUTCDay(start, end) {
		return []models.Checkin{checkin}
	}

	var fragments []models.Checkin
	for current := start; current.Before(end); {
		boundary := nextUTCMidnight(current)
		if boundary.After(end) {
			boundary = end
		}

		fragment := checkin
		fragmentEnd := boundary
		fragment.CheckinStartDate = current
		fragment.CheckinEndDate = &fragmentEnd
		fragments = append(fragments, fragment)

		current = boundary
	}

	return fragments
}

func sameUTCDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// nextUTCMidnight returns the first UTC midnight strictly after t.
func nextUTCMidnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
}
