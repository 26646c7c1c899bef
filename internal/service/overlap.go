package service

import (
	"time"

	"github.com/MKhiriev/go-trace-warnings/models"
)

// OverlapMinutes returns, in whole minutes rounded to nearest, how long the
// attendance window of checkin and the window asserted by warning coincide.
// Disjoint windows yield 0. An open check-in is considered to last until now.
func OverlapMinutes(checkin models.Checkin, warning models.Warning) int {
	return overlapMinutesAt(checkin, warning, time.Now())
}

func overlapMinutesAt(checkin models.Checkin, warning models.Warning, now time.Time) int {
	checkinEnd := now
	if checkin.CheckinEndDate != nil {
		checkinEnd = *checkin.CheckinEndDate
	}

	start := laterOf(checkin.CheckinStartDate, models.IntervalStart(warning.StartIntervalNumber))
	end := earlierOf(checkinEnd, models.IntervalStart(warning.EndIntervalNumber()))

	overlap := end.Sub(start)
	if overlap <= 0 {
		return 0
	}

	// Round goes half away from zero, overlap is positive
	return int(overlap.Round(time.Minute) / time.Minute)
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
