package service

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/MKhiriev/go-trace-warnings/models"
	"github.com/stretchr/testify/assert"
)

func warningAt(start time.Time, period int64) models.Warning {
	return models.Warning{
		LocationIDHash:        []byte("hash"),
		StartIntervalNumber:   models.IntervalNumber(start),
		Period:                period,
		TransmissionRiskLevel: 4,
	}
}

func TestOverlapMinutes(t *testing.T) {
	base := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		warning models.Warning
		want    int
	}{
		{
			name:    "checkin equals warning window",
			start:   base,
			end:     base.Add(60 * time.Minute),
			warning: warningAt(base, 6),
			want:    60,
		},
		{
			name:    "checkin inside warning",
			start:   base.Add(5 * time.Minute),
			end:     base.Add(25 * time.Minute),
			warning: warningAt(base, 6),
			want:    20,
		},
		{
			name:    "partial overlap at start",
			start:   base.Add(-30 * time.Minute),
			end:     base.Add(15 * time.Minute),
			warning: warningAt(base, 3),
			want:    15,
		},
		{
			name:    "touching windows",
			start:   base.Add(-time.Hour),
			end:     base,
			warning: warningAt(base, 3),
			want:    0,
		},
		{
			name:    "disjoint",
			start:   base.Add(2 * time.Hour),
			end:     base.Add(3 * time.Hour),
			warning: warningAt(base, 3),
			want:    0,
		},
		{
			name:    "rounds 29 seconds down",
			start:   base,
			end:     base.Add(time.Minute + 29*time.Second),
			warning: warningAt(base, 1),
			want:    1,
		},
		{
			name:    "rounds 30 seconds up",
			start:   base,
			end:     base.Add(time.Minute + 30*time.Second),
			warning: warningAt(base, 1),
			want:    2,
		},
		{
			name:    "keeps sub-second precision",
			start:   base.Add(30*time.Second + 400*time.Millisecond),
			end:     base.Add(10 * time.Minute),
			warning: warningAt(base, 1),
			want:    9,
		},
		{
			name:    "sub-second end stays under half a minute",
			start:   base,
			end:     base.Add(time.Minute + 29*time.Second + 999*time.Millisecond),
			warning: warningAt(base, 1),
			want:    1,
		},
		{
			name:    "under half a minute is zero",
			start:   base,
			end:     base.Add(20 * time.Second),
			warning: warningAt(base, 1),
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapMinutes(checkinBetween(tt.start, tt.end), tt.warning))
		})
	}
}

func TestOverlapMinutes_OpenCheckinUsesNow(t *testing.T) {
	base := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	checkin := models.Checkin{CheckinStartDate: base}

	assert.Equal(t, 30, overlapMinutesAt(checkin, warningAt(base, 6), base.Add(30*time.Minute)))
	assert.Equal(t, 0, overlapMinutesAt(checkin, warningAt(base, 6), base.Add(-time.Minute)))
}

func TestOverlapMinutes_ExactWindowProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 200; i++ {
		period := rng.Int64N(144) + 1
		startInterval := 2_600_000 + rng.Int64N(100_000)
		start := models.IntervalStart(startInterval)
		end := models.IntervalStart(startInterval + period)

		got := OverlapMinutes(checkinBetween(start, end), models.Warning{StartIntervalNumber: startInterval, Period: period})
		assert.Equal(t, int(period*10), got)
	}
}

func TestOverlapMinutes_NonNegativeProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	base := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		start := base.Add(time.Duration(rng.Int64N(int64(72 * time.Hour))))
		end := start.Add(time.Duration(rng.Int64N(int64(6 * time.Hour))))
		warning := warningAt(base.Add(time.Duration(rng.Int64N(int64(72*time.Hour)))), rng.Int64N(36)+1)

		got := OverlapMinutes(checkinBetween(start, end), warning)
		assert.GreaterOrEqual(t, got, 0)

		warningStart := models.IntervalStart(warning.StartIntervalNumber)
		warningEnd := models.IntervalStart(warning.EndIntervalNumber())
		if !end.After(warningStart) || !warningEnd.After(start) {
			assert.Zero(t, got, "disjoint windows must not overlap")
		}
	}
}
