package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/models"
)

func TestCheckinService_Record(t *testing.T) {
	s := newMemoryStore()
	warningCrypto := crypto.NewWarningCrypto()
	svc := NewCheckinService(s, warningCrypto)

	start := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	got, err := svc.Record(context.Background(), models.Checkin{
		LocationID:       bakeryID,
		CheckinStartDate: start,
		CheckinEndDate:   &end,
		Submitted:        true,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, warningCrypto.LocationIDHash(bakeryID), got.LocationIDHash)
	assert.True(t, got.Completed)
	assert.False(t, got.Submitted)

	// the stored check-in is found by its hash
	found, err := s.FindByLocationIDHash(context.Background(), got.LocationIDHash)
	require.NoError(t, err)
	require.Len(t, found, 1)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCheckinService_RecordOpen(t *testing.T) {
	svc := NewCheckinService(newMemoryStore(), crypto.NewWarningCrypto())

	got, err := svc.Record(context.Background(), models.Checkin{
		LocationID:       gymID,
		CheckinStartDate: time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, got.IsOpen())
	assert.False(t, got.Completed)
}

func TestCheckinService_RecordInvalid(t *testing.T) {
	start := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	before := start.Add(-time.Minute)

	tests := []struct {
		name    string
		checkin models.Checkin
		wantErr error
	}{
		{
			name:    "no location",
			checkin: models.Checkin{CheckinStartDate: start},
			wantErr: ErrEmptyLocationID,
		},
		{
			name:    "no start",
			checkin: models.Checkin{LocationID: gymID},
			wantErr: ErrEmptyCheckinStart,
		},
		{
			name:    "end before start",
			checkin: models.Checkin{LocationID: gymID, CheckinStartDate: start, CheckinEndDate: &before},
			wantErr: ErrCheckinEndsTooEarly,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newMemoryStore()
			_, err := NewCheckinService(s, crypto.NewWarningCrypto()).Record(context.Background(), tt.checkin)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, s.checkins)
		})
	}
}
