package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/mock"
	"github.com/MKhiriev/go-trace-warnings/models"
)

func TestPrepareSubmission(t *testing.T) {
	start := time.Date(2021, 3, 4, 22, 5, 0, 0, time.UTC)
	spanning := visit(bakeryID, start, start.Add(3*time.Hour))

	submitted := visit(gymID, start, start.Add(time.Hour))
	submitted.Submitted = true

	incomplete := visit(gymID, start, start.Add(time.Hour))
	incomplete.Completed = false

	open := visit(gymID, start, start)
	open.CheckinEndDate = nil

	s := newMemoryStore(spanning, submitted, incomplete, open)
	warningCrypto := crypto.NewWarningCrypto()
	svc := NewClientSubmissionService(s, newFakeServer(), warningCrypto)

	got, err := svc.PrepareSubmission(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first, err := warningCrypto.DecryptReport(bakeryID, got[0].Report)
	require.NoError(t, err)
	assert.Equal(t, models.IntervalNumber(start), first.StartIntervalNumber)
	// 22:00 up to midnight
	assert.Equal(t, int64(12), first.Period)
	assert.Equal(t, 6, first.TransmissionRiskLevel)

	second, err := warningCrypto.DecryptReport(bakeryID, got[1].Report)
	require.NoError(t, err)
	assert.Equal(t, models.IntervalNumber(time.Date(2021, 3, 5, 0, 0, 0, 0, time.UTC)), second.StartIntervalNumber)
	// midnight up to 01:10
	assert.Equal(t, int64(7), second.Period)

	for _, sub := range got {
		assert.Equal(t, int64(1), sub.Fragment.ID)
		assert.Equal(t, warningCrypto.LocationIDHash(bakeryID), sub.Report.LocationIDHash)
	}
}

func TestPrepareSubmission_InvalidRiskLevel(t *testing.T) {
	svc := NewClientSubmissionService(newMemoryStore(), newFakeServer(), crypto.NewWarningCrypto())

	for _, level := range []int{0, 9, -1} {
		_, err := svc.PrepareSubmission(context.Background(), level)
		assert.ErrorIs(t, err, ErrInvalidTransmissionRiskLevel)
	}
}

func TestSubmit(t *testing.T) {
	start := time.Date(2021, 3, 4, 22, 5, 0, 0, time.UTC)
	s := newMemoryStore(
		visit(bakeryID, start, start.Add(3*time.Hour)),
		visit(gymID, start, start.Add(time.Hour)),
	)
	server := newFakeServer()
	svc := NewClientSubmissionService(s, server, crypto.NewWarningCrypto())

	require.NoError(t, svc.Submit(context.Background(), 4))

	require.Len(t, server.submitted, 1)
	assert.Len(t, server.submitted[0].Reports, 3)

	checkins, err := s.ListCheckins(context.Background())
	require.NoError(t, err)
	for _, c := range checkins {
		assert.True(t, c.Submitted, "checkin %d", c.ID)
	}

	// second call finds nothing left
	require.NoError(t, svc.Submit(context.Background(), 4))
	assert.Len(t, server.submitted, 1)
}

func TestSubmit_UploadFailureKeepsCheckinsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	checkins := mock.NewMockCheckinRepository(ctrl)
	packageAdapter := mock.NewMockWarningPackageAdapter(ctrl)
	uploadErr := errors.New("connection reset")

	start := time.Date(2021, 3, 4, 10, 0, 0, 0, time.UTC)
	checkin := visit(bakeryID, start, start.Add(time.Hour))

	checkins.EXPECT().ListCheckins(gomock.Any()).Return([]models.Checkin{checkin}, nil)
	packageAdapter.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(uploadErr)
	// MarkSubmitted must not be called

	svc := NewClientSubmissionService(checkins, packageAdapter, crypto.NewWarningCrypto())

	err := svc.Submit(context.Background(), 3)
	assert.ErrorIs(t, err, uploadErr)
}
