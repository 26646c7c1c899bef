// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-trace-warnings/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TraceWarningMatcher matches decoded warning packages against local
// check-ins and persists the resulting matches.
type TraceWarningMatcher interface {
	// MatchAndStore persists one [models.TraceTimeIntervalMatch] per check-in
	// whose location hash equals a warning's and whose attendance window
	// overlaps it by at least one minute. Encrypted reports are decrypted with
	// the location id of the check-ins sharing their hash; reports that cannot
	// be decrypted or carry invalid timing are skipped.
	//
	// Returns an error only if reading check-ins or persisting a match fails.
	MatchAndStore(ctx context.Context, packageID int64, contents models.PackageContents) error

	// Matches returns every stored match.
	Matches(ctx context.Context) ([]models.TraceTimeIntervalMatch, error)
}

// TraceWarningDownloader drives a download cycle over all configured
// regions: discovery, revocation and outdated cleanup, delta computation,
// verification and matching.
type TraceWarningDownloader interface {
	// StartDownload runs one full cycle and blocks until every region has
	// finished. Returns [ErrDownloadAlreadyRunning] immediately, without any
	// I/O, if a cycle is already in progress.
	StartDownload(ctx context.Context) (models.DownloadOutcome, error)

	// Status returns the current state of the downloader.
	Status() models.DownloadStatus

	// OnStatusChange registers fn to be called on every status transition.
	OnStatusChange(fn func(models.DownloadStatus))

	// DeterminePackagesToDownload returns, in ascending order, the ids of
	// available that are not below earliest and not present in cached.
	DeterminePackagesToDownload(available []int64, earliest int64, cached []models.TraceWarningPackageMetadata) []int64

	// EarliestRelevantPackageID returns the package hour of the earliest
	// check-in start. Returns [ErrNoEarliestRelevantPackage] for no check-ins.
	EarliestRelevantPackageID(checkins []models.Checkin) (int64, error)
}

// ClientSubmissionService turns local check-ins into encrypted warning
// reports and uploads them.
type ClientSubmissionService interface {
	// PrepareSubmission builds one encrypted report per single-day fragment of
	// every completed check-in that has not been submitted yet.
	PrepareSubmission(ctx context.Context, transmissionRiskLevel int) ([]models.CheckinSubmission, error)

	// Submit prepares the reports, uploads them and marks the source
	// check-ins as submitted. Does nothing if there is nothing to submit.
	Submit(ctx context.Context, transmissionRiskLevel int) error
}

// CheckinService records check-ins produced by the capture flow.
type CheckinService interface {
	// Record validates checkin, derives its location hash and stores it.
	// The stored check-in, with its id, is returned.
	Record(ctx context.Context, checkin models.Checkin) (models.Checkin, error)

	// List returns every stored check-in.
	List(ctx context.Context) ([]models.Checkin, error)
}

// ClientDownloadJob runs download cycles periodically in the background.
type ClientDownloadJob interface {
	// Start launches the background loop. A running loop is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and waits for it to exit.
	Stop()
}
