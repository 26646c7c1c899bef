// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-trace-warnings/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CheckinRepository reads and writes locally recorded check-ins.
type CheckinRepository interface {
	// ListCheckins returns every check-in ordered by start date.
	ListCheckins(ctx context.Context) ([]models.Checkin, error)

	// CreateCheckin stores checkin and returns the id assigned by the
	// database. checkin.ID is ignored.
	CreateCheckin(ctx context.Context, checkin models.Checkin) (int64, error)

	// MarkSubmitted flags the given check-ins as sent upstream.
	MarkSubmitted(ctx context.Context, ids ...int64) error

	// FindByLocationIDHash returns the check-ins recorded at the location
	// identified by hash.
	FindByLocationIDHash(ctx context.Context, hash []byte) ([]models.Checkin, error)
}

// MatchRepository persists matches produced by the warning matcher.
type MatchRepository interface {
	// CreateMatch stores match. Storing a match identical to an existing one
	// (same check-in, package, interval and risk level) is a no-op reported
	// by created == false.
	CreateMatch(ctx context.Context, match models.TraceTimeIntervalMatch) (created bool, err error)

	// ListMatches returns every stored match ordered by id.
	ListMatches(ctx context.Context) ([]models.TraceTimeIntervalMatch, error)
}

// PackageMetadataRepository keeps track of the packages already processed.
type PackageMetadataRepository interface {
	ListPackageMetadata(ctx context.Context) ([]models.TraceWarningPackageMetadata, error)

	// CreatePackageMetadata stores meta, replacing the eTag of an existing
	// record with the same region and id.
	CreatePackageMetadata(ctx context.Context, meta models.TraceWarningPackageMetadata) error

	// DeletePackageMetadata removes the records of region with the given ids.
	DeletePackageMetadata(ctx context.Context, region string, ids ...int64) error

	DeleteAllPackageMetadata(ctx context.Context) error
}

// DownloadStateRepository stores the result of the last download cycle.
type DownloadStateRepository interface {
	// WasRecentDownloadSuccessful reports the recorded result of the last
	// cycle. It is false when no cycle has been recorded yet.
	WasRecentDownloadSuccessful(ctx context.Context) (bool, error)

	SetRecentDownloadSuccessful(ctx context.Context, successful bool) error
}
