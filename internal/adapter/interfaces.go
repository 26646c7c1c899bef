// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer towards the warning package
// server.
//
// The primary abstraction is [WarningPackageAdapter], which decouples the
// download orchestrator and the submission service from the underlying
// protocol. The package ships an HTTP/REST implementation
// ([NewHTTPWarningPackageAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-trace-warnings/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/warning_package_adapter_mock.go -package=mock

// WarningPackageAdapter defines transport-agnostic communication with the
// warning package server. Implementations are responsible for serialisation
// and for mapping transport-level errors to the sentinel values defined in
// this package. Retries are not performed.
type WarningPackageAdapter interface {
	// Discover fetches the package hours the server offers for region.
	// AvailableIDs is ascending and empty when the server has nothing to
	// offer.
	Discover(ctx context.Context, region string) (models.DiscoveryResult, error)

	// Download fetches the package for region published at hour id. The
	// payload is returned undecoded together with its signature so that the
	// caller can verify it before decoding with [DecodePackage].
	Download(ctx context.Context, region string, id int64) (models.DownloadedPackage, error)

	// Submit uploads encrypted warning reports built from local check-ins.
	Submit(ctx context.Context, req models.SubmissionRequest) error
}
