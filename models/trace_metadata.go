// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TraceWarningPackageMetadata records a warning package that has been fully
// processed. A package is identified by its region and hour id.
type TraceWarningPackageMetadata struct {
	// ID is the package hour, in hours since the Unix epoch.
	ID     int64  `json:"id"`
	Region string `json:"region"`
	// ETag is the server version tag, compared against the revocation list.
	ETag string `json:"etag"`
}

// TraceTimeIntervalMatch is a persisted overlap between a local check-in and a
// published warning. Interval numbers are 10-minute units since the epoch and
// EndIntervalNumber is exclusive.
type TraceTimeIntervalMatch struct {
	ID                    int64  `json:"id"`
	CheckinID             int64  `json:"checkin_id"`
	PackageID             int64  `json:"package_id"`
	LocationID            []byte `json:"location_id"`
	TransmissionRiskLevel int    `json:"transmission_risk_level"`
	StartIntervalNumber   int64  `json:"start_interval_number"`
	EndIntervalNumber     int64  `json:"end_interval_number"`
}
