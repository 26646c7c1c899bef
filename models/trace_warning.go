// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// IntervalSeconds is the length of one interval number unit (10 minutes).
const IntervalSeconds = 600

// IntervalNumber returns the number of whole 10-minute intervals between the
// Unix epoch and t.
func IntervalNumber(t time.Time) int64 {
	return t.Unix() / IntervalSeconds
}

// IntervalStart returns the instant at which interval number n begins, in UTC.
func IntervalStart(n int64) time.Time {
	return time.Unix(n*IntervalSeconds, 0).UTC()
}

// UnixHours returns the number of whole hours between the Unix epoch and t.
// Warning packages are identified by this value.
func UnixHours(t time.Time) int64 {
	return t.Unix() / 3600
}

// Warning is a single decoded warning: a location (by hash) was risky during
// [StartIntervalNumber, StartIntervalNumber+Period) interval units.
type Warning struct {
	LocationIDHash        []byte `json:"location_id_hash"`
	StartIntervalNumber   int64  `json:"start_interval_number"`
	Period                int64  `json:"period"`
	TransmissionRiskLevel int    `json:"transmission_risk_level"`
}

// EndIntervalNumber returns the first interval number not covered by w.
func (w Warning) EndIntervalNumber() int64 {
	return w.StartIntervalNumber + w.Period
}

// EncryptedWarningReport is a warning that can only be read by devices that
// know the location's raw id. MessageAuthenticationCode covers
// InitializationVector followed by EncryptedPayload.
type EncryptedWarningReport struct {
	LocationIDHash            []byte `json:"location_id_hash"`
	EncryptedPayload          []byte `json:"encrypted_payload"`
	InitializationVector      []byte `json:"iv"`
	MessageAuthenticationCode []byte `json:"mac"`
}

// PackageKind tells which field of [PackageContents] carries the entries.
type PackageKind int

const (
	// PackagePlain packages carry readable [Warning] entries.
	PackagePlain PackageKind = iota
	// PackageEncrypted packages carry [EncryptedWarningReport] entries.
	PackageEncrypted
)

func (k PackageKind) String() string {
	switch k {
	case PackagePlain:
		return "plain"
	case PackageEncrypted:
		return "encrypted"
	default:
		return "unknown"
	}
}

// PackageContents is a decoded warning package. Only the slice matching Kind
// is read.
type PackageContents struct {
	Kind             PackageKind
	Warnings         []Warning
	EncryptedReports []EncryptedWarningReport
}

// PlainPackage wraps warnings into [PackageContents].
func PlainPackage(warnings ...Warning) PackageContents {
	return PackageContents{Kind: PackagePlain, Warnings: warnings}
}

// EncryptedPackage wraps encrypted reports into [PackageContents].
func EncryptedPackage(reports ...EncryptedWarningReport) PackageContents {
	return PackageContents{Kind: PackageEncrypted, EncryptedReports: reports}
}

// Len returns the number of entries of the active kind.
func (p PackageContents) Len() int {
	if p.Kind == PackageEncrypted {
		return len(p.EncryptedReports)
	}
	return len(p.Warnings)
}
