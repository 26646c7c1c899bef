// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DiscoveryResult lists the package hours a server currently offers for a
// region.
type DiscoveryResult struct {
	AvailableIDs []int64
	OldestID     int64
}

// DownloadedPackage is the raw result of fetching one package. Payload and
// Signature are empty when IsEmpty is set.
type DownloadedPackage struct {
	IsEmpty   bool
	ETag      string
	Payload   []byte
	Signature []byte
}

// DownloadStatus is the state of the download orchestrator.
type DownloadStatus string

const (
	StatusIdle                   DownloadStatus = "idle"
	StatusCheckingForNewPackages DownloadStatus = "checkingForNewPackages"
	StatusDownloading            DownloadStatus = "downloading"
)

// DownloadOutcome is the kind of a successful download cycle. It is surfaced
// for observability only and never represents an error.
type DownloadOutcome string

const (
	OutcomeOrdinary       DownloadOutcome = "ordinary"
	OutcomeEmptyPackage   DownloadOutcome = "emptyPackage"
	OutcomeEmptyDiscovery DownloadOutcome = "emptyDiscovery"
	OutcomeNoCheckins     DownloadOutcome = "noCheckins"
)

var outcomeRank = map[DownloadOutcome]int{
	OutcomeOrdinary:       0,
	OutcomeEmptyPackage:   1,
	OutcomeEmptyDiscovery: 2,
	OutcomeNoCheckins:     3,
}

// Coarsest returns the coarser of o and other. An unknown outcome ranks as
// ordinary.
func (o DownloadOutcome) Coarsest(other DownloadOutcome) DownloadOutcome {
	if outcomeRank[other] > outcomeRank[o] {
		return other
	}
	if o == "" {
		return OutcomeOrdinary
	}
	return o
}
