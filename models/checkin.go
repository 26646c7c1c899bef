// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Checkin is a locally recorded attendance at a declared location.
//
// ID is assigned by the store and ignored on create. LocationIDHash is the
// SHA-256 digest of LocationID and is the only location identifier that ever
// appears in server-published warnings.
type Checkin struct {
	ID                   int64      `json:"id"`
	LocationID           []byte     `json:"location_id"`
	LocationIDHash       []byte     `json:"location_id_hash"`
	LocationVersion      int        `json:"location_version"`
	LocationType         int        `json:"location_type"`
	LocationDescription  string     `json:"location_description"`
	LocationAddress      string     `json:"location_address"`
	LocationStartDate    *time.Time `json:"location_start_date,omitempty"`
	LocationEndDate      *time.Time `json:"location_end_date,omitempty"`
	DefaultLengthMinutes *int       `json:"default_length_minutes,omitempty"`
	CryptographicSeed    []byte     `json:"cryptographic_seed"`
	CheckinStartDate     time.Time  `json:"checkin_start_date"`
	// CheckinEndDate is nil while the visit is still open.
	CheckinEndDate     *time.Time `json:"checkin_end_date,omitempty"`
	Completed          bool       `json:"completed"`
	CreateJournalEntry bool       `json:"create_journal_entry"`
	Submitted          bool       `json:"submitted"`
}

// IsOpen reports whether the visit has no end date yet.
func (c Checkin) IsOpen() bool {
	return c.CheckinEndDate == nil
}
