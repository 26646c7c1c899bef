// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CheckinSubmission is one encrypted report prepared for upload together with
// the single-day check-in fragment it was built from.
type CheckinSubmission struct {
	Fragment Checkin                `json:"-"`
	Report   EncryptedWarningReport `json:"report"`
}

// SubmissionRequest is the body posted to the submission endpoint.
type SubmissionRequest struct {
	Reports []EncryptedWarningReport `json:"reports"`
	Length  int                      `json:"length"`
}
