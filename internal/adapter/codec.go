// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-trace-warnings/models"
)

// envelope is the signed wrapper around a package payload. Both fields are
// base64 in JSON.
type envelope struct {
	Payload   []byte `json:"payload"`
	Signature []byte `json:"signature"`
}

// packagePayload is the signed content of a package. At most one of the two
// keys may be present.
type packagePayload struct {
	Warnings         *[]models.Warning                `json:"warnings,omitempty"`
	EncryptedReports *[]models.EncryptedWarningReport `json:"encrypted_reports,omitempty"`
}

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if len(env.Payload) == 0 {
		return envelope{}, fmt.Errorf("%w: missing payload", ErrMalformedEnvelope)
	}
	return env, nil
}

// DecodePackage turns a verified package payload into [models.PackageContents].
// A payload with an "encrypted_reports" key decodes to an encrypted package,
// anything else to a plain one. Returns [ErrMalformedPackage] when the payload
// is not valid JSON or carries both keys.
func DecodePackage(payload []byte) (models.PackageContents, error) {
	var p packagePayload

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return models.PackageContents{}, fmt.Errorf("%w: %w", ErrMalformedPackage, err)
	}

	switch {
	case p.Warnings != nil && p.EncryptedReports != nil:
		return models.PackageContents{}, fmt.Errorf("%w: both warnings and encrypted reports present", ErrMalformedPackage)
	case p.EncryptedReports != nil:
		return models.EncryptedPackage(*p.EncryptedReports...), nil
	case p.Warnings != nil:
		return models.PlainPackage(*p.Warnings...), nil
	default:
		return models.PlainPackage(), nil
	}
}

// EncodePackage is the inverse of [DecodePackage].
func EncodePackage(contents models.PackageContents) ([]byte, error) {
	var p packagePayload
	switch contents.Kind {
	case models.PackageEncrypted:
		reports := contents.EncryptedReports
		if reports == nil {
			reports = []models.EncryptedWarningReport{}
		}
		p.EncryptedReports = &reports
	default:
		warnings := contents.Warnings
		if warnings == nil {
			warnings = []models.Warning{}
		}
		p.Warnings = &warnings
	}
	return json.Marshal(p)
}

// EncodeEnvelope wraps a payload and its signature into the body served by
// the package server.
func EncodeEnvelope(payload, signature []byte) ([]byte, error) {
	return json.Marshal(envelope{Payload: payload, Signature: signature})
}
