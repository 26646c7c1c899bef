// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/metrics"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
	"github.com/MKhiriev/go-trace-warnings/models"
)

const (
	minTransmissionRiskLevel = 1
	maxTransmissionRiskLevel = 8
)

type traceWarningMatcher struct {
	checkins store.CheckinRepository
	matches  store.MatchRepository
	crypto   crypto.WarningCrypto
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewTraceWarningMatcher constructs a [TraceWarningMatcher] on top of the
// check-in and match repositories. m may be nil.
func NewTraceWarningMatcher(checkins store.CheckinRepository, matches store.MatchRepository,
	warningCrypto crypto.WarningCrypto, m *metrics.Metrics) TraceWarningMatcher {
	return &traceWarningMatcher{
		checkins: checkins,
		matches:  matches,
		crypto:   warningCrypto,
		metrics:  m,
		now:      time.Now,
	}
}

// MatchAndStore implements [TraceWarningMatcher]. Check-ins are looked up
// once per distinct location hash within a call.
func (t *traceWarningMatcher) MatchAndStore(ctx context.Context, packageID int64, contents models.PackageContents) error {
	log := logger.FromContext(ctx)
	candidates := make(map[string][]models.Checkin)

	lookup := func(hash []byte) ([]models.Checkin, error) {
		if found, ok := candidates[string(hash)]; ok {
			return found, nil
		}
		found, err := t.checkins.FindByLocationIDHash(ctx, hash)
		if err != nil {
			return nil, fmt.Errorf("find checkins by location hash: %w", err)
		}
		candidates[string(hash)] = found
		return found, nil
	}

	var warnings []models.Warning
	switch contents.Kind {
	case models.PackageEncrypted:
		for i, report := range contents.EncryptedReports {
			found, err := lookup(report.LocationIDHash)
			if err != nil {
				return err
			}
			warning, ok := t.decrypt(found, report)
			if !ok {
				log.Debug().
					Str("func", "traceWarningMatcher.MatchAndStore").
					Int64("package_id", packageID).
					Int("report", i).
					Int("candidates", len(found)).
					Msg("encrypted report skipped")
				continue
			}
			warnings = append(warnings, warning)
		}
	default:
		warnings = contents.Warnings
	}

	created := 0
	for _, warning := range warnings {
		// plain warnings are filtered too: a stored match always carries a
		// positive period and a risk level in 1..8
		if !isValidWarning(warning) {
			continue
		}
		found, err := lookup(warning.LocationIDHash)
		if err != nil {
			return err
		}
		n, err := t.storeMatches(ctx, packageID, warning, found)
		created += n
		if err != nil {
			t.metrics.IncrementMatches(created)
			return err
		}
	}
	t.metrics.IncrementMatches(created)

	log.Debug().
		Str("func", "traceWarningMatcher.MatchAndStore").
		Int64("package_id", packageID).
		Str("kind", contents.Kind.String()).
		Int("entries", contents.Len()).
		Int("matches", created).
		Msg("package matched")

	return nil
}

// decrypt tries the location id of every candidate until one authenticates
// the report.
func (t *traceWarningMatcher) decrypt(candidates []models.Checkin, report models.EncryptedWarningReport) (models.Warning, bool) {
	for _, checkin := range candidates {
		warning, err := t.crypto.DecryptReport(checkin.LocationID, report)
		if err != nil {
			continue
		}
		return warning, isValidWarning(warning)
	}
	return models.Warning{}, false
}

func (t *traceWarningMatcher) storeMatches(ctx context.Context, packageID int64, warning models.Warning, checkins []models.Checkin) (int, error) {
	now := t.now()
	created := 0

	for _, checkin := range checkins {
		if overlapMinutesAt(checkin, warning, now) <= 0 {
			continue
		}

		ok, err := t.matches.CreateMatch(ctx, models.TraceTimeIntervalMatch{
			CheckinID:             checkin.ID,
			PackageID:             packageID,
			LocationID:            checkin.LocationID,
			TransmissionRiskLevel: warning.TransmissionRiskLevel,
			StartIntervalNumber:   warning.StartIntervalNumber,
			EndIntervalNumber:     warning.EndIntervalNumber(),
		})
		if err != nil {
			return created, fmt.Errorf("create match: %w", err)
		}
		if ok {
			created++
		}
	}

	return created, nil
}

// Matches implements [TraceWarningMatcher].
func (t *traceWarningMatcher) Matches(ctx context.Context) ([]models.TraceTimeIntervalMatch, error) {
	return t.matches.ListMatches(ctx)
}

func isValidWarning(w models.Warning) bool {
	return w.StartIntervalNumber >= 0 &&
		w.Period > 0 &&
		w.TransmissionRiskLevel >= minTransmissionRiskLevel &&
		w.TransmissionRiskLevel <= maxTransmissionRiskLevel
}
