package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trace-warnings/internal/adapter"
	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
	"github.com/MKhiriev/go-trace-warnings/models"
)

type clientSubmissionService struct {
	checkins store.CheckinRepository
	adapter  adapter.WarningPackageAdapter
	crypto   crypto.WarningCrypto
}

func NewClientSubmissionService(checkins store.CheckinRepository, packageAdapter adapter.WarningPackageAdapter,
	warningCrypto crypto.WarningCrypto) ClientSubmissionService {
	return &clientSubmissionService{
		checkins: checkins,
		adapter:  packageAdapter,
		crypto:   warningCrypto,
	}
}

// PrepareSubmission implements [ClientSubmissionService]. Each fragment is
// widened to whole intervals: it starts at the interval containing its start
// and lasts until the interval containing its end is complete.
func (s *clientSubmissionService) PrepareSubmission(ctx context.Context, transmissionRiskLevel int) ([]models.CheckinSubmission, error) {
	if transmissionRiskLevel < minTransmissionRiskLevel || transmissionRiskLevel > maxTransmissionRiskLevel {
		return nil, ErrInvalidTransmissionRiskLevel
	}

	checkins, err := s.checkins.ListCheckins(ctx)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}

	var submissions []models.CheckinSubmission
	for _, checkin := range checkins {
		if !checkin.Completed || checkin.Submitted || checkin.IsOpen() {
			continue
		}

		for _, fragment := range SplitCheckinByDay(checkin) {
			report, err := s.crypto.EncryptReport(checkin.LocationID, fragmentWarning(fragment, transmissionRiskLevel))
			if err != nil {
				return nil, fmt.Errorf("encrypt checkin %d: %w", checkin.ID, err)
			}
			submissions = append(submissions, models.CheckinSubmission{Fragment: fragment, Report: report})
		}
	}

	return submissions, nil
}

// Submit implements [ClientSubmissionService].
func (s *clientSubmissionService) Submit(ctx context.Context, transmissionRiskLevel int) error {
	log := logger.FromContext(ctx)

	submissions, err := s.PrepareSubmission(ctx, transmissionRiskLevel)
	if err != nil {
		return err
	}
	if len(submissions) == 0 {
		log.Info().Str("func", "clientSubmissionService.Submit").Msg("nothing to submit")
		return nil
	}

	reports := make([]models.EncryptedWarningReport, 0, len(submissions))
	ids := make([]int64, 0, len(submissions))
	for _, sub := range submissions {
		reports = append(reports, sub.Report)
		if len(ids) == 0 || ids[len(ids)-1] != sub.Fragment.ID {
			ids = append(ids, sub.Fragment.ID)
		}
	}

	if err = s.adapter.Submit(ctx, models.SubmissionRequest{Reports: reports}); err != nil {
		return fmt.Errorf("submit reports: %w", err)
	}

	if err = s.checkins.MarkSubmitted(ctx, ids...); err != nil {
		return fmt.Errorf("mark checkins submitted: %w", err)
	}

	log.Info().
		Str("func", "clientSubmissionService.Submit").
		Int("reports", len(reports)).
		Int("checkins", len(ids)).
		Msg("checkins submitted")
	return nil
}

func fragmentWarning(fragment models.Checkin, transmissionRiskLevel int) models.Warning {
	start := models.IntervalNumber(fragment.CheckinStartDate)
	endSeconds := fragment.CheckinEndDate.Unix()
	end := endSeconds / models.IntervalSeconds
	if endSeconds%models.IntervalSeconds != 0 {
		end++
	}

	return models.Warning{
		StartIntervalNumber:   start,
		Period:                max(end-start, 1),
		TransmissionRiskLevel: transmissionRiskLevel,
	}
}
