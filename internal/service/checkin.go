package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trace-warnings/internal/crypto"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/internal/store"
	"github.com/MKhiriev/go-trace-warnings/models"
)

type checkinService struct {
	checkins store.CheckinRepository
	crypto   crypto.WarningCrypto
}

func NewCheckinService(checkins store.CheckinRepository, warningCrypto crypto.WarningCrypto) CheckinService {
	return &checkinService{checkins: checkins, crypto: warningCrypto}
}

// Record implements [CheckinService]. A check-in with an end date is stored
// as completed; fresh check-ins are never marked submitted.
func (c *checkinService) Record(ctx context.Context, checkin models.Checkin) (models.Checkin, error) {
	if err := validateCheckin(checkin); err != nil {
		return models.Checkin{}, err
	}

	checkin.LocationIDHash = c.crypto.LocationIDHash(checkin.LocationID)
	checkin.Completed = checkin.Completed || !checkin.IsOpen()
	checkin.Submitted = false

	id, err := c.checkins.CreateCheckin(ctx, checkin)
	if err != nil {
		return models.Checkin{}, fmt.Errorf("create checkin: %w", err)
	}
	checkin.ID = id

	logger.FromContext(ctx).Debug().
		Str("func", "checkinService.Record").
		Int64("checkin_id", id).
		Bool("open", checkin.IsOpen()).
		Msg("checkin recorded")

	return checkin, nil
}

// List implements [CheckinService].
func (c *checkinService) List(ctx context.Context) ([]models.Checkin, error) {
	return c.checkins.ListCheckins(ctx)
}

func validateCheckin(checkin models.Checkin) error {
	if len(checkin.LocationID) == 0 {
		return ErrEmptyLocationID
	}
	if checkin.CheckinStartDate.IsZero() {
		return ErrEmptyCheckinStart
	}
	if checkin.CheckinEndDate != nil && checkin.CheckinEndDate.Before(checkin.CheckinStartDate) {
		return ErrCheckinEndsTooEarly
	}
	return nil
}
