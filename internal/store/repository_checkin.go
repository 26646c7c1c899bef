package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/models"
)

var checkinColumns = []string{
	"id",
	"location_id",
	"location_id_hash",
	"location_version",
	"location_type",
	"location_description",
	"location_address",
	"location_start_date",
	"location_end_date",
	"default_length_minutes",
	"cryptographic_seed",
	"checkin_start_date",
	"checkin_end_date",
	"completed",
	"create_journal_entry",
	"submitted",
}

// checkinRepository is the SQL implementation of [CheckinRepository].
type checkinRepository struct {
	*DB
	logger *logger.Logger
}

func NewCheckinRepository(db *DB, logger *logger.Logger) CheckinRepository {
	return &checkinRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *checkinRepository) ListCheckins(ctx context.Context) ([]models.Checkin, error) {
	query, args, err := c.builder().
		Select(checkinColumns...).
		From("checkins").
		OrderBy("checkin_start_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.queryCheckins(ctx, "checkinRepository.ListCheckins", query, args...)
}

func (c *checkinRepository) FindByLocationIDHash(ctx context.Context, hash []byte) ([]models.Checkin, error) {
	query, args, err := c.builder().
		Select(checkinColumns...).
		From("checkins").
		Where(squirrel.Eq{"location_id_hash": hash}).
		OrderBy("checkin_start_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return c.queryCheckins(ctx, "checkinRepository.FindByLocationIDHash", query, args...)
}

// CreateCheckin stores checkin and returns its new id.
func (c *checkinRepository) CreateCheckin(ctx context.Context, checkin models.Checkin) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := c.builder().
		Insert("checkins").
		Columns(checkinColumns[1:]...).
		Values(
			checkin.LocationID,
			checkin.LocationIDHash,
			checkin.LocationVersion,
			checkin.LocationType,
			checkin.LocationDescription,
			checkin.LocationAddress,
			nullTime(checkin.LocationStartDate),
			nullTime(checkin.LocationEndDate),
			nullInt(checkin.DefaultLengthMinutes),
			checkin.CryptographicSeed,
			checkin.CheckinStartDate.UTC(),
			nullTime(checkin.CheckinEndDate),
			checkin.Completed,
			checkin.CreateJournalEntry,
			checkin.Submitted,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = c.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "checkinRepository.CreateCheckin").
			Msg("failed to insert checkin")
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCheckinNotSaved
		}
		return 0, c.wrapError(ErrExecutingStatement, err)
	}

	return id, nil
}

// MarkSubmitted sets the submitted flag of the given check-ins. Calling it
// without ids does nothing.
func (c *checkinRepository) MarkSubmitted(ctx context.Context, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := c.builder().
		Update("checkins").
		Set("submitted", true).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "checkinRepository.MarkSubmitted").
			Int("count", len(ids)).
			Msg("failed to mark checkins as submitted")
		return c.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (c *checkinRepository) queryCheckins(ctx context.Context, funcName, query string, args ...any) ([]models.Checkin, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for checkins")
		return nil, c.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var checkins []models.Checkin
	for rows.Next() {
		checkin, scanErr := scanCheckin(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan checkin row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		checkins = append(checkins, checkin)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return checkins, nil
}

func scanCheckin(rows *sql.Rows) (models.Checkin, error) {
	var (
		checkin                            models.Checkin
		locationStart, locationEnd, endsAt sql.NullTime
		defaultLength                      sql.NullInt64
	)

	err := rows.Scan(
		&checkin.ID,
		&checkin.LocationID,
		&checkin.LocationIDHash,
		&checkin.LocationVersion,
		&checkin.LocationType,
		&checkin.LocationDescription,
		&checkin.LocationAddress,
		&locationStart,
		&locationEnd,
		&defaultLength,
		&checkin.CryptographicSeed,
		&checkin.CheckinStartDate,
		&endsAt,
		&checkin.Completed,
		&checkin.CreateJournalEntry,
		&checkin.Submitted,
	)
	if err != nil {
		return models.Checkin{}, err
	}

	checkin.CheckinStartDate = checkin.CheckinStartDate.UTC()
	checkin.LocationStartDate = timePtr(locationStart)
	checkin.LocationEndDate = timePtr(locationEnd)
	checkin.CheckinEndDate = timePtr(endsAt)
	if defaultLength.Valid {
		minutes := int(defaultLength.Int64)
		checkin.DefaultLengthMinutes = &minutes
	}

	return checkin, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	utc := t.Time.UTC()
	return &utc
}
