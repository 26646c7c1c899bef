package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/models"
)

const matchIdentityConflict = "ON CONFLICT (checkin_id, package_id, start_interval_number, end_interval_number, transmission_risk_level) DO NOTHING"

// matchRepository is the SQL implementation of [MatchRepository]. The table
// carries a unique constraint over the identity of a match so that a package
// matched twice (a retried cycle) does not produce duplicates.
type matchRepository struct {
	*DB
	logger *logger.Logger
}

func NewMatchRepository(db *DB, logger *logger.Logger) MatchRepository {
	return &matchRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *matchRepository) CreateMatch(ctx context.Context, match models.TraceTimeIntervalMatch) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.builder().
		Insert("trace_time_interval_matches").
		Columns(
			"checkin_id",
			"package_id",
			"location_id",
			"transmission_risk_level",
			"start_interval_number",
			"end_interval_number",
		).
		Values(
			match.CheckinID,
			match.PackageID,
			match.LocationID,
			match.TransmissionRiskLevel,
			match.StartIntervalNumber,
			match.EndIntervalNumber,
		).
		Suffix(matchIdentityConflict).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := m.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "matchRepository.CreateMatch").
			Int64("checkin_id", match.CheckinID).
			Int64("package_id", match.PackageID).
			Msg("failed to insert match")
		return false, m.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, m.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Str("func", "matchRepository.CreateMatch").
			Int64("checkin_id", match.CheckinID).
			Int64("package_id", match.PackageID).
			Msg("match already stored")
	}

	return affected > 0, nil
}

func (m *matchRepository) ListMatches(ctx context.Context) ([]models.TraceTimeIntervalMatch, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.builder().
		Select(
			"id",
			"checkin_id",
			"package_id",
			"location_id",
			"transmission_risk_level",
			"start_interval_number",
			"end_interval_number",
		).
		From("trace_time_interval_matches").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "matchRepository.ListMatches").Msg("failed to execute query for matches")
		return nil, m.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	matches := make([]models.TraceTimeIntervalMatch, 0)
	for rows.Next() {
		var match models.TraceTimeIntervalMatch
		scanErr := rows.Scan(
			&match.ID,
			&match.CheckinID,
			&match.PackageID,
			&match.LocationID,
			&match.TransmissionRiskLevel,
			&match.StartIntervalNumber,
			&match.EndIntervalNumber,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "matchRepository.ListMatches").Msg("failed to scan match row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		matches = append(matches, match)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "matchRepository.ListMatches").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return matches, nil
}
