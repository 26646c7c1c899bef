package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
)

// downloadStateRow is the id of the single row of download_state.
const downloadStateRow = 1

type downloadStateRepository struct {
	*DB
	logger *logger.Logger
}

func NewDownloadStateRepository(db *DB, logger *logger.Logger) DownloadStateRepository {
	return &downloadStateRepository{
		DB:     db,
		logger: logger,
	}
}

func (d *downloadStateRepository) WasRecentDownloadSuccessful(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := d.builder().
		Select("recent_download_successful").
		From("download_state").
		Where(squirrel.Eq{"id": downloadStateRow}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var successful bool
	err = d.DB.QueryRowContext(ctx, query, args...).Scan(&successful)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "downloadStateRepository.WasRecentDownloadSuccessful").Msg("failed to read download state")
		return false, d.wrapError(ErrExecutingQuery, err)
	}

	return successful, nil
}

func (d *downloadStateRepository) SetRecentDownloadSuccessful(ctx context.Context, successful bool) error {
	log := logger.FromContext(ctx)

	query, args, err := d.builder().
		Insert("download_state").
		Columns("id", "recent_download_successful").
		Values(downloadStateRow, successful).
		Suffix("ON CONFLICT (id) DO UPDATE SET recent_download_successful = excluded.recent_download_successful").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = d.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "downloadStateRepository.SetRecentDownloadSuccessful").
			Bool("successful", successful).
			Msg("failed to store download state")
		return d.wrapError(ErrExecutingStatement, err)
	}

	return nil
}
