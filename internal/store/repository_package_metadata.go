package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/models"
)

type packageMetadataRepository struct {
	*DB
	logger *logger.Logger
}

func NewPackageMetadataRepository(db *DB, logger *logger.Logger) PackageMetadataRepository {
	return &packageMetadataRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *packageMetadataRepository) ListPackageMetadata(ctx context.Context) ([]models.TraceWarningPackageMetadata, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().
		Select("id", "region", "etag").
		From("trace_warning_packages").
		OrderBy("region", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "packageMetadataRepository.ListPackageMetadata").Msg("failed to execute query for package metadata")
		return nil, p.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	var metadata []models.TraceWarningPackageMetadata
	for rows.Next() {
		var meta models.TraceWarningPackageMetadata
		if scanErr := rows.Scan(&meta.ID, &meta.Region, &meta.ETag); scanErr != nil {
			log.Err(scanErr).Str("func", "packageMetadataRepository.ListPackageMetadata").Msg("failed to scan package metadata row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		metadata = append(metadata, meta)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "packageMetadataRepository.ListPackageMetadata").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return metadata, nil
}

func (p *packageMetadataRepository) CreatePackageMetadata(ctx context.Context, meta models.TraceWarningPackageMetadata) error {
	log := logger.FromContext(ctx)

	query, args, err := p.builder().
		Insert("trace_warning_packages").
		Columns("id", "region", "etag").
		Values(meta.ID, meta.Region, meta.ETag).
		Suffix("ON CONFLICT (region, id) DO UPDATE SET etag = excluded.etag").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = p.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "packageMetadataRepository.CreatePackageMetadata").
			Str("region", meta.Region).
			Int64("package_id", meta.ID).
			Msg("failed to insert package metadata")
		return p.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

func (p *packageMetadataRepository) DeletePackageMetadata(ctx context.Context, region string, ids ...int64) error {
	if len(ids) == 0 {
		return nil
	}

	return p.delete(ctx, "packageMetadataRepository.DeletePackageMetadata",
		squirrel.Eq{"region": region, "id": ids})
}

func (p *packageMetadataRepository) DeleteAllPackageMetadata(ctx context.Context) error {
	return p.delete(ctx, "packageMetadataRepository.DeleteAllPackageMetadata", nil)
}

func (p *packageMetadataRepository) delete(ctx context.Context, funcName string, where squirrel.Sqlizer) error {
	log := logger.FromContext(ctx)

	builder := p.builder().Delete("trace_warning_packages")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to delete package metadata")
		return p.wrapError(ErrExecutingStatement, err)
	}

	if affected, affErr := result.RowsAffected(); affErr == nil && affected > 0 {
		log.Debug().Str("func", funcName).Int64("deleted", affected).Msg("package metadata deleted")
	}

	return nil
}
