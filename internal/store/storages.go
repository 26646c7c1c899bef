package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-trace-warnings/internal/config"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	CheckinRepository         CheckinRepository
	MatchRepository           MatchRepository
	PackageMetadataRepository PackageMetadataRepository
	DownloadStateRepository   DownloadStateRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens a SQLite or PostgreSQL connection depending on cfg.DB.DSN,
//     creating the SQLite file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStoragesFromDB(db, logger), nil
}

func newStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CheckinRepository:         NewCheckinRepository(db, logger),
		MatchRepository:           NewMatchRepository(db, logger),
		PackageMetadataRepository: NewPackageMetadataRepository(db, logger),
		DownloadStateRepository:   NewDownloadStateRepository(db, logger),
		db:                        db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
