// Package migrations embeds the database schema and applies it with goose.
// Each supported dialect keeps its own set of migrations in a subdirectory
// named after it.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect names a supported database backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// gooseDialect maps a [Dialect] to the goose dialect name.
var gooseDialect = map[Dialect]string{
	DialectSQLite:   "sqlite3",
	DialectPostgres: "pgx",
}

func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return fmt.Errorf("migration error: db is nil")
	}

	name, ok := gooseDialect[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(name); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
