// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the db itself, no expectations means every query fails

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, Dialect("mysql"))
	if !errors.Is(err, ErrUnsupportedDialect) {
		t.Fatalf("expected ErrUnsupportedDialect, got: %v", err)
	}
}

func TestEmbeddedMigrations_SameVersionsPerDialect(t *testing.T) {
	sqlite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	if err != nil {
		t.Fatalf("glob sqlite: %v", err)
	}
	postgres, err := fs.Glob(embedMigrations, "postgres/*.sql")
	if err != nil {
		t.Fatalf("glob postgres: %v", err)
	}

	if len(sqlite) == 0 || len(sqlite) != len(postgres) {
		t.Fatalf("expected the same non-zero number of migrations, got sqlite=%d postgres=%d", len(sqlite), len(postgres))
	}

	for i := range sqlite {
		if strings.TrimPrefix(sqlite[i], "sqlite/") != strings.TrimPrefix(postgres[i], "postgres/") {
			t.Errorf("migration %d differs: %s vs %s", i, sqlite[i], postgres[i])
		}
	}
}
