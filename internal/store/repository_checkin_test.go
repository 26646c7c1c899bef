package store

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-trace-warnings/internal/logger"
	"github.com/MKhiriev/go-trace-warnings/migrations"
	"github.com/MKhiriev/go-trace-warnings/models"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkinRow(id int64, hash []byte, start time.Time, end any) []driver.Value {
	return []driver.Value{
		id, []byte("loc"), hash, 3, 1, "Cafe", "Main St 1",
		nil, nil, int64(15), []byte("seed"),
		start, end, true, false, false,
	}
}

func TestListCheckins(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	start := time.Date(2021, 3, 4, 8, 30, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, location_id, location_id_hash")).
		WillReturnRows(sqlmock.NewRows(checkinColumns).
			AddRow(checkinRow(1, []byte{0xaa}, start, end)...).
			AddRow(checkinRow(2, []byte{0xbb}, end, nil)...))

	got, err := repo.ListCheckins(testContext())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "Cafe", got[0].LocationDescription)
	require.NotNil(t, got[0].CheckinEndDate)
	assert.True(t, end.Equal(*got[0].CheckinEndDate))
	require.NotNil(t, got[0].DefaultLengthMinutes)
	assert.Equal(t, 15, *got[0].DefaultLengthMinutes)
	assert.Nil(t, got[0].LocationStartDate)
	assert.Nil(t, got[1].CheckinEndDate)
	assert.True(t, got[1].IsOpen())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCheckins_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListCheckins(testContext())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrRetryable)
}

func TestListCheckins_BusyIsRetryable(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	mock.ExpectQuery("SELECT").WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := repo.ListCheckins(testContext())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrRetryable)
}

func TestFindByLocationIDHash_PostgresPlaceholders(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectPostgres), logger.Nop())

	hash := []byte{1, 2, 3}
	start := time.Date(2021, 3, 4, 8, 30, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM checkins WHERE location_id_hash = $1")).
		WithArgs(hash).
		WillReturnRows(sqlmock.NewRows(checkinColumns).AddRow(checkinRow(7, hash, start, start)...))

	got, err := repo.FindByLocationIDHash(testContext(), hash)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, hash, got[0].LocationIDHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByLocationIDHash_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	_, err := repo.FindByLocationIDHash(testContext(), []byte{1})

	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestCreateCheckin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	start := time.Date(2021, 3, 4, 8, 30, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO checkins (location_id,location_id_hash,")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	id, err := repo.CreateCheckin(testContext(), models.Checkin{
		ID:               999,
		LocationID:       []byte("loc"),
		LocationIDHash:   []byte("hash"),
		CheckinStartDate: start,
		CheckinEndDate:   &end,
		Completed:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCheckin_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	mock.ExpectQuery("INSERT INTO checkins").WillReturnError(errors.New("constraint failed"))

	_, err := repo.CreateCheckin(testContext(), models.Checkin{CheckinStartDate: time.Now()})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestMarkSubmitted(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE checkins SET submitted = ? WHERE id IN (?,?)")).
		WithArgs(true, int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.MarkSubmitted(testContext(), 1, 2))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSubmitted_NoIDs(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewCheckinRepository(newDBFromSQL(db, migrations.DialectSQLite), logger.Nop())

	require.NoError(t, repo.MarkSubmitted(testContext()))
	require.NoError(t, mock.ExpectationsWereMet())
}
