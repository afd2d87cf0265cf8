package postgres_test

import (
	"context"
	"errors"
	"testing"

	"hotel/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "postgres")
	t.Cleanup(func() { db.Close() })

	return postgres.NewTransactor(&postgres.Connection{Read: db, Write: db}), mock
}

func TestWithTransaction_Commit(t *testing.T) {
	txr, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txr.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec("UPDATE rooms SET status = 'BOOKED'")

		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_Rollback(t *testing.T) {
	txr, mock := newTransactor(t)
	boom := errors.New("room not available")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := txr.WithTransaction(context.Background(), func(*sqlx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_BeginFails(t *testing.T) {
	txr, mock := newTransactor(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := txr.WithTransaction(context.Background(), func(*sqlx.Tx) error {
		called = true

		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.False(t, called)
}
