// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/models"
)

func Test_buildInsertClientsQuery(t *testing.T) {
	query, args, err := buildInsertClientsQuery([]models.Client{
		{AccountNumber: "AC1", PinCode: "0000", Name: "Bob", Phone: "555", Balance: 50},
		{AccountNumber: "AC2", PinCode: "1111", Name: "Eve", Phone: "556", Balance: -1},
	}, 0)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into clients")
	for _, c := range []string{"position", "account_number", "pin_code", "name", "phone", "balance"} {
		require.Contains(t, q, c)
	}
	// sqlite placeholders
	require.NotContains(t, query, "$1")
	require.Equal(t, 12, strings.Count(query, "?"))

	assert.Equal(t, []any{
		int64(0), "AC1", "0000", "Bob", "555", int64(50),
		int64(1), "AC2", "1111", "Eve", "556", int64(-1),
	}, args)
}

func Test_replaceClients_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM clients").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO clients").
		WithArgs(int64(0), "AC1", "0000", "Bob", "555", int64(50)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = replaceClients(context.Background(), db, []models.Client{
		{AccountNumber: "AC1", PinCode: "0000", Name: "Bob", Phone: "555", Balance: 50},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_replaceClients_InsertsInBatches(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clients := make([]models.Client, 2*insertClientsBatchSize+1)
	for i := range clients {
		clients[i] = models.Client{AccountNumber: fmt.Sprintf("AC%d", i)}
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM clients").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(0, insertClientsBatchSize))
	mock.ExpectExec("INSERT INTO clients").WillReturnResult(sqlmock.NewResult(0, insertClientsBatchSize))
	mock.ExpectExec("INSERT INTO clients").
		WithArgs(int64(2*insertClientsBatchSize), clients[2*insertClientsBatchSize].AccountNumber, "", "", "", int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, replaceClients(context.Background(), db, clients))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_replaceClients_EmptyStoreOnlyDeletes(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM clients").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, replaceClients(context.Background(), db, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_replaceClients_InsertErrorRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM clients").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO clients").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = replaceClients(context.Background(), db, []models.Client{{AccountNumber: "AC1"}})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_replaceClients_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(assert.AnError)

	err = replaceClients(context.Background(), db, nil)

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSQLiteClientExporter_Export_ConnectFailure(t *testing.T) {
	exp := &sqliteClientExporter{
		connect: func(ctx context.Context, path string) (*DB, error) {
			return nil, assert.AnError
		},
		logger: logger.Nop(),
	}

	err := exp.Export(context.Background(), "clients.db", nil)

	assert.ErrorIs(t, err, ErrExportFileOpen)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSQLiteClientExporter_Export_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "clients.db")

	err := NewSQLiteClientExporter(logger.Nop()).Export(context.Background(), path, nil)

	assert.ErrorIs(t, err, ErrExportFileOpen)
}

func TestSQLiteClientExporter_Export_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.db")
	exp := NewSQLiteClientExporter(logger.Nop())
	clients := []models.Client{
		{AccountNumber: "AC2", PinCode: "2", Name: "Second", Phone: "2", Balance: 20},
		{AccountNumber: "AC1", PinCode: "1", Name: "First#//#One", Phone: "1", Balance: -10},
	}

	require.NoError(t, exp.Export(context.Background(), path, clients))
	// second export replaces rather than duplicates
	require.NoError(t, exp.Export(context.Background(), path, clients))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT account_number, pin_code, name, phone, balance FROM clients ORDER BY position`)
	require.NoError(t, err)
	defer rows.Close()

	var got []models.Client
	for rows.Next() {
		var c models.Client
		require.NoError(t, rows.Scan(&c.AccountNumber, &c.PinCode, &c.Name, &c.Phone, &c.Balance))
		got = append(got, c)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, clients, got)
}

func TestSQLiteClientExporter_Export_ManyClients(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clients.db")
	clients := make([]models.Client, 6000)
	for i := range clients {
		clients[i] = models.Client{AccountNumber: fmt.Sprintf("AC%05d", i), Balance: int64(i)}
	}

	require.NoError(t, NewSQLiteClientExporter(logger.Nop()).Export(context.Background(), path, clients))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	var last string
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&count))
	require.NoError(t, db.QueryRow(`SELECT account_number FROM clients ORDER BY position DESC LIMIT 1`).Scan(&last))
	assert.Equal(t, len(clients), count)
	assert.Equal(t, "AC05999", last)
}
