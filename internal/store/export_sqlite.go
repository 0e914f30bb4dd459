// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/models"
)

// sqliteClientExporter writes clients into the "clients" table of an SQLite
// database file. The table contents are replaced in one transaction, so a
// failed export leaves the previous contents in place.
type sqliteClientExporter struct {
	connect func(ctx context.Context, path string) (*DB, error)
	logger  *logger.Logger
}

// NewSQLiteClientExporter returns a [ClientExporter] that targets SQLite
// database files.
func NewSQLiteClientExporter(log *logger.Logger) ClientExporter {
	return &sqliteClientExporter{
		connect: func(ctx context.Context, path string) (*DB, error) {
			return NewConnectSQLite(ctx, path, log)
		},
		logger: log,
	}
}

func (e *sqliteClientExporter) Export(ctx context.Context, path string, clients []models.Client) error {
	db, err := e.connect(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExportFileOpen, err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		e.logger.Err(err).
			Str("func", "sqliteClientExporter.Export").
			Str("path", path).
			Msg("failed to migrate export database")
		return fmt.Errorf("%w: %w", ErrExportWrite, err)
	}

	if err = replaceClients(ctx, db.DB, clients); err != nil {
		e.logger.Err(err).
			Str("func", "sqliteClientExporter.Export").
			Str("path", path).
			Msg("failed to write clients to export database")
		return fmt.Errorf("%w: %w", ErrExportWrite, err)
	}

	e.logger.Debug().
		Str("func", "sqliteClientExporter.Export").
		Str("path", path).
		Int("clients", len(clients)).
		Msg("clients exported to sqlite database")

	return nil
}

// replaceClients deletes every row of the clients table and inserts clients
// in their store order, in batches of [insertClientsBatchSize].
func replaceClients(ctx context.Context, db *sql.DB, clients []models.Client) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllClients); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for start := 0; start < len(clients); start += insertClientsBatchSize {
		end := min(start+insertClientsBatchSize, len(clients))

		query, args, err := buildInsertClientsQuery(clients[start:end], start)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
