// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrClientNotFound is returned when no client has the requested account
	// number, or an index points outside the collection.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientAlreadyExists is returned by Add when a client with the same
	// account number is already stored.
	ErrClientAlreadyExists = errors.New("client with this account number already exists")
)

// Export errors. The underlying OS or driver error is wrapped alongside.
var (
	// ErrExportFileOpen is returned when the export target cannot be opened
	// or created for writing.
	ErrExportFileOpen = errors.New("cannot open export file")

	// ErrExportWrite is returned when writing to an already opened export
	// target fails.
	ErrExportWrite = errors.New("cannot write export file")
)

// Low-level database operation errors used by the SQLite exporter.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
