// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-bank-clients/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ClientRepository is the ordered in-memory collection of client records.
//
// Records keep insertion order. At most one record exists per account
// number. Indexes returned by Find stay valid until the next Add, Delete or
// DeleteAll.
type ClientRepository interface {
	// Find returns the index of the client with the given account number or
	// ErrClientNotFound.
	Find(accountNumber string) (int, error)
	// Get returns a copy of the client at index or ErrClientNotFound.
	Get(index int) (models.Client, error)
	// List returns a copy of all clients in store order.
	List() []models.Client
	// Len returns the number of clients.
	Len() int
	// Add appends client, or returns ErrClientAlreadyExists if its account
	// number is already taken.
	Add(client models.Client) error
	// Update overwrites the mutable fields of the client at index and
	// returns the updated record.
	Update(index int, fields models.ClientFields) (models.Client, error)
	// Delete removes the client at index, shifting later records down by one,
	// and returns the removed record.
	Delete(index int) (models.Client, error)
	// DeleteAll empties the collection.
	DeleteAll()
}

// ClientExporter serializes clients to the file at path, overwriting it.
type ClientExporter interface {
	Export(ctx context.Context, path string, clients []models.Client) error
}
