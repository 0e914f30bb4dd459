package service

import (
	"context"

	"github.com/MKhiriev/go-bank-clients/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientService defines the contract the front-ends use to manage client
// records. Operations addressed by account number resolve it through the
// repository first and return ErrClientNotFound when it is absent; in that
// case the store is left unchanged.
type ClientService interface {
	// List returns all clients in store order.
	List(ctx context.Context) []models.Client

	// Count returns the number of stored clients.
	Count(ctx context.Context) int

	// Find returns the client with the given account number.
	Find(ctx context.Context, accountNumber string) (models.Client, error)

	// Exists reports whether a client with the given account number is
	// stored. The add screen uses it before asking for the other fields.
	Exists(ctx context.Context, accountNumber string) bool

	// Add stores a new client. Returns ErrEmptyAccountNumber or
	// ErrClientAlreadyExists when the account number is empty or taken.
	Add(ctx context.Context, client models.Client) error

	// Update overwrites PIN, name, phone and balance of the client with the
	// given account number and returns the updated record.
	Update(ctx context.Context, accountNumber string, fields models.ClientFields) (models.Client, error)

	// Delete removes the client with the given account number and returns it.
	Delete(ctx context.Context, accountNumber string) (models.Client, error)

	// DeleteAll removes every client and returns how many were removed.
	DeleteAll(ctx context.Context) int

	// Export writes all clients to path. Paths ending in .db, .sqlite or
	// .sqlite3 produce an SQLite database, anything else the delimited text
	// format.
	Export(ctx context.Context, path string) error

	// Record renders client in the text export format, without newline.
	Record(client models.Client) string
}
