package service

import (
	"github.com/MKhiriev/go-bank-clients/internal/store"
	"github.com/MKhiriev/go-bank-clients/internal/validators"
)

// Errors returned by [ClientService]. The store and validator sentinels are
// re-exported so that front-ends depend on this package only.
var (
	ErrClientNotFound      = store.ErrClientNotFound
	ErrClientAlreadyExists = store.ErrClientAlreadyExists
	ErrExportFileOpen      = store.ErrExportFileOpen
	ErrExportWrite         = store.ErrExportWrite

	ErrEmptyAccountNumber = validators.ErrEmptyAccountNumber
)
