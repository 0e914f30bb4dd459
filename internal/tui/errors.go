// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-bank-clients/internal/service"
)

var (
	// ErrInvalidMenuChoice is returned for a menu input that is not an
	// integer in [0, 7].
	ErrInvalidMenuChoice = errors.New("invalid menu choice")

	// ErrInputClosed is returned when the input stream ends or the user
	// interrupts the prompt. The console loop treats it as exit.
	ErrInputClosed = errors.New("input closed")
)

// alertFor maps a service error to the alert shown to the user.
func alertFor(err error) alert {
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		return errorAlert("Client not found")
	case errors.Is(err, service.ErrClientAlreadyExists):
		return errorAlert("An account with this account number is already exists")
	case errors.Is(err, service.ErrEmptyAccountNumber):
		return errorAlert("Account number is required")
	case errors.Is(err, service.ErrExportFileOpen):
		return errorAlert("Could not open the file for writing")
	case errors.Is(err, service.ErrExportWrite):
		return errorAlert("Could not write clients to the file")
	case errors.Is(err, ErrInvalidMenuChoice):
		return errorAlert("Out of range")
	default:
		return errorAlert(err.Error())
	}
}
