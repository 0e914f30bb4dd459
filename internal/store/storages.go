// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
)

// ClientStorages groups the client repository and the exporters into a
// single value that can be passed to the service layer.
type ClientStorages struct {
	// ClientRepository is the in-memory client collection. It starts empty.
	ClientRepository ClientRepository

	// TextExporter writes the delimited text format.
	TextExporter ClientExporter

	// SQLiteExporter writes SQLite database files.
	SQLiteExporter ClientExporter
}

// NewClientStorages builds an empty repository and the exporters configured
// by cfg.
func NewClientStorages(cfg config.ClientExport, logger *logger.Logger) *ClientStorages {
	logger.Info().Msg("creating new storages...")

	return &ClientStorages{
		ClientRepository: NewClientRepository(),
		TextExporter:     NewTextClientExporter(cfg.Delimiter, logger),
		SQLiteExporter:   NewSQLiteClientExporter(logger),
	}
}
