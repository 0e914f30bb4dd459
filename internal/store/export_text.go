// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/models"
)

// textClientExporter writes one delimited line per client. A delimiter that
// occurs inside a field value is written as-is.
type textClientExporter struct {
	delimiter string
	logger    *logger.Logger
}

// NewTextClientExporter returns a [ClientExporter] producing lines of the
// form AccountNumber<d>PinCode<d>Name<d>Phone<d>Balance.
func NewTextClientExporter(delimiter string, logger *logger.Logger) ClientExporter {
	return &textClientExporter{
		delimiter: delimiter,
		logger:    logger,
	}
}

// FormatClientRecord renders c as a single export line without the
// trailing newline.
func FormatClientRecord(c models.Client, delimiter string) string {
	return strings.Join([]string{
		c.AccountNumber,
		c.PinCode,
		c.Name,
		c.Phone,
		strconv.FormatInt(c.Balance, 10),
	}, delimiter)
}

func (e *textClientExporter) Export(ctx context.Context, path string, clients []models.Client) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		e.logger.Err(err).
			Str("func", "textClientExporter.Export").
			Str("path", path).
			Msg("failed to open export file")
		return fmt.Errorf("%w: %w", ErrExportFileOpen, err)
	}

	w := bufio.NewWriter(file)
	for _, c := range clients {
		if _, err = w.WriteString(FormatClientRecord(c, e.delimiter) + "\n"); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		e.logger.Err(err).
			Str("func", "textClientExporter.Export").
			Str("path", path).
			Msg("failed to write export file")
		return fmt.Errorf("%w: %w", ErrExportWrite, err)
	}

	e.logger.Debug().
		Str("func", "textClientExporter.Export").
		Str("path", path).
		Int("clients", len(clients)).
		Msg("clients exported to text file")

	return nil
}
