// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bank-clients/models"
)

const clientsTable = "clients"

const deleteAllClients = `DELETE FROM clients;`

// insertClientsBatchSize keeps one INSERT below SQLite's default limit of
// 999 bound variables (six per row).
const insertClientsBatchSize = 150

// buildInsertClientsQuery builds one multi-row INSERT for clients. The
// position column stores the store index of each record, starting at offset,
// so that readers can restore store order with ORDER BY position.
func buildInsertClientsQuery(clients []models.Client, offset int) (string, []any, error) {
	q := sq.Insert(clientsTable).
		Columns("position", "account_number", "pin_code", "name", "phone", "balance").
		PlaceholderFormat(sq.Question)

	for i, c := range clients {
		q = q.Values(int64(offset+i), c.AccountNumber, c.PinCode, c.Name, c.Phone, c.Balance)
	}

	return q.ToSql()
}
