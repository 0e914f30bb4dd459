package tui

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-bank-clients/models"
	"github.com/olekukonko/tablewriter"
)

var clientColumns = []string{"#", "Account Number", "Pin code", "Name", "Phone", "Balance"}

func clientRows(clients []models.Client) [][]string {
	rows := make([][]string, 0, len(clients))
	for i, c := range clients {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			c.AccountNumber,
			c.PinCode,
			c.Name,
			c.Phone,
			strconv.FormatInt(c.Balance, 10),
		})
	}
	return rows
}

func (t *TUI) showClientsScreen(ctx context.Context) error {
	clients := t.clients.List(ctx)

	t.printLn("")
	t.printLn("%s", centered("Clients list ("+strconv.Itoa(len(clients))+")", headingWidth*2))

	table := tablewriter.NewWriter(t.out)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader(clientColumns)
	table.AppendBulk(clientRows(clients))
	table.Render()

	return nil
}
