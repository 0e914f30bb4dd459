package tui

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-bank-clients/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

var clientColumnWidths = []int{4, 16, 10, 16, 14, 12}

type clientsPage struct {
	ctx     context.Context
	clients service.ClientService

	table  table.Model
	status *alert
}

func newClientsPage(ctx context.Context, clients service.ClientService) *clientsPage {
	columns := make([]table.Column, len(clientColumns))
	for i, title := range clientColumns {
		columns[i] = table.Column{Title: title, Width: clientColumnWidths[i]}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithWidth(96),
	)

	return &clientsPage{ctx: ctx, clients: clients, table: t}
}

// Init reloads the rows, the page is re-entered after every change.
func (p *clientsPage) Init() tea.Cmd {
	p.status = nil
	p.reload()
	return nil
}

func (p *clientsPage) reload() {
	rows := clientRows(p.clients.List(p.ctx))
	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row(r)
	}
	p.table.SetRows(tableRows)
	p.table.SetCursor(0)
}

func (p *clientsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return p, backToMenu(nil)
		case key.Matches(keyMsg, keys.copy):
			p.copySelected()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return p, cmd
}

func (p *clientsPage) copySelected() {
	row := p.table.SelectedRow()
	if row == nil {
		a := infoAlert("Nothing to copy")
		p.status = &a
		return
	}

	client, err := p.clients.Find(p.ctx, row[1])
	if err != nil {
		a := alertFor(err)
		p.status = &a
		return
	}

	a := copyRecord(p.clients, client)
	p.status = &a
}

func (p *clientsPage) View() string {
	caption := "Clients list (" + strconv.Itoa(len(p.table.Rows())) + ")"
	content := lipgloss.JoinVertical(lipgloss.Left, caption, "", p.table.View())
	if p.status != nil {
		content += "\n\n" + renderAlert(*p.status)
	}
	return renderPage("Show clients list", content, "↑/↓: navigate │ c: copy record │ esc: back")
}
