package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bank-clients/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is a main menu entry. Codes are what the user types.
type Action int

const (
	ActionShowClients Action = iota
	ActionAddClient
	ActionDeleteClient
	ActionDeleteAllClients
	ActionUpdateClient
	ActionFindClient
	ActionSaveClientsToFile
	ActionExit
)

var actionTitles = map[Action]string{
	ActionShowClients:       "Show clients list",
	ActionAddClient:         "Add client",
	ActionDeleteClient:      "Delete client",
	ActionDeleteAllClients:  "Delete all clients",
	ActionUpdateClient:      "Update client",
	ActionFindClient:        "Find client",
	ActionSaveClientsToFile: "Save clients to file",
	ActionExit:              "Exit",
}

func (a Action) String() string {
	if title, ok := actionTitles[a]; ok {
		return title
	}
	return "Action(" + strconv.Itoa(int(a)) + ")"
}

func (a Action) valid() bool {
	return a >= ActionShowClients && a <= ActionExit
}

// parseAction converts raw menu input into an Action. The range check is
// done on the parsed integer.
func parseAction(input string) (Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMenuChoice, input)
	}

	action := Action(n)
	if !action.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMenuChoice, n)
	}

	return action, nil
}

func menuLines() []string {
	lines := make([]string, 0, len(actionTitles))
	for a := ActionShowClients; a <= ActionExit; a++ {
		lines = append(lines, fmt.Sprintf("[%d] %s", a, a))
	}
	return lines
}

// actionPages maps menu actions to full-screen pages. Delete all and Exit
// are handled by the menu itself.
var actionPages = map[Action]string{
	ActionShowClients:       pageClients,
	ActionAddClient:         pageAdd,
	ActionDeleteClient:      pageDelete,
	ActionUpdateClient:      pageUpdate,
	ActionFindClient:        pageFind,
	ActionSaveClientsToFile: pageSave,
}

// MenuModel is the full-screen main menu.
type MenuModel struct {
	ctx     context.Context
	clients service.ClientService

	idx     int
	confirm *confirmModel
	status  *alert
}

func NewMenuModel(ctx context.Context, clients service.ClientService) *MenuModel {
	return &MenuModel{ctx: ctx, clients: clients}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(actionDoneMsg); ok {
		m.status = &done.alert
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < int(ActionExit) {
			m.idx++
		}
	case key.Matches(keyMsg, keys.digit):
		m.idx = int(keyMsg.String()[0] - '0')
		return m.selectAction(Action(m.idx))
	case key.Matches(keyMsg, keys.enter):
		return m.selectAction(Action(m.idx))
	}

	return m, nil
}

func (m *MenuModel) selectAction(action Action) (tea.Model, tea.Cmd) {
	m.status = nil

	switch action {
	case ActionExit:
		return m, tea.Quit
	case ActionDeleteAllClients:
		m.confirm = &confirmModel{question: "Are you sure you want to delete all clients"}
		return m, nil
	}

	page := actionPages[action]
	return m, func() tea.Msg { return NavigateTo{Page: page} }
}

func (m *MenuModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirm = nil

	if key.Matches(keyMsg, keys.yes) {
		m.clients.DeleteAll(m.ctx)
		a := successAlert("All Clients have been Successfully deleted")
		m.status = &a
		return m, nil
	}

	a := infoAlert("Deletion canceled")
	m.status = &a
	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	for i, line := range menuLines() {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.status != nil {
		b.WriteString("\n")
		b.WriteString(renderAlert(*m.status))
		b.WriteString("\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	if m.confirm != nil {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", m.confirm.View())
	}

	return renderPage("Main menu screen", content, "enter: select │ 0-7: jump │ ↑/↓: navigate │ v: version")
}
