package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-bank-clients/internal/service"
	"github.com/MKhiriev/go-bank-clients/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type formKind int

const (
	formAdd formKind = iota
	formDelete
	formUpdate
	formFind
	formSave
)

var formActions = map[formKind]Action{
	formAdd:    ActionAddClient,
	formDelete: ActionDeleteClient,
	formUpdate: ActionUpdateClient,
	formFind:   ActionFindClient,
	formSave:   ActionSaveClientsToFile,
}

type formStage int

const (
	stageKey formStage = iota
	stageFields
	stageConfirm
	stageDone
)

var fieldLabels = [...]string{"Pin code", "Name", "Phone", "Balance"}

const balanceField = 3

// formModel is the full-screen page for add, delete, update, find and save.
// It asks for the account number (or file name) first, then, depending on
// kind, for a confirmation and the client fields.
type formModel struct {
	ctx     context.Context
	clients service.ClientService
	kind    formKind

	stage    formStage
	keyInput textinput.Model
	inputs   []textinput.Model
	focus    int
	client   models.Client
	found    bool
	status   *alert
}

func newFormModel(ctx context.Context, clients service.ClientService, kind formKind) *formModel {
	m := &formModel{ctx: ctx, clients: clients, kind: kind}
	m.reset()
	return m
}

func (m *formModel) reset() {
	m.stage = stageKey
	m.client = models.Client{}
	m.found = false
	m.status = nil
	m.focus = 0

	m.keyInput = textinput.New()
	m.keyInput.Width = 40
	m.keyInput.Placeholder = m.keyLabel()
	m.keyInput.Focus()

	m.inputs = make([]textinput.Model, len(fieldLabels))
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 40
		m.inputs[i].Placeholder = fieldLabels[i]
	}
}

func (m *formModel) keyLabel() string {
	if m.kind == formSave {
		return "File name"
	}
	return "Account number"
}

func (m *formModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

func (m *formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if key.Matches(keyMsg, keys.esc) {
		if m.stage == stageConfirm {
			m.cancel()
			return m, nil
		}
		return m, backToMenu(m.status)
	}

	switch m.stage {
	case stageKey:
		if key.Matches(keyMsg, keys.enter) {
			m.submitKey()
			return m, nil
		}
	case stageFields:
		switch {
		case key.Matches(keyMsg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			m.submitFields()
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(keyMsg, keys.back):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		}
	case stageConfirm:
		if key.Matches(keyMsg, keys.yes) {
			m.confirmed()
		} else {
			m.cancel()
		}
		return m, nil
	case stageDone:
		switch {
		case key.Matches(keyMsg, keys.enter):
			return m, backToMenu(m.status)
		case key.Matches(keyMsg, keys.copy) && m.found:
			a := copyRecord(m.clients, m.client)
			m.status = &a
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m *formModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.stage {
	case stageKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case stageFields:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m *formModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *formModel) setStatus(a alert) {
	m.status = &a
}

func (m *formModel) startFields() {
	m.stage = stageFields
	m.keyInput.Blur()
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *formModel) submitKey() {
	value := m.keyInput.Value()

	switch m.kind {
	case formSave:
		if strings.TrimSpace(value) == "" {
			m.setStatus(errorAlert("File name is required"))
			return
		}
		if err := m.clients.Export(m.ctx, value); err != nil {
			m.setStatus(alertFor(err))
		} else {
			m.setStatus(successAlert("Saved to " + value))
		}
		m.stage = stageDone
		m.keyInput.Blur()
		return

	case formAdd:
		switch {
		case value == "":
			m.setStatus(alertFor(service.ErrEmptyAccountNumber))
		case m.clients.Exists(m.ctx, value):
			m.setStatus(alertFor(service.ErrClientAlreadyExists))
		default:
			m.status = nil
			m.client = models.Client{AccountNumber: value}
			m.startFields()
		}
		return
	}

	client, err := m.clients.Find(m.ctx, value)
	if err != nil {
		m.setStatus(alertFor(err))
		return
	}

	m.status = nil
	m.client = client
	m.found = true
	m.keyInput.Blur()

	switch m.kind {
	case formDelete, formUpdate:
		m.stage = stageConfirm
	default:
		m.stage = stageDone
	}
}

func (m *formModel) confirmed() {
	switch m.kind {
	case formDelete:
		if _, err := m.clients.Delete(m.ctx, m.client.AccountNumber); err != nil {
			m.setStatus(alertFor(err))
		} else {
			m.found = false
			m.setStatus(successAlert("Deleted Successfully"))
		}
		m.stage = stageDone
	case formUpdate:
		fields := m.client.Fields()
		m.inputs[0].SetValue(fields.PinCode)
		m.inputs[1].SetValue(fields.Name)
		m.inputs[2].SetValue(fields.Phone)
		m.inputs[balanceField].SetValue(strconv.FormatInt(fields.Balance, 10))
		m.startFields()
	}
}

func (m *formModel) cancel() {
	if m.kind == formUpdate {
		m.setStatus(infoAlert("Update canceled"))
	} else {
		m.setStatus(infoAlert("Deletion canceled"))
	}
	m.stage = stageDone
}

func (m *formModel) submitFields() {
	balance, err := strconv.ParseInt(strings.TrimSpace(m.inputs[balanceField].Value()), 10, 64)
	if err != nil {
		m.setStatus(errorAlert("Invalid number"))
		m.setFocus(balanceField)
		return
	}

	fields := models.ClientFields{
		PinCode: m.inputs[0].Value(),
		Name:    m.inputs[1].Value(),
		Phone:   m.inputs[2].Value(),
		Balance: balance,
	}

	switch m.kind {
	case formAdd:
		client := m.client.WithFields(fields)
		if err = m.clients.Add(m.ctx, client); err != nil {
			m.setStatus(alertFor(err))
		} else {
			m.client = client
			m.found = true
			m.setStatus(successAlert("Added successfully"))
		}
	case formUpdate:
		updated, updateErr := m.clients.Update(m.ctx, m.client.AccountNumber, fields)
		if updateErr != nil {
			m.setStatus(alertFor(updateErr))
		} else {
			m.client = updated
			m.setStatus(successAlert("Updated Successfully"))
		}
	}

	m.inputs[m.focus].Blur()
	m.stage = stageDone
}

func (m *formModel) View() string {
	var b strings.Builder

	b.WriteString(m.keyLabel())
	b.WriteString(": [")
	b.WriteString(m.keyInput.View())
	b.WriteString("]\n")

	if m.found {
		b.WriteString(renderClientCard(m.client))
		b.WriteString("\n")
	}

	if m.stage == stageFields {
		b.WriteString("\n")
		for i, in := range m.inputs {
			b.WriteString(padLabel(fieldLabels[i]))
			b.WriteString("[")
			b.WriteString(in.View())
			b.WriteString("]\n")
		}
	}

	if m.status != nil {
		b.WriteString("\n")
		b.WriteString(renderAlert(*m.status))
	}

	content := strings.TrimRight(b.String(), "\n")
	if m.stage == stageConfirm {
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", confirmModel{question: m.confirmQuestion()}.View())
	}

	return renderPage(formActions[m.kind].String(), content, m.hotKeys())
}

func (m *formModel) confirmQuestion() string {
	if m.kind == formUpdate {
		return "Are you sure you want to update this client"
	}
	return "Are you sure you want to delete this client"
}

func (m *formModel) hotKeys() string {
	switch m.stage {
	case stageFields:
		return "enter: next/save │ tab: next field │ esc: back"
	case stageConfirm:
		return "y: yes │ any other key: no"
	case stageDone:
		if m.found {
			return "enter: back │ c: copy record │ esc: back"
		}
		return "enter: back │ esc: back"
	default:
		return "enter: submit │ esc: back"
	}
}

func padLabel(label string) string {
	return label + ":" + strings.Repeat(" ", 10-len(label))
}

// copyRecord puts the export line of c on the clipboard.
func copyRecord(clients service.ClientService, c models.Client) alert {
	if err := copyToClipboard(clients.Record(c)); err != nil {
		return errorAlert("Copy failed: " + err.Error())
	}
	return successAlert("Copied record of " + c.AccountNumber)
}
