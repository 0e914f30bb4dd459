package tui

import (
	"context"

	"github.com/MKhiriev/go-bank-clients/internal/service"
	"github.com/MKhiriev/go-bank-clients/models"
)

func (t *TUI) showAddScreen(ctx context.Context) error {
	t.printHeading("Add client")

	accountNumber, err := t.readLine("Account number: ")
	if err != nil {
		return err
	}

	if accountNumber == "" {
		t.printAlert(alertFor(service.ErrEmptyAccountNumber))
		return nil
	}
	if t.clients.Exists(ctx, accountNumber) {
		t.printAlert(alertFor(service.ErrClientAlreadyExists))
		return nil
	}

	fields, err := t.promptFields("")
	if err != nil {
		return err
	}

	client := models.Client{AccountNumber: accountNumber}.WithFields(fields)
	if err = t.clients.Add(ctx, client); err != nil {
		t.printAlert(alertFor(err))
		return nil
	}

	t.printAlert(successAlert("Added successfully"))
	return nil
}

// promptFields reads PIN, name, phone and balance. prefix is prepended to
// each label, e.g. "New ".
func (t *TUI) promptFields(prefix string) (models.ClientFields, error) {
	var (
		fields models.ClientFields
		err    error
	)

	if fields.PinCode, err = t.readLine(prefix + "Pin code: "); err != nil {
		return models.ClientFields{}, err
	}
	if fields.Name, err = t.readLine(prefix + "Name: "); err != nil {
		return models.ClientFields{}, err
	}
	if fields.Phone, err = t.readLine(prefix + "Phone: "); err != nil {
		return models.ClientFields{}, err
	}
	if fields.Balance, err = t.readInt(prefix + "Balance: "); err != nil {
		return models.ClientFields{}, err
	}

	return fields, nil
}
