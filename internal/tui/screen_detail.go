package tui

import (
	"context"

	"github.com/MKhiriev/go-bank-clients/models"
)

func (t *TUI) showFindScreen(ctx context.Context) error {
	t.printHeading("Find client")

	_, _, err := t.lookupClient(ctx)
	return err
}

// lookupClient reads an account number and prints the client card. found is
// false, with a nil error, when the client does not exist; the alert has
// already been printed in that case.
func (t *TUI) lookupClient(ctx context.Context) (client models.Client, found bool, err error) {
	accountNumber, err := t.readLine("Enter account number: ")
	if err != nil {
		return models.Client{}, false, err
	}

	client, err = t.clients.Find(ctx, accountNumber)
	if err != nil {
		t.printAlert(alertFor(err))
		return models.Client{}, false, nil
	}

	t.printClientCard(client)
	return client, true, nil
}
