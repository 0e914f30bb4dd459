package tui

import "context"

func (t *TUI) showUpdateScreen(ctx context.Context) error {
	t.printHeading("Update client")

	client, found, err := t.lookupClient(ctx)
	if err != nil || !found {
		return err
	}

	ok, err := t.confirm("Are you sure you want to update this client")
	if err != nil {
		return err
	}
	if !ok {
		t.printAlert(infoAlert("Update canceled"))
		return nil
	}

	fields, err := t.promptFields("New ")
	if err != nil {
		return err
	}

	if _, err = t.clients.Update(ctx, client.AccountNumber, fields); err != nil {
		t.printAlert(alertFor(err))
		return nil
	}

	t.printAlert(successAlert("Updated Successfully"))
	return nil
}
