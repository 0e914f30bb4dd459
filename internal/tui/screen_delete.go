package tui

import "context"

func (t *TUI) showDeleteScreen(ctx context.Context) error {
	t.printHeading("Delete client")

	client, found, err := t.lookupClient(ctx)
	if err != nil || !found {
		return err
	}

	ok, err := t.confirm("Are you sure you want to delete this client")
	if err != nil {
		return err
	}
	if !ok {
		t.printAlert(infoAlert("Deletion canceled"))
		return nil
	}

	if _, err = t.clients.Delete(ctx, client.AccountNumber); err != nil {
		t.printAlert(alertFor(err))
		return nil
	}

	t.printAlert(successAlert("Deleted Successfully"))
	return nil
}

func (t *TUI) showDeleteAllScreen(ctx context.Context) error {
	t.printHeading("Delete all clients")

	ok, err := t.confirm("Are you sure you want to delete all clients")
	if err != nil {
		return err
	}
	if !ok {
		t.printAlert(infoAlert("Deletion canceled"))
		return nil
	}

	t.clients.DeleteAll(ctx)
	t.printAlert(successAlert("All Clients have been Successfully deleted"))
	return nil
}
