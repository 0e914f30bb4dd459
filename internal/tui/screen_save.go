package tui

import "context"

func (t *TUI) showSaveScreen(ctx context.Context) error {
	t.printHeading("Save clients to file")

	path, err := t.readLine("File name: ")
	if err != nil {
		return err
	}

	if err = t.clients.Export(ctx, path); err != nil {
		t.logger.Warn().Err(err).Str("func", "TUI.showSaveScreen").Msg("export failed")
		t.printAlert(alertFor(err))
		return nil
	}

	t.printAlert(successAlert("Saved to " + path))
	return nil
}
