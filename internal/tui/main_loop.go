package tui

import (
	"context"
	"errors"
)

type screen func(ctx context.Context) error

// screens is the dispatch table of the console menu. Exit is not listed,
// it ends the loop.
func (t *TUI) screens() map[Action]screen {
	return map[Action]screen{
		ActionShowClients:       t.showClientsScreen,
		ActionAddClient:         t.showAddScreen,
		ActionDeleteClient:      t.showDeleteScreen,
		ActionDeleteAllClients:  t.showDeleteAllScreen,
		ActionUpdateClient:      t.showUpdateScreen,
		ActionFindClient:        t.showFindScreen,
		ActionSaveClientsToFile: t.showSaveScreen,
	}
}

// MainLoop runs the console menu until the user picks Exit, the input ends or
// ctx is cancelled. Errors of individual actions are reported inline and do
// not stop the loop.
func (t *TUI) MainLoop(ctx context.Context) error {
	screens := t.screens()

	in := t.in
	t.in = newContextReader(ctx, in)
	defer func() { t.in = in }()

	for {
		if ctx.Err() != nil {
			return t.stopOnCancel(ctx)
		}

		t.clearScreen()
		t.showMainMenu()

		action, err := t.readAction()
		if err != nil {
			return exitOnClosedInput(err)
		}

		t.logger.Debug().
			Str("func", "TUI.MainLoop").
			Stringer("action", action).
			Msg("action selected")

		t.clearScreen()
		if action == ActionExit {
			t.showExitScreen()
			return nil
		}

		if err = screens[action](ctx); err != nil {
			return exitOnClosedInput(err)
		}
		if ctx.Err() != nil {
			return t.stopOnCancel(ctx)
		}

		if err = t.pause(); err != nil {
			return exitOnClosedInput(err)
		}
	}
}

func (t *TUI) showMainMenu() {
	t.printHeading("Main menu screen")
	for _, line := range menuLines() {
		t.printLn("%s", line)
	}
	t.printDivider(headingWidth, "-")
}

// readAction prompts until a valid action code is entered.
func (t *TUI) readAction() (Action, error) {
	for {
		input, err := t.readLine("Choose an action [0 to 7]: ")
		if err != nil {
			return 0, err
		}

		action, err := parseAction(input)
		if err == nil {
			return action, nil
		}
		t.printAlert(alertFor(err))
	}
}

func (t *TUI) stopOnCancel(ctx context.Context) error {
	t.logger.Info().
		Err(context.Cause(ctx)).
		Str("func", "TUI.MainLoop").
		Msg("console stopped")
	return nil
}

func exitOnClosedInput(err error) error {
	if errors.Is(err, ErrInputClosed) {
		return nil
	}
	return err
}
