package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
)

var ErrNilUI = errors.New("ui is nil")

type App struct {
	ui     UI
	cfg    config.ClientUI
	logger *logger.Logger
}

func NewApp(ui UI, cfg config.ClientUI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{ui: ui, cfg: cfg, logger: logger}, nil
}

// Run blocks until the user leaves the front-end or ctx is cancelled. The
// app logger travels to the services through ctx.
func (a *App) Run(ctx context.Context) (err error) {
	ctx = a.logger.WithContext(ctx)

	defer func() {
		if closeErr := a.ui.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close ui: %w", closeErr)
		}
	}()

	a.logger.Info().
		Str("func", "App.Run").
		Str("mode", a.cfg.Mode).
		Msg("client started")

	if a.cfg.Mode == config.UIModeTUI {
		err = a.ui.FullScreen(ctx)
	} else {
		err = a.ui.MainLoop(ctx)
	}
	if err != nil {
		return fmt.Errorf("run %s ui: %w", a.cfg.Mode, err)
	}

	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
