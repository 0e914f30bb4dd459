package tui

import (
	"context"
	"io"
	"os"

	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/MKhiriev/go-bank-clients/internal/service"
	"github.com/MKhiriev/go-bank-clients/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI drives the bank clients front-ends. MainLoop runs the line-oriented
// console menu, FullScreen runs the bubbletea program. Both operate on the
// same [service.ClientService].
type TUI struct {
	clients   service.ClientService
	in        lineReader
	out       io.Writer
	cfg       config.ClientUI
	buildInfo models.AppBuildInfo
	palette   palette
	logger    *logger.Logger
}

// New creates a TUI reading from stdin and writing to stdout.
func New(services *service.ClientServices, cfg config.ClientUI, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	in, err := newLineReader(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}

	return newTUI(services.ClientService, in, os.Stdout, cfg, buildInfo, logger), nil
}

func newTUI(
	clients service.ClientService,
	in lineReader,
	out io.Writer,
	cfg config.ClientUI,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		clients:   clients,
		in:        in,
		out:       out,
		cfg:       cfg,
		buildInfo: buildInfo,
		palette:   newPalette(cfg.Color),
		logger:    logger,
	}
}

// FullScreen runs the bubbletea front-end until the user exits.
func (t *TUI) FullScreen(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageMenu:    NewMenuModel(ctx, t.clients),
		pageClients: newClientsPage(ctx, t.clients),
		pageAdd:     newFormModel(ctx, t.clients, formAdd),
		pageDelete:  newFormModel(ctx, t.clients, formDelete),
		pageUpdate:  newFormModel(ctx, t.clients, formUpdate),
		pageFind:    newFormModel(ctx, t.clients, formFind),
		pageSave:    newFormModel(ctx, t.clients, formSave),
	}

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if _, ok := finalModel.(RootModel); !ok {
		return tea.ErrProgramKilled
	}

	t.logger.Info().Str("func", "TUI.FullScreen").Msg("full-screen ui closed")
	return nil
}

// Close releases the terminal line reader.
func (t *TUI) Close() error {
	return t.in.Close()
}
