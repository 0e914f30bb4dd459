package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-bank-clients/internal/config"
	"github.com/MKhiriev/go-bank-clients/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	mainLoopCalls   int
	fullScreenCalls int
	closed          bool
	runErr          error
	closeErr        error
}

func (s *stubUI) MainLoop(ctx context.Context) error {
	s.mainLoopCalls++
	logger.FromContext(ctx).Info().Msg("main loop")
	return s.runErr
}

func (s *stubUI) FullScreen(ctx context.Context) error {
	s.fullScreenCalls++
	return s.runErr
}

func (s *stubUI) Close() error {
	s.closed = true
	return s.closeErr
}

func TestNewApp_NilUI(t *testing.T) {
	_, err := NewApp(nil, config.ClientUI{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNilUI)
}

func TestApp_Run_SelectsFrontEnd(t *testing.T) {
	tests := []struct {
		mode           string
		wantMainLoop   int
		wantFullScreen int
	}{
		{mode: config.UIModeConsole, wantMainLoop: 1},
		{mode: config.UIModeTUI, wantFullScreen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			ui := &stubUI{}
			app, err := NewApp(ui, config.ClientUI{Mode: tt.mode}, logger.Nop())
			require.NoError(t, err)

			require.NoError(t, app.Run(context.Background()))
			assert.Equal(t, tt.wantMainLoop, ui.mainLoopCalls)
			assert.Equal(t, tt.wantFullScreen, ui.fullScreenCalls)
			assert.True(t, ui.closed)
		})
	}
}

func TestApp_Run_PropagatesSessionLogger(t *testing.T) {
	var buf bytes.Buffer
	ui := &stubUI{}
	log := (&logger.Logger{Logger: zerolog.New(&buf)}).WithSession("session-1")
	app, err := NewApp(ui, config.ClientUI{Mode: config.UIModeConsole}, log)
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, buf.String(), `"session":"session-1","message":"main loop"`)
}

func TestApp_Run_Errors(t *testing.T) {
	runErr := errors.New("terminal gone")
	ui := &stubUI{runErr: runErr, closeErr: errors.New("close failed")}
	app, err := NewApp(ui, config.ClientUI{Mode: config.UIModeConsole}, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, runErr)
	assert.True(t, ui.closed)

	ui = &stubUI{closeErr: errors.New("close failed")}
	app, err = NewApp(ui, config.ClientUI{Mode: config.UIModeConsole}, logger.Nop())
	require.NoError(t, err)
	assert.EqualError(t, app.Run(context.Background()), "close ui: close failed")
}
