// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientUI holds the resolved front-end settings.
type ClientUI struct {
	// Mode is [UIModeConsole] or [UIModeTUI].
	Mode string
	// Color enables coloured alerts.
	Color bool
	// ClearScreen clears the terminal before each screen.
	ClearScreen bool
}

// ClientExport holds settings used by the exporters.
type ClientExport struct {
	// Delimiter separates fields in the text export format.
	Delimiter string
	// Format is [ExportFormatText] or [ExportFormatSQLite].
	Format string
}

// ClientLog holds log destination settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	UI     ClientUI
	Export ClientExport
	Log    ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the negated
// switches to positive ones, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		UI: ClientUI{
			Mode:        cfg.UI.Mode,
			Color:       !cfg.UI.NoColor,
			ClearScreen: !cfg.UI.NoClearScreen,
		},
		Export: ClientExport{
			Delimiter: cfg.Export.Delimiter,
			Format:    cfg.Export.Format,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
