// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	switch cfg.UI.Mode {
	case "", UIModeConsole, UIModeTUI:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidUIConfigs, cfg.UI.Mode)
	}

	switch cfg.Export.Format {
	case "", ExportFormatText, ExportFormatSQLite:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidExportConfigs, cfg.Export.Format)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.UI.Mode != UIModeConsole && cfg.UI.Mode != UIModeTUI {
		return ErrInvalidUIConfigs
	}

	if cfg.Export.Delimiter == "" {
		return ErrInvalidExportConfigs
	}

	if cfg.Export.Format != ExportFormatText && cfg.Export.Format != ExportFormatSQLite {
		return ErrInvalidExportConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}
