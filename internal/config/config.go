// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Supported values of [UI.Mode].
const (
	// UIModeConsole is the line-oriented menu loop.
	UIModeConsole = "console"
	// UIModeTUI is the full-screen terminal UI.
	UIModeTUI = "tui"
)

// Supported values of [Export.Format].
const (
	// ExportFormatText writes one delimited line per client.
	ExportFormatText = "text"
	// ExportFormatSQLite writes the clients into a SQLite database file.
	ExportFormatSQLite = "sqlite"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultUIMode          = UIModeConsole
	DefaultExportDelimiter = "#//#"
	DefaultExportFormat    = ExportFormatText
	DefaultLogLevel        = "debug"
)

// StructuredConfig is the top-level configuration container for the
// bank-clients application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// UI selects and tunes the interactive front-end.
	UI UI `envPrefix:"UI_"`

	// Export holds settings of the "save clients to file" action.
	Export Export `envPrefix:"EXPORT_"`

	// Log holds the destination and verbosity of the application log.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// UI holds front-end settings.
type UI struct {
	// Mode is either "console" or "tui".
	// Env: UI_MODE
	Mode string `env:"MODE"`

	// NoColor disables coloured alerts in console mode.
	// Env: UI_NO_COLOR
	NoColor bool `env:"NO_COLOR"`

	// NoClearScreen keeps previous output on screen between menu actions.
	// Env: UI_NO_CLEAR_SCREEN
	NoClearScreen bool `env:"NO_CLEAR_SCREEN"`
}

// Export holds settings for file export.
type Export struct {
	// Delimiter separates the fields of one exported client line.
	// Env: EXPORT_DELIMITER
	Delimiter string `env:"DELIMITER"`

	// Format is either "text" or "sqlite".
	// Env: EXPORT_FORMAT
	Format string `env:"FORMAT"`
}

// Log holds application log settings.
type Log struct {
	// File is the path of the log file. Empty means "logs" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields that are still empty afterwards receive their defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
	if cfg.Export.Delimiter == "" {
		cfg.Export.Delimiter = DefaultExportDelimiter
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
