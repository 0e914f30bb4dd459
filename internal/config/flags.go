package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the configuration flags in args (without the program
// name).
//
// Flags:
//
//	-ui          front-end mode: console or tui
//	-no-color    disable coloured alerts
//	-no-clear    do not clear the screen between actions
//	-delimiter   field delimiter of the text export
//	-export-format  export file format: text or sqlite
//	-log         log file path
//	-log-level   log level (trace, debug, info, warn, error)
//	-c/-config   json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		uiMode         string
		noColor        bool
		noClear        bool
		delimiter      string
		exportFormat   string
		logFile        string
		logLevel       string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("bank-clients", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&uiMode, "ui", "", "Front-end mode: console or tui")
	fs.BoolVar(&noColor, "no-color", false, "Disable coloured alerts")
	fs.BoolVar(&noClear, "no-clear", false, "Do not clear the screen between actions")
	fs.StringVar(&delimiter, "delimiter", "", "Field delimiter of the text export")
	fs.StringVar(&exportFormat, "export-format", "", "Export file format: text or sqlite")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		UI: UI{
			Mode:          uiMode,
			NoColor:       noColor,
			NoClearScreen: noClear,
		},
		Export: Export{
			Delimiter: delimiter,
			Format:    exportFormat,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
