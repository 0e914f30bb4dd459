package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	UI struct {
		Mode          string `json:"mode"`
		NoColor       bool   `json:"no_color"`
		NoClearScreen bool   `json:"no_clear_screen"`
	} `json:"ui,omitempty"`

	Export struct {
		Delimiter string `json:"delimiter"`
		Format    string `json:"format"`
	} `json:"export,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		UI: UI{
			Mode:          jsonCfg.UI.Mode,
			NoColor:       jsonCfg.UI.NoColor,
			NoClearScreen: jsonCfg.UI.NoClearScreen,
		},
		Export: Export{
			Delimiter: jsonCfg.Export.Delimiter,
			Format:    jsonCfg.Export.Format,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
