// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidUIConfigs indicates an unsupported UI mode.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidExportConfigs indicates an empty delimiter or unknown format.
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidLogConfigs indicates a log level zerolog cannot parse.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
