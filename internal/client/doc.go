// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the front-end selected by configuration over the in-memory client
// store for the lifetime of the process. Nothing is persisted on exit.
package client
