// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// UI is the front-end driven by [App]. *tui.TUI implements it.
type UI interface {
	// MainLoop runs the line-oriented console menu.
	MainLoop(ctx context.Context) error
	// FullScreen runs the full-screen terminal program.
	FullScreen(ctx context.Context) error
	// Close releases terminal resources.
	Close() error
}
