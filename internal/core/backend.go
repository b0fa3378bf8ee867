// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/backend.go

package core

import "context"

// Backend is the display-server adapter boundary: the core never talks to
// X11/Wayland/a mock terminal directly, it only drains events from and
// issues actions through a Backend. A concrete implementation lives at
// internal/backend/mock for tests and the simulator.
type Backend[H Handle] interface {
	// WaitReadable blocks until at least one event is available or ctx is
	// cancelled.
	WaitReadable(ctx context.Context) error

	// DrainEvents returns every event queued since the last drain, in
	// arrival order.
	DrainEvents() []DisplayEvent[H]

	// Execute carries out a single display action, optionally returning a
	// synthesized follow-up event (e.g. a resulting focus change).
	Execute(action DisplayAction[H]) (*DisplayEvent[H], error)

	// Flush pushes any buffered output to the display server.
	Flush() error

	// ReloadConfig applies a changed configuration without tearing down
	// existing windows: new border widths, colors, and keybindings take
	// effect immediately.
	ReloadConfig(cfg Config, focused H, windows []Window[H]) error
}
