// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/backend/mock/mock.go

// Package mock is an in-memory core.Backend[int], used by the core's own
// tests and by the cmd/latticewm-sim visual demo in place of a real X11/
// Wayland connection.
package mock

import (
	"context"
	"sync"

	"github.com/latticewm/latticewm/internal/core"
)

// Backend is a display server that exists only in memory: "windows" are
// bookkeeping entries, and actions are recorded rather than sent anywhere.
type Backend struct {
	mu         sync.Mutex
	events     []core.DisplayEvent[int]
	ready      chan struct{}
	nextHandle int
	Executed   []core.DisplayAction[int]
}

// New returns an empty mock backend.
func New() *Backend {
	return &Backend{ready: make(chan struct{}, 1)}
}

// WaitReadable blocks until an event has been queued or ctx is cancelled.
func (b *Backend) WaitReadable(ctx context.Context) error {
	b.mu.Lock()
	hasEvents := len(b.events) > 0
	b.mu.Unlock()
	if hasEvents {
		return nil
	}
	select {
	case <-b.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// DrainEvents returns and clears every queued event.
func (b *Backend) DrainEvents() []core.DisplayEvent[int] {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.events
	b.events = nil
	return out
}

// Execute records the action; ActionKillWindow also synthesizes a
// WindowDestroy follow-up event the way a real backend's round trip would.
func (b *Backend) Execute(action core.DisplayAction[int]) (*core.DisplayEvent[int], error) {
	b.mu.Lock()
	b.Executed = append(b.Executed, action)
	b.mu.Unlock()

	switch action.Kind {
	case core.ActionKillWindow:
		ev := core.DisplayEvent[int]{Kind: core.EventWindowDestroy, Handle: action.Window}
		return &ev, nil
	}
	return nil, nil
}

// Flush is a no-op: there is no underlying connection to flush.
func (b *Backend) Flush() error { return nil }

// ReloadConfig is a no-op: the mock has no border colors or keybindings of
// its own to update.
func (b *Backend) ReloadConfig(cfg core.Config, focused int, windows []core.Window[int]) error {
	return nil
}

// --- test/demo driver surface: inject events the way a real X11/Wayland
// connection would deliver them. ---

func (b *Backend) push(ev core.DisplayEvent[int]) {
	b.mu.Lock()
	b.events = append(b.events, ev)
	b.mu.Unlock()
	select {
	case b.ready <- struct{}{}:
	default:
	}
}

// NextHandle reserves and returns the next synthetic window handle.
func (b *Backend) NextHandle() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextHandle++
	return b.nextHandle
}

// SpawnWindow synthesizes a WindowCreate event for a brand-new window.
func (b *Backend) SpawnWindow(name, resClass string, pid int) core.WindowHandle[int] {
	h := core.NewWindowHandle(b.NextHandle())
	w := core.NewWindow(h, name, pid)
	w.ResClass = resClass
	w.ResName = resClass
	b.push(core.DisplayEvent[int]{Kind: core.EventWindowCreate, Handle: h, Window: w})
	return h
}

// CloseWindow synthesizes a WindowDestroy event.
func (b *Backend) CloseWindow(h core.WindowHandle[int]) {
	b.push(core.DisplayEvent[int]{Kind: core.EventWindowDestroy, Handle: h})
}

// MoveCursor synthesizes a plain pointer-motion event.
func (b *Backend) MoveCursor(x, y int) {
	b.push(core.DisplayEvent[int]{Kind: core.EventMovement, X: x, Y: y})
}

// Combo synthesizes a mouse-button event with the given modifier mask.
func (b *Backend) Combo(x, y, button int, mask core.ModMask) {
	b.push(core.DisplayEvent[int]{Kind: core.EventMouseCombo, X: x, Y: y, Button: button, Mask: mask})
}

// CreateScreen synthesizes a ScreenCreate event for a new output.
func (b *Backend) CreateScreen(screen core.Screen[int]) {
	b.push(core.DisplayEvent[int]{Kind: core.EventScreenCreate, Screen: &screen})
}

// SendCommand synthesizes a SendCommand event, the path the command pipe
// uses to inject a parsed Command into the core's event loop.
func (b *Backend) SendCommand(cmd core.Command) {
	b.push(core.DisplayEvent[int]{Kind: core.EventSendCommand, Command: &cmd})
}
