// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/state_socket_test.go

package server

import (
	"log"
	"os"
	"testing"

	"github.com/latticewm/latticewm/internal/core"
)

func newTestState(t *testing.T) *core.State[int] {
	t.Helper()
	cfg := core.Config{
		TagLabels: []string{"1", "2"},
		Layouts:   []string{core.LayoutEvenHorizontal},
	}
	s := core.New[int](cfg, log.New(os.Stderr, "test: ", 0))
	s.Handle(core.DisplayEvent[int]{
		Kind:   core.EventScreenCreate,
		Screen: &core.Screen[int]{ID: 0, BBox: core.Xyhw{X: 0, Y: 0, W: 800, H: 600}, Root: 0, Name: "screen-0"},
	})
	return s
}

func TestBuildStateViewSkipsHiddenTags(t *testing.T) {
	s := newTestState(t)
	view := BuildStateView(s)

	for _, tag := range view.Tags {
		if tag.Label == core.NSPTagLabel {
			t.Fatalf("expected the hidden scratchpad tag to be excluded from the view")
		}
	}
	if len(view.Tags) != 2 {
		t.Fatalf("expected 2 visible tags, got %d", len(view.Tags))
	}
}

func TestBuildStateViewMarksFocusedWindow(t *testing.T) {
	s := newTestState(t)
	h := core.NewWindowHandle(1)
	w := core.NewWindow(h, "term", 100)
	s.Handle(core.DisplayEvent[int]{Kind: core.EventWindowCreate, Handle: h, Window: w})

	view := BuildStateView(s)
	if len(view.Windows) != 1 {
		t.Fatalf("expected 1 window in the view, got %d", len(view.Windows))
	}
	if !view.Windows[0].Focused {
		t.Fatalf("expected the sole window to be reported focused")
	}
}

func TestBuildStateViewProjectsWorkspaceTagAssignment(t *testing.T) {
	s := newTestState(t)
	view := BuildStateView(s)

	if len(view.Workspaces) != 1 {
		t.Fatalf("expected 1 workspace from the single screen, got %d", len(view.Workspaces))
	}
	if view.Workspaces[0].Tag == nil {
		t.Fatalf("expected the workspace to have a tag assigned")
	}
}
