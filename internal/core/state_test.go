// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import (
	"log"
	"os"
	"testing"
)

func newTestState(t *testing.T) *State[int] {
	t.Helper()
	cfg := Config{
		TagLabels:       []string{"1", "2", "3"},
		Layouts:         []string{LayoutEvenHorizontal, LayoutMonocle},
		FocusNewWindows: true,
		BorderWidth:     1,
	}
	s := New[int](cfg, log.New(os.Stderr, "test: ", 0))
	s.Handle(DisplayEvent[int]{
		Kind:   EventScreenCreate,
		Screen: &Screen[int]{ID: 0, BBox: Xyhw{X: 0, Y: 0, W: 1000, H: 800}, Root: 0, Name: "screen-0"},
	})
	return s
}

func spawn(s *State[int], handle int, name string, pid int) WindowHandle[int] {
	h := NewWindowHandle(handle)
	w := NewWindow(h, name, pid)
	s.Handle(DisplayEvent[int]{Kind: EventWindowCreate, Handle: h, Window: w})
	return h
}

func TestWindowCreateTilesAndFocuses(t *testing.T) {
	s := newTestState(t)
	h1 := spawn(s, 1, "a", 100)
	spawn(s, 2, "b", 200)

	if len(s.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(s.Windows))
	}
	cur, ok := s.Focus.CurrentWindow()
	want := WindowHandle[int]{Handle: 2, Valid: true}
	if !ok || cur == nil || *cur != want {
		t.Fatalf("expected window 2 focused after its creation, got %v ok=%v", cur, ok)
	}
	w1 := s.findWindow(h1)
	if w1.Normal.W >= 1000 {
		t.Fatalf("expected windows tiled side by side, window 1 width %d too wide", w1.Normal.W)
	}
}

func TestGoToTagSwapReturnsToPrevious(t *testing.T) {
	s := newTestState(t)
	s.FocusTag(1)
	s.FocusTag(2)

	handled, render := s.Dispatch(Command{Kind: CmdGoToTag, Tag: 2, Swap: true})
	if !handled || !render {
		t.Fatalf("expected GoToTag(2, swap) to be handled while already on tag 2")
	}
	cur, _ := s.Focus.CurrentTag()
	if cur != 1 {
		t.Fatalf("expected swap-return to tag 1, got tag %d", cur)
	}
}

func TestMoveWindowToNextTagWraps(t *testing.T) {
	s := newTestState(t)
	s.FocusTag(3)
	h := spawn(s, 1, "a", 100)
	s.FocusWindow(h)

	handled, _ := s.Dispatch(Command{Kind: CmdMoveWindowToNextTag, Follow: true})
	if !handled {
		t.Fatalf("expected MoveWindowToNextTag to be handled")
	}
	w := s.findWindow(h)
	if len(w.Tags) != 1 || w.Tags[0] != 1 {
		t.Fatalf("expected window to wrap from tag 3 to tag 1, got tags %v", w.Tags)
	}
}

func TestToggleScratchPadHidesAndShows(t *testing.T) {
	s := newTestState(t)
	s.Scratchpads = NewScratchpadController([]ScratchPadConfig{{Name: "term", SpawnCommand: "xterm"}})
	s.FocusTag(1)

	if spawnCmd, ok := s.ToggleScratchPad("term"); !ok || spawnCmd != "xterm" {
		t.Fatalf("expected first toggle to request a spawn, got spawn=%q ok=%v", spawnCmd, ok)
	}

	h := spawn(s, 1, "xterm", 500)
	if !s.AttachScratchPad(&h, "term") {
		t.Fatalf("expected AttachScratchPad to succeed for a freshly spawned window")
	}
	w := s.findWindow(h)
	s.showScratchpadWindow(w, s.Scratchpads.configs["term"], 1)
	if !w.Visible || !w.IsFloating {
		t.Fatalf("expected scratchpad window visible and floating after show")
	}

	if _, ok := s.ToggleScratchPad("term"); !ok {
		t.Fatalf("expected second toggle (hide) to succeed")
	}
	if w.Visible {
		t.Fatalf("expected scratchpad window hidden after second toggle")
	}
}

func TestCloseWindowEmitsKillAction(t *testing.T) {
	s := newTestState(t)
	h := spawn(s, 1, "a", 100)
	s.FocusWindow(h)

	handled, _ := s.Dispatch(Command{Kind: CmdCloseWindow})
	if !handled {
		t.Fatalf("expected CloseWindow to be handled")
	}
	found := false
	for _, a := range s.DrainActions() {
		if a.Kind == ActionKillWindow && a.Window == h {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a KillWindow action for the focused window")
	}
}

func TestWindowDestroyReassignsFocus(t *testing.T) {
	s := newTestState(t)
	h1 := spawn(s, 1, "a", 100)
	h2 := spawn(s, 2, "b", 200)
	s.FocusWindow(h2)

	s.Handle(DisplayEvent[int]{Kind: EventWindowDestroy, Handle: h2})

	cur, ok := s.Focus.CurrentWindow()
	if !ok || cur == nil || *cur != h1 {
		t.Fatalf("expected focus to fall back to remaining window, got %v ok=%v", cur, ok)
	}
}
