// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/latticewm/latticewm/internal/core"
)

func TestDefaultResolvesToSaneCoreConfig(t *testing.T) {
	f := Default()
	cfg := f.Resolve()

	if len(cfg.TagLabels) != 9 {
		t.Fatalf("expected 9 default tag labels, got %d", len(cfg.TagLabels))
	}
	if cfg.LayoutMode != core.LayoutModeTag {
		t.Fatalf("expected default layout mode tag, got %v", cfg.LayoutMode)
	}
	if cfg.FocusBehaviour != core.FocusSloppy {
		t.Fatalf("expected default focus behaviour sloppy, got %v", cfg.FocusBehaviour)
	}
	if cfg.InsertBehaviour != core.InsertTop {
		t.Fatalf("expected default insert behaviour top, got %v", cfg.InsertBehaviour)
	}
	if cfg.MarginTop != 10 || cfg.MarginLeft != 10 {
		t.Fatalf("expected 10px margins resolved from the single Margin field, got %+v", cfg)
	}
}

func TestResolveWorkspaceLayoutsParsesKeysAsInt(t *testing.T) {
	f := Default()
	f.WorkspaceLayouts = map[string][]string{"2": {core.LayoutMonocle}}
	cfg := f.Resolve()

	layouts, ok := cfg.WorkspaceLayouts[core.WorkspaceID(2)]
	if !ok || len(layouts) != 1 || layouts[0] != core.LayoutMonocle {
		t.Fatalf("expected workspace 2 to resolve to [Monocle], got %v ok=%v", layouts, ok)
	}
}

func TestResolveKeybindsSkipsUnknownCommands(t *testing.T) {
	binds := []Keybind{
		{Key: "q", Modifiers: []string{"Mod4"}, Command: "CloseWindow"},
		{Key: "x", Modifiers: []string{"Mod4"}, Command: "NotARealCommand"},
	}
	resolved := ResolveKeybinds(binds)
	if len(resolved) != 1 {
		t.Fatalf("expected the unknown command to be skipped, got %d resolved binds", len(resolved))
	}
	if resolved[0].Cmd.Kind != core.CmdCloseWindow {
		t.Fatalf("expected CloseWindow to resolve, got %v", resolved[0].Cmd.Kind)
	}
	if resolved[0].Mod != tcell.ModMeta {
		t.Fatalf("expected Mod4 to resolve to tcell.ModMeta, got %v", resolved[0].Mod)
	}
}

func TestParseKeySpecialCases(t *testing.T) {
	cases := []struct {
		in      string
		wantKey tcell.Key
		wantRn  rune
	}{
		{"Return", tcell.KeyEnter, 0},
		{"space", tcell.KeyRune, ' '},
		{"Escape", tcell.KeyEscape, 0},
		{"q", tcell.KeyRune, 'q'},
	}
	for _, c := range cases {
		key, rn := parseKey(c.in)
		if key != c.wantKey || rn != c.wantRn {
			t.Fatalf("parseKey(%q) = (%v, %q), want (%v, %q)", c.in, key, rn, c.wantKey, c.wantRn)
		}
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	f := Default()
	f.TagLabels = []string{"a", "b"}
	if err := f.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p := filepath.Join(dir, configDirName, configFileName)
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("expected config file at %s: %v", p, err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.TagLabels) != 2 || loaded.TagLabels[0] != "a" {
		t.Fatalf("expected round-tripped tag labels [a b], got %v", loaded.TagLabels)
	}
}

func TestLoadFallsBackToDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	f, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(f.TagLabels) != 9 {
		t.Fatalf("expected default tag labels when no file exists, got %v", f.TagLabels)
	}
}
