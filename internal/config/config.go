// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/config/config.go

// Package config loads and saves the on-disk JSON configuration file and
// resolves it into a core.Config plus a keybinding table.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/latticewm/latticewm/internal/core"
)

const (
	configDirName  = "latticewm"
	configFileName = "config.json"
)

// Keybind is one configured key-to-command mapping.
type Keybind struct {
	Key       string   `json:"key"`
	Modifiers []string `json:"modifiers"`
	Command   string   `json:"command"`
	Arg       string   `json:"arg,omitempty"`
}

// File is the on-disk JSON shape. It deliberately mirrors core.Config
// field-for-field where the types are JSON-friendly, and spells out the
// handful that aren't (insert behaviour, layout mode, focus behaviour) as
// strings resolved by Resolve.
type File struct {
	TagLabels               []string            `json:"tagLabels"`
	Layouts                 []string            `json:"layouts"`
	LayoutMode              string              `json:"layoutMode"`
	WorkspaceLayouts        map[string][]string `json:"workspaceLayouts"`
	FocusBehaviour          string              `json:"focusBehaviour"`
	FocusNewWindows         bool                `json:"focusNewWindows"`
	SloppyMouseFollowsFocus bool                `json:"sloppyMouseFollowsFocus"`
	CreateFollowsCursor     bool                `json:"createFollowsCursor"`
	DisableWindowSnap       bool                `json:"disableWindowSnap"`
	BorderWidth             int                 `json:"borderWidth"`
	Margin                  int                 `json:"margin"`
	InsertBehaviour         string              `json:"insertBehaviour"`
	Scratchpads             []ScratchpadFile    `json:"scratchpads"`
	WindowRules             []WindowRuleFile    `json:"windowRules"`
	Keybinds                []Keybind           `json:"keybinds"`
}

// ScratchpadFile is the JSON shape of a scratchpad entry. Coordinates are
// pointers so "unset" is distinguishable from zero, matching
// core.ScratchPadConfig's resolution rule.
type ScratchpadFile struct {
	Name         string   `json:"name"`
	SpawnCommand string   `json:"spawnCommand"`
	X            *float64 `json:"x,omitempty"`
	Y            *float64 `json:"y,omitempty"`
	W            *float64 `json:"w,omitempty"`
	H            *float64 `json:"h,omitempty"`
}

// WindowRuleFile is the JSON shape of a window-spawn rule.
type WindowRuleFile struct {
	WMClass       *string `json:"wmClass,omitempty"`
	WMTitle       *string `json:"wmTitle,omitempty"`
	SpawnOnTag    *int    `json:"spawnOnTag,omitempty"`
	SpawnFloating bool    `json:"spawnFloating"`
}

// Default returns the built-in configuration used when no file is present.
func Default() *File {
	return &File{
		TagLabels:       []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"},
		Layouts:         core.AllLayouts(),
		LayoutMode:      "tag",
		FocusBehaviour:  "sloppy",
		FocusNewWindows: true,
		BorderWidth:     1,
		Margin:          10,
		InsertBehaviour: "top",
		Keybinds: []Keybind{
			{Key: "Return", Modifiers: []string{"Mod4"}, Command: "Execute", Arg: "xterm"},
			{Key: "q", Modifiers: []string{"Mod4"}, Command: "CloseWindow"},
			{Key: "f", Modifiers: []string{"Mod4"}, Command: "ToggleFullScreen"},
			{Key: "space", Modifiers: []string{"Mod4"}, Command: "NextLayout"},
		},
	}
}

// path resolves ~/.config/latticewm/config.json, or the platform
// equivalent as reported by os.UserConfigDir.
func path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the configuration file, falling back to Default if it does not
// exist.
func Load() (*File, error) {
	p, err := path()
	if err != nil {
		log.Printf("config: failed to resolve config dir: %v", err)
		return Default(), nil
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("config: no config file at %s, using defaults", p)
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	f := Default()
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", p, err)
	}
	log.Printf("config: loaded from %s", p)
	return f, nil
}

// Save writes the configuration file, creating the config directory if
// needed.
func (f *File) Save() error {
	p, err := path()
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return err
	}
	log.Printf("config: saved to %s", p)
	return nil
}

// Resolve turns the JSON file into a core.Config, the form the state engine
// actually consumes.
func (f *File) Resolve() core.Config {
	cfg := core.Config{
		TagLabels:               f.TagLabels,
		Layouts:                 f.Layouts,
		FocusNewWindows:         f.FocusNewWindows,
		SloppyMouseFollowsFocus: f.SloppyMouseFollowsFocus,
		CreateFollowsCursor:     f.CreateFollowsCursor,
		DisableWindowSnap:       f.DisableWindowSnap,
		BorderWidth:             f.BorderWidth,
		MarginTop:               f.Margin,
		MarginBottom:            f.Margin,
		MarginLeft:              f.Margin,
		MarginRight:             f.Margin,
	}
	switch f.LayoutMode {
	case "workspace":
		cfg.LayoutMode = core.LayoutModeWorkspace
	default:
		cfg.LayoutMode = core.LayoutModeTag
	}
	switch f.FocusBehaviour {
	case "clickto":
		cfg.FocusBehaviour = core.FocusClickTo
	case "driven":
		cfg.FocusBehaviour = core.FocusDriven
	default:
		cfg.FocusBehaviour = core.FocusSloppy
	}
	switch f.InsertBehaviour {
	case "bottom":
		cfg.InsertBehaviour = core.InsertBottom
	case "after":
		cfg.InsertBehaviour = core.InsertAfterCurrent
	case "before":
		cfg.InsertBehaviour = core.InsertBeforeCurrent
	default:
		cfg.InsertBehaviour = core.InsertTop
	}
	if len(f.WorkspaceLayouts) > 0 {
		cfg.WorkspaceLayouts = make(map[core.WorkspaceID][]string, len(f.WorkspaceLayouts))
		for k, v := range f.WorkspaceLayouts {
			var id int
			fmt.Sscanf(k, "%d", &id)
			cfg.WorkspaceLayouts[core.WorkspaceID(id)] = v
		}
	}
	for _, sp := range f.Scratchpads {
		cfg.Scratchpads = append(cfg.Scratchpads, core.ScratchPadConfig{
			Name:         sp.Name,
			SpawnCommand: sp.SpawnCommand,
			X:            sp.X,
			Y:            sp.Y,
			W:            sp.W,
			H:            sp.H,
		})
	}
	for _, r := range f.WindowRules {
		rule := core.WindowRule{WMClass: r.WMClass, WMTitle: r.WMTitle, SpawnFloating: r.SpawnFloating}
		if r.SpawnOnTag != nil {
			tag := core.TagID(*r.SpawnOnTag)
			rule.SpawnOnTag = &tag
		}
		cfg.WindowRules = append(cfg.WindowRules, rule)
	}
	return cfg
}

// ResolvedKeybind pairs a parsed tcell key event with the command it
// triggers, ready for a backend's event loop to match against.
type ResolvedKeybind struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
	Cmd  core.Command
}

var modBits = map[string]tcell.ModMask{
	"Shift": tcell.ModShift,
	"Ctrl":  tcell.ModCtrl,
	"Alt":   tcell.ModAlt,
	"Mod4":  tcell.ModMeta,
}

var commandNames = map[string]core.CommandKind{
	"Execute":           core.CmdExecute,
	"CloseWindow":       core.CmdCloseWindow,
	"ToggleFullScreen":  core.CmdToggleFullScreen,
	"ToggleFloating":    core.CmdToggleFloating,
	"NextLayout":        core.CmdNextLayout,
	"PreviousLayout":    core.CmdPreviousLayout,
	"MoveWindowUp":      core.CmdMoveWindowUp,
	"MoveWindowDown":    core.CmdMoveWindowDown,
	"FocusWindowUp":     core.CmdFocusWindowUp,
	"FocusWindowDown":   core.CmdFocusWindowDown,
	"FocusNextTag":      core.CmdFocusNextTag,
	"FocusPreviousTag":  core.CmdFocusPreviousTag,
	"GoToTag":           core.CmdGoToTag,
	"ToggleScratchPad":  core.CmdToggleScratchPad,
	"RotateTag":         core.CmdRotateTag,
}

// ResolveKeybinds parses the JSON keybind table into tcell key events paired
// with the Command they dispatch. Unrecognized commands are skipped with a
// log line rather than failing the whole load.
func ResolveKeybinds(binds []Keybind) []ResolvedKeybind {
	out := make([]ResolvedKeybind, 0, len(binds))
	for _, b := range binds {
		kind, ok := commandNames[b.Command]
		if !ok {
			log.Printf("config: unknown keybind command %q, skipping", b.Command)
			continue
		}
		var mod tcell.ModMask
		for _, m := range b.Modifiers {
			mod |= modBits[m]
		}
		key, rn := parseKey(b.Key)
		out = append(out, ResolvedKeybind{
			Key: key, Rune: rn, Mod: mod,
			Cmd: core.Command{Kind: kind, Shell: b.Arg, Name: b.Arg},
		})
	}
	return out
}

func parseKey(s string) (tcell.Key, rune) {
	switch s {
	case "Return":
		return tcell.KeyEnter, 0
	case "space":
		return tcell.KeyRune, ' '
	case "Escape":
		return tcell.KeyEscape, 0
	default:
		if len([]rune(s)) == 1 {
			return tcell.KeyRune, []rune(s)[0]
		}
		return tcell.KeyRune, 0
	}
}
