// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/display_action.go

package core

// DisplayActionKind enumerates the write-only commands the core emits to
// the display-server adapter.
type DisplayActionKind int

const (
	ActionKillWindow DisplayActionKind = iota
	ActionAddedWindow
	ActionMoveMouseOver
	ActionMoveMouseOverPoint
	ActionSetState
	ActionSetWindowOrder
	ActionMoveToTop
	ActionDestroyedWindow
	ActionWindowTakeFocus
	ActionUnfocus
	ActionFocusWindowUnderCursor
	ActionReplayClick
	ActionReadyToResizeWindow
	ActionReadyToMoveWindow
	ActionSetCurrentTags
	ActionSetWindowTag
	ActionNormalMode
	ActionConfigureWindow
)

// DisplayAction is a single write-only instruction from the core to the
// adapter. Only the fields relevant to Kind are populated.
type DisplayAction[H Handle] struct {
	Kind DisplayActionKind

	Window   WindowHandle[H]
	Previous *WindowHandle[H]
	Order    []WindowHandle[H]

	Floating    bool
	FocusOnAdd  bool
	Force       bool
	X, Y        int
	State       WindowState
	On          bool
	Tag         *TagID
	WasFloating bool
	Button      int
}
