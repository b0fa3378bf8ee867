// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/types.go

package core

// Handle is the constraint a backend's opaque window/root identifier must
// satisfy: comparable so it can key maps and be compared for equality. The
// core never inspects a handle's value, only compares and stores it.
type Handle interface {
	comparable
}

// TagID is a stable, 1-based tag identifier.
type TagID int

// WorkspaceID is a stable workspace identifier.
type WorkspaceID int

// WindowType classifies a window for focus/layout/stacking purposes.
type WindowType int

const (
	TypeNormal WindowType = iota
	TypeDialog
	TypeSplash
	TypeDock
	TypeDesktop
	TypeMenu
	TypeToolbar
	TypeUtility
)

func (t WindowType) String() string {
	switch t {
	case TypeNormal:
		return "Normal"
	case TypeDialog:
		return "Dialog"
	case TypeSplash:
		return "Splash"
	case TypeDock:
		return "Dock"
	case TypeDesktop:
		return "Desktop"
	case TypeMenu:
		return "Menu"
	case TypeToolbar:
		return "Toolbar"
	case TypeUtility:
		return "Utility"
	default:
		return "Unknown"
	}
}

// WindowState is a WM state flag a window may carry.
type WindowState int

const (
	StateFullscreen WindowState = iota
	StateMaximized
	StateMaximizedVert
	StateMaximizedHorz
	StateSticky
	StateModal
	StateAbove
	StateBelow
)

// FocusBehaviour selects how pointer motion affects focus.
type FocusBehaviour int

const (
	FocusSloppy FocusBehaviour = iota
	FocusClickTo
	FocusDriven
)

// TagChangeBehaviour controls which tags FocusNextTag/FocusPreviousTag skip.
type TagChangeBehaviour int

const (
	TagChangeDefault TagChangeBehaviour = iota
	TagChangeIgnoreEmpty
	TagChangeIgnoreUsed
)

// InsertBehaviour controls where a newly created window is spliced into the
// window list.
type InsertBehaviour int

const (
	InsertTop InsertBehaviour = iota
	InsertBottom
	InsertAfterCurrent
	InsertBeforeCurrent
)

// NSPTagLabel is the distinguished hidden tag holding scratchpad windows
// that are currently not shown.
const NSPTagLabel = "NSP"

const (
	minFocusHistory = 10
	minDisplayDim   = 100
)
