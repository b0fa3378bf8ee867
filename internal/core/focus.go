// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/focus.go

package core

// FocusManager holds three bounded FIFOs (max 10) of the most recently
// focused workspace ids, window handles (nil entries mean "the root"), and
// tag ids, plus tag->last-focused-window memory. Operations are exposed as
// methods on State, which owns the windows/workspaces/tags FocusManager
// needs to look things up in; FocusManager itself holds only history.
type FocusManager[H Handle] struct {
	Behaviour               FocusBehaviour
	FocusNewWindows         bool
	SloppyMouseFollowsFocus bool

	workspaceHistory []WorkspaceID
	windowHistory    []*WindowHandle[H]
	tagHistory       []TagID
	tagsLastWindow   map[TagID]WindowHandle[H]
}

// NewFocusManager returns an empty focus manager with the given behaviour
// flags.
func NewFocusManager[H Handle](behaviour FocusBehaviour, focusNew, sloppyFollows bool) *FocusManager[H] {
	return &FocusManager[H]{
		Behaviour:               behaviour,
		FocusNewWindows:         focusNew,
		SloppyMouseFollowsFocus: sloppyFollows,
		tagsLastWindow:          make(map[TagID]WindowHandle[H]),
	}
}

func pushBounded[T any](history []T, v T) []T {
	history = append([]T{v}, history...)
	if len(history) > minFocusHistory {
		history = history[:minFocusHistory]
	}
	return history
}

// CurrentWorkspace returns the front of the workspace history, or false if
// empty.
func (f *FocusManager[H]) CurrentWorkspace() (WorkspaceID, bool) {
	if len(f.workspaceHistory) == 0 {
		return 0, false
	}
	return f.workspaceHistory[0], true
}

// CurrentWindow returns the front of the window history. A present-but-nil
// entry means "no window" (explicitly unfocused); ok is false only when the
// history itself is empty.
func (f *FocusManager[H]) CurrentWindow() (*WindowHandle[H], bool) {
	if len(f.windowHistory) == 0 {
		return nil, false
	}
	return f.windowHistory[0], true
}

// CurrentTag returns the front of the tag history, or false if empty.
func (f *FocusManager[H]) CurrentTag() (TagID, bool) {
	if len(f.tagHistory) == 0 {
		return 0, false
	}
	return f.tagHistory[0], true
}

// TagHistory exposes the raw bounded tag history (front = most recent), for
// tests and the GoToTag swap-return scenario.
func (f *FocusManager[H]) TagHistory() []TagID {
	return append([]TagID(nil), f.tagHistory...)
}

// WorkspaceHistoryLen, WindowHistoryLen, TagHistoryLen expose lengths for
// invariant checks (bounded <= 10).
func (f *FocusManager[H]) WorkspaceHistoryLen() int { return len(f.workspaceHistory) }
func (f *FocusManager[H]) WindowHistoryLen() int    { return len(f.windowHistory) }
func (f *FocusManager[H]) TagHistoryLen() int       { return len(f.tagHistory) }

func (f *FocusManager[H]) pushWorkspace(id WorkspaceID) {
	f.workspaceHistory = pushBounded(f.workspaceHistory, id)
}

func (f *FocusManager[H]) pushWindow(h *WindowHandle[H]) {
	f.windowHistory = pushBounded(f.windowHistory, h)
}

func (f *FocusManager[H]) pushTag(id TagID) {
	f.tagHistory = pushBounded(f.tagHistory, id)
}

// TagsLastWindow returns the remembered last-focused window for a tag.
func (f *FocusManager[H]) TagsLastWindow(tag TagID) (WindowHandle[H], bool) {
	h, ok := f.tagsLastWindow[tag]
	return h, ok
}

func (f *FocusManager[H]) rememberTagsLastWindow(tag TagID, h WindowHandle[H]) {
	f.tagsLastWindow[tag] = h
}

// forgetWindow removes a destroyed window from every tagsLastWindow entry
// and from every entry of the window history.
func (f *FocusManager[H]) forgetWindow(h WindowHandle[H]) {
	for tag, cur := range f.tagsLastWindow {
		if cur == h {
			delete(f.tagsLastWindow, tag)
		}
	}
	filtered := f.windowHistory[:0]
	for _, entry := range f.windowHistory {
		if entry == nil || *entry != h {
			filtered = append(filtered, entry)
		}
	}
	f.windowHistory = filtered
}
