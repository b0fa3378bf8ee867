// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/state_focus.go

package core

// FocusWindow moves input focus to h, recording the previous window in
// history and cascading focus up to its workspace and tag.
func (s *State[H]) FocusWindow(h WindowHandle[H]) bool {
	w := s.findWindow(h)
	if w == nil {
		s.logIgnorable("FocusWindow: unknown handle")
		return false
	}
	if w.IsUnmanaged() {
		return false
	}
	if cur, ok := s.Focus.CurrentWindow(); ok && cur != nil && *cur == h {
		s.pushAction(DisplayAction[H]{Kind: ActionWindowTakeFocus, Window: h})
		return true
	}

	prev, _ := s.Focus.CurrentWindow()
	if prev != nil {
		if pw := s.findWindow(*prev); pw != nil && len(pw.Tags) > 0 {
			s.Focus.rememberTagsLastWindow(pw.Tags[0], *prev)
		}
	}
	hh := h
	s.Focus.pushWindow(&hh)
	s.pushAction(DisplayAction[H]{Kind: ActionWindowTakeFocus, Window: h, Previous: prev})

	if ws := s.workspaceForWindow(w); ws != nil {
		if cur, ok := s.Focus.CurrentWorkspace(); !ok || cur != ws.ID {
			s.FocusWorkspace(ws.ID)
		}
	}
	if len(w.Tags) > 0 {
		if cur, ok := s.Focus.CurrentTag(); !ok || cur != w.Tags[0] {
			s.FocusTag(w.Tags[0])
		}
	}
	return true
}

// FocusWorkspace moves focus to the given workspace's tag and, if
// possible, to that tag's last-focused window.
func (s *State[H]) FocusWorkspace(id WorkspaceID) bool {
	if cur, ok := s.Focus.CurrentWorkspace(); ok && cur == id {
		return false
	}
	ws := s.findWorkspace(id)
	if ws == nil {
		s.logIgnorable("FocusWorkspace: unknown id %d", id)
		return false
	}
	s.Focus.pushWorkspace(id)
	if ws.Tag != nil {
		s.FocusTag(*ws.Tag)
	}

	if ws.Tag != nil {
		if last, ok := s.Focus.TagsLastWindow(*ws.Tag); ok {
			if w := s.findWindow(last); w != nil && w.CanFocus() {
				s.FocusWindow(last)
				return true
			}
		}
	}
	for _, w := range s.Windows {
		if ws.Tag != nil && w.HasTag(*ws.Tag) && w.CanFocus() {
			s.FocusWindow(w.Handle)
			return true
		}
	}
	s.pushAction(DisplayAction[H]{Kind: ActionUnfocus})
	return true
}

// FocusTag switches the current tag, re-focusing whichever window on it
// was last focused, or the first focusable window otherwise.
func (s *State[H]) FocusTag(t TagID) bool {
	if cur, ok := s.Focus.CurrentTag(); ok && cur == t {
		return false
	}
	if s.Tags.Get(t) == nil {
		s.logIgnorable("FocusTag: unknown id %d", t)
		return false
	}
	s.Focus.pushTag(t)
	tt := t
	s.pushAction(DisplayAction[H]{Kind: ActionSetCurrentTags, Tag: &tt})

	for _, ws := range s.Workspaces {
		if ws.Tag != nil && *ws.Tag == t {
			if last, ok := s.Focus.TagsLastWindow(t); ok {
				if w := s.findWindow(last); w != nil && w.CanFocus() {
					s.FocusWindow(last)
					continue
				}
			}
			focused := false
			for _, w := range s.Windows {
				if w.HasTag(t) && w.CanFocus() {
					s.FocusWindow(w.Handle)
					focused = true
					break
				}
			}
			if !focused {
				s.pushAction(DisplayAction[H]{Kind: ActionUnfocus})
			}
		}
	}
	return true
}

// FocusWindowWithPoint focuses the topmost managed focusable window
// containing the point, else the closest window on the workspace
// containing the point.
func (s *State[H]) FocusWindowWithPoint(x, y int) bool {
	for _, w := range s.Windows {
		if w.CanFocus() && w.ContainsPoint(x, y) {
			return s.FocusWindow(w.Handle)
		}
	}
	ws := s.workspaceForPoint(x, y)
	if ws == nil {
		return false
	}
	var best *Window[H]
	bestDist := -1
	for _, w := range s.Windows {
		if !w.CanFocus() || ws.Tag == nil || !w.HasTag(*ws.Tag) {
			continue
		}
		cx, cy := w.CalculatedXYHW().Center()
		d := distanceSquared(cx, cy, x, y)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = w
		}
	}
	if best == nil {
		return false
	}
	return s.FocusWindow(best.Handle)
}

// FocusWorkspaceWithPoint focuses the workspace containing the point.
func (s *State[H]) FocusWorkspaceWithPoint(x, y int) bool {
	ws := s.workspaceForPoint(x, y)
	if ws == nil {
		return false
	}
	return s.FocusWorkspace(ws.ID)
}

// ValidateFocusAt focuses h when in sloppy-focus mode and h is focusable
// and not already focused.
func (s *State[H]) ValidateFocusAt(h WindowHandle[H]) bool {
	if s.Focus.Behaviour != FocusSloppy {
		return false
	}
	w := s.findWindow(h)
	if w == nil || !w.CanFocus() {
		return false
	}
	if cur, ok := s.Focus.CurrentWindow(); ok && cur != nil && *cur == h {
		return false
	}
	return s.FocusWindow(h)
}
