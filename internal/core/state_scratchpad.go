// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/state_scratchpad.go

package core

// windowIsAlive reports whether any tracked window currently has the given
// pid; used to lazily evict dead scratchpad entries.
func (s *State[H]) windowIsAlive(pid int) bool {
	for _, w := range s.Windows {
		if w.Pid == pid {
			return true
		}
	}
	return false
}

func (s *State[H]) windowByPid(pid int) *Window[H] {
	for _, w := range s.Windows {
		if w.Pid == pid {
			return w
		}
	}
	return nil
}

// ToggleScratchPad shows, hides, or requests a spawn for the named
// scratchpad depending on its current visibility.
func (s *State[H]) ToggleScratchPad(name string) (spawn string, ok bool) {
	cfg, exists := s.Scratchpads.Config(name)
	if !exists {
		s.logIgnorable("ToggleScratchPad: unknown name %q", name)
		return "", false
	}
	currentTag, hasTag := s.Focus.CurrentTag()

	pid, live := s.Scratchpads.Head(name, s.windowIsAlive)
	if !live {
		return cfg.SpawnCommand, true
	}
	w := s.windowByPid(pid)
	if w == nil {
		return "", false
	}
	if hasTag && w.HasTag(currentTag) {
		s.hideScratchpadWindow(w)
		return "", true
	}
	s.showScratchpadWindow(w, cfg, currentTag)
	return "", true
}

func (s *State[H]) hideScratchpadWindow(w *Window[H]) {
	prevFocused, _ := s.Focus.CurrentWindow()
	nsp := s.Tags.NSP()
	w.ClearTags()
	w.Tag(nsp.ID)
	w.Visible = false
	if prevFocused != nil && *prevFocused == w.Handle {
		if ws := s.Focus.workspaceFallback(s); ws != nil && ws.Tag != nil {
			var target *Window[H]
			if last, ok := s.Focus.TagsLastWindow(*ws.Tag); ok {
				target = s.findWindow(last)
			}
			for _, other := range s.Windows {
				if (target == nil || !target.CanFocus()) && other.HasTag(*ws.Tag) && other.CanFocus() {
					target = other
				}
			}
			if target != nil && target.CanFocus() {
				s.FocusWindow(target.Handle)
			}
		}
	}
	if ws := s.currentFocusedWorkspace(); ws != nil {
		s.ApplyLayout(ws)
	}
}

func (s *State[H]) showScratchpadWindow(w *Window[H], cfg ScratchPadConfig, tag TagID) {
	w.ClearTags()
	w.Tag(tag)
	w.Visible = true
	w.SetFloating(true)
	if ws := s.workspaceForTag(tag); ws != nil {
		w.SetFloatingExact(cfg.xyhw(ws.EffectiveRect()))
	}
	s.MoveToTop(w.Handle)
	s.FocusWindow(w.Handle)
}

func (s *State[H]) currentFocusedWorkspace() *Workspace {
	id, ok := s.Focus.CurrentWorkspace()
	if !ok {
		return nil
	}
	return s.findWorkspace(id)
}

// AttachScratchPad binds an existing window (or the focused one) to the
// named scratchpad, hiding whatever it was previously showing.
func (s *State[H]) AttachScratchPad(h *WindowHandle[H], name string) bool {
	cfg, exists := s.Scratchpads.Config(name)
	if !exists {
		return false
	}
	var w *Window[H]
	if h != nil {
		w = s.findWindow(*h)
	} else if cur, ok := s.Focus.CurrentWindow(); ok && cur != nil {
		w = s.findWindow(*cur)
	}
	if w == nil {
		return false
	}
	if prevPid, live := s.Scratchpads.Head(name, s.windowIsAlive); live {
		if prev := s.windowByPid(prevPid); prev != nil {
			s.hideScratchpadWindow(prev)
		}
	}
	w.SetFloating(true)
	if ws := s.workspaceForWindow(w); ws != nil {
		w.SetFloatingExact(cfg.xyhw(ws.EffectiveRect()))
	}
	s.Scratchpads.PushFront(name, w.Pid)
	return true
}

// ReleaseScratchPad detaches a window from its scratchpad and returns it
// to a regular tiled tag.
func (s *State[H]) ReleaseScratchPad(h WindowHandle[H], tag *TagID) bool {
	w := s.findWindow(h)
	if w == nil {
		return false
	}
	name, found := s.Scratchpads.NameForPid(w.Pid)
	if !found {
		return false
	}
	s.Scratchpads.Remove(name, w.Pid)

	target := tag
	if target == nil {
		if cur, ok := s.Focus.CurrentTag(); ok {
			target = &cur
		}
	}
	if target == nil {
		return false
	}
	w.ClearTags()
	w.Tag(*target)
	w.SetFloating(false)
	return true
}

// CycleScratchPad advances the named scratchpad's shown window by one
// step; it only acts while the scratchpad is currently visible.
func (s *State[H]) CycleScratchPad(name string, direction int) bool {
	currentTag, ok := s.Focus.CurrentTag()
	if !ok || !s.scratchpadVisible(name, currentTag) {
		return false
	}
	prevPid, nextPid, moved := s.Scratchpads.Cycle(name, direction)
	if !moved || prevPid == nextPid {
		return false
	}
	if prev := s.windowByPid(prevPid); prev != nil {
		s.hideScratchpadWindow(prev)
	}
	if next := s.windowByPid(nextPid); next != nil {
		cfg, _ := s.Scratchpads.Config(name)
		s.showScratchpadWindow(next, cfg, currentTag)
	}
	return true
}

// scratchpadVisible reports whether any pid in name's deque resolves to a
// window carrying tag.
func (s *State[H]) scratchpadVisible(name string, tag TagID) bool {
	for _, pid := range s.Scratchpads.evictDead(name, s.windowIsAlive) {
		if w := s.windowByPid(pid); w != nil && w.HasTag(tag) {
			return true
		}
	}
	return false
}

// workspaceFallback is a small shim giving FocusManager access to State's
// workspace lookup for the "focus falls back to a managed window" rule
// without FocusManager itself needing a State reference.
func (f *FocusManager[H]) workspaceFallback(s *State[H]) *Workspace {
	if id, ok := f.CurrentWorkspace(); ok {
		return s.findWorkspace(id)
	}
	return nil
}
