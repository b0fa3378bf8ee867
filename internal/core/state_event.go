// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/state_event.go

package core

// snapThreshold is the pixel distance within which a window being dragged
// snaps to its workspace's edge.
const snapThreshold = 10

// Handle is the single inbound event interpreter: every backend
// notification, from window lifecycle to raw pointer movement, funnels
// through this one path. It reports whether the event produced any visible
// change (new actions, a layout pass, a mode transition).
func (s *State[H]) Handle(event DisplayEvent[H]) bool {
	switch event.Kind {
	case EventWindowCreate:
		return s.handleWindowCreate(event)
	case EventWindowChange:
		return s.handleWindowChange(event)
	case EventWindowDestroy:
		return s.handleWindowDestroy(event)
	case EventWindowTakeFocus:
		return s.FocusWindow(event.Handle)
	case EventHandleWindowFocus:
		return s.acceptExternalFocus(event.Handle)
	case EventVerifyFocusedAt:
		return s.ValidateFocusAt(event.Handle)
	case EventMoveFocusTo:
		return s.FocusWindowWithPoint(event.X, event.Y)
	case EventMovement:
		return s.handleMovement(event)
	case EventMouseCombo:
		return s.handleMouseCombo(event)
	case EventMoveWindow:
		return s.handleMoveWindow(event)
	case EventResizeWindow:
		return s.handleResizeWindow(event)
	case EventScreenCreate:
		return s.handleScreenCreate(event)
	case EventSendCommand:
		if event.Command == nil {
			return false
		}
		handled, render := s.Dispatch(*event.Command)
		return handled && render
	case EventConfigureWindow:
		return s.handleConfigureWindow(event)
	case EventChangeToNormalMode:
		return s.changeToNormalMode()
	}
	return false
}

func (s *State[H]) handleWindowCreate(event DisplayEvent[H]) bool {
	w := event.Window
	if w == nil {
		return false
	}

	rule := matchWindowRule(s.Config.WindowRules, w.ResClass, w.Name)
	tag := s.windowCreateTargetTag(event, rule)
	if rule != nil && rule.SpawnFloating {
		w.SetFloating(true)
	}

	w.ClearTags()
	if tag != nil {
		w.Tag(tag.ID)
		w.Visible = s.workspaceForTag(tag.ID) != nil
	}
	w.Border = s.Config.BorderWidth
	w.MarginTop, w.MarginBottom = s.Config.MarginTop, s.Config.MarginBottom
	w.MarginLeft, w.MarginRight = s.Config.MarginLeft, s.Config.MarginRight

	s.insertWindow(w)
	s.SortWindows()

	if tag != nil {
		s.ApplyLayoutForTag(tag.ID)
	}
	s.pushAction(DisplayAction[H]{Kind: ActionAddedWindow, Window: w.Handle, Floating: w.IsFloating, FocusOnAdd: s.Focus.FocusNewWindows})

	if s.Focus.FocusNewWindows && w.CanFocus() {
		s.FocusWindow(w.Handle)
	}
	return true
}

// windowCreateTargetTag resolves which tag a newly created window lands on:
// a matching window rule's SpawnOnTag wins outright; otherwise, with
// CreateFollowsCursor set, the workspace under the pointer is consulted,
// falling back to the currently focused tag.
func (s *State[H]) windowCreateTargetTag(event DisplayEvent[H], rule *WindowRule) *Tag {
	if rule != nil && rule.SpawnOnTag != nil {
		if t := s.Tags.Get(*rule.SpawnOnTag); t != nil {
			return t
		}
	}
	if s.Config.CreateFollowsCursor {
		if ws := s.workspaceForPoint(event.X, event.Y); ws != nil && ws.Tag != nil {
			if t := s.Tags.Get(*ws.Tag); t != nil {
				return t
			}
		}
	}
	if cur, ok := s.Focus.CurrentTag(); ok {
		return s.Tags.Get(cur)
	}
	if visible := s.Tags.Visible(); len(visible) > 0 {
		return visible[0]
	}
	return nil
}

// insertWindow places w into the global list per the configured insert
// behaviour, relative to the currently focused window.
func (s *State[H]) insertWindow(w *Window[H]) {
	switch s.Config.InsertBehaviour {
	case InsertBottom:
		s.Windows = append(s.Windows, w)
		return
	case InsertAfterCurrent, InsertBeforeCurrent:
		if cur := s.focusedWindow(); cur != nil {
			idx := -1
			for i, existing := range s.Windows {
				if existing.Handle == cur.Handle {
					idx = i
					break
				}
			}
			if idx >= 0 {
				at := idx
				if s.Config.InsertBehaviour == InsertAfterCurrent {
					at = idx + 1
				}
				s.Windows = append(s.Windows, nil)
				copy(s.Windows[at+1:], s.Windows[at:])
				s.Windows[at] = w
				return
			}
		}
		fallthrough
	default: // InsertTop
		s.Windows = append([]*Window[H]{w}, s.Windows...)
	}
}

func (s *State[H]) handleWindowChange(event DisplayEvent[H]) bool {
	change := event.Change
	if change == nil {
		return false
	}
	w := s.findWindow(change.Handle)
	if w == nil {
		return false
	}
	relayout := false
	if change.Name != nil {
		w.Name = *change.Name
	}
	if change.Type != nil && *change.Type != w.Type {
		w.Type = *change.Type
		relayout = true
	}
	if change.Strut != nil {
		w.Strut = change.Strut
		s.UpdateStatic()
		relayout = true
	}
	if change.Requested != nil {
		w.Requested = change.Requested
		relayout = true
	}
	if change.States != nil {
		w.States = *change.States
		relayout = true
	}
	if change.Floating != nil {
		w.SetFloatingOffsets(change.Floating)
		relayout = true
	}
	if relayout {
		s.SortWindows()
		if len(w.Tags) > 0 {
			s.ApplyLayoutForTag(w.Tags[0])
		}
	}
	return true
}

func (s *State[H]) handleWindowDestroy(event DisplayEvent[H]) bool {
	w := s.findWindow(event.Handle)
	if w == nil {
		return false
	}
	idx := -1
	for i, existing := range s.Windows {
		if existing.Handle == w.Handle {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	tags := append([]TagID(nil), w.Tags...)
	s.Windows = append(s.Windows[:idx], s.Windows[idx+1:]...)
	s.Scratchpads.RemoveEverywhere(w.Pid)
	wasFocused := false
	if cur, ok := s.Focus.CurrentWindow(); ok && cur != nil && *cur == w.Handle {
		wasFocused = true
	}
	s.Focus.forgetWindow(w.Handle)
	s.pushAction(DisplayAction[H]{Kind: ActionDestroyedWindow, Window: w.Handle})

	for _, tag := range tags {
		s.ApplyLayoutForTag(tag)
	}
	if wasFocused {
		if ws := s.currentFocusedWorkspace(); ws != nil {
			s.FocusWorkspace(ws.ID)
		}
	}
	return true
}

// acceptExternalFocus records a focus change the backend made on its own
// (e.g. the window manager's own click-to-focus), without re-emitting a
// take-focus action back at it.
func (s *State[H]) acceptExternalFocus(h WindowHandle[H]) bool {
	w := s.findWindow(h)
	if w == nil || !w.CanFocus() {
		return false
	}
	if cur, ok := s.Focus.CurrentWindow(); ok && cur != nil && *cur == h {
		return false
	}
	hh := h
	s.Focus.pushWindow(&hh)
	if len(w.Tags) > 0 {
		if cur, ok := s.Focus.CurrentTag(); !ok || cur != w.Tags[0] {
			s.Focus.pushTag(w.Tags[0])
		}
	}
	return true
}

// handleMovement is plain pointer motion: in sloppy-focus mode it drives
// focus-follows-mouse, and while a move/resize is in progress it feeds the
// drag.
func (s *State[H]) handleMovement(event DisplayEvent[H]) bool {
	switch s.Mode.Kind {
	case ModeMovingWindow:
		return s.dragMove(event.X, event.Y)
	case ModeResizingWindow:
		return s.dragResize(event.X, event.Y)
	default:
		if s.Focus.SloppyMouseFollowsFocus {
			return s.FocusWindowWithPoint(event.X, event.Y)
		}
		return false
	}
}

// handleMouseCombo drives the mode machine: Super+primary-button over a
// window starts a move, Super+secondary-button starts a resize, and
// releasing the button while moving/resizing returns to Normal.
func (s *State[H]) handleMouseCombo(event DisplayEvent[H]) bool {
	if event.Button == 0 {
		if s.Mode.Kind == ModeMovingWindow || s.Mode.Kind == ModeResizingWindow {
			return s.changeToNormalMode()
		}
		return false
	}
	if s.Mode.Kind != ModeNormal || event.Mask&ModSuper == 0 {
		return false
	}
	var target *Window[H]
	for _, w := range s.Windows {
		if w.ContainsPoint(event.X, event.Y) && w.CanMove() {
			target = w
			break
		}
	}
	if target == nil {
		return false
	}
	switch event.Button {
	case 1:
		s.beginMove(target, event.X, event.Y)
		return true
	case 3:
		if !target.CanResize() {
			return false
		}
		s.beginResize(target, event.X, event.Y)
		return true
	}
	return false
}

func (s *State[H]) beginMove(w *Window[H], x, y int) {
	s.Mode = Mode[H]{Kind: ModeReadyToMove, Window: w.Handle, startLoc: w.ExactXYHW()}
	s.pushAction(DisplayAction[H]{Kind: ActionReadyToMoveWindow, Window: w.Handle})
	s.Mode.Kind = ModeMovingWindow
}

func (s *State[H]) beginResize(w *Window[H], x, y int) {
	s.Mode = Mode[H]{Kind: ModeReadyToResize, Window: w.Handle, startLoc: w.ExactXYHW()}
	s.pushAction(DisplayAction[H]{Kind: ActionReadyToResizeWindow, Window: w.Handle})
	s.Mode.Kind = ModeResizingWindow
}

// handleMoveWindow applies an absolute pointer position to the window being
// dragged, identical in effect to a Movement event while ModeMovingWindow.
func (s *State[H]) handleMoveWindow(event DisplayEvent[H]) bool {
	if s.Mode.Kind != ModeMovingWindow {
		return false
	}
	return s.dragMove(event.X, event.Y)
}

func (s *State[H]) handleResizeWindow(event DisplayEvent[H]) bool {
	if s.Mode.Kind != ModeResizingWindow {
		return false
	}
	return s.dragResize(event.X, event.Y)
}

// dragMove repositions the in-flight window so its top-left tracks the
// pointer delta from the drag's start, snapping to the owning workspace's
// edges within snapThreshold pixels, skipped entirely when DisableWindowSnap
// is set.
func (s *State[H]) dragMove(x, y int) bool {
	w := s.findWindow(s.Mode.Window)
	if w == nil {
		return false
	}
	dx := x - s.Mode.startLoc.X
	dy := y - s.Mode.startLoc.Y
	if !w.IsFloating {
		w.SetFloating(true)
	}
	newX := s.Mode.startLoc.X + dx
	newY := s.Mode.startLoc.Y + dy
	if !s.Config.DisableWindowSnap {
		if ws := s.workspaceForWindow(w); ws != nil {
			rect := ws.EffectiveRect()
			if abs(newX-rect.X) <= snapThreshold {
				newX = rect.X
			} else if abs((newX+s.Mode.startLoc.W)-(rect.X+rect.W)) <= snapThreshold {
				newX = rect.X + rect.W - s.Mode.startLoc.W
			}
			if abs(newY-rect.Y) <= snapThreshold {
				newY = rect.Y
			} else if abs((newY+s.Mode.startLoc.H)-(rect.Y+rect.H)) <= snapThreshold {
				newY = rect.Y + rect.H - s.Mode.startLoc.H
			}
		}
	}
	exact := Xyhw{X: newX, Y: newY, W: s.Mode.startLoc.W, H: s.Mode.startLoc.H}
	w.SetFloatingExact(exact)
	return true
}

// dragResize grows or shrinks the in-flight window from its top-left,
// clamping to the window's minimum display dimension.
func (s *State[H]) dragResize(x, y int) bool {
	w := s.findWindow(s.Mode.Window)
	if w == nil {
		return false
	}
	newW := s.Mode.startLoc.W + (x - s.Mode.startLoc.X)
	newH := s.Mode.startLoc.H + (y - s.Mode.startLoc.Y)
	if newW < minDisplayDim {
		newW = minDisplayDim
	}
	if newH < minDisplayDim {
		newH = minDisplayDim
	}
	if !w.IsFloating {
		w.SetFloating(true)
	}
	exact := Xyhw{X: s.Mode.startLoc.X, Y: s.Mode.startLoc.Y, W: newW, H: newH}
	w.SetFloatingExact(exact)
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (s *State[H]) changeToNormalMode() bool {
	if s.Mode.Kind == ModeNormal {
		return false
	}
	h := s.Mode.Window
	s.Mode = NewMode[H]()
	s.pushAction(DisplayAction[H]{Kind: ActionNormalMode, Window: h})
	return true
}

func (s *State[H]) handleScreenCreate(event DisplayEvent[H]) bool {
	if event.Screen == nil {
		return false
	}
	s.Screens = append(s.Screens, event.Screen)

	visible := s.Tags.Visible()
	var tagID *TagID
	for _, t := range visible {
		taken := false
		for _, ws := range s.Workspaces {
			if ws.Tag != nil && *ws.Tag == t.ID {
				taken = true
				break
			}
		}
		if !taken {
			id := t.ID
			tagID = &id
			break
		}
	}
	ws := NewWorkspace(s.nextWorkspaceID, event.Screen.ID, event.Screen.BBox)
	ws.Tag = tagID
	ws.MarginTop, ws.MarginBottom = s.Config.MarginTop, s.Config.MarginBottom
	ws.MarginLeft, ws.MarginRight = s.Config.MarginLeft, s.Config.MarginRight
	s.nextWorkspaceID++
	s.Workspaces = append(s.Workspaces, ws)
	s.ApplyLayout(ws)
	return true
}

func (s *State[H]) handleConfigureWindow(event DisplayEvent[H]) bool {
	change := event.Change
	if change == nil {
		return false
	}
	w := s.findWindow(change.Handle)
	if w == nil {
		return false
	}
	if change.Requested != nil {
		w.Requested = change.Requested
		if w.Floats() {
			w.SetFloatingExact(*change.Requested)
		}
	}
	s.pushAction(DisplayAction[H]{Kind: ActionConfigureWindow, Window: w.Handle})
	return true
}
