// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/state_command.go

package core

// Dispatch is the single command interpreter: the command pipe and
// programmatic keybindings both funnel through this one path. It returns
// (handled, needsRender): "ignored/failed silently" is (false, false),
// "handled, no redraw" is (true, false), and "handled, redraw" is
// (true, true).
func (s *State[H]) Dispatch(cmd Command) (handled, needsRender bool) {
	switch cmd.Kind {
	case CmdExecute:
		return true, false

	case CmdToggleScratchPad:
		_, ok := s.ToggleScratchPad(cmd.Name)
		return ok, ok

	case CmdAttachScratchPad:
		ok := s.AttachScratchPad(nil, cmd.Name)
		return ok, ok

	case CmdReleaseScratchPad:
		return false, false

	case CmdNextScratchPadWindow:
		ok := s.CycleScratchPad(cmd.Name, 1)
		return ok, ok

	case CmdPrevScratchPadWindow:
		ok := s.CycleScratchPad(cmd.Name, -1)
		return ok, ok

	case CmdToggleFullScreen:
		return s.toggleWindowState(StateFullscreen)
	case CmdToggleMaximized:
		return s.toggleWindowState(StateMaximized)
	case CmdToggleSticky:
		return s.toggleWindowState(StateSticky)

	case CmdToggleFloating:
		return s.toggleFloating()
	case CmdFloatingToTile:
		return s.setFloating(false)
	case CmdTileToFloating:
		return s.setFloating(true)

	case CmdSendWindowToTag:
		return s.sendFocusedWindowToTag(cmd.Tag)

	case CmdMoveWindowToNextTag:
		return s.moveWindowToTagOffset(1, cmd.Follow)
	case CmdMoveWindowToPreviousTag:
		return s.moveWindowToTagOffset(-1, cmd.Follow)

	case CmdMoveWindowToNextWorkspace:
		return s.moveWindowToWorkspaceOffset(1)
	case CmdMoveWindowToPreviousWorkspace:
		return s.moveWindowToWorkspaceOffset(-1)
	case CmdMoveWindowToLastWorkspace:
		return s.moveWindowToWorkspaceOffset(-1)

	case CmdMoveWindowUp:
		return s.moveFocusedWithinTag(-1)
	case CmdMoveWindowDown:
		return s.moveFocusedWithinTag(1)
	case CmdMoveWindowTop:
		return s.moveFocusedToTop(cmd.Swap)

	case CmdFocusWindowUp:
		return s.focusRelativeWithinTag(-1)
	case CmdFocusWindowDown:
		return s.focusRelativeWithinTag(1)
	case CmdFocusWindowTop:
		return s.focusTopOfTag()

	case CmdGoToTag:
		return s.goToTag(cmd.Tag, cmd.Swap)
	case CmdReturnToLastTag:
		hist := s.Focus.TagHistory()
		if len(hist) < 2 {
			return false, false
		}
		return true, s.FocusTag(hist[1])

	case CmdCloseWindow:
		return s.closeFocusedWindow()
	case CmdCloseAllOtherWindows:
		return s.closeAllOtherWindows()

	case CmdSwapScreens:
		return s.swapScreens()

	case CmdSendWorkspaceToTag:
		return s.sendWorkspaceToTag(int(cmd.Workspace), cmd.Tag)

	case CmdSetLayout:
		return s.setLayout(cmd.Layout)
	case CmdNextLayout:
		return s.cycleLayout(1)
	case CmdPreviousLayout:
		return s.cycleLayout(-1)

	case CmdRotateTag:
		if tag := s.focusedTag(); tag != nil {
			tag.RotateFlags()
			s.ApplyLayoutForTag(tag.ID)
			return true, true
		}
		return false, false

	case CmdIncreaseMainWidth:
		return s.changeMainWidth(cmd.Delta, 1)
	case CmdDecreaseMainWidth:
		return s.changeMainWidth(cmd.Delta, -1)

	case CmdSetMarginMultiplier:
		return s.setMarginMultiplier(cmd.Multiplier)

	case CmdFocusNextTag:
		return s.focusTagOffset(1, cmd.Behavior)
	case CmdFocusPreviousTag:
		return s.focusTagOffset(-1, cmd.Behavior)

	case CmdFocusWorkspaceNext:
		return s.focusWorkspaceOffset(1)
	case CmdFocusWorkspacePrevious:
		return s.focusWorkspaceOffset(-1)

	case CmdFocusWindowUnderCursor:
		s.pushAction(DisplayAction[H]{Kind: ActionFocusWindowUnderCursor})
		return true, true

	case CmdSoftReload, CmdHardReload:
		return true, true

	case CmdOther:
		return false, false
	}
	return false, false
}

func (s *State[H]) focusedWindow() *Window[H] {
	h, ok := s.Focus.CurrentWindow()
	if !ok || h == nil {
		return nil
	}
	return s.findWindow(*h)
}

func (s *State[H]) focusedTag() *Tag {
	t, ok := s.Focus.CurrentTag()
	if !ok {
		return nil
	}
	return s.Tags.Get(t)
}

func (s *State[H]) toggleWindowState(state WindowState) (bool, bool) {
	w := s.focusedWindow()
	if w == nil {
		return false, false
	}
	on := !w.HasState(state)
	w.SetState(state, on)
	s.pushAction(DisplayAction[H]{Kind: ActionSetState, Window: w.Handle, State: state, On: on})
	if len(w.Tags) > 0 {
		s.ApplyLayoutForTag(w.Tags[0])
	}
	return true, true
}

func (s *State[H]) toggleFloating() (bool, bool) {
	w := s.focusedWindow()
	if w == nil {
		return false, false
	}
	return s.setFloating(!w.IsFloating)
}

func (s *State[H]) setFloating(value bool) (bool, bool) {
	w := s.focusedWindow()
	if w == nil {
		return false, false
	}
	w.SetFloating(value)
	if len(w.Tags) > 0 {
		s.ApplyLayoutForTag(w.Tags[0])
	}
	return true, true
}

func (s *State[H]) sendFocusedWindowToTag(tag TagID) (bool, bool) {
	w := s.focusedWindow()
	if w == nil || s.Tags.Get(tag) == nil {
		return false, false
	}
	oldTags := append([]TagID(nil), w.Tags...)
	w.ClearTags()
	w.Tag(tag)
	for _, t := range oldTags {
		s.ApplyLayoutForTag(t)
	}
	s.ApplyLayoutForTag(tag)
	return true, true
}

// moveWindowToTagOffset implements the resolved MoveWindowToNextTag open
// question: wrap-around, with an optional follow that also focuses the
// destination tag.
func (s *State[H]) moveWindowToTagOffset(offset int, follow bool) (bool, bool) {
	w := s.focusedWindow()
	if w == nil || len(w.Tags) == 0 {
		return false, false
	}
	visible := s.Tags.Visible()
	if len(visible) == 0 {
		return false, false
	}
	idx := -1
	for i, t := range visible {
		if t.ID == w.Tags[0] {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, false
	}
	dest := visible[((idx+offset)%len(visible)+len(visible))%len(visible)]
	handled, render := s.sendFocusedWindowToTag(dest.ID)
	if handled && follow {
		s.FocusTag(dest.ID)
	}
	return handled, render
}

func (s *State[H]) moveWindowToWorkspaceOffset(offset int) (bool, bool) {
	w := s.focusedWindow()
	if w == nil || len(s.Workspaces) == 0 {
		return false, false
	}
	curWs := s.workspaceForWindow(w)
	if curWs == nil {
		return false, false
	}
	idx := -1
	for i, ws := range s.Workspaces {
		if ws.ID == curWs.ID {
			idx = i
			break
		}
	}
	destWs := s.Workspaces[((idx+offset)%len(s.Workspaces)+len(s.Workspaces))%len(s.Workspaces)]
	if destWs.Tag == nil {
		return false, false
	}
	return s.sendFocusedWindowToTag(*destWs.Tag)
}

// moveFocusedWithinTag swaps the focused window with its neighbor (offset
// +1/-1) among all windows sharing its tag, in global list order,
// preserving focus and re-sorting.
func (s *State[H]) moveFocusedWithinTag(offset int) (bool, bool) {
	w := s.focusedWindow()
	if w == nil || len(w.Tags) == 0 {
		return false, false
	}
	tag := w.Tags[0]
	tagged := s.windowsOnTag(tag)
	idx := -1
	for i, tw := range tagged {
		if tw.Handle == w.Handle {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, false
	}
	j := idx + offset
	if j < 0 || j >= len(tagged) {
		return false, false
	}
	s.swapInGlobalList(tagged[idx], tagged[j])
	s.SortWindows()
	s.ApplyLayoutForTag(tag)
	return true, true
}

func (s *State[H]) swapInGlobalList(a, b *Window[H]) {
	ia, ib := -1, -1
	for i, w := range s.Windows {
		if w.Handle == a.Handle {
			ia = i
		}
		if w.Handle == b.Handle {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return
	}
	s.Windows[ia], s.Windows[ib] = s.Windows[ib], s.Windows[ia]
}

func (s *State[H]) moveFocusedToTop(swap bool) (bool, bool) {
	w := s.focusedWindow()
	if w == nil {
		return false, false
	}
	tagged := s.windowsOnTag(w.Tags[0])
	if len(tagged) == 0 || tagged[0].Handle == w.Handle {
		return false, false
	}
	if swap {
		s.swapInGlobalList(tagged[0], w)
	} else {
		s.MoveToTop(w.Handle)
	}
	s.SortWindows()
	s.ApplyLayoutForTag(w.Tags[0])
	return true, true
}

func (s *State[H]) focusRelativeWithinTag(offset int) (bool, bool) {
	w := s.focusedWindow()
	if w == nil || len(w.Tags) == 0 {
		return false, false
	}
	tagged := s.windowsOnTag(w.Tags[0])
	idx := -1
	for i, tw := range tagged {
		if tw.Handle == w.Handle {
			idx = i
			break
		}
	}
	if idx < 0 || len(tagged) == 0 {
		return false, false
	}
	j := ((idx+offset)%len(tagged) + len(tagged)) % len(tagged)
	return true, s.FocusWindow(tagged[j].Handle)
}

func (s *State[H]) focusTopOfTag() (bool, bool) {
	w := s.focusedWindow()
	if w == nil || len(w.Tags) == 0 {
		return false, false
	}
	tagged := s.windowsOnTag(w.Tags[0])
	if len(tagged) == 0 {
		return false, false
	}
	return true, s.FocusWindow(tagged[0].Handle)
}

// goToTag implements "press current tag again -> return to previous tag"
// when swap is true; swap=false always goes to tag literally.
func (s *State[H]) goToTag(tag TagID, swap bool) (bool, bool) {
	if s.Tags.Get(tag) == nil {
		return false, false
	}
	if swap {
		if cur, ok := s.Focus.CurrentTag(); ok && cur == tag {
			hist := s.Focus.TagHistory()
			if len(hist) >= 2 {
				return true, s.FocusTag(hist[1])
			}
		}
	}
	return true, s.FocusTag(tag)
}

func (s *State[H]) closeFocusedWindow() (bool, bool) {
	w := s.focusedWindow()
	if w == nil {
		return false, false
	}
	s.pushAction(DisplayAction[H]{Kind: ActionKillWindow, Window: w.Handle})
	return true, true
}

func (s *State[H]) closeAllOtherWindows() (bool, bool) {
	w := s.focusedWindow()
	if w == nil {
		return false, false
	}
	for _, other := range s.Windows {
		if other.Handle != w.Handle && other.Type == TypeNormal {
			s.pushAction(DisplayAction[H]{Kind: ActionKillWindow, Window: other.Handle})
		}
	}
	return true, true
}

func (s *State[H]) swapScreens() (bool, bool) {
	if len(s.Workspaces) < 2 {
		return false, false
	}
	a, b := s.Workspaces[0], s.Workspaces[1]
	a.Tag, b.Tag = b.Tag, a.Tag
	s.ApplyLayout(a)
	s.ApplyLayout(b)
	return true, true
}

func (s *State[H]) sendWorkspaceToTag(wsIdx int, tag TagID) (bool, bool) {
	if wsIdx < 0 || wsIdx >= len(s.Workspaces) || s.Tags.Get(tag) == nil {
		return false, false
	}
	ws := s.Workspaces[wsIdx]
	ws.Tag = &tag
	s.ApplyLayout(ws)
	return true, true
}

func (s *State[H]) setLayout(name string) (bool, bool) {
	tag := s.focusedTag()
	if tag == nil {
		return false, false
	}
	tag.Layout = name
	s.ApplyLayoutForTag(tag.ID)
	return true, true
}

func (s *State[H]) cycleLayout(direction int) (bool, bool) {
	tag := s.focusedTag()
	if tag == nil {
		return false, false
	}
	ws := s.workspaceForTag(tag.ID)
	var wsLayouts []string
	if ws != nil {
		wsLayouts = s.Config.WorkspaceLayouts[ws.ID]
	}
	if direction >= 0 {
		tag.Layout = s.Layouts.NextLayout(tag.Layout, wsLayouts)
	} else {
		tag.Layout = s.Layouts.PreviousLayout(tag.Layout, wsLayouts)
	}
	s.ApplyLayoutForTag(tag.ID)
	return true, true
}

func (s *State[H]) changeMainWidth(delta, sign int) (bool, bool) {
	tag := s.focusedTag()
	if tag == nil {
		return false, false
	}
	tag.SetLayout(tag.Layout, tag.MainWidthPercentage+sign*delta)
	s.ApplyLayoutForTag(tag.ID)
	return true, true
}

func (s *State[H]) setMarginMultiplier(m float64) (bool, bool) {
	tag := s.focusedTag()
	if tag == nil {
		return false, false
	}
	for _, w := range s.windowsOnTag(tag.ID) {
		w.ApplyMarginMultiplier(m)
	}
	s.ApplyLayoutForTag(tag.ID)
	return true, true
}

func (s *State[H]) focusTagOffset(offset int, behavior TagChangeBehaviour) (bool, bool) {
	visible := s.Tags.Visible()
	if len(visible) == 0 {
		return false, false
	}
	cur, ok := s.Focus.CurrentTag()
	idx := 0
	if ok {
		for i, t := range visible {
			if t.ID == cur {
				idx = i
				break
			}
		}
	}
	for step := 1; step <= len(visible); step++ {
		j := ((idx+offset*step)%len(visible) + len(visible)) % len(visible)
		candidate := visible[j]
		hasWindows := len(s.windowsOnTag(candidate.ID)) > 0
		switch behavior {
		case TagChangeIgnoreEmpty:
			if !hasWindows {
				continue
			}
		case TagChangeIgnoreUsed:
			if hasWindows {
				continue
			}
		}
		return true, s.FocusTag(candidate.ID)
	}
	return false, false
}

func (s *State[H]) focusWorkspaceOffset(offset int) (bool, bool) {
	if len(s.Workspaces) == 0 {
		return false, false
	}
	cur, ok := s.Focus.CurrentWorkspace()
	idx := 0
	if ok {
		for i, ws := range s.Workspaces {
			if ws.ID == cur {
				idx = i
				break
			}
		}
	}
	j := ((idx+offset)%len(s.Workspaces) + len(s.Workspaces)) % len(s.Workspaces)
	return true, s.FocusWorkspace(s.Workspaces[j].ID)
}
