// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/state.go

package core

import "log"

// State owns every entity plus the outbound action FIFO, and exposes the
// single Handle entrypoint the outer loop calls. No other goroutine may
// call into a State concurrently with an in-flight Handle or Dispatch call.
type State[H Handle] struct {
	Screens    []*Screen[H]
	Windows    []*Window[H]
	Workspaces []*Workspace
	Tags       *Tags

	Focus   *FocusManager[H]
	Layouts *LayoutManager
	Mode    Mode[H]

	Scratchpads *ScratchpadController
	Config      Config

	actions []DisplayAction[H]

	nextWorkspaceID WorkspaceID
	logger          *log.Logger
}

// New constructs a State from a resolved configuration, creating the tag
// table including the hidden NSP tag used for scratchpad windows.
func New[H Handle](cfg Config, logger *log.Logger) *State[H] {
	if logger == nil {
		logger = log.Default()
	}
	lm := NewLayoutManager(cfg.LayoutMode, cfg.Layouts)
	tags := NewTags()
	for _, label := range cfg.TagLabels {
		tags.AddNew(label, lm.NewLayout())
	}
	tags.AddNewHidden(NSPTagLabel)

	return &State[H]{
		Tags:        tags,
		Focus:       NewFocusManager[H](cfg.FocusBehaviour, cfg.FocusNewWindows, cfg.SloppyMouseFollowsFocus),
		Layouts:     lm,
		Mode:        NewMode[H](),
		Scratchpads: NewScratchpadController(cfg.Scratchpads),
		Config:      cfg,
		logger:      logger,
	}
}

// pushAction enqueues an outbound display action.
func (s *State[H]) pushAction(a DisplayAction[H]) {
	s.actions = append(s.actions, a)
}

// DrainActions removes and returns every queued action, in FIFO order, for
// the adapter to execute between ticks.
func (s *State[H]) DrainActions() []DisplayAction[H] {
	out := s.actions
	s.actions = nil
	return out
}

// PendingActions reports how many actions are queued without draining them.
func (s *State[H]) PendingActions() int {
	return len(s.actions)
}

func (s *State[H]) logIgnorable(format string, args ...any) {
	s.logger.Printf("core: "+format, args...)
}

// findWindow returns the window with the given handle, or nil.
func (s *State[H]) findWindow(h WindowHandle[H]) *Window[H] {
	for _, w := range s.Windows {
		if w.Handle == h {
			return w
		}
	}
	return nil
}

// findWorkspace returns the workspace with the given id, or nil.
func (s *State[H]) findWorkspace(id WorkspaceID) *Workspace {
	for _, ws := range s.Workspaces {
		if ws.ID == id {
			return ws
		}
	}
	return nil
}

// workspaceForTag returns the workspace currently showing tag, or nil.
func (s *State[H]) workspaceForTag(tag TagID) *Workspace {
	for _, ws := range s.Workspaces {
		if ws.Tag != nil && *ws.Tag == tag {
			return ws
		}
	}
	return nil
}

// workspaceForPoint returns the workspace whose bbox contains the point, or
// nil.
func (s *State[H]) workspaceForPoint(x, y int) *Workspace {
	for _, ws := range s.Workspaces {
		if ws.ContainsPoint(x, y) {
			return ws
		}
	}
	return nil
}

// workspaceForWindow returns the workspace that manages w's first tag.
func (s *State[H]) workspaceForWindow(w *Window[H]) *Workspace {
	for _, tag := range w.Tags {
		if ws := s.workspaceForTag(tag); ws != nil {
			return ws
		}
	}
	return nil
}

// windowsOnTag returns every window carrying tag, in global list order.
func (s *State[H]) windowsOnTag(tag TagID) []*Window[H] {
	var out []*Window[H]
	for _, w := range s.Windows {
		if w.HasTag(tag) {
			out = append(out, w)
		}
	}
	return out
}

// tiledWindowsOnTag returns the windows on tag eligible for a layout pass:
// managed, Normal type, visible, not floating. Fullscreen windows are not
// filtered out: they keep their slot, and their effective rect overrides
// the one the layout assigns.
func (s *State[H]) tiledWindowsOnTag(tag TagID) []*Window[H] {
	var out []*Window[H]
	for _, w := range s.windowsOnTag(tag) {
		if w.IsUnmanaged() || w.Type != TypeNormal || w.Floats() || !w.VisibleState() {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SortWindows re-orders the global window list into four bands, preserving
// relative order within each: (1) Dialogs/Splashes/Menus/Utility, (2) Normal
// floating, (3) Normal tiled, (4) Docks/Desktops/other. Idempotent: sorting
// twice yields the same order. Emits SetWindowOrder.
func (s *State[H]) SortWindows() {
	var level1, level2, level3, other []*Window[H]
	for _, w := range s.Windows {
		switch {
		case w.Type == TypeDialog || w.Type == TypeSplash || w.Type == TypeUtility || w.Type == TypeMenu:
			level1 = append(level1, w)
		case w.Type == TypeNormal && w.Floats():
			level2 = append(level2, w)
		case w.Type == TypeNormal:
			level3 = append(level3, w)
		default:
			other = append(other, w)
		}
	}
	ordered := make([]*Window[H], 0, len(s.Windows))
	ordered = append(ordered, level1...)
	ordered = append(ordered, level2...)
	ordered = append(ordered, level3...)
	ordered = append(ordered, other...)
	s.Windows = ordered

	order := make([]WindowHandle[H], len(ordered))
	for i, w := range ordered {
		order[i] = w.Handle
	}
	s.pushAction(DisplayAction[H]{Kind: ActionSetWindowOrder, Order: order})
}

// MoveToTop pulls handle to index 0 of the global window list and re-sorts.
func (s *State[H]) MoveToTop(h WindowHandle[H]) bool {
	idx := -1
	for i, w := range s.Windows {
		if w.Handle == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	w := s.Windows[idx]
	s.Windows = append(s.Windows[:idx], s.Windows[idx+1:]...)
	s.Windows = append([]*Window[H]{w}, s.Windows...)
	s.SortWindows()
	return true
}

// UpdateStatic re-tags sticky windows and docks to the workspace containing
// their center point.
func (s *State[H]) UpdateStatic() {
	for _, w := range s.Windows {
		if w.Strut == nil && !w.IsSticky() {
			continue
		}
		var cx, cy int
		if w.Strut != nil {
			cx, cy = w.Strut.Center()
		} else {
			cx, cy = w.CalculatedXYHW().Center()
		}
		if ws := s.workspaceForPoint(cx, cy); ws != nil && ws.Tag != nil {
			w.ClearTags()
			w.Tag(*ws.Tag)
		}
	}
}

// ApplyLayout re-runs the active layout for the workspace's tag over its
// tiled windows and recomputes their Normal rects in place.
func (s *State[H]) ApplyLayout(ws *Workspace) {
	if ws.Tag == nil {
		return
	}
	tag := s.Tags.Get(*ws.Tag)
	if tag == nil {
		return
	}
	windows := s.tiledWindowsOnTag(*ws.Tag)
	opts := LayoutOptions{
		FlipHorizontal:      tag.FlippedHorizontal,
		FlipVertical:        tag.FlippedVertical,
		MainWidthPercentage: tag.MainWidthPercentage,
	}
	layout := tag.Layout
	if s.Layouts.Mode == LayoutModeWorkspace && ws.Layout != "" {
		layout = ws.Layout
		opts.MainWidthPercentage = ws.MainWidthPercentage
	}
	Apply(layout, ws.EffectiveRect(), windows, opts)
}

// ApplyLayoutForTag re-applies the layout on whichever workspace currently
// shows tag, if any.
func (s *State[H]) ApplyLayoutForTag(tag TagID) {
	if ws := s.workspaceForTag(tag); ws != nil {
		s.ApplyLayout(ws)
	}
}
