// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/state_persist.go

package core

// Snapshot is the persisted subset of a State, deliberately omitting every
// backend handle: handles are only valid for the lifetime of a single
// display-server connection, so a soft reload restores tag/workspace/window
// bookkeeping by pid and re-attaches handles as WindowCreate events arrive
// fresh from the backend.
type Snapshot struct {
	Tags       []TagSnapshot
	Workspaces []WorkspaceSnapshot
	Windows    []WindowSnapshot
}

// TagSnapshot persists one tag's layout configuration.
type TagSnapshot struct {
	ID                  TagID
	Layout              string
	FlippedHorizontal   bool
	FlippedVertical     bool
	MainWidthPercentage int
}

// WorkspaceSnapshot persists one workspace's tag assignment and per-workspace
// layout override.
type WorkspaceSnapshot struct {
	ID                  WorkspaceID
	Tag                 *TagID
	Layout              string
	MainWidthPercentage int
}

// WindowSnapshot persists one window's tag/floating/state bookkeeping, keyed
// by pid since the backend handle itself does not survive a reload.
type WindowSnapshot struct {
	Pid              int
	Tags             []TagID
	Floating         bool
	FloatingOffset   *Xyhw
	MarginMultiplier float64
	Strut            *Xyhw
	States           []WindowState
}

// Snapshot captures the persistable portion of the current state.
func (s *State[H]) Snapshot() Snapshot {
	snap := Snapshot{}
	for _, t := range s.Tags.All() {
		snap.Tags = append(snap.Tags, TagSnapshot{
			ID:                  t.ID,
			Layout:              t.Layout,
			FlippedHorizontal:   t.FlippedHorizontal,
			FlippedVertical:     t.FlippedVertical,
			MainWidthPercentage: t.MainWidthPercentage,
		})
	}
	for _, ws := range s.Workspaces {
		snap.Workspaces = append(snap.Workspaces, WorkspaceSnapshot{
			ID:                  ws.ID,
			Tag:                 ws.Tag,
			Layout:              ws.Layout,
			MainWidthPercentage: ws.MainWidthPercentage,
		})
	}
	for _, w := range s.Windows {
		if w.IsUnmanaged() {
			continue
		}
		snap.Windows = append(snap.Windows, WindowSnapshot{
			Pid:              w.Pid,
			Tags:             append([]TagID(nil), w.Tags...),
			Floating:         w.IsFloating,
			FloatingOffset:   w.Floating,
			MarginMultiplier: w.MarginMultiplier,
			Strut:            w.Strut,
			States:           append([]WindowState(nil), w.States...),
		})
	}
	return snap
}

// RestoreState re-applies a prior Snapshot onto the current state (a soft
// reload): tags and workspaces are matched by id, windows by pid. A window
// whose persisted tags no longer exist falls back to tag 1. Windows present
// in the snapshot but absent from the live window list (already closed) are
// silently skipped; live windows with no matching snapshot entry are left
// untouched.
func (s *State[H]) RestoreState(snap Snapshot) {
	for _, ts := range snap.Tags {
		if t := s.Tags.Get(ts.ID); t != nil {
			t.SetLayout(ts.Layout, ts.MainWidthPercentage)
			t.FlippedHorizontal = ts.FlippedHorizontal
			t.FlippedVertical = ts.FlippedVertical
		}
	}
	for _, wsSnap := range snap.Workspaces {
		ws := s.findWorkspace(wsSnap.ID)
		if ws == nil {
			continue
		}
		ws.Tag = wsSnap.Tag
		ws.Layout = wsSnap.Layout
		ws.MainWidthPercentage = wsSnap.MainWidthPercentage
	}

	byPid := make(map[int]WindowSnapshot, len(snap.Windows))
	for _, wSnap := range snap.Windows {
		byPid[wSnap.Pid] = wSnap
	}
	fallback := TagID(1)
	for _, w := range s.Windows {
		wSnap, ok := byPid[w.Pid]
		if !ok {
			continue
		}
		w.ClearTags()
		for _, tag := range wSnap.Tags {
			if s.Tags.Get(tag) != nil {
				w.Tag(tag)
			}
		}
		if len(w.Tags) == 0 && s.Tags.Get(fallback) != nil {
			w.Tag(fallback)
		}
		w.IsFloating = wSnap.Floating
		w.Floating = wSnap.FloatingOffset
		w.MarginMultiplier = wSnap.MarginMultiplier
		w.Strut = wSnap.Strut
		w.States = wSnap.States
	}

	s.SortWindows()
	for _, ws := range s.Workspaces {
		s.ApplyLayout(ws)
	}
}
