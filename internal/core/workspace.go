// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/workspace.go

package core

// Workspace is the mapping of one tag onto one screen's rectangle.
type Workspace struct {
	ID                 WorkspaceID
	ScreenID           int
	BBox               Xyhw
	Tag                *TagID
	Layout             string
	MainWidthPercentage int
	MarginMultiplier   float64
	MarginTop          int
	MarginBottom       int
	MarginLeft         int
	MarginRight        int
	Avoid              []Xyhw
	avoided            Xyhw
}

// NewWorkspace returns a workspace covering bbox, with a default 1.0 margin
// multiplier and 10px margins.
func NewWorkspace(id WorkspaceID, screenID int, bbox Xyhw) *Workspace {
	ws := &Workspace{
		ID:                  id,
		ScreenID:            screenID,
		BBox:                bbox,
		MarginMultiplier:    1.0,
		MarginTop:           10,
		MarginBottom:        10,
		MarginLeft:          10,
		MarginRight:         10,
		MainWidthPercentage: 50,
	}
	ws.UpdateAvoidedAreas()
	return ws
}

// X, Y, Width, Height expose the workspace's bounding box dimensions.
func (w *Workspace) X() int      { return w.BBox.X }
func (w *Workspace) Y() int      { return w.BBox.Y }
func (w *Workspace) Width() int  { return w.BBox.W }
func (w *Workspace) Height() int { return w.BBox.H }

// ContainsPoint reports whether the point lies within the workspace's bbox.
func (w *Workspace) ContainsPoint(x, y int) bool {
	return w.BBox.ContainsPoint(x, y)
}

// AddAvoid appends a strut rect and recomputes the avoided area.
func (w *Workspace) AddAvoid(strut Xyhw) {
	w.Avoid = append(w.Avoid, strut)
	w.UpdateAvoidedAreas()
}

// RemoveAvoid drops a previously added strut rect (by value) and
// recomputes.
func (w *Workspace) RemoveAvoid(strut Xyhw) {
	out := w.Avoid[:0]
	removed := false
	for _, a := range w.Avoid {
		if !removed && a == strut {
			removed = true
			continue
		}
		out = append(out, a)
	}
	w.Avoid = out
	w.UpdateAvoidedAreas()
}

// UpdateAvoidedAreas recomputes the avoided rect by folding Without over the
// current avoid list. Idempotent and monotone: re-running never grows the
// avoided area.
func (w *Workspace) UpdateAvoidedAreas() {
	area := w.BBox
	for _, a := range w.Avoid {
		area = area.Without(a)
	}
	w.avoided = area
}

// Avoided returns the workspace's rectangle minus all avoid rects.
func (w *Workspace) Avoided() Xyhw {
	return w.avoided
}

// EffectiveRect is the rect layouts should tile into, honoring the
// configured per-workspace margins.
func (w *Workspace) EffectiveRect() Xyhw {
	r := w.Avoided()
	r.X += w.MarginLeft
	r.Y += w.MarginTop
	r.W -= w.MarginLeft + w.MarginRight
	r.H -= w.MarginTop + w.MarginBottom
	return r
}

// IsManaged reports whether a window belongs to this workspace's tag.
func (w *Workspace) IsManaged(tagID TagID) bool {
	return w.Tag != nil && *w.Tag == tagID
}
