// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/screen.go

package core

// Screen is a physical output with an immutable bounding box, a stable root
// handle, and a name. Screens are created once per backend screen-create
// event and never destroyed during the core's lifetime.
type Screen[H Handle] struct {
	ID   int
	BBox Xyhw
	Root H
	Name string
}

// ContainsPoint reports whether the point lies within the screen's bbox.
func (s Screen[H]) ContainsPoint(x, y int) bool {
	return s.BBox.ContainsPoint(x, y)
}

// ContainsDockArea reports whether the given strut rect lies within the
// screen, used when deciding which workspace a dock's strut affects.
func (s Screen[H]) ContainsDockArea(strut Xyhw) bool {
	cx, cy := strut.Center()
	return s.BBox.ContainsPoint(cx, cy)
}
