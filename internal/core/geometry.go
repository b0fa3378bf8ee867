// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/geometry.go

package core

// Xyhw is a rectangle with optional min/max size constraints. Zero-value
// min/max fields mean "unconstrained".
type Xyhw struct {
	X, Y, W, H         int
	MinW, MaxW         int
	MinH, MaxH         int
}

// ContainsPoint reports whether (x, y) lies within the rect, inclusive on
// all edges.
func (r Xyhw) ContainsPoint(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the rect's midpoint.
func (r Xyhw) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Add sums x/y/w/h componentwise; used to apply a floating offset to a
// normal rect.
func (r Xyhw) Add(other Xyhw) Xyhw {
	out := r
	out.X += other.X
	out.Y += other.Y
	out.W += other.W
	out.H += other.H
	return out
}

// Sub is the inverse of Add.
func (r Xyhw) Sub(other Xyhw) Xyhw {
	out := r
	out.X -= other.X
	out.Y -= other.Y
	out.W -= other.W
	out.H -= other.H
	return out
}

// ClearMinMax zeroes out the size-constraint fields, leaving geometry alone.
func (r *Xyhw) ClearMinMax() {
	r.MinW, r.MaxW, r.MinH, r.MaxH = 0, 0, 0, 0
}

// Without trims r so that it no longer overlaps other, cutting from
// whichever edge of other is nearest. Used to derive a workspace's avoided
// rect from a dock's strut.
func (r Xyhw) Without(other Xyhw) Xyhw {
	if !rectsOverlap(r, other) {
		return r
	}
	out := r

	// Distances from r's edges to other's edges that would produce a valid cut.
	const unset = -1
	top, bottom, left, right := unset, unset, unset, unset

	if other.Y+other.H > r.Y && other.Y+other.H <= r.Y+r.H {
		top = other.Y + other.H
	}
	if other.Y >= r.Y && other.Y < r.Y+r.H {
		bottom = other.Y
	}
	if other.X+other.W > r.X && other.X+other.W <= r.X+r.W {
		left = other.X + other.W
	}
	if other.X >= r.X && other.X < r.X+r.W {
		right = other.X
	}

	// Choose the shallowest cut: among the bounds that are set, prefer the one
	// closest to r's own edge on that side.
	best := -1
	bestCost := int(^uint(0) >> 1)
	consider := func(cost, which int) {
		if cost >= 0 && cost < bestCost {
			bestCost = cost
			best = which
		}
	}
	if top != unset {
		consider(top-r.Y, 0)
	}
	if bottom != unset {
		consider(r.Y+r.H-bottom, 1)
	}
	if left != unset {
		consider(left-r.X, 2)
	}
	if right != unset {
		consider(r.X+r.W-right, 3)
	}

	switch best {
	case 0:
		out.H = out.H - (top - r.Y)
		out.Y = top
	case 1:
		out.H = bottom - r.Y
	case 2:
		out.W = out.W - (left - r.X)
		out.X = left
	case 3:
		out.W = right - r.X
	}
	return out
}

func rectsOverlap(a, b Xyhw) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// CenterHalfed returns self halved in each dimension, centered within self.
func (r Xyhw) CenterHalfed() Xyhw {
	out := r
	out.W = r.W / 2
	out.H = r.H / 2
	out.X = r.X + (r.W-out.W)/2
	out.Y = r.Y + (r.H-out.H)/2
	return out
}

// CenterRelative positions self centered inside outer, honoring requested
// size hints when present and accounting for border width.
func (r Xyhw) CenterRelative(outer Xyhw, border int, requested *Xyhw) Xyhw {
	out := r
	if requested != nil {
		if requested.W > 0 {
			out.W = requested.W
		}
		if requested.H > 0 {
			out.H = requested.H
		}
	}
	out.X = outer.X + (outer.W-out.W)/2 - border
	out.Y = outer.Y + (outer.H-out.H)/2 - border
	return out
}

// Update copies any non-zero field of other into r's size hints and reports
// whether anything changed.
func (r *Xyhw) Update(other Xyhw) bool {
	changed := false
	assign := func(dst *int, src int) {
		if src != 0 && *dst != src {
			*dst = src
			changed = true
		}
	}
	assign(&r.MinW, other.MinW)
	assign(&r.MaxW, other.MaxW)
	assign(&r.MinH, other.MinH)
	assign(&r.MaxH, other.MaxH)
	return changed
}

// distanceSquared returns the squared euclidean distance between two points,
// avoiding a sqrt for comparison-only use (focus-fallback nearest window).
func distanceSquared(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
