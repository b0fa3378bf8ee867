// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/layouts_fibonacci.go

package core

// layoutFibonacci alternately halves the remaining rect: window i takes
// half, window i+1 takes the other half, then the process continues in the
// smaller (second) half. The axis alternates horizontal/vertical each step.
// FlipHorizontal/FlipVertical choose which side of a given-axis split is
// kept for the current window versus carried forward.
func layoutFibonacci(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	if n == 0 {
		return
	}
	remaining := rect
	horizontalTurn := true
	for i := 0; i < n; i++ {
		if i == n-1 {
			windows[i].setNormal(remaining)
			windows[i].setVisible(true)
			break
		}
		var first, second Xyhw
		if horizontalTurn {
			widths := splitEven(remaining.W, 2)
			first = Xyhw{X: remaining.X, Y: remaining.Y, W: widths[0], H: remaining.H}
			second = Xyhw{X: remaining.X + widths[0], Y: remaining.Y, W: widths[1], H: remaining.H}
			if opts.FlipHorizontal {
				first, second = second, first
			}
		} else {
			heights := splitEven(remaining.H, 2)
			first = Xyhw{X: remaining.X, Y: remaining.Y, W: remaining.W, H: heights[0]}
			second = Xyhw{X: remaining.X, Y: remaining.Y + heights[0], W: remaining.W, H: heights[1]}
			if opts.FlipVertical {
				first, second = second, first
			}
		}
		windows[i].setNormal(first)
		windows[i].setVisible(true)
		remaining = second
		horizontalTurn = !horizontalTurn
	}
}
