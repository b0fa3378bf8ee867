// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/layouts_center.go

package core

// layoutCenterMain centers the main window in a column sized by the tag's
// main-width percentage; the second window fills the opposite (right)
// column; any remaining windows stack vertically in the left column.
func layoutCenterMain(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	if n == 0 {
		return
	}
	if n == 1 {
		windows[0].setNormal(rect)
		windows[0].setVisible(true)
		return
	}
	mainW := rect.W * opts.MainWidthPercentage / 100
	sideW := (rect.W - mainW) / 2
	leftW := sideW
	rightW := rect.W - mainW - sideW
	mainX := rect.X + leftW
	rightX := mainX + mainW
	leftX := rect.X

	if opts.FlipHorizontal {
		mainX = rect.X + rightW
		rightX, leftX = rect.X, mainX+mainW
	}

	windows[0].setNormal(Xyhw{X: mainX, Y: rect.Y, W: mainW, H: rect.H})
	windows[0].setVisible(true)

	windows[1].setNormal(Xyhw{X: rightX, Y: rect.Y, W: rightW, H: rect.H})
	windows[1].setVisible(true)

	if n < 3 {
		return
	}
	leftWindows := windows[2:]
	heights := splitEven(rect.H, len(leftWindows))
	y := rect.Y
	for i, h := range heights {
		leftWindows[i].setNormal(Xyhw{X: leftX, Y: y, W: leftW, H: h})
		leftWindows[i].setVisible(true)
		y += h
	}
}

// layoutCenterMainBalanced is CenterMain, but the side columns are
// populated with a fibonacci-style alternating split: even-indexed
// secondary windows go right, odd-indexed go left, each subsequent window on
// a side taking half of that side's remaining rect.
func layoutCenterMainBalanced(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	if n == 0 {
		return
	}
	if n == 1 {
		windows[0].setNormal(rect)
		windows[0].setVisible(true)
		return
	}
	mainW := rect.W * opts.MainWidthPercentage / 100
	sideW := (rect.W - mainW) / 2
	leftW := sideW
	rightW := rect.W - mainW - sideW
	mainX := rect.X + leftW
	rightX := mainX + mainW
	leftX := rect.X
	if opts.FlipHorizontal {
		mainX = rect.X + rightW
		rightX, leftX = rect.X, mainX+mainW
	}
	windows[0].setNormal(Xyhw{X: mainX, Y: rect.Y, W: mainW, H: rect.H})
	windows[0].setVisible(true)

	var rightWins, leftWins []Tileable
	for i, w := range windows[1:] {
		if i%2 == 0 {
			rightWins = append(rightWins, w)
		} else {
			leftWins = append(leftWins, w)
		}
	}
	fibonacciStack(Xyhw{X: rightX, Y: rect.Y, W: rightW, H: rect.H}, rightWins, opts)
	fibonacciStack(Xyhw{X: leftX, Y: rect.Y, W: leftW, H: rect.H}, leftWins, opts)
}

// fibonacciStack lays out windows within rect, each subsequent window taking
// half of what remains vertically (alternating from the top), absorbing the
// final remainder into the last window.
func fibonacciStack(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	if n == 0 {
		return
	}
	remaining := rect
	for i := 0; i < n; i++ {
		if i == n-1 {
			windows[i].setNormal(remaining)
			windows[i].setVisible(true)
			break
		}
		heights := splitEven(remaining.H, 2)
		top := Xyhw{X: remaining.X, Y: remaining.Y, W: remaining.W, H: heights[0]}
		bottom := Xyhw{X: remaining.X, Y: remaining.Y + heights[0], W: remaining.W, H: heights[1]}
		if opts.FlipVertical {
			top, bottom = bottom, top
		}
		windows[i].setNormal(top)
		windows[i].setVisible(true)
		remaining = bottom
	}
}
