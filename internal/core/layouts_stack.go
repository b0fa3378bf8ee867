// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/layouts_stack.go

package core

// layoutMainAndDeck: n=1 fills; n>=2 first window takes the main-width
// column, the rest share the remaining column stacked on top of each other,
// but only the topmost of the deck (the second window) is visible.
// Horizontal flip swaps which side is main.
func layoutMainAndDeck(rect Xyhw, windows []Tileable, opts LayoutOptions) {
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
	deckW := rect.W - mainW
	mainRect := Xyhw{X: rect.X, Y: rect.Y, W: mainW, H: rect.H}
	deckRect := Xyhw{X: rect.X + mainW, Y: rect.Y, W: deckW, H: rect.H}
	if opts.FlipHorizontal {
		mainRect.X = rect.X + deckW
		deckRect.X = rect.X
	}
	windows[0].setNormal(mainRect)
	windows[0].setVisible(true)
	for i := 1; i < n; i++ {
		windows[i].setNormal(deckRect)
		windows[i].setVisible(i == 1)
	}
}

// layoutMainAndVertStack: first window takes the main-width column, full
// height; the remaining n-1 split the other column vertically in equal
// heights, last absorbing rounding. FlipHorizontal swaps which side is
// main; FlipVertical reverses stack order.
func layoutMainAndVertStack(rect Xyhw, windows []Tileable, opts LayoutOptions) {
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
	stackW := rect.W - mainW
	mainX, stackX := rect.X, rect.X+mainW
	if opts.FlipHorizontal {
		stackX, mainX = rect.X, rect.X+stackW
	}
	windows[0].setNormal(Xyhw{X: mainX, Y: rect.Y, W: mainW, H: rect.H})
	windows[0].setVisible(true)

	stackWindows := windows[1:]
	n = len(stackWindows)
	heights := splitEven(rect.H, n)
	slots := make([]Xyhw, n)
	y := rect.Y
	for i, h := range heights {
		slots[i] = Xyhw{X: stackX, Y: y, W: stackW, H: h}
		y += h
	}
	for i, w := range stackWindows {
		idx := i
		if opts.FlipVertical {
			idx = n - 1 - i
		}
		w.setNormal(slots[idx])
		w.setVisible(true)
	}
}

// layoutRightMainAndVertStack is MainAndVertStack with the main column
// pinned to the right, regardless of the tag's flip flags.
func layoutRightMainAndVertStack(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	opts.FlipHorizontal = true
	layoutMainAndVertStack(rect, windows, opts)
}

// layoutMainAndHorizontalStack is the row/column transpose of
// layoutMainAndVertStack.
func layoutMainAndHorizontalStack(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	if n == 0 {
		return
	}
	if n == 1 {
		windows[0].setNormal(rect)
		windows[0].setVisible(true)
		return
	}
	mainH := rect.H * opts.MainWidthPercentage / 100
	stackH := rect.H - mainH
	mainY, stackY := rect.Y, rect.Y+mainH
	if opts.FlipVertical {
		stackY, mainY = rect.Y, rect.Y+stackH
	}
	windows[0].setNormal(Xyhw{X: rect.X, Y: mainY, W: rect.W, H: mainH})
	windows[0].setVisible(true)

	stackWindows := windows[1:]
	n = len(stackWindows)
	widths := splitEven(rect.W, n)
	slots := make([]Xyhw, n)
	x := rect.X
	for i, width := range widths {
		slots[i] = Xyhw{X: x, Y: stackY, W: width, H: stackH}
		x += width
	}
	for i, w := range stackWindows {
		idx := i
		if opts.FlipHorizontal {
			idx = n - 1 - i
		}
		w.setNormal(slots[idx])
		w.setVisible(true)
	}
}

// layoutEvenHorizontalGeneric divides the rect into n equal-width, full-
// height columns.
func layoutEvenHorizontalGeneric(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	widths := splitEven(rect.W, n)
	slots := make([]Xyhw, n)
	x := rect.X
	for i, width := range widths {
		slots[i] = Xyhw{X: x, Y: rect.Y, W: width, H: rect.H}
		x += width
	}
	for i, w := range windows {
		idx := i
		if opts.FlipHorizontal {
			idx = n - 1 - i
		}
		w.setNormal(slots[idx])
		w.setVisible(true)
	}
}

// layoutEvenVertical divides the rect into n equal-height, full-width rows.
func layoutEvenVertical(rect Xyhw, windows []Tileable, opts LayoutOptions) {
	n := len(windows)
	heights := splitEven(rect.H, n)
	slots := make([]Xyhw, n)
	y := rect.Y
	for i, h := range heights {
		slots[i] = Xyhw{X: rect.X, Y: y, W: rect.W, H: h}
		y += h
	}
	for i, w := range windows {
		idx := i
		if opts.FlipVertical {
			idx = n - 1 - i
		}
		w.setNormal(slots[idx])
		w.setVisible(true)
	}
}
