// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package core

import "testing"

type fakeTile struct {
	normal  Xyhw
	visible bool
}

func (f *fakeTile) setNormal(r Xyhw) { f.normal = r }
func (f *fakeTile) setVisible(v bool) { f.visible = v }

func TestSplitEvenAbsorbsRemainder(t *testing.T) {
	shares := splitEven(100, 3)
	if len(shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(shares))
	}
	sum := 0
	for _, s := range shares {
		sum += s
	}
	if sum != 100 {
		t.Fatalf("shares do not sum to length: got %d, want 100", sum)
	}
	if shares[0] != 33 || shares[1] != 33 || shares[2] != 34 {
		t.Fatalf("unexpected distribution: %v", shares)
	}
}

func TestLayoutEvenHorizontalTilesExactly(t *testing.T) {
	rect := Xyhw{X: 0, Y: 0, W: 300, H: 200}
	windows := []*Window[int]{
		NewWindow(NewWindowHandle(1), "a", 1),
		NewWindow(NewWindowHandle(2), "b", 2),
		NewWindow(NewWindowHandle(3), "c", 3),
	}
	Apply(LayoutEvenHorizontal, rect, windows, LayoutOptions{})

	total := 0
	for _, w := range windows {
		if w.Normal.H != rect.H {
			t.Fatalf("window %s: expected full height %d, got %d", w.Name, rect.H, w.Normal.H)
		}
		total += w.Normal.W
	}
	if total != rect.W {
		t.Fatalf("widths do not tile exactly: got %d, want %d", total, rect.W)
	}
}

func TestLayoutFlipReversesOrderNotSize(t *testing.T) {
	rect := Xyhw{X: 0, Y: 0, W: 300, H: 100}
	forward := []*Window[int]{
		NewWindow(NewWindowHandle(1), "a", 1),
		NewWindow(NewWindowHandle(2), "b", 2),
		NewWindow(NewWindowHandle(3), "c", 3),
	}
	Apply(LayoutEvenHorizontal, rect, forward, LayoutOptions{})

	flipped := []*Window[int]{
		NewWindow(NewWindowHandle(1), "a", 1),
		NewWindow(NewWindowHandle(2), "b", 2),
		NewWindow(NewWindowHandle(3), "c", 3),
	}
	Apply(LayoutEvenHorizontal, rect, flipped, LayoutOptions{FlipHorizontal: true})

	if flipped[0].Normal != forward[2].Normal {
		t.Fatalf("flip should hand window 0 the last slot's rect: got %+v, want %+v", flipped[0].Normal, forward[2].Normal)
	}
	if flipped[2].Normal != forward[0].Normal {
		t.Fatalf("flip should hand window 2 the first slot's rect: got %+v, want %+v", flipped[2].Normal, forward[0].Normal)
	}
}

func TestLayoutMonocleOnlyFirstVisible(t *testing.T) {
	rect := Xyhw{X: 0, Y: 0, W: 100, H: 100}
	windows := []*Window[int]{
		NewWindow(NewWindowHandle(1), "a", 1),
		NewWindow(NewWindowHandle(2), "b", 2),
	}
	Apply(LayoutMonocle, rect, windows, LayoutOptions{})
	if !windows[0].Visible {
		t.Fatalf("first window should be visible in Monocle")
	}
	if windows[1].Visible {
		t.Fatalf("second window should be hidden in Monocle")
	}
	if windows[0].Normal != rect || windows[1].Normal != rect {
		t.Fatalf("both windows should cover the full rect in Monocle")
	}
}

func TestLayoutGridHorizontalTilesExactly(t *testing.T) {
	rect := Xyhw{X: 0, Y: 0, W: 301, H: 199}
	windows := make([]*Window[int], 5)
	for i := range windows {
		windows[i] = NewWindow(NewWindowHandle(i+1), "w", i+1)
	}
	Apply(LayoutGridHorizontal, rect, windows, LayoutOptions{})

	var minX, minY, maxX, maxY int
	minX, minY = windows[0].Normal.X, windows[0].Normal.Y
	for _, w := range windows {
		if w.Normal.X < minX {
			minX = w.Normal.X
		}
		if w.Normal.Y < minY {
			minY = w.Normal.Y
		}
		if w.Normal.X+w.Normal.W > maxX {
			maxX = w.Normal.X + w.Normal.W
		}
		if w.Normal.Y+w.Normal.H > maxY {
			maxY = w.Normal.Y + w.Normal.H
		}
	}
	if minX != rect.X || minY != rect.Y || maxX != rect.X+rect.W || maxY != rect.Y+rect.H {
		t.Fatalf("grid does not cover the full rect: bounds (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
			minX, minY, maxX, maxY, rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	}
}
