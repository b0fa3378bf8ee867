// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/window.go

package core

// WindowHandle wraps a backend handle so the core's own sentinel "no
// window"/"root" values don't collide with real handles of the zero value.
type WindowHandle[H Handle] struct {
	Handle H
	Valid  bool
}

// NewWindowHandle wraps a concrete backend handle.
func NewWindowHandle[H Handle](h H) WindowHandle[H] {
	return WindowHandle[H]{Handle: h, Valid: true}
}

// Window is a managed or unmanaged top-level client.
type Window[H Handle] struct {
	Handle         WindowHandle[H]
	Transient      *WindowHandle[H]
	Visible        bool
	CanResizeFlag  bool
	IsFloating     bool
	MustFloatFlag  bool
	Floating       *Xyhw
	NeverFocus     bool
	Name           string
	ResName        string
	ResClass       string
	Pid            int
	Type           WindowType
	Tags           []TagID
	Border         int
	MarginTop      int
	MarginBottom   int
	MarginLeft     int
	MarginRight    int
	MarginMultiplier float64
	States         []WindowState
	Requested      *Xyhw
	Normal         Xyhw
	StartLoc       *Xyhw
	Strut          *Xyhw
}

// NewWindow constructs a window with sane defaults: 1px border, 10px
// margins, margin multiplier 1.0, Normal type, resizable, not floating.
func NewWindow[H Handle](handle WindowHandle[H], name string, pid int) *Window[H] {
	return &Window[H]{
		Handle:           handle,
		CanResizeFlag:    true,
		Name:             name,
		Pid:              pid,
		Type:             TypeNormal,
		Border:           1,
		MarginTop:        10,
		MarginBottom:     10,
		MarginLeft:       10,
		MarginRight:      10,
		MarginMultiplier: 1.0,
		Normal:           Xyhw{},
	}
}

// VisibleState reports whether the window should be shown, accounting for
// always-visible window types.
func (w *Window[H]) VisibleState() bool {
	return w.Visible || w.Type == TypeMenu || w.Type == TypeSplash || w.Type == TypeToolbar
}

// SetFloating sets the floating flag, initializing the floating offset the
// first time a window becomes floating (relative to its normal position).
func (w *Window[H]) SetFloating(value bool) {
	if !w.IsFloating && value && w.Floating == nil {
		w.ResetFloatOffset()
	}
	w.IsFloating = value
}

// Floats reports whether the window is floating, whether by explicit flag
// or because it must float.
func (w *Window[H]) Floats() bool {
	return w.IsFloating || w.MustFloat()
}

// ResetFloatOffset clears the floating offset to zero (relative to normal).
func (w *Window[H]) ResetFloatOffset() {
	offset := Xyhw{}
	offset.ClearMinMax()
	w.Floating = &offset
}

// SetFloatingOffsets sets the floating offset directly.
func (w *Window[H]) SetFloatingOffsets(offset *Xyhw) {
	if offset != nil {
		offset.ClearMinMax()
	}
	w.Floating = offset
}

// SetFloatingExact computes a floating offset such that the window's
// exact rect equals the given value.
func (w *Window[H]) SetFloatingExact(exact Xyhw) {
	offset := exact.Sub(w.Normal)
	offset.ClearMinMax()
	w.Floating = &offset
}

// IsFullscreen reports whether the fullscreen state is set.
func (w *Window[H]) IsFullscreen() bool {
	return w.HasState(StateFullscreen)
}

// IsSticky reports whether the sticky state is set.
func (w *Window[H]) IsSticky() bool {
	return w.HasState(StateSticky)
}

// MustFloat reports whether the window is forced floating: transient,
// unmanaged, or a splash.
func (w *Window[H]) MustFloat() bool {
	return w.MustFloatFlag || w.Transient != nil || w.IsUnmanaged() || w.Type == TypeSplash
}

// CanMove reports whether the window may be moved (unmanaged windows may
// not).
func (w *Window[H]) CanMove() bool {
	return !w.IsUnmanaged()
}

// CanResize reports whether the window may be resized.
func (w *Window[H]) CanResize() bool {
	return w.CanResizeFlag && !w.IsUnmanaged()
}

// CanFocus reports whether the window is eligible to receive focus.
func (w *Window[H]) CanFocus() bool {
	return !w.NeverFocus && !w.IsUnmanaged() && w.VisibleState()
}

// HasState reports whether the given WM state is set.
func (w *Window[H]) HasState(s WindowState) bool {
	for _, have := range w.States {
		if have == s {
			return true
		}
	}
	return false
}

// SetState adds or removes a WM state.
func (w *Window[H]) SetState(s WindowState, on bool) {
	if on {
		if !w.HasState(s) {
			w.States = append(w.States, s)
		}
		return
	}
	out := w.States[:0]
	for _, have := range w.States {
		if have != s {
			out = append(out, have)
		}
	}
	w.States = out
}

// ApplyMarginMultiplier sets the margin multiplier to abs(value).
func (w *Window[H]) ApplyMarginMultiplier(value float64) {
	if value < 0 {
		value = -value
	}
	w.MarginMultiplier = value
}

func requestedMin(r *Xyhw, floating bool, dim string) int {
	if r == nil || !floating {
		return minDisplayDim
	}
	if dim == "w" && r.MinW > 0 {
		return r.MinW
	}
	if dim == "h" && r.MinH > 0 {
		return r.MinH
	}
	return minDisplayDim
}

// Width returns the effective width: fullscreen override, then floating
// (normal+offset) minus border, then tiled (normal minus margins*multiplier
// minus 2*border), floored at a minimum display dimension unless unmanaged.
func (w *Window[H]) Width() int {
	var value int
	switch {
	case w.IsFullscreen():
		value = w.Normal.W
	case w.Floats() && w.Floating != nil:
		relative := w.Normal.Add(*w.Floating)
		value = relative.W - w.Border*2
	default:
		value = w.Normal.W - int(float64(w.MarginLeft+w.MarginRight)*w.MarginMultiplier) - w.Border*2
	}
	limit := requestedMin(w.Requested, w.Floats(), "w")
	if value < limit && !w.IsUnmanaged() {
		value = limit
	}
	return value
}

// Height is the height analogue of Width.
func (w *Window[H]) Height() int {
	var value int
	switch {
	case w.IsFullscreen():
		value = w.Normal.H
	case w.Floats() && w.Floating != nil:
		relative := w.Normal.Add(*w.Floating)
		value = relative.H - w.Border*2
	default:
		value = w.Normal.H - int(float64(w.MarginTop+w.MarginBottom)*w.MarginMultiplier) - w.Border*2
	}
	limit := requestedMin(w.Requested, w.Floats(), "h")
	if value < limit && !w.IsUnmanaged() {
		value = limit
	}
	return value
}

// EffectiveBorder returns the border width, which collapses to 0 when
// fullscreen.
func (w *Window[H]) EffectiveBorder() int {
	if w.IsFullscreen() {
		return 0
	}
	return w.Border
}

// X returns the effective x coordinate, mirroring Width's case ladder.
func (w *Window[H]) X() int {
	switch {
	case w.IsFullscreen():
		return w.Normal.X
	case w.Floats() && w.Floating != nil:
		return w.Normal.Add(*w.Floating).X
	default:
		return w.Normal.X + int(float64(w.MarginLeft)*w.MarginMultiplier)
	}
}

// Y returns the effective y coordinate, mirroring Height's case ladder.
func (w *Window[H]) Y() int {
	switch {
	case w.IsFullscreen():
		return w.Normal.Y
	case w.Floats() && w.Floating != nil:
		return w.Normal.Add(*w.Floating).Y
	default:
		return w.Normal.Y + int(float64(w.MarginTop)*w.MarginMultiplier)
	}
}

// CalculatedXYHW returns the fully resolved effective rect.
func (w *Window[H]) CalculatedXYHW() Xyhw {
	return Xyhw{X: w.X(), Y: w.Y(), W: w.Width(), H: w.Height()}
}

// ExactXYHW returns normal+floating when floating, else normal.
func (w *Window[H]) ExactXYHW() Xyhw {
	if w.Floats() && w.Floating != nil {
		return w.Normal.Add(*w.Floating)
	}
	return w.Normal
}

// ContainsPoint reports whether the effective rect contains the point.
func (w *Window[H]) ContainsPoint(x, y int) bool {
	return w.CalculatedXYHW().ContainsPoint(x, y)
}

// Tag adds tag to the window's tag set if not already present.
func (w *Window[H]) Tag(id TagID) {
	if !w.HasTag(id) {
		w.Tags = append(w.Tags, id)
	}
}

// ClearTags empties the window's tag set.
func (w *Window[H]) ClearTags() {
	w.Tags = nil
}

// HasTag reports whether the window carries the given tag.
func (w *Window[H]) HasTag(id TagID) bool {
	for _, t := range w.Tags {
		if t == id {
			return true
		}
	}
	return false
}

// Untag removes a tag from the window's tag set.
func (w *Window[H]) Untag(id TagID) {
	out := w.Tags[:0]
	for _, t := range w.Tags {
		if t != id {
			out = append(out, t)
		}
	}
	w.Tags = out
}

// IsUnmanaged reports whether the window is a Dock or Desktop: client-driven
// geometry, never focused, never tiled.
func (w *Window[H]) IsUnmanaged() bool {
	return w.Type == TypeDesktop || w.Type == TypeDock
}
