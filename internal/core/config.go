// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/config.go

package core

// Config is everything the core reads from the configuration surface.
// Loading/saving/validating it from disk is the ambient config package's
// job; the core only consumes the resolved struct.
type Config struct {
	TagLabels               []string
	Layouts                 []string
	LayoutMode              LayoutMode
	WorkspaceLayouts        map[WorkspaceID][]string
	FocusBehaviour          FocusBehaviour
	FocusNewWindows         bool
	SloppyMouseFollowsFocus bool
	CreateFollowsCursor     bool
	DisableWindowSnap       bool
	BorderWidth             int
	MarginTop               int
	MarginBottom            int
	MarginLeft              int
	MarginRight             int
	Scratchpads             []ScratchPadConfig
	WindowRules             []WindowRule
	InsertBehaviour         InsertBehaviour
}

// ScratchPadConfig is a named, spawnable hideable window. Each coordinate
// may be an absolute pixel value (>1) or a ratio in [0,1] of the workspace
// dimension.
type ScratchPadConfig struct {
	Name         string
	SpawnCommand string
	X, Y, W, H   *float64
}

// xyhw resolves the scratchpad's configured geometry against the given
// workspace rect, treating any coordinate in [0,1] as a ratio of the
// workspace's width/height and anything else as an absolute pixel value.
func (s ScratchPadConfig) xyhw(workspace Xyhw) Xyhw {
	resolve := func(v *float64, dimension int, fallbackFrac float64) int {
		if v == nil {
			return int(float64(dimension) * fallbackFrac)
		}
		if *v >= 0 && *v <= 1 {
			return int(float64(dimension) * *v)
		}
		return int(*v)
	}
	w := resolve(s.W, workspace.W, 0.5)
	h := resolve(s.H, workspace.H, 0.5)
	x := workspace.X + (workspace.W-w)/2
	y := workspace.Y + (workspace.H-h)/2
	if s.X != nil {
		x = workspace.X + resolve(s.X, workspace.W, 0.25)
	}
	if s.Y != nil {
		y = workspace.Y + resolve(s.Y, workspace.H, 0.25)
	}
	return Xyhw{X: x, Y: y, W: w, H: h}
}

// WindowRule matches a newly created window by WM_CLASS and/or WM_TITLE and
// stamps spawn-time properties onto it.
type WindowRule struct {
	WMClass       *string
	WMTitle       *string
	SpawnOnTag    *TagID
	SpawnFloating bool
}

// score returns the rule's match score against a window's class/title: 1
// for a class match, 2 for a title match, 0 (rejected) otherwise.
func (r WindowRule) score(resClass, name string) int {
	score := 0
	if r.WMClass != nil {
		if *r.WMClass != resClass {
			return 0
		}
		score += 1
	}
	if r.WMTitle != nil {
		if *r.WMTitle != name {
			return 0
		}
		score += 2
	}
	return score
}

// matchWindowRule returns the highest-scoring rule for a window, or nil.
// Ties are resolved by first declared.
func matchWindowRule(rules []WindowRule, resClass, name string) *WindowRule {
	best := -1
	var bestRule *WindowRule
	for i := range rules {
		s := rules[i].score(resClass, name)
		if s > 0 && s > best {
			best = s
			bestRule = &rules[i]
		}
	}
	return bestRule
}
