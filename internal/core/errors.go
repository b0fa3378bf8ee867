// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/errors.go

package core

import "errors"

// Ignorable inconsistencies: the caller logs and continues, the public
// dispatcher never surfaces these beyond collapsing to false.
var (
	ErrUnknownWindow    = errors.New("core: unknown window handle")
	ErrUnknownWorkspace = errors.New("core: unknown workspace")
	ErrUnknownTag       = errors.New("core: unknown tag")
	ErrUnmanagedWindow  = errors.New("core: window is unmanaged")
	ErrRootWindow       = errors.New("core: operation refused on root window")
	ErrNoScratchpad     = errors.New("core: no such scratchpad")
	ErrScratchpadEmpty  = errors.New("core: scratchpad has no live window")
)
