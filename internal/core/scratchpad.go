// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/scratchpad.go

package core

// ScratchpadController tracks, per scratchpad name, a FIFO deque of pids;
// the head is the "current" window for that name. Dead-pid eviction happens
// lazily on every access, never via a periodic sweep.
type ScratchpadController struct {
	configs map[string]ScratchPadConfig
	active  map[string][]int
}

// NewScratchpadController builds a controller from the configured
// scratchpads.
func NewScratchpadController(configs []ScratchPadConfig) *ScratchpadController {
	c := &ScratchpadController{
		configs: make(map[string]ScratchPadConfig, len(configs)),
		active:  make(map[string][]int),
	}
	for _, cfg := range configs {
		c.configs[cfg.Name] = cfg
	}
	return c
}

// Config returns the named scratchpad's configuration.
func (c *ScratchpadController) Config(name string) (ScratchPadConfig, bool) {
	cfg, ok := c.configs[name]
	return cfg, ok
}

// evictDead drops pids from the head of name's deque while isAlive reports
// them dead, returning the (possibly empty) remaining deque.
func (c *ScratchpadController) evictDead(name string, isAlive func(pid int) bool) []int {
	deque := c.active[name]
	for len(deque) > 0 && !isAlive(deque[0]) {
		deque = deque[1:]
	}
	c.active[name] = deque
	return deque
}

// Head returns the live pid at the front of name's deque, evicting dead
// entries first.
func (c *ScratchpadController) Head(name string, isAlive func(pid int) bool) (int, bool) {
	deque := c.evictDead(name, isAlive)
	if len(deque) == 0 {
		return 0, false
	}
	return deque[0], true
}

// PushFront adds a pid to the front of name's deque (newly spawned or newly
// attached window becomes "current").
func (c *ScratchpadController) PushFront(name string, pid int) {
	c.active[name] = append([]int{pid}, c.active[name]...)
}

// Remove drops pid from name's deque wherever it occurs.
func (c *ScratchpadController) Remove(name string, pid int) {
	deque := c.active[name]
	out := deque[:0]
	for _, p := range deque {
		if p != pid {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		delete(c.active, name)
		return
	}
	c.active[name] = out
}

// RemoveEverywhere drops pid from every scratchpad's deque, used on window
// destroy.
func (c *ScratchpadController) RemoveEverywhere(pid int) {
	for name := range c.active {
		c.Remove(name, pid)
	}
}

// Cycle rotates name's deque by one slot in the given direction (+1 or -1),
// only when the scratchpad is non-empty, returning the previous and new
// head pids.
func (c *ScratchpadController) Cycle(name string, direction int) (prev, next int, ok bool) {
	deque := c.active[name]
	if len(deque) < 2 {
		if len(deque) == 1 {
			return deque[0], deque[0], true
		}
		return 0, 0, false
	}
	prev = deque[0]
	if direction >= 0 {
		deque = append(deque[1:], deque[0])
	} else {
		last := deque[len(deque)-1]
		deque = append([]int{last}, deque[:len(deque)-1]...)
	}
	c.active[name] = deque
	return prev, deque[0], true
}

// Names returns every scratchpad name with at least one tracked pid.
func (c *ScratchpadController) Names() []string {
	out := make([]string, 0, len(c.active))
	for name := range c.active {
		out = append(out, name)
	}
	return out
}

// NameForPid returns the scratchpad name owning pid, if any.
func (c *ScratchpadController) NameForPid(pid int) (string, bool) {
	for name, deque := range c.active {
		for _, p := range deque {
			if p == pid {
				return name, true
			}
		}
	}
	return "", false
}
