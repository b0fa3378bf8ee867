// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/latticewm-sim/main.go
// Summary: tcell-based visual demo driving the mock backend directly, for
// exercising layouts and window focus without a real display server.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/latticewm/latticewm/internal/backend/mock"
	"github.com/latticewm/latticewm/internal/core"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	windowCount := flag.Int("windows", 3, "Number of demo windows to spawn")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	cfg := core.Config{
		TagLabels:   []string{"1", "2", "3"},
		Layouts:     core.AllLayouts(),
		BorderWidth: 1,
	}
	logger := log.New(os.Stderr, "latticewm-sim: ", 0)
	state := core.New[int](cfg, logger)

	backend := mock.New()
	w, h := screen.Size()
	backend.CreateScreen(core.Screen[int]{ID: 0, BBox: core.Xyhw{X: 0, Y: 0, W: w, H: h}, Root: 0, Name: "sim-0"})
	drainInto(state, backend)

	for i := 0; i < *windowCount; i++ {
		backend.SpawnWindow(fmt.Sprintf("demo-%d", i+1), "Demo", 1000+i)
	}
	drainInto(state, backend)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		render(screen, state)
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch e.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if e.Rune() == 'n' {
					backend.SendCommand(core.Command{Kind: core.CmdNextLayout})
				}
				if e.Rune() == 'j' {
					backend.SendCommand(core.Command{Kind: core.CmdFocusWindowDown})
				}
				if e.Rune() == 'k' {
					backend.SendCommand(core.Command{Kind: core.CmdFocusWindowUp})
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
		drainInto(state, backend)
		_ = ctx
	}
}

func drainInto(state *core.State[int], backend *mock.Backend) {
	for _, event := range backend.DrainEvents() {
		state.Handle(event)
	}
	for _, action := range state.DrainActions() {
		backend.Execute(action)
	}
}

func render(screen tcell.Screen, state *core.State[int]) {
	screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for _, w := range state.Windows {
		if !w.VisibleState() {
			continue
		}
		rect := w.CalculatedXYHW()
		drawBox(screen, rect.X, rect.Y, rect.W, rect.H, w.Name, style)
	}
	screen.Show()
}

func drawBox(screen tcell.Screen, x, y, w, h int, label string, style tcell.Style) {
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < w; i++ {
		screen.SetContent(x+i, y, tcell.RuneHLine, nil, style)
		screen.SetContent(x+i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for i := 0; i < h; i++ {
		screen.SetContent(x, y+i, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w-1, y+i, tcell.RuneVLine, nil, style)
	}
	for i, r := range []rune(label) {
		if i+2 >= w {
			break
		}
		screen.SetContent(x+2+i, y, r, nil, style)
	}
}
