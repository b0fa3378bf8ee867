// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/command_pipe.go

// Package server hosts the two external interfaces a running core talks
// through: a newline-delimited FIFO command pipe (this file) and a
// streaming state socket (state_socket.go). Both adapt the core's single
// Dispatch/Handle entrypoints for an out-of-process client.
package server

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/latticewm/latticewm/internal/core"
)

// commandNames maps the wire command name to its CommandKind, the pipe's
// counterpart to internal/config's keybind table.
var commandNames = map[string]core.CommandKind{
	"Execute":                  core.CmdExecute,
	"CloseWindow":              core.CmdCloseWindow,
	"CloseAllOtherWindows":     core.CmdCloseAllOtherWindows,
	"SoftReload":               core.CmdSoftReload,
	"HardReload":               core.CmdHardReload,
	"ToggleFullScreen":         core.CmdToggleFullScreen,
	"ToggleMaximized":          core.CmdToggleMaximized,
	"ToggleSticky":             core.CmdToggleSticky,
	"ToggleFloating":           core.CmdToggleFloating,
	"FloatingToTile":           core.CmdFloatingToTile,
	"TileToFloating":           core.CmdTileToFloating,
	"SendWindowToTag":          core.CmdSendWindowToTag,
	"MoveWindowToNextTag":      core.CmdMoveWindowToNextTag,
	"MoveWindowToPreviousTag":  core.CmdMoveWindowToPreviousTag,
	"MoveWindowUp":             core.CmdMoveWindowUp,
	"MoveWindowDown":           core.CmdMoveWindowDown,
	"MoveWindowTop":            core.CmdMoveWindowTop,
	"FocusWindowUp":            core.CmdFocusWindowUp,
	"FocusWindowDown":          core.CmdFocusWindowDown,
	"FocusWindowTop":           core.CmdFocusWindowTop,
	"FocusNextTag":             core.CmdFocusNextTag,
	"FocusPreviousTag":         core.CmdFocusPreviousTag,
	"FocusWorkspaceNext":       core.CmdFocusWorkspaceNext,
	"FocusWorkspacePrevious":   core.CmdFocusWorkspacePrevious,
	"GoToTag":                  core.CmdGoToTag,
	"ReturnToLastTag":          core.CmdReturnToLastTag,
	"SwapScreens":              core.CmdSwapScreens,
	"SendWorkspaceToTag":       core.CmdSendWorkspaceToTag,
	"SetLayout":                core.CmdSetLayout,
	"NextLayout":               core.CmdNextLayout,
	"PreviousLayout":           core.CmdPreviousLayout,
	"RotateTag":                core.CmdRotateTag,
	"IncreaseMainWidth":        core.CmdIncreaseMainWidth,
	"DecreaseMainWidth":        core.CmdDecreaseMainWidth,
	"SetMarginMultiplier":      core.CmdSetMarginMultiplier,
	"ToggleScratchPad":         core.CmdToggleScratchPad,
	"AttachScratchPad":         core.CmdAttachScratchPad,
	"NextScratchPadWindow":     core.CmdNextScratchPadWindow,
	"PrevScratchPadWindow":     core.CmdPrevScratchPadWindow,
}

// ParseCommand turns one wire line ("Name arg1 arg2 ...") into a
// core.Command. The wire format is deliberately simple: the first token
// selects the command, the rest are positional and interpreted per command
// (a shell string, a tag number, a float multiplier, ...).
func ParseCommand(line string) (core.Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return core.Command{}, fmt.Errorf("empty command")
	}
	kind, ok := commandNames[fields[0]]
	if !ok {
		return core.Command{Kind: core.CmdOther, Other: strings.Join(fields, " ")}, nil
	}
	cmd := core.Command{Kind: kind}
	rest := fields[1:]
	switch kind {
	case core.CmdExecute:
		cmd.Shell = strings.Join(rest, " ")
	case core.CmdSendWindowToTag, core.CmdGoToTag, core.CmdSendWorkspaceToTag:
		if len(rest) == 0 {
			return cmd, fmt.Errorf("%s requires a tag argument", fields[0])
		}
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return cmd, fmt.Errorf("%s: invalid tag %q: %w", fields[0], rest[0], err)
		}
		cmd.Tag = core.TagID(n)
		if kind == core.CmdGoToTag && len(rest) > 1 {
			cmd.Swap = rest[1] == "true"
		}
		if kind == core.CmdSendWorkspaceToTag && len(rest) > 1 {
			ws, err := strconv.Atoi(rest[1])
			if err != nil {
				return cmd, fmt.Errorf("SendWorkspaceToTag: invalid workspace %q: %w", rest[1], err)
			}
			cmd.Workspace = core.WorkspaceID(ws)
		}
	case core.CmdMoveWindowToNextTag, core.CmdMoveWindowToPreviousTag:
		for _, arg := range rest {
			if arg == "--follow" {
				cmd.Follow = true
			}
		}
	case core.CmdMoveWindowTop:
		cmd.Swap = len(rest) > 0 && rest[0] == "true"
	case core.CmdFocusNextTag, core.CmdFocusPreviousTag:
		if len(rest) > 0 && rest[0] == "ignore_empty" {
			cmd.Behavior = core.TagChangeIgnoreEmpty
		} else if len(rest) > 0 && rest[0] == "ignore_used" {
			cmd.Behavior = core.TagChangeIgnoreUsed
		}
	case core.CmdIncreaseMainWidth, core.CmdDecreaseMainWidth:
		cmd.Delta = 5
		if len(rest) > 0 {
			if n, err := strconv.Atoi(rest[0]); err == nil {
				cmd.Delta = n
			}
		}
	case core.CmdSetMarginMultiplier:
		if len(rest) == 0 {
			return cmd, fmt.Errorf("SetMarginMultiplier requires a value")
		}
		v, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return cmd, fmt.Errorf("SetMarginMultiplier: invalid value %q: %w", rest[0], err)
		}
		cmd.Multiplier = v
	case core.CmdSetLayout:
		if len(rest) == 0 {
			return cmd, fmt.Errorf("SetLayout requires a layout name")
		}
		cmd.Layout = rest[0]
	case core.CmdToggleScratchPad, core.CmdAttachScratchPad, core.CmdNextScratchPadWindow, core.CmdPrevScratchPadWindow:
		if len(rest) == 0 {
			return cmd, fmt.Errorf("%s requires a scratchpad name", fields[0])
		}
		cmd.Name = rest[0]
	}
	return cmd, nil
}

// Dispatcher is anything that can accept a parsed command and report
// whether it was handled — satisfied by (*core.State[H]).Dispatch modulo
// the render bool, which the pipe doesn't need to report back to the
// client.
type Dispatcher func(core.Command) (handled bool)

// CommandPipe reads newline-delimited commands from r and writes one
// "OK <id>" or "ERROR <id>: <message>" response line per command to w.
// Each accepted command is tagged with a uuid so a client pipelining
// several requests can match responses back up.
type CommandPipe struct {
	dispatch Dispatcher
	mu       sync.Mutex
}

// NewCommandPipe returns a pipe that calls dispatch for every parsed
// command.
func NewCommandPipe(dispatch Dispatcher) *CommandPipe {
	return &CommandPipe{dispatch: dispatch}
}

// Serve reads commands from r until EOF or a read error, writing one
// response line per command to w. It returns nil on a clean EOF.
func (p *CommandPipe) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		id := uuid.NewString()
		cmd, err := ParseCommand(line)
		if err != nil {
			fmt.Fprintf(w, "ERROR %s: %v\n", id, err)
			continue
		}
		p.mu.Lock()
		handled := p.dispatch(cmd)
		p.mu.Unlock()
		if handled {
			fmt.Fprintf(w, "OK %s\n", id)
		} else {
			fmt.Fprintf(w, "ERROR %s: command not handled\n", id)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("server: command pipe read error: %v", err)
		return err
	}
	return nil
}
