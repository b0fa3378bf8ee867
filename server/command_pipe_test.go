// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/command_pipe_test.go

package server

import (
	"bufio"
	"strings"
	"testing"

	"github.com/latticewm/latticewm/internal/core"
)

func TestParseCommandExecuteJoinsRemainingFields(t *testing.T) {
	cmd, err := ParseCommand("Execute xterm -e vim")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != core.CmdExecute || cmd.Shell != "xterm -e vim" {
		t.Fatalf("expected CmdExecute with shell %q, got %+v", "xterm -e vim", cmd)
	}
}

func TestParseCommandGoToTagRequiresTagArgument(t *testing.T) {
	if _, err := ParseCommand("GoToTag"); err == nil {
		t.Fatalf("expected an error when GoToTag is given no tag")
	}
	cmd, err := ParseCommand("GoToTag 3")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != core.CmdGoToTag || cmd.Tag != 3 {
		t.Fatalf("expected GoToTag(3), got %+v", cmd)
	}
}

func TestParseCommandSendWorkspaceToTagParsesBothArgs(t *testing.T) {
	cmd, err := ParseCommand("SendWorkspaceToTag 2 1")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Tag != 2 || cmd.Workspace != 1 {
		t.Fatalf("expected Tag=2 Workspace=1, got %+v", cmd)
	}
}

func TestParseCommandMoveWindowToNextTagFollowFlag(t *testing.T) {
	cmd, err := ParseCommand("MoveWindowToNextTag --follow")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if !cmd.Follow {
		t.Fatalf("expected Follow=true, got %+v", cmd)
	}
}

func TestParseCommandIncreaseMainWidthDefaultsDelta(t *testing.T) {
	cmd, err := ParseCommand("IncreaseMainWidth")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Delta != 5 {
		t.Fatalf("expected default delta 5, got %d", cmd.Delta)
	}
	cmd, err = ParseCommand("IncreaseMainWidth 10")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Delta != 10 {
		t.Fatalf("expected delta 10, got %d", cmd.Delta)
	}
}

func TestParseCommandSetMarginMultiplierRequiresValue(t *testing.T) {
	if _, err := ParseCommand("SetMarginMultiplier"); err == nil {
		t.Fatalf("expected an error when SetMarginMultiplier is given no value")
	}
	cmd, err := ParseCommand("SetMarginMultiplier 1.5")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Multiplier != 1.5 {
		t.Fatalf("expected multiplier 1.5, got %v", cmd.Multiplier)
	}
}

func TestParseCommandToggleScratchPadRequiresName(t *testing.T) {
	if _, err := ParseCommand("ToggleScratchPad"); err == nil {
		t.Fatalf("expected an error when ToggleScratchPad is given no name")
	}
	cmd, err := ParseCommand("ToggleScratchPad term")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Name != "term" {
		t.Fatalf("expected name %q, got %+v", "term", cmd)
	}
}

func TestParseCommandUnknownNameBecomesOther(t *testing.T) {
	cmd, err := ParseCommand("SomeUnknownThing")
	if err != nil {
		t.Fatalf("ParseCommand: %v", err)
	}
	if cmd.Kind != core.CmdOther || cmd.Other != "SomeUnknownThing" {
		t.Fatalf("expected CmdOther(%q), got %+v", "SomeUnknownThing", cmd)
	}
}

func TestParseCommandEmptyLineErrors(t *testing.T) {
	if _, err := ParseCommand("   "); err == nil {
		t.Fatalf("expected an error for an empty command line")
	}
}

func TestCommandPipeServeWritesOneResponsePerLine(t *testing.T) {
	handled := map[string]bool{"CloseWindow": true}
	pipe := NewCommandPipe(func(cmd core.Command) bool {
		return handled[cmd.Other] || cmd.Kind == core.CmdCloseWindow
	})

	input := strings.NewReader("CloseWindow\nSomeUnknownThing\n")
	var out strings.Builder
	if err := pipe.Serve(input, &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}

	lines := []string{}
	scanner := bufio.NewScanner(strings.NewReader(out.String()))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 response lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "OK ") {
		t.Fatalf("expected the first line to be OK, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "ERROR ") {
		t.Fatalf("expected the second line to be an error, got %q", lines[1])
	}
}

func TestCommandPipeServeSkipsBlankLines(t *testing.T) {
	var calls int
	pipe := NewCommandPipe(func(cmd core.Command) bool {
		calls++
		return true
	})
	var out strings.Builder
	if err := pipe.Serve(strings.NewReader("\n\nCloseWindow\n\n"), &out); err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly 1 dispatch call, got %d", calls)
	}
}
