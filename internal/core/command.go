// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/core/command.go

package core

// CommandKind enumerates every user-facing command the state engine accepts.
type CommandKind int

const (
	CmdExecute CommandKind = iota
	CmdCloseWindow
	CmdCloseAllOtherWindows
	CmdSoftReload
	CmdHardReload
	CmdToggleFullScreen
	CmdToggleMaximized
	CmdToggleSticky
	CmdToggleFloating
	CmdFloatingToTile
	CmdTileToFloating
	CmdSendWindowToTag
	CmdMoveWindowToNextTag
	CmdMoveWindowToPreviousTag
	CmdMoveWindowToLastWorkspace
	CmdMoveWindowToNextWorkspace
	CmdMoveWindowToPreviousWorkspace
	CmdMoveWindowUp
	CmdMoveWindowDown
	CmdMoveWindowTop
	CmdFocusWindowUp
	CmdFocusWindowDown
	CmdFocusWindowTop
	CmdFocusNextTag
	CmdFocusPreviousTag
	CmdFocusWorkspaceNext
	CmdFocusWorkspacePrevious
	CmdFocusWindowUnderCursor
	CmdGoToTag
	CmdReturnToLastTag
	CmdSwapScreens
	CmdSendWorkspaceToTag
	CmdSetLayout
	CmdNextLayout
	CmdPreviousLayout
	CmdRotateTag
	CmdIncreaseMainWidth
	CmdDecreaseMainWidth
	CmdIncreaseMainCount
	CmdDecreaseMainCount
	CmdSetMarginMultiplier
	CmdToggleScratchPad
	CmdAttachScratchPad
	CmdReleaseScratchPad
	CmdNextScratchPadWindow
	CmdPrevScratchPadWindow
	CmdOther
)

var commandKindNames = map[CommandKind]string{
	CmdExecute:                       "Execute",
	CmdCloseWindow:                   "CloseWindow",
	CmdCloseAllOtherWindows:          "CloseAllOtherWindows",
	CmdSoftReload:                    "SoftReload",
	CmdHardReload:                    "HardReload",
	CmdToggleFullScreen:              "ToggleFullScreen",
	CmdToggleMaximized:               "ToggleMaximized",
	CmdToggleSticky:                  "ToggleSticky",
	CmdToggleFloating:                "ToggleFloating",
	CmdFloatingToTile:                "FloatingToTile",
	CmdTileToFloating:                "TileToFloating",
	CmdSendWindowToTag:               "SendWindowToTag",
	CmdMoveWindowToNextTag:           "MoveWindowToNextTag",
	CmdMoveWindowToPreviousTag:       "MoveWindowToPreviousTag",
	CmdMoveWindowToLastWorkspace:     "MoveWindowToLastWorkspace",
	CmdMoveWindowToNextWorkspace:     "MoveWindowToNextWorkspace",
	CmdMoveWindowToPreviousWorkspace: "MoveWindowToPreviousWorkspace",
	CmdMoveWindowUp:                  "MoveWindowUp",
	CmdMoveWindowDown:                "MoveWindowDown",
	CmdMoveWindowTop:                 "MoveWindowTop",
	CmdFocusWindowUp:                 "FocusWindowUp",
	CmdFocusWindowDown:               "FocusWindowDown",
	CmdFocusWindowTop:                "FocusWindowTop",
	CmdFocusNextTag:                  "FocusNextTag",
	CmdFocusPreviousTag:              "FocusPreviousTag",
	CmdFocusWorkspaceNext:            "FocusWorkspaceNext",
	CmdFocusWorkspacePrevious:        "FocusWorkspacePrevious",
	CmdFocusWindowUnderCursor:        "FocusWindowUnderCursor",
	CmdGoToTag:                       "GoToTag",
	CmdReturnToLastTag:               "ReturnToLastTag",
	CmdSwapScreens:                   "SwapScreens",
	CmdSendWorkspaceToTag:            "SendWorkspaceToTag",
	CmdSetLayout:                     "SetLayout",
	CmdNextLayout:                    "NextLayout",
	CmdPreviousLayout:                "PreviousLayout",
	CmdRotateTag:                     "RotateTag",
	CmdIncreaseMainWidth:             "IncreaseMainWidth",
	CmdDecreaseMainWidth:             "DecreaseMainWidth",
	CmdIncreaseMainCount:             "IncreaseMainCount",
	CmdDecreaseMainCount:             "DecreaseMainCount",
	CmdSetMarginMultiplier:           "SetMarginMultiplier",
	CmdToggleScratchPad:              "ToggleScratchPad",
	CmdAttachScratchPad:              "AttachScratchPad",
	CmdReleaseScratchPad:             "ReleaseScratchPad",
	CmdNextScratchPadWindow:          "NextScratchPadWindow",
	CmdPrevScratchPadWindow:          "PrevScratchPadWindow",
	CmdOther:                         "Other",
}

// String returns the command's wire name, for logging and history.
func (k CommandKind) String() string {
	if name, ok := commandKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Command is a single dispatchable instruction, parsed from the command
// pipe or issued programmatically (a keybinding) — both paths share this
// one type and the one interpreter in State.Dispatch.
type Command struct {
	Kind CommandKind

	Shell     string
	Tag       TagID
	Workspace WorkspaceID
	Swap      bool
	Follow    bool
	Delta     int
	Sign      int
	Multiplier float64
	Layout    string
	Name      string
	Direction int
	Behavior  TagChangeBehaviour
	Other     string
}
