// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/latticewm-msg/main.go
// Summary: CLI client for the running daemon's command pipe and state
// socket: send a one-off command, or watch live state as an aligned table.

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/latticewm/latticewm/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	pipePath := flag.String("pipe", "/tmp/latticewm-command.pipe", "Path to the command FIFO")
	socketPath := flag.String("socket", "/tmp/latticewm-state.sock", "Unix socket path for the state feed")
	watch := flag.Bool("watch", false, "Stream live state instead of sending a command")
	flag.Parse()

	if *watch {
		return watchState(*socketPath)
	}
	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("usage: latticewm-msg <Command> [args...] | -watch")
	}
	return sendCommand(*pipePath, strings.Join(args, " "))
}

func sendCommand(pipePath, line string) error {
	f, err := os.OpenFile(pipePath, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open command pipe %s: %w", pipePath, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}

// watchState connects to the state socket and renders each update as a
// fixed-width table. Columns are padded with go-runewidth so the table
// stays aligned even with wide window-title glyphs; isatty detection (via
// x/term) decides whether to redraw in place or just print each update.
func watchState(socketPath string) error {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return fmt.Errorf("connect to state socket %s: %w", socketPath, err)
	}
	defer conn.Close()

	interactive := term.IsTerminal(int(os.Stdout.Fd()))

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var view server.StateView
		if err := json.Unmarshal(scanner.Bytes(), &view); err != nil {
			continue
		}
		if interactive {
			fmt.Print("\033[H\033[2J")
		}
		printTable(view)
	}
	return scanner.Err()
}

func printTable(view server.StateView) {
	fmt.Println(padRight("TAG", 6) + padRight("LAYOUT", 24) + "WINDOWS")
	for _, t := range view.Tags {
		count := 0
		for _, w := range view.Windows {
			if w.Tag == t.ID {
				count++
			}
		}
		fmt.Printf("%s%s%d\n", padRight(fmt.Sprintf("%d", t.ID), 6), padRight(t.Layout, 24), count)
	}
	fmt.Println()
	fmt.Println(padRight("WINDOW", 30) + padRight("TAG", 6) + "FLOATING")
	for _, w := range view.Windows {
		floating := ""
		if w.Floating {
			floating = "yes"
		}
		fmt.Printf("%s%s%s\n", padRight(w.Name, 30), padRight(fmt.Sprintf("%d", w.Tag), 6), floating)
	}
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width-1, "") + " "
	}
	return s + strings.Repeat(" ", width-w)
}
