// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/latticewm/main.go
// Summary: latticewm daemon entrypoint: loads config, wires the command
// pipe and state socket around a core.State, and drives the event loop.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/latticewm/latticewm/internal/backend/mock"
	"github.com/latticewm/latticewm/internal/config"
	"github.com/latticewm/latticewm/internal/core"
	"github.com/latticewm/latticewm/internal/store"
	"github.com/latticewm/latticewm/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("latticewm", flag.ContinueOnError)
	pipePath := fs.String("pipe", "/tmp/latticewm-command.pipe", "Path to the command FIFO")
	socketPath := fs.String("socket", "/tmp/latticewm-state.sock", "Unix socket path for the state feed")
	snapshotPath := fs.String("snapshot", "", "Path to persist state snapshots (default: ~/.config/latticewm/snapshot.json)")
	fromScratch := fs.Bool("from-scratch", false, "Start fresh, ignoring any saved snapshot")
	historyPath := fs.String("history", "", "Path to a sqlite database recording command history (disabled if empty)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	file, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := file.Resolve()
	logger := log.New(os.Stderr, "latticewm: ", log.LstdFlags)

	state := core.New[int](cfg, logger)

	if *snapshotPath == "" {
		dir, err := os.UserConfigDir()
		if err == nil {
			*snapshotPath = filepath.Join(dir, "latticewm", "snapshot.json")
		}
	}
	snapStore := store.New(*snapshotPath)
	if !*fromScratch && *snapshotPath != "" {
		if snap, err := snapStore.Load(); err == nil {
			state.RestoreState(snap)
			logger.Printf("restored snapshot from %s", *snapshotPath)
		}
	}

	backend := mock.New()
	backend.CreateScreen(core.Screen[int]{ID: 0, BBox: core.Xyhw{X: 0, Y: 0, W: 1920, H: 1080}, Root: 0, Name: "mock-0"})

	stateSocket, ln, err := server.NewStateSocket(*socketPath)
	if err != nil {
		return fmt.Errorf("start state socket: %w", err)
	}
	go stateSocket.Serve(ln)
	defer stateSocket.Close()

	var history *store.HistoryStore
	if *historyPath != "" {
		history, err = store.OpenHistoryStore(*historyPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer history.Close()
	}

	pipe := server.NewCommandPipe(func(cmd core.Command) bool {
		handled, _ := state.Dispatch(cmd)
		if history != nil {
			if err := history.RecordCommand(context.Background(), cmd.Kind.String(), handled); err != nil {
				logger.Printf("record command history: %v", err)
			}
		}
		return handled
	})
	if err := os.Remove(*pipePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale pipe %s: %w", *pipePath, err)
	}
	if err := syscall.Mkfifo(*pipePath, 0o600); err != nil {
		return fmt.Errorf("create command pipe %s: %w", *pipePath, err)
	}
	defer os.Remove(*pipePath)
	go servePipe(*pipePath, pipe, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Printf("listening: pipe=%s socket=%s", *pipePath, *socketPath)
	return eventLoop(ctx, state, backend, stateSocket, snapStore, logger)
}

// servePipe reopens the command FIFO in a loop: a FIFO's reader sees EOF
// once every writer closes, so looping open/serve is what keeps the pipe
// usable across multiple client invocations.
func servePipe(path string, pipe *server.CommandPipe, logger *log.Logger) {
	for {
		f, err := os.OpenFile(path, os.O_RDONLY, os.ModeNamedPipe)
		if err != nil {
			logger.Printf("command pipe: open: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if err := pipe.Serve(f, os.Stderr); err != nil {
			logger.Printf("command pipe: serve: %v", err)
		}
		f.Close()
	}
}

func eventLoop(ctx context.Context, state *core.State[int], backend *mock.Backend, socket *server.StateSocket, snapStore *store.SnapshotStore, logger *log.Logger) error {
	for {
		if err := backend.WaitReadable(ctx); err != nil {
			if ctx.Err() != nil {
				if snapStore != nil {
					if err := snapStore.Save(state.Snapshot()); err != nil {
						logger.Printf("save snapshot: %v", err)
					}
				}
				return nil
			}
			return fmt.Errorf("wait readable: %w", err)
		}

		changed := false
		for _, event := range backend.DrainEvents() {
			if state.Handle(event) {
				changed = true
			}
		}
		for _, action := range state.DrainActions() {
			if _, err := backend.Execute(action); err != nil {
				logger.Printf("execute action: %v", err)
			}
		}
		if err := backend.Flush(); err != nil {
			logger.Printf("flush: %v", err)
		}
		if changed {
			socket.Publish(server.BuildStateView(state))
		}
	}
}
