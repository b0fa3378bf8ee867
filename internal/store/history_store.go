// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/store/history_store.go

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	_ "modernc.org/sqlite"
)

// HistoryStore is a queryable log of command and focus activity, distinct
// from SnapshotStore's single-slot soft-reload snapshot: each RecordCommand
// or RecordFocus call appends its own row, so a client can ask "what
// happened" rather than just "what is the current state". The cmd/latticewm
// daemon records every dispatched command; it does not call RecordFocus.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistoryStore opens (creating if needed) a sqlite database at path and
// ensures its schema exists.
func OpenHistoryStore(path string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &HistoryStore{db: db}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS command_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	at INTEGER NOT NULL,
	kind TEXT NOT NULL,
	handled INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS focus_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	at INTEGER NOT NULL,
	window_name TEXT NOT NULL,
	tag INTEGER NOT NULL
);
`

// RecordCommand appends one row to the command log.
func (h *HistoryStore) RecordCommand(ctx context.Context, kind string, handled bool) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO command_log (at, kind, handled) VALUES (?, ?, ?)`,
		time.Now().UTC().Unix(), kind, boolToInt(handled))
	return err
}

// RecordFocus appends one row to the focus log.
func (h *HistoryStore) RecordFocus(ctx context.Context, windowName string, tag int) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO focus_log (at, window_name, tag) VALUES (?, ?, ?)`,
		time.Now().UTC().Unix(), windowName, tag)
	return err
}

// CommandLogEntry is one row of the command log, with a human-readable age.
type CommandLogEntry struct {
	Kind    string
	Handled bool
	Age     string
}

// RecentCommands returns the last limit commands, most recent first, with a
// humanized relative-age string for display.
func (h *HistoryStore) RecentCommands(ctx context.Context, limit int) ([]CommandLogEntry, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT at, kind, handled FROM command_log ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query command log: %w", err)
	}
	defer rows.Close()

	now := time.Now().UTC()
	var out []CommandLogEntry
	for rows.Next() {
		var at int64
		var kind string
		var handled int
		if err := rows.Scan(&at, &kind, &handled); err != nil {
			return nil, fmt.Errorf("scan command log row: %w", err)
		}
		out = append(out, CommandLogEntry{
			Kind:    kind,
			Handled: handled != 0,
			Age:     humanize.RelTime(time.Unix(at, 0).UTC(), now, "ago", ""),
		})
	}
	return out, rows.Err()
}

// Close closes the underlying database handle.
func (h *HistoryStore) Close() error {
	return h.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
