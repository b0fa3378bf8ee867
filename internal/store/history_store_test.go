// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/store/history_store_test.go

package store

import (
	"context"
	"path/filepath"
	"testing"
)

func TestHistoryStoreRecordsAndListsCommandsMostRecentFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistoryStore(path)
	if err != nil {
		t.Fatalf("OpenHistoryStore: %v", err)
	}
	defer h.Close()

	ctx := context.Background()
	if err := h.RecordCommand(ctx, "CloseWindow", true); err != nil {
		t.Fatalf("RecordCommand: %v", err)
	}
	if err := h.RecordCommand(ctx, "NextLayout", false); err != nil {
		t.Fatalf("RecordCommand: %v", err)
	}

	entries, err := h.RecentCommands(ctx, 10)
	if err != nil {
		t.Fatalf("RecentCommands: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 recorded commands, got %d", len(entries))
	}
	if entries[0].Kind != "NextLayout" || entries[0].Handled {
		t.Fatalf("expected the most recent entry to be the unhandled NextLayout, got %+v", entries[0])
	}
	if entries[1].Kind != "CloseWindow" || !entries[1].Handled {
		t.Fatalf("expected the oldest entry to be the handled CloseWindow, got %+v", entries[1])
	}
	if entries[0].Age == "" {
		t.Fatalf("expected a non-empty humanized age")
	}
}

func TestHistoryStoreRecentCommandsRespectsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistoryStore(path)
	if err != nil {
		t.Fatalf("OpenHistoryStore: %v", err)
	}
	defer h.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := h.RecordCommand(ctx, "CloseWindow", true); err != nil {
			t.Fatalf("RecordCommand: %v", err)
		}
	}
	entries, err := h.RecentCommands(ctx, 2)
	if err != nil {
		t.Fatalf("RecentCommands: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected the limit to cap results at 2, got %d", len(entries))
	}
}

func TestHistoryStoreRecordFocus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	h, err := OpenHistoryStore(path)
	if err != nil {
		t.Fatalf("OpenHistoryStore: %v", err)
	}
	defer h.Close()

	if err := h.RecordFocus(context.Background(), "term", 1); err != nil {
		t.Fatalf("RecordFocus: %v", err)
	}
}
