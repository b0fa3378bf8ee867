// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/store/snapshot_store_test.go

package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/latticewm/latticewm/internal/core"
)

func sampleSnapshot() core.Snapshot {
	return core.Snapshot{
		Tags: []core.TagSnapshot{
			{ID: 1, Layout: core.LayoutEvenHorizontal, MainWidthPercentage: 50},
		},
		Windows: []core.WindowSnapshot{
			{Pid: 1234, Tags: []core.TagID{1}},
		},
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "snapshot.json")
	s := New(p)

	want := sampleSnapshot()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Windows) != 1 || got.Windows[0].Pid != 1234 {
		t.Fatalf("expected round-tripped window pid 1234, got %+v", got.Windows)
	}
	if len(got.Tags) != 1 || got.Tags[0].Layout != core.LayoutEvenHorizontal {
		t.Fatalf("expected round-tripped tag layout, got %+v", got.Tags)
	}
}

func TestLoadDetectsTamperedContent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "snapshot.json")
	s := New(p)
	if err := s.Save(sampleSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var generic map[string]interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	snap := generic["snapshot"].(map[string]interface{})
	windows := snap["Windows"].([]interface{})
	first := windows[0].(map[string]interface{})
	first["Pid"] = 9999

	tampered, err := json.Marshal(generic)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if err := os.WriteFile(p, tampered, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := s.Load(); err == nil {
		t.Fatalf("expected tampered snapshot to fail hash verification")
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if _, err := s.Load(); err == nil {
		t.Fatalf("expected an error loading a nonexistent snapshot file")
	}
}

