// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/backend/mock/mock_test.go

package mock

import (
	"context"
	"testing"
	"time"

	"github.com/latticewm/latticewm/internal/core"
)

func TestSpawnWindowQueuesWindowCreateEvent(t *testing.T) {
	b := New()
	h := b.SpawnWindow("term", "XTerm", 100)

	events := b.DrainEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 queued event, got %d", len(events))
	}
	if events[0].Kind != core.EventWindowCreate || events[0].Handle != h {
		t.Fatalf("expected a WindowCreate event for %v, got %+v", h, events[0])
	}
	if events[0].Window.ResClass != "XTerm" {
		t.Fatalf("expected ResClass XTerm, got %q", events[0].Window.ResClass)
	}
}

func TestDrainEventsClearsQueue(t *testing.T) {
	b := New()
	b.SpawnWindow("a", "A", 1)
	b.DrainEvents()
	if got := b.DrainEvents(); len(got) != 0 {
		t.Fatalf("expected the queue to be empty after a prior drain, got %d events", len(got))
	}
}

func TestExecuteRecordsActionAndSynthesizesDestroyOnKill(t *testing.T) {
	b := New()
	h := b.SpawnWindow("a", "A", 1)
	b.DrainEvents()

	ev, err := b.Execute(core.DisplayAction[int]{Kind: core.ActionKillWindow, Window: h})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ev == nil || ev.Kind != core.EventWindowDestroy || ev.Handle != h {
		t.Fatalf("expected a synthesized WindowDestroy follow-up, got %+v", ev)
	}
	if len(b.Executed) != 1 || b.Executed[0].Kind != core.ActionKillWindow {
		t.Fatalf("expected the kill action to be recorded, got %+v", b.Executed)
	}
}

func TestExecuteOtherActionsRecordWithoutFollowUp(t *testing.T) {
	b := New()
	ev, err := b.Execute(core.DisplayAction[int]{Kind: core.ActionSetState})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ev != nil {
		t.Fatalf("expected no synthesized follow-up for a non-kill action, got %+v", ev)
	}
	if len(b.Executed) != 1 {
		t.Fatalf("expected the action to still be recorded, got %d", len(b.Executed))
	}
}

func TestWaitReadableUnblocksOnPush(t *testing.T) {
	b := New()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- b.WaitReadable(ctx) }()

	b.MoveCursor(5, 5)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("WaitReadable: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("WaitReadable did not unblock after an event was pushed")
	}
}

func TestWaitReadableReturnsImmediatelyWhenEventsAlreadyQueued(t *testing.T) {
	b := New()
	b.MoveCursor(1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := b.WaitReadable(ctx); err != nil {
		t.Fatalf("expected WaitReadable to see the already-queued event, got %v", err)
	}
}
