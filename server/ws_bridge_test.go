// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/ws_bridge_test.go

package server

import (
	"net/http/httptest"
	"testing"
)

func TestWSBridgeHandlerRejectsNonWebsocketRequests(t *testing.T) {
	b := NewWSBridge()
	req := httptest.NewRequest("GET", "/state", nil)
	rec := httptest.NewRecorder()

	b.Handler()(rec, req)

	if rec.Code == 200 {
		t.Fatalf("expected a plain HTTP GET without upgrade headers to fail the handshake")
	}
	if len(b.conns) != 0 {
		t.Fatalf("expected no subscriber to be registered for a failed upgrade, got %d", len(b.conns))
	}
}

func TestWSBridgePublishWithNoSubscribersDoesNotPanic(t *testing.T) {
	b := NewWSBridge()
	b.Publish(StateView{})
}

func TestWSBridgeCloseIsIdempotent(t *testing.T) {
	b := NewWSBridge()
	b.Close()
	b.Close()
	if len(b.conns) != 0 {
		t.Fatalf("expected conns to remain empty after repeated Close, got %d", len(b.conns))
	}
}
