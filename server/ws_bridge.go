// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/ws_bridge.go

package server

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

// WSBridge mirrors StateSocket updates onto a websocket endpoint, for a
// browser-based status panel that can't dial a Unix socket directly. It is
// optional: nothing in the core depends on it, and a deployment with no
// browser client can skip wiring it up entirely.
type WSBridge struct {
	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// NewWSBridge returns an empty bridge.
func NewWSBridge() *WSBridge {
	return &WSBridge{conns: make(map[net.Conn]struct{})}
}

// Handler returns an http.HandlerFunc that upgrades the connection to a
// websocket and registers it as a subscriber.
func (b *WSBridge) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			log.Printf("server: websocket upgrade failed: %v", err)
			return
		}
		b.mu.Lock()
		b.conns[conn] = struct{}{}
		b.mu.Unlock()
	}
}

// Publish encodes view as JSON and writes it as one text frame to every
// connected websocket client, dropping any connection that errors.
func (b *WSBridge) Publish(view StateView) {
	data, err := json.Marshal(view)
	if err != nil {
		log.Printf("server: marshal state view for websocket: %v", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.conns {
		if err := wsutil.WriteServerMessage(conn, ws.OpText, data); err != nil {
			conn.Close()
			delete(b.conns, conn)
		}
	}
}

// Close drops every connected websocket client.
func (b *WSBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.conns {
		conn.Close()
	}
	b.conns = make(map[net.Conn]struct{})
}
