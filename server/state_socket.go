// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: server/state_socket.go

package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net"
	"os"
	"sync"

	"github.com/latticewm/latticewm/internal/core"
)

// StateView is the read-only JSON projection broadcast to state-socket
// subscribers — enough for a status bar or latticewm-msg watch to render
// without exposing backend handles.
type StateView struct {
	Tags       []TagView       `json:"tags"`
	Workspaces []WorkspaceView `json:"workspaces"`
	Windows    []WindowView    `json:"windows"`
}

// TagView is one tag's externally visible state.
type TagView struct {
	ID       int    `json:"id"`
	Label    string `json:"label"`
	Layout   string `json:"layout"`
	Occupied bool   `json:"occupied"`
}

// WorkspaceView is one workspace's externally visible state.
type WorkspaceView struct {
	ID  int  `json:"id"`
	Tag *int `json:"tag,omitempty"`
}

// WindowView is one window's externally visible state.
type WindowView struct {
	Name     string `json:"name"`
	Tag      int    `json:"tag"`
	Floating bool   `json:"floating"`
	Focused  bool   `json:"focused"`
}

// BuildStateView projects a core.State into the wire view. It lives in this
// package (not core) because it is a presentation concern of the IPC
// surface, not part of the state engine's own semantics.
func BuildStateView[H core.Handle](s *core.State[H]) StateView {
	view := StateView{}
	for _, t := range s.Tags.All() {
		if t.Hidden {
			continue
		}
		view.Tags = append(view.Tags, TagView{ID: int(t.ID), Label: t.Label, Layout: t.Layout})
	}
	for _, ws := range s.Workspaces {
		wv := WorkspaceView{ID: int(ws.ID)}
		if ws.Tag != nil {
			v := int(*ws.Tag)
			wv.Tag = &v
		}
		view.Workspaces = append(view.Workspaces, wv)
	}
	focused, hasFocused := s.Focus.CurrentWindow()
	for _, w := range s.Windows {
		tag := 0
		if len(w.Tags) > 0 {
			tag = int(w.Tags[0])
		}
		view.Windows = append(view.Windows, WindowView{
			Name:     w.Name,
			Tag:      tag,
			Floating: w.IsFloating,
			Focused:  hasFocused && focused != nil && *focused == w.Handle,
		})
	}
	return view
}

// StateSocket is a Unix stream socket that broadcasts a StateView as one
// JSON object per line to every connected subscriber whenever Publish is
// called.
type StateSocket struct {
	path string

	mu   sync.Mutex
	conns map[net.Conn]struct{}
}

// NewStateSocket listens on path (removing any stale socket file first) and
// returns a socket ready to accept subscribers and Publish updates.
func NewStateSocket(path string) (*StateSocket, net.Listener, error) {
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, nil, fmt.Errorf("listen on state socket %s: %w", path, err)
	}
	s := &StateSocket{path: path, conns: make(map[net.Conn]struct{})}
	return s, ln, nil
}

// Serve accepts subscriber connections until ln is closed.
func (s *StateSocket) Serve(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()
	}
}

// Publish encodes view as one JSON line and writes it to every connected
// subscriber, dropping any connection that errors.
func (s *StateSocket) Publish(view StateView) {
	data, err := json.Marshal(view)
	if err != nil {
		log.Printf("server: marshal state view: %v", err)
		return
	}
	data = append(data, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if _, err := conn.Write(data); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
}

// Close shuts down every subscriber connection and removes the socket file.
func (s *StateSocket) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
	}
	s.conns = make(map[net.Conn]struct{})
	_ = os.Remove(s.path)
}
