// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"bufio"
	"errors"
	"io"
	"net"
	"sync"

	"memkv/internal/cachelog"
	"memkv/internal/protocol"
	"memkv/internal/store"
)

// connection services a single client to completion. One goroutine per
// connection, reading and responding until quit, EOF, or a write failure —
// a malformed command never closes the connection by itself.
type connection struct {
	name    string
	conn    net.Conn
	store   *store.Store
	mu      *sync.Mutex
	metrics *Metrics
}

func (c *connection) serve() {
	defer c.conn.Close()
	cachelog.ComponentDebug(c.name, "connect")

	r := bufio.NewReader(c.conn)
	w := bufio.NewWriter(c.conn)

	for {
		parsed, err := protocol.ParseCommand(r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				cachelog.ComponentDebug(c.name, "read error: ", err)
			}
			return
		}

		if _, isQuit := parsed.Command.(protocol.Quit); isQuit {
			cachelog.ComponentDebug(c.name, "quit")
			return
		}

		resp := c.apply(parsed.Command)

		if !parsed.ShouldReply {
			continue
		}
		if err := protocol.WriteResponse(w, resp); err != nil {
			cachelog.ComponentDebug(c.name, "write error: ", err)
			return
		}
	}
}

func (c *connection) apply(cmd protocol.Command) protocol.Response {
	c.mu.Lock()
	resp := c.store.Apply(cmd)
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.observeCommand(cmd, resp)
	}
	return resp
}
