// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package server wires the command interpreter to a TCP listener (one
// goroutine per connection, serialized on a single engine-wide mutex) and
// to an admin HTTP surface for health and metrics.
package server

import (
	"fmt"
	"net"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"memkv/internal/cachelog"
	"memkv/internal/engine"
	"memkv/internal/store"
)

// Server is the running process: the memcached listener, the store it
// dispatches to, and the admin HTTP surface alongside it.
type Server struct {
	name     string
	addr     string
	store    *store.Store
	mu       sync.Mutex
	metrics  *Metrics
	admin    *AdminServer
	listener net.Listener

	wg sync.WaitGroup
}

// Config are the knobs New needs to bring a Server up; everything else
// (TTL handling, CAS) lives in the store it wraps.
type Config struct {
	Addr      string // memcached listen address, e.g. ":11211"
	AdminAddr string // admin HTTP listen address, e.g. ":8080"
	Capacity  engine.Weight
}

// New constructs a Server and its Store, wiring eviction metrics into the
// engine, but does not bind any sockets yet. Occupancy gauges are refreshed
// by ListenAndServe on each accepted connection.
func New(cfg Config) *Server {
	st := store.New(cfg.Capacity, engine.SystemClock{})

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	st.Cache().OnEvict = func(expired bool) {
		if expired {
			metrics.observeEviction(EvictionExpired)
		} else {
			metrics.observeEviction(EvictionLRU)
		}
	}

	s := &Server{
		name:    "memkvd",
		addr:    cfg.Addr,
		store:   st,
		metrics: metrics,
	}
	s.admin = NewAdminServer(cfg.AdminAddr, st, reg, metrics)
	return s
}

// ListenAndServe binds the memcached listener and the admin HTTP server
// and begins accepting connections. It blocks until the listener is closed
// (via Close), at which point it returns nil.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	s.listener = ln

	s.admin.Start()
	cachelog.ComponentInfo(s.name, "listening on ", s.addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			// Accept only returns an error worth reporting once Close has
			// torn down the listener out from under us.
			return nil
		}

		s.mu.Lock()
		s.metrics.setOccupancy(uint64(s.store.Cache().Weight()), uint64(s.store.Cache().Capacity()), s.store.Cache().Len())
		s.mu.Unlock()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			c := &connection{
				name:    fmt.Sprintf("%s:%s", s.name, conn.RemoteAddr()),
				conn:    conn,
				store:   s.store,
				mu:      &s.mu,
				metrics: s.metrics,
			}
			c.serve()
		}()
	}
}

// Close stops accepting new connections and shuts down the admin server.
// In-flight connections are not forcibly terminated; they drain on their
// own as clients disconnect or issue quit.
func (s *Server) Close() error {
	cachelog.ComponentInfo(s.name, "shutting down")
	s.admin.Close()
	if s.listener != nil {
		return s.listener.Close()
	}
	return nil
}
