// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"memkv/internal/cachelog"
	"memkv/internal/store"
)

// AdminServer exposes operational endpoints alongside the memcached
// listener: a liveness/occupancy probe and Prometheus exposition. It is not
// part of the wire protocol and carries no cache command semantics.
type AdminServer struct {
	name   string
	srv    *http.Server
	wg     sync.WaitGroup
	store  *store.Store
	metric *Metrics
}

type healthBody struct {
	Status   string `json:"status"`
	Weight   uint64 `json:"weight"`
	Capacity uint64 `json:"capacity"`
	Entries  int    `json:"entries"`
}

// NewAdminServer constructs (but does not start) the admin HTTP server,
// routing with gorilla/mux the way the teacher's own HTTP surfaces do.
func NewAdminServer(addr string, st *store.Store, reg *prometheus.Registry, metric *Metrics) *AdminServer {
	a := &AdminServer{name: "admin", store: st, metric: metric}

	router := mux.NewRouter()
	router.HandleFunc("/healthz", a.serveHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	a.srv = &http.Server{
		Addr:    addr,
		Handler: router,
	}
	return a
}

func (a *AdminServer) serveHealth(w http.ResponseWriter, req *http.Request) {
	cache := a.store.Cache()
	body := healthBody{
		Status:   "ok",
		Weight:   uint64(cache.Weight()),
		Capacity: uint64(cache.Capacity()),
		Entries:  cache.Len(),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// Start begins serving in the background. Bind failures are logged, not
// returned, matching the teacher's fire-and-forget receiver lifecycle.
func (a *AdminServer) Start() {
	cachelog.ComponentDebug(a.name, "starting admin http server on ", a.srv.Addr)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			cachelog.ComponentError(a.name, err.Error())
		}
	}()
}

// Close shuts the admin server down and waits for its goroutine to exit.
func (a *AdminServer) Close() {
	cachelog.ComponentDebug(a.name, "closing admin http server")
	a.srv.Shutdown(context.Background())
	a.wg.Wait()
}
