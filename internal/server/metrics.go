// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"memkv/internal/protocol"
)

// Metrics holds the server's Prometheus instrumentation: command volume by
// verb, cache hit/miss counts, eviction counts split by cause, and gauges
// reflecting the engine's current occupancy. None of this is the
// wire-protocol `stats` command — it is registered against its own
// registry and served only over the admin HTTP surface.
type Metrics struct {
	commands  *prometheus.CounterVec
	hits      prometheus.Counter
	misses    prometheus.Counter
	evictions *prometheus.CounterVec
	weight    prometheus.Gauge
	entries   prometheus.Gauge
	capacity  prometheus.Gauge
}

// EvictionCause distinguishes why an entry left the cache via eviction,
// for the evictions counter's "cause" label.
type EvictionCause string

const (
	EvictionExpired EvictionCause = "expired"
	EvictionLRU     EvictionCause = "lru"
)

// NewMetrics registers the server's instrumentation against reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "memkv",
			Name:      "commands_total",
			Help:      "Number of commands processed, by verb.",
		}, []string{"verb"}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "memkv",
			Name:      "cache_hits_total",
			Help:      "Number of get/gets key lookups that found a live entry.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "memkv",
			Name:      "cache_misses_total",
			Help:      "Number of get/gets key lookups that found nothing.",
		}),
		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "memkv",
			Name:      "evictions_total",
			Help:      "Number of entries evicted, by cause.",
		}, []string{"cause"}),
		weight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "memkv",
			Name:      "weight_bytes",
			Help:      "Current weighted occupancy of the cache.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "memkv",
			Name:      "entries",
			Help:      "Current number of entries stored.",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "memkv",
			Name:      "capacity_bytes",
			Help:      "Configured weighted capacity of the cache.",
		}),
	}

	reg.MustRegister(m.commands, m.hits, m.misses, m.evictions, m.weight, m.entries, m.capacity)
	return m
}

// verbLabel maps a parsed command to the label used for the commands
// counter, grouping setter variants under their own verb name.
func verbLabel(cmd protocol.Command) string {
	switch c := cmd.(type) {
	case protocol.Setter:
		switch c.Verb {
		case protocol.Set:
			return "set"
		case protocol.Add:
			return "add"
		case protocol.Replace:
			return "replace"
		case protocol.Append:
			return "append"
		case protocol.Prepend:
			return "prepend"
		case protocol.Cas:
			return "cas"
		}
	case protocol.Getter:
		if c.Verb == protocol.Gets {
			return "gets"
		}
		return "get"
	case protocol.Delete:
		return "delete"
	case protocol.Touch:
		return "touch"
	case protocol.Incrementer:
		if c.Verb == protocol.Decr {
			return "decr"
		}
		return "incr"
	case protocol.FlushAll:
		return "flush_all"
	case protocol.Version:
		return "version"
	case protocol.Verbosity:
		return "verbosity"
	case protocol.Bad:
		return "bad"
	}
	return "unknown"
}

func (m *Metrics) observeCommand(cmd protocol.Command, resp protocol.Response) {
	m.commands.WithLabelValues(verbLabel(cmd)).Inc()

	switch r := resp.(type) {
	case protocol.DataResponse:
		m.observeGetterHits(len(r.Items), getterKeyCount(cmd))
	case protocol.GetsResponse:
		m.observeGetterHits(len(r.Items), getterKeyCount(cmd))
	}
}

func getterKeyCount(cmd protocol.Command) int {
	if g, ok := cmd.(protocol.Getter); ok {
		return len(g.Keys)
	}
	return 0
}

func (m *Metrics) observeGetterHits(found, requested int) {
	m.hits.Add(float64(found))
	if requested > found {
		m.misses.Add(float64(requested - found))
	}
}

func (m *Metrics) observeEviction(cause EvictionCause) {
	m.evictions.WithLabelValues(string(cause)).Inc()
}

func (m *Metrics) setOccupancy(weight, capacity uint64, entries int) {
	m.weight.Set(float64(weight))
	m.capacity.Set(float64(capacity))
	m.entries.Set(float64(entries))
}
