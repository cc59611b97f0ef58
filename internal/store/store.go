// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package store implements the memcached command interpreter: it maps
// protocol.Command values onto engine.Cache operations with memcached-exact
// semantics for storage, retrieval, CAS, counters and expiration.
//
// A Store is not safe for concurrent use; callers serialize Apply calls
// with their own lock (internal/server does this once per listener, not
// per connection, since the underlying engine is a single critical
// section).
package store

import (
	"strconv"

	"memkv/internal/engine"
	"memkv/internal/protocol"
)

// magicDate is the number of seconds in a TTL after which memcached starts
// treating the value as an absolute Unix timestamp rather than a relative
// offset. This heuristic is cloned from memcached itself, not invented.
const magicDate = 60 * 60 * 24 * 30

// Size limits enforced ahead of every setter, matching memcached's own
// defaults for key length and the largest value it will cache.
const (
	MaxKey  = 255
	MaxData = 1024 * 1024
)

// Store wraps a weighted LRU engine with memcached command semantics and a
// monotonically increasing CAS token counter.
type Store struct {
	cache   *engine.Cache
	clock   engine.Clock
	lastCas uint64
}

// New constructs a Store backed by a new engine of the given byte capacity.
func New(capacity engine.Weight, clock engine.Clock) *Store {
	return &Store{
		cache: engine.New(capacity),
		clock: clock,
	}
}

func (s *Store) nextCas() uint64 {
	s.lastCas++
	return s.lastCas
}

// Cache exposes the underlying engine for callers that need to observe its
// occupancy or hook its eviction behavior (the admin HTTP surface and its
// metrics), without giving them a way to bypass command semantics.
func (s *Store) Cache() *engine.Cache {
	return s.cache
}

// wrapTTL interprets a wire TTL using memcached's seconds-vs-epoch
// heuristic: 0 means "never expires", a value below magicDate is a
// relative offset from now, and anything at or above it is already an
// absolute Unix timestamp.
func wrapTTL(ttl uint32, now engine.Timestamp) (hasExpires bool, expires engine.Timestamp) {
	switch {
	case ttl == 0:
		return false, 0
	case ttl < magicDate:
		return true, now + engine.Timestamp(ttl)
	default:
		return true, engine.Timestamp(ttl)
	}
}

// Apply interprets a single command against the store, returning the
// response to send back to the client. It never panics on malformed or
// out-of-range input; every failure mode is a Response value.
func (s *Store) Apply(cmd protocol.Command) protocol.Response {
	now := s.clock.Now()

	switch c := cmd.(type) {
	case protocol.Setter:
		return s.applySetter(c, now)
	case protocol.Getter:
		return s.applyGetter(c, now)
	case protocol.Delete:
		if s.cache.Delete(c.Key) {
			return protocol.DeletedResponse{}
		}
		return protocol.NotFoundResponse{}
	case protocol.Touch:
		hasExpires, expires := wrapTTL(c.TTL, now)
		if s.cache.Touch(c.Key, hasExpires, expires, now) {
			return protocol.TouchedResponse{}
		}
		return protocol.NotFoundResponse{}
	case protocol.Incrementer:
		return s.applyIncrementer(c, now)
	case protocol.FlushAll:
		s.cache.Clear()
		return protocol.OkResponse{}
	case protocol.Version:
		return protocol.VersionResponse{Name: protocol.ServerName, Version: protocol.ServerVersion}
	case protocol.Verbosity:
		// Accepted for client compatibility (memcapable-style conformance
		// suites probe it); it has no effect on the server's own log level.
		return protocol.OkResponse{}
	case protocol.Bad:
		return protocol.ErrorResponse{}
	default:
		return protocol.ErrorResponse{}
	}
}

func (s *Store) applySetter(c protocol.Setter, now engine.Timestamp) protocol.Response {
	if len(c.Key) > MaxKey || len(c.Data) > MaxData {
		return protocol.TooBigResponse{}
	}

	switch c.Verb {
	case protocol.Set:
		return s.store(c.Key, c.Data, c.Flags, c.TTL, now)

	case protocol.Add:
		if s.cache.Contains(c.Key, now) {
			return protocol.NotStoredResponse{}
		}
		return s.store(c.Key, c.Data, c.Flags, c.TTL, now)

	case protocol.Replace:
		if !s.cache.Contains(c.Key, now) {
			return protocol.NotStoredResponse{}
		}
		return s.store(c.Key, c.Data, c.Flags, c.TTL, now)

	case protocol.Append:
		return s.concat(c.Key, c.Data, now, false)

	case protocol.Prepend:
		return s.concat(c.Key, c.Data, now, true)

	case protocol.Cas:
		existing, ok := s.cache.Peek(c.Key, now)
		if !ok {
			return protocol.NotFoundResponse{}
		}
		if existing.Unique != c.CasUnique {
			// A failed CAS never touches the entry's recency or contents.
			return protocol.ExistsResponse{}
		}
		return s.store(c.Key, c.Data, c.Flags, c.TTL, now)
	}

	return protocol.ErrorResponse{}
}

// store installs a fresh value under key, minting a new CAS token.
func (s *Store) store(key, data []byte, flags, ttl uint32, now engine.Timestamp) protocol.Response {
	hasExpires, expires := wrapTTL(ttl, now)
	cas := s.nextCas()
	s.cache.Set(key, data, hasExpires, expires, flags, cas, now)
	return protocol.StoredResponse{}
}

// concat implements append/prepend: the new data is joined to the existing
// value, but the entry's expiration and flags are carried over unchanged
// from before the call — only the CAS token advances.
func (s *Store) concat(key, data []byte, now engine.Timestamp, prepend bool) protocol.Response {
	existing, ok := s.cache.Peek(key, now)
	if !ok {
		return protocol.NotStoredResponse{}
	}

	joined := make([]byte, 0, len(existing.Value)+len(data))
	if prepend {
		joined = append(joined, data...)
		joined = append(joined, existing.Value...)
	} else {
		joined = append(joined, existing.Value...)
		joined = append(joined, data...)
	}

	// Note: only the incoming fragment is size-gated (by applySetter,
	// before dispatch), not the joined total — matching the upstream
	// behavior this interpreter reproduces.
	cas := s.nextCas()
	s.cache.Set(key, joined, existing.HasExpires, existing.Expires, existing.Flags, cas, now)
	return protocol.StoredResponse{}
}

func (s *Store) applyGetter(c protocol.Getter, now engine.Timestamp) protocol.Response {
	items := make([]protocol.Item, 0, len(c.Keys))
	for _, key := range c.Keys {
		e, ok := s.cache.Get(key, now)
		if !ok {
			continue
		}
		items = append(items, protocol.Item{Key: key, Data: e.Value, Flags: e.Flags, Unique: e.Unique})
	}

	if c.Verb == protocol.Gets {
		return protocol.GetsResponse{Items: items}
	}
	return protocol.DataResponse{Items: items}
}

func (s *Store) applyIncrementer(c protocol.Incrementer, now engine.Timestamp) protocol.Response {
	// A touching read: even the non-numeric-value failure path refreshes
	// recency, matching the ground truth's unconditional get-full-entry
	// before the parse check.
	existing, ok := s.cache.Get(c.Key, now)
	if !ok {
		return protocol.NotFoundResponse{}
	}

	current, err := strconv.ParseUint(string(existing.Value), 10, 64)
	if err != nil {
		return protocol.ClientErrorResponse{Message: "cannot increment or decrement non-numeric value"}
	}

	var next uint64
	if c.Verb == protocol.Decr {
		// memcached saturates at zero going down...
		if c.Delta > current {
			next = 0
		} else {
			next = current - c.Delta
		}
	} else {
		// ...but wraps modulo 2^64 going up.
		next = current + c.Delta
	}

	cas := s.nextCas()
	newData := []byte(strconv.FormatUint(next, 10))
	s.cache.Set(c.Key, newData, existing.HasExpires, existing.Expires, existing.Flags, cas, now)

	return protocol.IncrResponse{Value: next}
}
