// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package protocol defines the memcached ASCII command and response
// vocabulary, an ASCII wire parser producing it, and a formatter that
// serializes responses back to wire form. It has no knowledge of the
// engine or the store: it is purely a grammar.
package protocol

// SetterVerb distinguishes the storage commands that share a common
// "key flags ttl bytes\r\n<data>\r\n" wire shape.
type SetterVerb int

const (
	Set SetterVerb = iota
	Add
	Replace
	Append
	Prepend
	Cas
)

// GetterVerb distinguishes get from gets, which differ only in whether the
// CAS token is included in the response.
type GetterVerb int

const (
	Get GetterVerb = iota
	Gets
)

// IncrVerb distinguishes incr from decr.
type IncrVerb int

const (
	Incr IncrVerb = iota
	Decr
)

// Command is the set of parsed client requests. A concrete type switch over
// Command (not an open interface method) is how callers dispatch on it.
type Command interface {
	isCommand()
}

// Setter is set/add/replace/append/prepend/cas.
type Setter struct {
	Verb      SetterVerb
	Key       []byte
	Data      []byte
	Flags     uint32
	TTL       uint32 // as given on the wire, before wrap_ttl is applied
	CasUnique uint64 // only meaningful when Verb == Cas
}

// Getter is get/gets over one or more keys.
type Getter struct {
	Verb GetterVerb
	Keys [][]byte
}

// Delete removes a single key.
type Delete struct {
	Key []byte
}

// Touch updates a single key's expiration without touching its value.
type Touch struct {
	Key []byte
	TTL uint32
}

// Incrementer is incr/decr.
type Incrementer struct {
	Verb  IncrVerb
	Key   []byte
	Delta uint64
}

// FlushAll discards every stored entry.
type FlushAll struct{}

// Version requests the server's name and version string.
type Version struct{}

// Verbosity is accepted and parsed for client compatibility but otherwise
// ignored by the store.
type Verbosity struct {
	Level uint32
}

// Quit asks the connection to close; the store never sees it; the
// connection handler intercepts it directly.
type Quit struct{}

// Bad is any input that does not match a known command grammar. It is
// never a parse failure the connection need react to by closing — it is
// just an ERROR response waiting to happen.
type Bad struct {
	Line []byte
}

func (Setter) isCommand()      {}
func (Getter) isCommand()      {}
func (Delete) isCommand()      {}
func (Touch) isCommand()       {}
func (Incrementer) isCommand() {}
func (FlushAll) isCommand()    {}
func (Version) isCommand()     {}
func (Verbosity) isCommand()   {}
func (Quit) isCommand()        {}
func (Bad) isCommand()         {}

// ParsedCommand pairs a parsed Command with whether the client expects a
// reply at all — the trailing "noreply" token suppresses any response
// regardless of what the command produces. Only the connection handler
// consults ShouldReply; the store always computes a Response.
type ParsedCommand struct {
	Command     Command
	ShouldReply bool
}
