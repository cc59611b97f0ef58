// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

// Response is the set of results a Store produces from applying a Command.
// The formatter turns each variant into its exact memcached wire form.
type Response interface {
	isResponse()
}

// Item is a single key's payload inside a DataResponse or GetsResponse.
type Item struct {
	Key    []byte
	Data   []byte
	Flags  uint32
	Unique uint64 // only written to the wire by gets, not get
}

// DataResponse is the result of get: zero or more VALUE lines, END.
type DataResponse struct {
	Items []Item
}

// GetsResponse is the result of gets: identical to DataResponse but the
// formatter also writes each item's CAS token.
type GetsResponse struct {
	Items []Item
}

// IncrResponse carries the post-increment/decrement value.
type IncrResponse struct {
	Value uint64
}

type DeletedResponse struct{}
type TouchedResponse struct{}
type OkResponse struct{}
type StoredResponse struct{}
type NotStoredResponse struct{}
type ExistsResponse struct{}
type NotFoundResponse struct{}
type ErrorResponse struct{}

// ClientErrorResponse reports a request-level problem, e.g. incrementing a
// non-numeric value.
type ClientErrorResponse struct {
	Message string
}

// ServerErrorResponse reports an internal failure unrelated to the
// request's validity.
type ServerErrorResponse struct {
	Message string
}

// VersionResponse carries the server's name and version string.
type VersionResponse struct {
	Name    string
	Version string
}

// TooBigResponse is returned when a key or value exceeds the store's size
// limits; the formatter renders it as a SERVER_ERROR line with the fixed
// message "object too large for cache".
type TooBigResponse struct{}

func (DataResponse) isResponse()        {}
func (GetsResponse) isResponse()        {}
func (IncrResponse) isResponse()        {}
func (DeletedResponse) isResponse()     {}
func (TouchedResponse) isResponse()     {}
func (OkResponse) isResponse()          {}
func (StoredResponse) isResponse()      {}
func (NotStoredResponse) isResponse()   {}
func (ExistsResponse) isResponse()      {}
func (NotFoundResponse) isResponse()    {}
func (ErrorResponse) isResponse()       {}
func (ClientErrorResponse) isResponse() {}
func (ServerErrorResponse) isResponse() {}
func (VersionResponse) isResponse()     {}
func (TooBigResponse) isResponse()      {}
