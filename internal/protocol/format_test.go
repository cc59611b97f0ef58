// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import (
	"bufio"
	"bytes"
	"testing"
)

func formatted(t *testing.T, resp Response) string {
	t.Helper()
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	if err := WriteResponse(w, resp); err != nil {
		t.Fatalf("WriteResponse: unexpected error %v", err)
	}
	return buf.String()
}

func TestWriteDataResponseOmitsUnique(t *testing.T) {
	resp := DataResponse{Items: []Item{
		{Key: []byte("foo"), Data: []byte("bar"), Flags: 12, Unique: 100},
	}}
	want := "VALUE foo 12 3\r\nbar\r\nEND\r\n"
	if got := formatted(t, resp); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteGetsResponseIncludesTrailingSpace(t *testing.T) {
	// gets carries the CAS token and, per the wire form, a trailing space
	// after it before the line's \r\n — unlike the plain get/DataResponse
	// line above, which has no token and no trailing space.
	resp := GetsResponse{Items: []Item{
		{Key: []byte("foo"), Data: []byte("bar"), Flags: 12, Unique: 100},
	}}
	want := "VALUE foo 12 3 100 \r\nbar\r\nEND\r\n"
	if got := formatted(t, resp); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteGetsResponseMultipleItems(t *testing.T) {
	resp := GetsResponse{Items: []Item{
		{Key: []byte("a"), Data: []byte("1"), Flags: 0, Unique: 5},
		{Key: []byte("b"), Data: []byte("22"), Flags: 1, Unique: 6},
	}}
	want := "VALUE a 0 1 5 \r\n1\r\nVALUE b 1 2 6 \r\n22\r\nEND\r\n"
	if got := formatted(t, resp); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteEmptyDataResponse(t *testing.T) {
	if got := formatted(t, DataResponse{}); got != "END\r\n" {
		t.Errorf("got %q, want END\\r\\n", got)
	}
}

func TestWriteSimpleResponses(t *testing.T) {
	tests := []struct {
		resp Response
		want string
	}{
		{DeletedResponse{}, "DELETED\r\n"},
		{TouchedResponse{}, "TOUCHED\r\n"},
		{OkResponse{}, "OK\r\n"},
		{StoredResponse{}, "STORED\r\n"},
		{NotStoredResponse{}, "NOT_STORED\r\n"},
		{ExistsResponse{}, "EXISTS\r\n"},
		{NotFoundResponse{}, "NOT_FOUND\r\n"},
		{ErrorResponse{}, "ERROR\r\n"},
		{ClientErrorResponse{Message: "bad command line format"}, "CLIENT_ERROR bad command line format\r\n"},
		{ServerErrorResponse{Message: "out of memory"}, "SERVER_ERROR out of memory\r\n"},
		{TooBigResponse{}, "SERVER_ERROR object too large for cache\r\n"},
		{IncrResponse{Value: 42}, "42\r\n"},
		{VersionResponse{Name: "memkv", Version: "dev"}, "VERSION memkv dev\r\n"},
	}
	for _, tt := range tests {
		if got := formatted(t, tt.resp); got != tt.want {
			t.Errorf("%T: got %q, want %q", tt.resp, got, tt.want)
		}
	}
}
