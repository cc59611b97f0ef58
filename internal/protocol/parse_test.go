// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import (
	"bufio"
	"strings"
	"testing"
)

func parse(t *testing.T, input string) ParsedCommand {
	t.Helper()
	pc, err := ParseCommand(bufio.NewReader(strings.NewReader(input)))
	if err != nil {
		t.Fatalf("ParseCommand(%q): unexpected error %v", input, err)
	}
	return pc
}

func TestParseSetters(t *testing.T) {
	tests := []struct {
		input string
		verb  SetterVerb
		want  Setter
		want2 bool // should reply
	}{
		{"set foo 12 34 5\r\ndata!\r\n", Set, Setter{Verb: Set, Key: []byte("foo"), Data: []byte("data!"), Flags: 12, TTL: 34}, true},
		{"set foo 12 34 5 noreply\r\ndata!\r\n", Set, Setter{Verb: Set, Key: []byte("foo"), Data: []byte("data!"), Flags: 12, TTL: 34}, false},
		{"add foo 12 34 5\r\ndata!\r\n", Add, Setter{Verb: Add, Key: []byte("foo"), Data: []byte("data!"), Flags: 12, TTL: 34}, true},
		{"append foo 12 34 5\r\ndata!\r\n", Append, Setter{Verb: Append, Key: []byte("foo"), Data: []byte("data!"), Flags: 12, TTL: 34}, true},
		{"prepend foo 12 34 5\r\ndata!\r\n", Prepend, Setter{Verb: Prepend, Key: []byte("foo"), Data: []byte("data!"), Flags: 12, TTL: 34}, true},
		{"replace foo 12 34 5 noreply\r\ndata!\r\n", Replace, Setter{Verb: Replace, Key: []byte("foo"), Data: []byte("data!"), Flags: 12, TTL: 34}, false},
	}
	for _, tt := range tests {
		pc := parse(t, tt.input)
		got, ok := pc.Command.(Setter)
		if !ok {
			t.Fatalf("%q: got %T, want Setter", tt.input, pc.Command)
		}
		if got.Verb != tt.want.Verb || string(got.Key) != string(tt.want.Key) ||
			string(got.Data) != string(tt.want.Data) || got.Flags != tt.want.Flags || got.TTL != tt.want.TTL {
			t.Errorf("%q: got %+v, want %+v", tt.input, got, tt.want)
		}
		if pc.ShouldReply != tt.want2 {
			t.Errorf("%q: ShouldReply = %v, want %v", tt.input, pc.ShouldReply, tt.want2)
		}
	}
}

func TestParseCas(t *testing.T) {
	pc := parse(t, "cas foo 12 34 5 89\r\ndata!\r\n")
	got, ok := pc.Command.(Setter)
	if !ok || got.Verb != Cas || got.CasUnique != 89 || string(got.Data) != "data!" {
		t.Fatalf("got %+v, ok=%v", pc.Command, ok)
	}
	if !pc.ShouldReply {
		t.Error("expected reply")
	}

	pc = parse(t, "cas foo 12 34 5 89 noreply\r\ndata!\r\n")
	if pc.ShouldReply {
		t.Error("expected noreply to suppress reply")
	}
}

func TestParseGetters(t *testing.T) {
	pc := parse(t, "get foo\r\n")
	g, ok := pc.Command.(Getter)
	if !ok || g.Verb != Get || len(g.Keys) != 1 || string(g.Keys[0]) != "foo" {
		t.Fatalf("got %+v", pc.Command)
	}

	pc = parse(t, "get foo1 foo2\r\n")
	g, ok = pc.Command.(Getter)
	if !ok || len(g.Keys) != 2 || string(g.Keys[0]) != "foo1" || string(g.Keys[1]) != "foo2" {
		t.Fatalf("got %+v", pc.Command)
	}

	pc = parse(t, "gets foo\r\n")
	g, ok = pc.Command.(Getter)
	if !ok || g.Verb != Gets {
		t.Fatalf("got %+v", pc.Command)
	}
}

func TestParseDelete(t *testing.T) {
	pc := parse(t, "delete foo\r\n")
	d, ok := pc.Command.(Delete)
	if !ok || string(d.Key) != "foo" || !pc.ShouldReply {
		t.Fatalf("got %+v, shouldReply=%v", pc.Command, pc.ShouldReply)
	}

	pc = parse(t, "delete foo noreply\r\n")
	if pc.ShouldReply {
		t.Error("expected noreply to suppress reply")
	}
}

func TestParseIncrDecr(t *testing.T) {
	pc := parse(t, "incr foo 5\r\n")
	i, ok := pc.Command.(Incrementer)
	if !ok || i.Verb != Incr || string(i.Key) != "foo" || i.Delta != 5 || !pc.ShouldReply {
		t.Fatalf("got %+v", pc.Command)
	}

	pc = parse(t, "decr foo 5 noreply\r\n")
	i, ok = pc.Command.(Incrementer)
	if !ok || i.Verb != Decr || pc.ShouldReply {
		t.Fatalf("got %+v, shouldReply=%v", pc.Command, pc.ShouldReply)
	}
}

func TestParseTouch(t *testing.T) {
	pc := parse(t, "touch foo 5\r\n")
	tc, ok := pc.Command.(Touch)
	if !ok || string(tc.Key) != "foo" || tc.TTL != 5 || !pc.ShouldReply {
		t.Fatalf("got %+v", pc.Command)
	}

	pc = parse(t, "touch foo 5 noreply\r\n")
	if pc.ShouldReply {
		t.Error("expected noreply to suppress reply")
	}
}

func TestParseSimpleCommands(t *testing.T) {
	if _, ok := parse(t, "flush_all\r\n").Command.(FlushAll); !ok {
		t.Error("expected FlushAll")
	}
	pc := parse(t, "flush_all noreply\r\n")
	if _, ok := pc.Command.(FlushAll); !ok || pc.ShouldReply {
		t.Error("expected FlushAll with suppressed reply")
	}
	if _, ok := parse(t, "version\r\n").Command.(Version); !ok {
		t.Error("expected Version")
	}
	if _, ok := parse(t, "quit\r\n").Command.(Quit); !ok {
		t.Error("expected Quit")
	}
	pc = parse(t, "verbosity 10\r\n")
	v, ok := pc.Command.(Verbosity)
	if !ok || v.Level != 10 || !pc.ShouldReply {
		t.Fatalf("got %+v", pc.Command)
	}
	pc = parse(t, "verbosity 10 noreply\r\n")
	if pc.ShouldReply {
		t.Error("expected noreply to suppress reply")
	}
}

func TestParseBad(t *testing.T) {
	tests := []string{
		"foo bar\r\n",
		"version foo bar\r\n",
		"\r\n",
	}
	for _, input := range tests {
		pc := parse(t, input)
		if _, ok := pc.Command.(Bad); !ok {
			t.Errorf("%q: got %T, want Bad", input, pc.Command)
		}
		if !pc.ShouldReply {
			t.Errorf("%q: bad commands should still reply", input)
		}
	}
}
