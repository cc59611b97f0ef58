// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// ParseCommand reads exactly one command from r, blocking on the
// underlying connection as needed. Setter commands (set/add/replace/
// append/prepend/cas) consume their declared payload length plus the
// trailing CRLF as part of the same call. Anything that is not a
// recognized, well-formed command — including a bare empty line — comes
// back as a Bad command with ShouldReply true rather than an error: only
// a read failure (EOF, I/O error) is returned as err, matching the
// original server's policy of never dropping a connection over a
// malformed line.
func ParseCommand(r *bufio.Reader) (ParsedCommand, error) {
	line, err := readLine(r)
	if err != nil {
		return ParsedCommand{}, err
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return bad(line), nil
	}

	switch tokens[0] {
	case "quit":
		if len(tokens) == 1 {
			return ParsedCommand{Command: Quit{}, ShouldReply: true}, nil
		}
	case "version":
		if len(tokens) == 1 {
			return ParsedCommand{Command: Version{}, ShouldReply: true}, nil
		}
	case "flush_all":
		if pc, ok := trailingNoreply(tokens, 1, FlushAll{}); ok {
			return pc, nil
		}
	case "verbosity":
		if len(tokens) >= 2 {
			if level, ok := parseUint32(tokens[1]); ok {
				if pc, ok := trailingNoreply(tokens, 2, Verbosity{Level: level}); ok {
					return pc, nil
				}
			}
		}
	case "get", "gets":
		if len(tokens) >= 2 {
			keys := make([][]byte, 0, len(tokens)-1)
			for _, k := range tokens[1:] {
				keys = append(keys, []byte(k))
			}
			verb := Get
			if tokens[0] == "gets" {
				verb = Gets
			}
			return ParsedCommand{Command: Getter{Verb: verb, Keys: keys}, ShouldReply: true}, nil
		}
	case "delete":
		if len(tokens) >= 2 {
			if pc, ok := trailingNoreply(tokens, 2, Delete{Key: []byte(tokens[1])}); ok {
				return pc, nil
			}
		}
	case "touch":
		if len(tokens) >= 3 {
			if ttl, ok := parseUint32(tokens[2]); ok {
				if pc, ok := trailingNoreply(tokens, 3, Touch{Key: []byte(tokens[1]), TTL: ttl}); ok {
					return pc, nil
				}
			}
		}
	case "incr", "decr":
		if len(tokens) >= 3 {
			if value, ok := parseUint64(tokens[2]); ok {
				verb := Incr
				if tokens[0] == "decr" {
					verb = Decr
				}
				cmd := Incrementer{Verb: verb, Key: []byte(tokens[1]), Delta: value}
				if pc, ok := trailingNoreply(tokens, 3, cmd); ok {
					return pc, nil
				}
			}
		}
	case "set", "add", "replace", "append", "prepend":
		return parseSetter(r, tokens, line)
	case "cas":
		return parseCas(r, tokens, line)
	}

	return bad(line), nil
}

func parseSetter(r *bufio.Reader, tokens []string, line string) (ParsedCommand, error) {
	if len(tokens) < 5 {
		return bad(line), nil
	}
	flags, ok1 := parseUint32(tokens[2])
	ttl, ok2 := parseUint32(tokens[3])
	_, ok3 := parseUint32(tokens[4])
	if !ok1 || !ok2 || !ok3 {
		return bad(line), nil
	}

	var verb SetterVerb
	switch tokens[0] {
	case "set":
		verb = Set
	case "add":
		verb = Add
	case "replace":
		verb = Replace
	case "append":
		verb = Append
	case "prepend":
		verb = Prepend
	}

	cmd := Setter{Verb: verb, Key: []byte(tokens[1]), Flags: flags, TTL: ttl}
	return readSetterPayload(r, tokens, 5, cmd, line)
}

func parseCas(r *bufio.Reader, tokens []string, line string) (ParsedCommand, error) {
	if len(tokens) < 6 {
		return bad(line), nil
	}
	flags, ok1 := parseUint32(tokens[2])
	ttl, ok2 := parseUint32(tokens[3])
	_, ok3 := parseUint32(tokens[4])
	unique, ok4 := parseUint64(tokens[5])
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return bad(line), nil
	}

	cmd := Setter{Verb: Cas, Key: []byte(tokens[1]), Flags: flags, TTL: ttl, CasUnique: unique}
	return readSetterPayload(r, tokens, 6, cmd, line)
}

// readSetterPayload reads the fixed-size payload and trailing CRLF that
// follow a setter's header line, then resolves the optional trailing
// "noreply" token from the header itself.
func readSetterPayload(r *bufio.Reader, tokens []string, noreplyAt int, cmd Setter, line string) (ParsedCommand, error) {
	shouldReply := true
	switch len(tokens) {
	case noreplyAt:
		// no trailing token, reply expected
	case noreplyAt + 1:
		if tokens[noreplyAt] != "noreply" {
			return bad(line), nil
		}
		shouldReply = false
	default:
		return bad(line), nil
	}

	payload := make([]byte, payloadSize(tokens, 4))
	if _, err := readFull(r, payload); err != nil {
		return ParsedCommand{}, err
	}
	trailer := make([]byte, 2)
	if _, err := readFull(r, trailer); err != nil {
		return ParsedCommand{}, err
	}
	if !bytes.Equal(trailer, []byte("\r\n")) {
		return bad(line), nil
	}

	cmd.Data = payload
	return ParsedCommand{Command: cmd, ShouldReply: shouldReply}, nil
}

// payloadSize re-derives the declared byte count from the token already
// validated as a uint32 by the caller.
func payloadSize(tokens []string, sizeIndex int) uint64 {
	n, _ := strconv.ParseUint(tokens[sizeIndex], 10, 32)
	return n
}

func trailingNoreply(tokens []string, noreplyAt int, cmd Command) (ParsedCommand, bool) {
	switch len(tokens) {
	case noreplyAt:
		return ParsedCommand{Command: cmd, ShouldReply: true}, true
	case noreplyAt + 1:
		if tokens[noreplyAt] != "noreply" {
			return ParsedCommand{}, false
		}
		return ParsedCommand{Command: cmd, ShouldReply: false}, true
	default:
		return ParsedCommand{}, false
	}
}

func bad(line string) ParsedCommand {
	return ParsedCommand{Command: Bad{Line: []byte(line)}, ShouldReply: true}
}

func parseUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

func parseUint64(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// readLine reads up to and including the next "\n", returning the line
// with any trailing "\r\n" or "\n" stripped.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	n := 0
	for n < len(buf) {
		m, err := r.Read(buf[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
