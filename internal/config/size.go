// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"regexp"
	"strconv"

	"memkv/internal/engine"
)

var sizePattern = regexp.MustCompile(`^([0-9]+)([kmgt]?)b?$`)

// ParseSize parses a memory size with an optional k/m/g/t suffix (binary
// multiples, trailing "b" optional) — the same grammar memcached's own
// `-m` flag accepts, e.g. "64m", "2g", "1024" (bytes), "512kb".
func ParseSize(s string) (engine.Weight, error) {
	m := sizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	var mult uint64 = 1
	switch m[2] {
	case "", "b":
		mult = 1
	case "k":
		mult = 1024
	case "m":
		mult = 1024 * 1024
	case "g":
		mult = 1024 * 1024 * 1024
	case "t":
		mult = 1024 * 1024 * 1024 * 1024
	}

	return engine.Weight(n * mult), nil
}
