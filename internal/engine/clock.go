// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package engine

import "time"

// Clock supplies the current time as a Timestamp. Production code uses
// SystemClock; tests inject a fixed or manually-advanced implementation so
// expiration behavior is deterministic.
type Clock interface {
	Now() Timestamp
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current Unix time truncated to seconds.
func (SystemClock) Now() Timestamp {
	return Timestamp(time.Now().Unix())
}

// FixedClock always reports the same instant. Useful for tests that need a
// deterministic now without caring about its exact value.
type FixedClock Timestamp

// Now returns the fixed instant.
func (c FixedClock) Now() Timestamp {
	return Timestamp(c)
}
