// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package protocol

// ServerVersion is overridden at build time via -ldflags
// "-X memkv/internal/protocol.ServerVersion=...". It defaults to "dev" for
// local builds.
var ServerVersion = "dev"

// ServerName is the name reported by the version command's wire response.
const ServerName = "memkv"
