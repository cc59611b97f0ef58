// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/*
var schemaFiles embed.FS

// validate checks raw JSON config bytes against the embedded schema before
// any of it is unmarshaled into a Config.
func validate(raw []byte) error {
	jsonschema.Loaders["embedfs"] = func(s string) (io.ReadCloser, error) {
		name := strings.TrimPrefix(s, "embedfs://")
		return schemaFiles.Open("schema/" + name)
	}

	s, err := jsonschema.Compile("embedfs://config.schema.json")
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	var v any
	if err := json.NewDecoder(bytes.NewReader(raw)).Decode(&v); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	if err := s.Validate(v); err != nil {
		return fmt.Errorf("config does not match schema: %w", err)
	}
	return nil
}
