// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config loads memkvd's configuration: a set of CLI flags with an
// optional JSON file overlay, schema-validated the way the teacher
// validates its own JSON configuration, with the log level hot-reloadable
// from the file while the process runs.
package config

import (
	"encoding/json"
	"os"

	"memkv/internal/engine"
)

// Config is the fully resolved process configuration. JSON field names
// match what a -c config file may set; CLI flags take precedence over the
// file when both are given.
type Config struct {
	Port      int    `json:"port"`
	Address   string `json:"address"`
	AdminAddr string `json:"admin_address"`
	Memory    string `json:"memory"`
	LogLevel  string `json:"log_level"`
	LogDate   bool   `json:"log_date"`
}

// Defaults returns the configuration memkvd starts from before any file or
// flag is applied: port 11211 (memcached's traditional default), 64MiB of
// cache capacity, admin surface on :8080, info-level logging.
func Defaults() Config {
	return Config{
		Port:      11211,
		Address:   "0.0.0.0",
		AdminAddr: ":8080",
		Memory:    "64m",
		LogLevel:  "info",
		LogDate:   false,
	}
}

// Load reads and schema-validates a JSON config file, overlaying its
// fields onto Defaults(). A missing file is not an error — Load silently
// returns the defaults, matching the teacher's own "absent config file
// means an empty one" convention.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := validate(raw); err != nil {
		return cfg, err
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Capacity resolves the configured memory size into engine byte units.
func (c Config) Capacity() (engine.Weight, error) {
	return ParseSize(c.Memory)
}
