// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"memkv/internal/cachelog"
	"memkv/internal/config"
	"memkv/internal/server"
)

// defaultFlags exposes config.Defaults() as the flag package's starting
// values so -p/-m/-v/... show the same defaults a run without flags uses.
func defaultFlags() config.Config {
	return config.Defaults()
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the cache server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override the config file whenever they are given on the command
	// line, so an explicit -p/-m/-v always wins over the file.
	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = flagPort
	}
	if flags.Changed("address") {
		cfg.Address = flagAddress
	}
	if flags.Changed("admin-address") {
		cfg.AdminAddr = flagAdminAddr
	}
	if flags.Changed("memory") {
		cfg.Memory = flagMemory
	}
	if flags.Changed("verbose") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-date") {
		cfg.LogDate = flagLogDate
	}

	cachelog.Init(cfg.LogLevel, cfg.LogDate)

	capacity, err := cfg.Capacity()
	if err != nil {
		return fmt.Errorf("parsing memory size %q: %w", cfg.Memory, err)
	}

	var watcher *config.Watcher
	if flagConfig != "" {
		watcher, err = config.WatchLogLevel(flagConfig, func(level string) {
			cachelog.ComponentInfo("config", "hot-reloading log level to ", level)
			cachelog.Init(level, cfg.LogDate)
		})
		if err != nil {
			cachelog.ComponentWarn("config", "could not watch config file for hot-reload: ", err)
		} else {
			defer watcher.Stop()
		}
	}

	srv := server.New(server.Config{
		Addr:      fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		AdminAddr: cfg.AdminAddr,
		Capacity:  capacity,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		cachelog.Info("received shutdown signal")
		return srv.Close()
	case err := <-serveErr:
		return err
	}
}
