// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command memkvd runs the memkv cache server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"memkv/internal/protocol"
)

var (
	flagPort      int
	flagAddress   string
	flagAdminAddr string
	flagMemory    string
	flagLogLevel  string
	flagLogDate   bool
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "memkvd",
	Short: "memkvd is an in-memory cache server speaking the memcached ASCII protocol",
}

func init() {
	defaults := defaultFlags()

	rootCmd.PersistentFlags().IntVarP(&flagPort, "port", "p", defaults.Port, "listen port for the memcached protocol")
	rootCmd.PersistentFlags().StringVar(&flagAddress, "address", defaults.Address, "listen address for the memcached protocol")
	rootCmd.PersistentFlags().StringVar(&flagAdminAddr, "admin-address", defaults.AdminAddr, "listen address for the admin HTTP surface (/healthz, /metrics)")
	rootCmd.PersistentFlags().StringVarP(&flagMemory, "memory", "m", defaults.Memory, "cache capacity, e.g. 64m, 2g, 512kb")
	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "verbose", "v", defaults.LogLevel, "log level: debug, info, warn, err, fatal, crit")
	rootCmd.PersistentFlags().BoolVar(&flagLogDate, "log-date", defaults.LogDate, "prefix log lines with date and time")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to a JSON config file; log_level hot-reloads on write")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the server version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%s version %s\n", protocol.ServerName, protocol.ServerVersion)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
