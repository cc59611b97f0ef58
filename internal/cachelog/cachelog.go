// Copyright (C) 2026 memkv contributors.
// All rights reserved. This file is part of memkv.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cachelog implements a simple leveled log wrapper around the
// standard log package.
//
// Time/Date are not logged because systemd adds them (default, can be
// changed by setting logdate to true). Output can be redirected to a file.
// Uses these prefixes: https://www.freedesktop.org/software/systemd/man/sd-daemon.html
package cachelog

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	DebugWriter io.Writer = os.Stderr
	InfoWriter  io.Writer = os.Stderr
	WarnWriter  io.Writer = os.Stderr
	ErrWriter   io.Writer = os.Stderr
	CritWriter  io.Writer = os.Stderr
)

var (
	DebugPrefix string = "<7>[DEBUG]    "
	InfoPrefix  string = "<6>[INFO]     "
	WarnPrefix  string = "<4>[WARNING]  "
	ErrPrefix   string = "<3>[ERROR]    "
	CritPrefix  string = "<2>[CRITICAL] "
)

var (
	DebugLog *log.Logger = log.New(DebugWriter, DebugPrefix, log.LstdFlags)
	InfoLog  *log.Logger = log.New(InfoWriter, InfoPrefix, log.LstdFlags|log.Lshortfile)
	WarnLog  *log.Logger = log.New(WarnWriter, WarnPrefix, log.LstdFlags|log.Lshortfile)
	ErrLog   *log.Logger = log.New(ErrWriter, ErrPrefix, log.LstdFlags|log.Llongfile)
	CritLog  *log.Logger = log.New(CritWriter, CritPrefix, log.LstdFlags|log.Llongfile)
)

var loglevel string = "info"

// Init initializes cachelog. lvl is one of "debug", "info", "warn", "err",
// "fatal", "crit". If logdate is true a date and time is added to the
// log output.
func Init(lvl string, logdate bool) {
	switch lvl {
	case "crit":
		ErrWriter = io.Discard
		fallthrough
	case "err", "fatal":
		WarnWriter = io.Discard
		fallthrough
	case "warn":
		InfoWriter = io.Discard
		fallthrough
	case "info":
		DebugWriter = io.Discard
	case "debug":
		// Nothing to do...
	default:
		fmt.Printf("cachelog: invalid loglevel %#v, using 'info'\n", lvl)
		lvl = "info"
		DebugWriter = io.Discard
	}

	debugFlags, lineFlags, longFlags := 0, log.Lshortfile, log.Llongfile
	if logdate {
		debugFlags, lineFlags, longFlags = log.LstdFlags, log.LstdFlags|log.Lshortfile, log.LstdFlags|log.Llongfile
	}

	DebugLog = log.New(DebugWriter, DebugPrefix, debugFlags)
	InfoLog = log.New(InfoWriter, InfoPrefix, lineFlags)
	WarnLog = log.New(WarnWriter, WarnPrefix, lineFlags)
	ErrLog = log.New(ErrWriter, ErrPrefix, longFlags)
	CritLog = log.New(CritWriter, CritPrefix, longFlags)

	loglevel = lvl
}

// Loglevel returns the current loglevel.
func Loglevel() string {
	return loglevel
}

/* PRIVATE HELPER */

func printStr(v ...any) string {
	return fmt.Sprint(v...)
}

func printfStr(format string, v ...any) string {
	return fmt.Sprintf(format, v...)
}

/* PRINT */

// Debug logs to the DEBUG writer; used for per-command tracing.
func Debug(v ...any) {
	DebugLog.Output(3, printStr(v...))
}

// ComponentDebug logs to the DEBUG writer tagged with a component name,
// e.g. a connection identifier or subsystem.
func ComponentDebug(component string, v ...any) {
	DebugLog.Print(fmt.Sprintf("[%s] ", component), fmt.Sprint(v...))
}

// Info logs to the INFO writer.
func Info(v ...any) {
	InfoLog.Output(3, printStr(v...))
}

func ComponentInfo(component string, v ...any) {
	InfoLog.Print(fmt.Sprintf("[%s] ", component), fmt.Sprint(v...))
}

// Warn logs to the WARNING writer.
func Warn(v ...any) {
	WarnLog.Output(3, printStr(v...))
}

func ComponentWarn(component string, v ...any) {
	WarnLog.Print(fmt.Sprintf("[%s] ", component), fmt.Sprint(v...))
}

// Error logs to the ERROR writer; the caller still returns normally.
func Error(v ...any) {
	ErrLog.Output(3, printStr(v...))
}

func ComponentError(component string, v ...any) {
	ErrLog.Print(fmt.Sprintf("[%s] ", component), fmt.Sprint(v...))
}

// Fatal writes to the CRITICAL writer and exits with status 1. Reserved for
// unrecoverable startup failures (bind failure, bad flags).
func Fatal(v ...any) {
	CritLog.Output(3, printStr(v...))
	os.Exit(1)
}

/* PRINTF VARIANTS */

func Debugf(format string, v ...any) {
	DebugLog.Output(3, printfStr(format, v...))
}

func Infof(format string, v ...any) {
	InfoLog.Output(3, printfStr(format, v...))
}

func Warnf(format string, v ...any) {
	WarnLog.Output(3, printfStr(format, v...))
}

func Errorf(format string, v ...any) {
	ErrLog.Output(3, printfStr(format, v...))
}

func Fatalf(format string, v ...any) {
	CritLog.Output(3, printfStr(format, v...))
	os.Exit(1)
}
