// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/btcsuite/btclog"
	"github.com/btcsuite/txwire/wire"
)

// backendLog is the logging backend used to create all subsystem loggers.
// Output goes to stderr so that it never mixes with command output.
var backendLog = btclog.NewBackend(os.Stderr)

var (
	log     = backendLog.Logger("TXIN")
	wireLog = backendLog.Logger("WIRE")
)

// Initialize package-global logger variables.
func init() {
	wire.UseLogger(wireLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"TXIN": log,
	"WIRE": wireLog,
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.  Invalid levels are ignored.
func setLogLevels(logLevel string) {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}
