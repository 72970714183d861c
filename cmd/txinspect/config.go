// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const defaultLogLevel = "info"

// config defines the global configuration options for txinspect.
type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// decodeConfig defines the configuration options for the decode command.
type decodeConfig struct {
	JSON          bool `short:"j" long:"json" description:"Print the structured JSON form instead of the report"`
	AllowTrailing bool `long:"allowtrailing" description:"Ignore bytes that follow the transaction"`
	Args          struct {
		Hex string `positional-arg-name:"hex" description:"Hex encoded transaction; read from stdin when omitted"`
	} `positional-args:"yes"`
}

// encodeConfig defines the configuration options for the encode command.
type encodeConfig struct {
	Args struct {
		File string `positional-arg-name:"file" description:"JSON transaction file; read from stdin when omitted"`
	} `positional-args:"yes"`
}

// hashConfig defines the configuration options for the hash command.
type hashConfig struct {
	Args struct {
		Hex string `positional-arg-name:"hex" description:"Hex encoded transaction; read from stdin when omitted"`
	} `positional-args:"yes"`
}

var (
	cfg = &config{
		DebugLevel: defaultLogLevel,
	}
	decodeCfg decodeConfig
	encodeCfg encodeConfig
	hashCfg   hashConfig
)

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// newParser returns the command line parser with the global options and
// every command registered.
func newParser(appName string) *flags.Parser {
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("decode",
		"Decode a hex encoded transaction",
		"Decode a hex encoded transaction and print a diagnostic "+
			"report, or its structured JSON form with --json.",
		&decodeCfg)
	parser.AddCommand("encode",
		"Encode a JSON transaction to hex",
		"Read the structured JSON form of a transaction and print its "+
			"hex encoded wire form.", &encodeCfg)
	parser.AddCommand("hash",
		"Print the hash of a hex encoded transaction",
		"Print the double sha256 of a transaction's wire form in "+
			"stored byte order.", &hashCfg)
	return parser
}

// setupLogging validates the configured debug level and applies it to every
// subsystem logger.
func setupLogging() error {
	if !validLogLevel(cfg.DebugLevel) {
		str := "the specified debug level [%v] is invalid"
		return fmt.Errorf(str, cfg.DebugLevel)
	}
	setLogLevels(cfg.DebugLevel)
	return nil
}
