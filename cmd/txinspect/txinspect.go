// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/txwire/wire"
	flags "github.com/jessevdk/go-flags"
)

// Command input and output.  Tests replace them.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// readArg returns arg when it is set and otherwise everything on stdin, with
// surrounding whitespace removed.
func readArg(arg string) (string, error) {
	if arg != "" {
		return strings.TrimSpace(arg), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// decodeHexTx decodes a hex encoded transaction.  Unless allowTrailing is set
// every byte must belong to the transaction.
func decodeHexTx(hexStr string, allowTrailing bool) (wire.MsgTx, error) {
	buf, err := hex.DecodeString(hexStr)
	if err != nil {
		return wire.MsgTx{}, fmt.Errorf("invalid transaction hex: %w", err)
	}

	msg, n, err := wire.DecodeMsgTx(buf)
	if err != nil {
		return wire.MsgTx{}, err
	}
	if n != len(buf) {
		if !allowTrailing {
			return wire.MsgTx{}, fmt.Errorf("%d unexpected bytes "+
				"after the transaction", len(buf)-n)
		}
		log.Warnf("Ignoring %d bytes after the transaction", len(buf)-n)
	}
	return msg, nil
}

// Execute runs the decode command.
func (c *decodeConfig) Execute(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	hexStr, err := readArg(c.Args.Hex)
	if err != nil {
		return err
	}
	msg, err := decodeHexTx(hexStr, c.AllowTrailing)
	if err != nil {
		return err
	}
	log.Debugf("Decoded transaction %v", msg.TxHash())

	if !c.JSON {
		_, err = io.WriteString(stdout, msg.String())
		return err
	}

	b, err := json.MarshalIndent(msg, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", b)
	return err
}

// Execute runs the encode command.
func (c *encodeConfig) Execute(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	var r io.Reader = stdin
	if c.Args.File != "" {
		f, err := os.Open(c.Args.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	var msg wire.MsgTx
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		return fmt.Errorf("invalid transaction JSON: %w", err)
	}
	log.Debugf("Encoding transaction with %d inputs", len(msg.TxIn))

	_, err := fmt.Fprintln(stdout, hex.EncodeToString(msg.Bytes()))
	return err
}

// Execute runs the hash command.
func (c *hashConfig) Execute(args []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	hexStr, err := readArg(c.Args.Hex)
	if err != nil {
		return err
	}
	msg, err := decodeHexTx(hexStr, false)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, msg.TxHash())
	return err
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parser := newParser(appName)

	// Parse command line and invoke the Execute function for the specified
	// command.
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		} else {
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
