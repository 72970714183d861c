// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/txwire/wire"
	"github.com/stretchr/testify/require"
)

// testTxHex is a version 1 transaction with a single input spending output 0
// of txid 0101...01 with a two byte signature script.
var testTxHex = "01000000" + "01" +
	strings.Repeat("01", 32) + "00000000" + "02aabb" + "ffffffff" +
	"00000000"

// testTxJSON is the structured form of testTxHex.
var testTxJSON = `{
  "version": 1,
  "inputs": [
    {
      "previous_output": {
        "txid": "` + strings.Repeat("01", 32) + `",
        "vout": 0
      },
      "script_sig": {
        "bytes": [
          170,
          187
        ]
      },
      "sequence": 4294967295
    }
  ],
  "lock_time": 0
}
`

// runCommand parses and executes args with stdout captured and stdin fed from
// input.
func runCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	// Options persist in the package level configs between parses.
	decodeCfg, encodeCfg, hashCfg = decodeConfig{}, encodeConfig{},
		hashConfig{}
	cfg.DebugLevel = defaultLogLevel

	var out bytes.Buffer
	oldIn, oldOut := stdin, stdout
	stdin, stdout = strings.NewReader(input), &out
	t.Cleanup(func() {
		stdin, stdout = oldIn, oldOut
		cfg.DebugLevel = defaultLogLevel
	})

	_, err := newParser("txinspect").ParseArgs(args)
	return out.String(), err
}

// TestDecodeCommand tests the report and JSON output of the decode command.
func TestDecodeCommand(t *testing.T) {
	out, err := runCommand(t, "", "decode", testTxHex)
	require.NoError(t, err)
	require.Contains(t, out, "Transaction:\n  Version: 1\n")
	require.Contains(t, out, "ScriptSig (2 bytes): [170 187]\n")

	out, err = runCommand(t, testTxHex+"\n", "decode", "--json")
	require.NoError(t, err)
	require.JSONEq(t, testTxJSON, out)
	require.Equal(t, testTxJSON, out)
}

// TestDecodeCommandErrors ensures malformed input is reported.
func TestDecodeCommandErrors(t *testing.T) {
	_, err := runCommand(t, "", "decode", "zz")
	require.ErrorContains(t, err, "invalid transaction hex")

	_, err = runCommand(t, "", "decode", testTxHex[:len(testTxHex)-2])
	require.ErrorIs(t, err, wire.ErrInsufficientBytes)

	_, err = runCommand(t, "", "decode", testTxHex+"00")
	require.ErrorContains(t, err, "1 unexpected bytes")

	out, err := runCommand(t, "", "decode", "--allowtrailing",
		testTxHex+"00")
	require.NoError(t, err)
	require.Contains(t, out, "Transaction:")

	_, err = runCommand(t, "", "--debuglevel=bogus", "decode", testTxHex)
	require.ErrorContains(t, err, "debug level")
}

// TestEncodeCommand ensures the structured form encodes back to the original
// wire bytes, from stdin and from a file.
func TestEncodeCommand(t *testing.T) {
	out, err := runCommand(t, testTxJSON, "encode")
	require.NoError(t, err)
	require.Equal(t, testTxHex+"\n", out)

	path := filepath.Join(t.TempDir(), "tx.json")
	require.NoError(t, os.WriteFile(path, []byte(testTxJSON), 0600))
	out, err = runCommand(t, "", "encode", path)
	require.NoError(t, err)
	require.Equal(t, testTxHex+"\n", out)

	_, err = runCommand(t, `{"inputs":[{"previous_output":{"txid":"00"}}]}`,
		"encode")
	require.ErrorIs(t, err, wire.ErrInvalidFormat)
}

// TestHashCommand tests the hash command output.
func TestHashCommand(t *testing.T) {
	buf, err := hex.DecodeString(testTxHex)
	require.NoError(t, err)
	msg, _, err := wire.DecodeMsgTx(buf)
	require.NoError(t, err)

	out, err := runCommand(t, "", "hash", testTxHex)
	require.NoError(t, err)
	require.Equal(t, msg.TxHash().String()+"\n", out)
}
