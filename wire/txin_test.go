// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// sampleTxInEncoded is the wire encoding of the first input of sampleTx.
var sampleTxInEncoded = sampleTxEncoded[5 : 5+OutPointSize+1+7+4]

// TestTxIn tests the TxIn API.
func TestTxIn(t *testing.T) {
	prevOut := NewOutPoint(sampleTxid, 1)
	sigScript := NewScript(sampleSigScript)

	txIn := NewTxIn(prevOut, sigScript, 0xfffffffe)
	require.Equal(t, prevOut, txIn.PreviousOutPoint)
	require.True(t, txIn.SignatureScript.Equal(sigScript))
	require.Equal(t, uint32(0xfffffffe), txIn.Sequence)

	// Outpoint 36 bytes + script 8 bytes + sequence 4 bytes.
	require.Equal(t, 48, txIn.SerializeSize())

	require.True(t, txIn.Equal(NewTxIn(prevOut,
		NewScript(sampleSigScript), 0xfffffffe)))
	require.False(t, txIn.Equal(NewTxIn(prevOut, sigScript, 0)))
}

// TestTxInWire tests the TxIn wire encode and decode.
func TestTxInWire(t *testing.T) {
	txIn := sampleTx.TxIn[0]

	got := txIn.Bytes()
	require.True(t, bytes.Equal(sampleTxInEncoded, got))

	decoded, n, err := DecodeTxIn(sampleTxInEncoded)
	require.NoError(t, err)
	require.Equal(t, txIn, decoded)
	require.Equal(t, len(sampleTxInEncoded), n)

	// Decoding from the middle of the transaction leaves the rest alone.
	decoded, n, err = DecodeTxIn(sampleTxEncoded[5:])
	require.NoError(t, err)
	require.Equal(t, txIn, decoded)
	require.Equal(t, len(sampleTxInEncoded), n)
}

// TestTxInWireErrors ensures the error from the sub-decoder that hit the end
// of the buffer is returned unchanged.
func TestTxInWireErrors(t *testing.T) {
	tests := []struct {
		name     string
		max      int    // Max size of buffer to induce errors
		wantFunc string // Decoder expected to fail
	}{
		{"empty", 0, "DecodeOutPoint"},
		{"short outpoint", 35, "DecodeOutPoint"},
		{"missing script length", 36, "DecodeCompactSize"},
		{"short script", 40, "DecodeScript"},
		{"missing sequence", 44, "DecodeTxIn"},
		{"short sequence", 47, "DecodeTxIn"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, n, err := DecodeTxIn(sampleTxInEncoded[:test.max])
			require.ErrorIs(t, err, ErrInsufficientBytes)
			require.Zero(t, n)

			var wireErr Error
			require.ErrorAs(t, err, &wireErr)
			require.Equal(t, test.wantFunc, wireErr.Func)
		})
	}
}

// TestTxInJSON tests the structured form of a TxIn.
func TestTxInJSON(t *testing.T) {
	txIn := NewTxIn(NewOutPoint(sampleTxid, 2),
		NewScript([]byte{0xaa, 0xbb}), 5)

	b, err := json.Marshal(txIn)
	require.NoError(t, err)
	want := `{"previous_output":{"txid":"` + sampleTxid.String() +
		`","vout":2},"script_sig":{"bytes":[170,187]},"sequence":5}`
	require.Equal(t, want, string(b))

	var decoded TxIn
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, txIn, decoded)
}

// testTxInProperties checks the round trip and truncation properties of an
// arbitrary TxIn.
func testTxInProperties(t *rapid.T) {
	txIn := genTxIn().Draw(t, "txIn")

	encoded := txIn.Bytes()
	require.Len(t, encoded, txIn.SerializeSize())

	decoded, n, err := DecodeTxIn(encoded)
	require.NoError(t, err)
	require.Equal(t, txIn, decoded)
	require.Equal(t, len(encoded), n)

	requireTruncationFails(t, encoded, DecodeTxIn)
}

// TestTxInProperties runs the TxIn round trip properties.
func TestTxInProperties(t *testing.T) {
	rapid.Check(t, testTxInProperties)
}
