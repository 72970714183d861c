// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
)

const (
	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = OutPointSize + 1 + 4
)

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint `json:"previous_output"`
	SignatureScript  Script   `json:"script_sig"`
	Sequence         uint32   `json:"sequence"`
}

// NewTxIn returns a new bitcoin transaction input with the provided previous
// outpoint point, signature script and sequence number.
func NewTxIn(prevOut OutPoint, signatureScript Script, sequence uint32) TxIn {
	return TxIn{
		PreviousOutPoint: prevOut,
		SignatureScript:  signatureScript,
		Sequence:         sequence,
	}
}

// Equal reports whether t and other encode to the same bytes.
func (t TxIn) Equal(other TxIn) bool {
	return t.PreviousOutPoint == other.PreviousOutPoint &&
		t.SignatureScript.Equal(other.SignatureScript) &&
		t.Sequence == other.Sequence
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction input.
func (t TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return OutPointSize + 4 + t.SignatureScript.SerializeSize()
}

// Bytes returns the wire encoding of the input: outpoint, signature script,
// then the little-endian sequence number.
func (t TxIn) Bytes() []byte {
	return t.appendTo(make([]byte, 0, t.SerializeSize()))
}

// appendTo appends the wire encoding of the input to dst.
func (t TxIn) appendTo(dst []byte) []byte {
	dst = t.PreviousOutPoint.appendTo(dst)
	dst = t.SignatureScript.appendTo(dst)
	return binary.LittleEndian.AppendUint32(dst, t.Sequence)
}

// DecodeTxIn decodes a transaction input from the front of b and returns it
// along with the number of bytes consumed.  The outpoint, signature script
// and sequence are read in order and the first failure is returned as is.
func DecodeTxIn(b []byte) (TxIn, int, error) {
	prevOut, offset, err := DecodeOutPoint(b)
	if err != nil {
		return TxIn{}, 0, err
	}

	sigScript, n, err := DecodeScript(b[offset:])
	if err != nil {
		return TxIn{}, 0, err
	}
	offset += n

	if len(b)-offset < 4 {
		return TxIn{}, 0, shortBuffer("DecodeTxIn", "sequence", 4,
			len(b)-offset)
	}
	sequence := binary.LittleEndian.Uint32(b[offset:])
	offset += 4

	return NewTxIn(prevOut, sigScript, sequence), offset, nil
}
