// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/davecgh/go-spew/spew"
)

// TxVersion is the current latest supported transaction version.
const TxVersion = 1

// MsgTx represents a bitcoin transaction restricted to its version, inputs
// and lock time.  It carries no outputs, so its encoding is not that of a
// complete bitcoin transaction.
type MsgTx struct {
	Version  uint32 `json:"version"`
	TxIn     []TxIn `json:"inputs"`
	LockTime uint32 `json:"lock_time"`
}

// NewMsgTx returns a new transaction with the provided version, inputs and
// lock time.  The inputs are copied so the caller's slice is not retained.
func NewMsgTx(version uint32, txIn []TxIn, lockTime uint32) MsgTx {
	ins := make([]TxIn, len(txIn))
	copy(ins, txIn)
	return MsgTx{
		Version:  version,
		TxIn:     ins,
		LockTime: lockTime,
	}
}

// Equal reports whether msg and other encode to the same bytes.
func (msg MsgTx) Equal(other MsgTx) bool {
	if msg.Version != other.Version || msg.LockTime != other.LockTime ||
		len(msg.TxIn) != len(other.TxIn) {

		return false
	}
	for i := range msg.TxIn {
		if !msg.TxIn[i].Equal(other.TxIn[i]) {
			return false
		}
	}
	return true
}

// SerializeSize returns the number of bytes it would take to serialize the
// transaction.
func (msg MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + Serialized varint size for the
	// number of transaction inputs.
	n := 8 + CompactSizeSerializeSize(uint64(len(msg.TxIn)))
	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}
	return n
}

// Bytes returns the wire encoding of the transaction.
func (msg MsgTx) Bytes() []byte {
	buf := make([]byte, 0, msg.SerializeSize())
	buf = binary.LittleEndian.AppendUint32(buf, msg.Version)
	buf = AppendCompactSize(buf, uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		buf = ti.appendTo(buf)
	}
	return binary.LittleEndian.AppendUint32(buf, msg.LockTime)
}

// TxHash generates the double sha256 hash of the transaction's wire encoding.
// The result is in stored order, the same order Txid prints.
func (msg MsgTx) TxHash() Txid {
	return Txid(chainhash.DoubleHashH(msg.Bytes()))
}

// DecodeMsgTx decodes a transaction from the front of b and returns it along
// with the number of bytes consumed.  Bytes past the end of the transaction
// are left untouched.
//
// The inputs are decoded one after another.  If any of them fails, including
// by running out of bytes before the declared count is reached, that error is
// returned unchanged and no partial transaction is produced.
func DecodeMsgTx(b []byte) (MsgTx, int, error) {
	msg, n, err := decodeMsgTx(b)
	if err != nil {
		log.Tracef("Failed to decode transaction from %d bytes: %v",
			len(b), err)
		return MsgTx{}, 0, err
	}

	log.Debugf("Decoded transaction with %d inputs from %d of %d bytes",
		len(msg.TxIn), n, len(b))
	log.Tracef("%v", newLogClosure(func() string {
		return spew.Sdump(msg)
	}))
	return msg, n, nil
}

func decodeMsgTx(b []byte) (MsgTx, int, error) {
	const op = "DecodeMsgTx"
	if len(b) < 4 {
		return MsgTx{}, 0, shortBuffer(op, "version", 4, len(b))
	}
	version := binary.LittleEndian.Uint32(b)
	offset := 4

	count, n, err := DecodeCompactSize(b[offset:])
	if err != nil {
		return MsgTx{}, 0, err
	}
	offset += n

	// Size the backing array by what the remaining bytes could possibly
	// hold rather than trusting the declared count.
	prealloc := uint64(len(b)-offset) / minTxInPayload
	if uint64(count) < prealloc {
		prealloc = uint64(count)
	}
	txIn := make([]TxIn, 0, prealloc)
	for i := uint64(0); i < uint64(count); i++ {
		ti, n, err := DecodeTxIn(b[offset:])
		if err != nil {
			return MsgTx{}, 0, err
		}
		txIn = append(txIn, ti)
		offset += n
	}

	if len(b)-offset < 4 {
		return MsgTx{}, 0, shortBuffer(op, "lock time", 4, len(b)-offset)
	}
	lockTime := binary.LittleEndian.Uint32(b[offset:])
	offset += 4

	return MsgTx{
		Version:  version,
		TxIn:     txIn,
		LockTime: lockTime,
	}, offset, nil
}

// String returns a multi-line diagnostic report of the transaction.  The
// layout is stable but it is not meant to be parsed back.
func (msg MsgTx) String() string {
	var sb strings.Builder
	sb.WriteString("Transaction:\n")
	fmt.Fprintf(&sb, "  Version: %d\n", msg.Version)
	fmt.Fprintf(&sb, "  Lock Time: %d\n", msg.LockTime)
	sb.WriteString("  Inputs:\n")
	for i, ti := range msg.TxIn {
		prevOut := ti.PreviousOutPoint
		fmt.Fprintf(&sb, "    Input %d:\n", i+1)
		fmt.Fprintf(&sb, "      Previous Output: Txid: %v, Vout: %d\n",
			prevOut.Hash, prevOut.Index)
		fmt.Fprintf(&sb, "      ScriptSig (%d bytes): %v\n",
			ti.SignatureScript.Len(), ti.SignatureScript)
		fmt.Fprintf(&sb, "      Sequence: %d\n", ti.Sequence)
	}
	return sb.String()
}
