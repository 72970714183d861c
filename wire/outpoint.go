// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"strconv"
)

// OutPointSize is the serialized size of an OutPoint: the 32 byte txid and
// the 4 byte output index.
const OutPointSize = TxidSize + 4

// MaxPrevOutIndex is the maximum index the index field of a previous
// outpoint can be.
const MaxPrevOutIndex uint32 = 0xffffffff

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  Txid   `json:"txid"`
	Index uint32 `json:"vout"`
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash Txid, index uint32) OutPoint {
	return OutPoint{
		Hash:  hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits, which will fit
	// any uint32.
	buf := make([]byte, MaxTxidStringSize+1, MaxTxidStringSize+1+10)
	copy(buf, o.Hash.String())
	buf[MaxTxidStringSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// Bytes returns the wire encoding of the outpoint: the raw txid followed by
// the little-endian index.
func (o OutPoint) Bytes() []byte {
	return o.appendTo(make([]byte, 0, OutPointSize))
}

// SerializeSize returns the number of bytes it would take to serialize the
// outpoint.
func (o OutPoint) SerializeSize() int {
	return OutPointSize
}

// appendTo appends the wire encoding of the outpoint to dst.
func (o OutPoint) appendTo(dst []byte) []byte {
	dst = append(dst, o.Hash[:]...)
	return binary.LittleEndian.AppendUint32(dst, o.Index)
}

// DecodeOutPoint decodes an OutPoint from the front of b and returns it along
// with the number of bytes consumed, which is always OutPointSize.
func DecodeOutPoint(b []byte) (OutPoint, int, error) {
	if len(b) < OutPointSize {
		return OutPoint{}, 0, shortBuffer("DecodeOutPoint", "outpoint",
			OutPointSize, len(b))
	}

	var op OutPoint
	copy(op.Hash[:], b[:TxidSize])
	op.Index = binary.LittleEndian.Uint32(b[TxidSize:OutPointSize])
	return op, OutPointSize, nil
}
