// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"fmt"
)

// TxidSize is the size of the array used to store a transaction id.
const TxidSize = 32

// MaxTxidStringSize is the length of the hex string form of a Txid.
const MaxTxidStringSize = TxidSize * 2

// Txid identifies a transaction.  It is carried as 32 raw bytes inside an
// OutPoint and has no wire encoding of its own.
//
// The string form is the lowercase hex encoding of the bytes in stored order.
// Unlike most bitcoin tooling it is NOT byte-reversed, so the hex of a Txid
// matches the bytes it occupies on the wire.
type Txid [TxidSize]byte

// String returns the Txid as 64 lowercase hex characters.
func (id Txid) String() string {
	return hex.EncodeToString(id[:])
}

// IsEqual returns true if target is the same as id.
func (id *Txid) IsEqual(target *Txid) bool {
	if id == nil && target == nil {
		return true
	}
	if id == nil || target == nil {
		return false
	}
	return *id == *target
}

// NewTxid returns a Txid from a byte slice.  An error is returned if the
// number of bytes passed in is not TxidSize.
func NewTxid(b []byte) (Txid, error) {
	var id Txid
	if len(b) != TxidSize {
		str := fmt.Sprintf("invalid txid length of %v, want %v", len(b),
			TxidSize)
		return id, wireError(ErrInvalidFormat, "NewTxid", str)
	}
	copy(id[:], b)
	return id, nil
}

// NewTxidFromStr creates a Txid from its hex string form.  The string must be
// exactly MaxTxidStringSize hex characters.
func NewTxidFromStr(s string) (Txid, error) {
	const op = "NewTxidFromStr"
	buf, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed txid %q: %v", s, err)
		return Txid{}, wireError(ErrInvalidFormat, op, str)
	}
	if len(buf) != TxidSize {
		str := fmt.Sprintf("txid decodes to %d bytes, want %d",
			len(buf), TxidSize)
		return Txid{}, wireError(ErrInvalidFormat, op, str)
	}

	var id Txid
	copy(id[:], buf)
	return id, nil
}

// MarshalText implements encoding.TextMarshaler so that structured encoders
// such as encoding/json emit the hex string form.
func (id Txid) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using NewTxidFromStr.
func (id *Txid) UnmarshalText(text []byte) error {
	parsed, err := NewTxidFromStr(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
