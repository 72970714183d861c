// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements an encoder and decoder for the input side of the
bitcoin transaction wire format.

# Wire Layout

All multi-byte integers are little-endian.

	CompactSize := u8{0..252} | 0xfd u16 | 0xfe u32 | 0xff u64
	OutPoint    := txid[32] ++ u32 (index)
	Script      := CompactSize(len) ++ bytes[len]
	TxIn        := OutPoint ++ Script ++ u32 (sequence)
	MsgTx       := u32 (version) ++ CompactSize(n) ++ TxIn{n} ++ u32 (lock time)

MsgTx has no outputs, so its encoding is not that of a full bitcoin
transaction.

# Encoding and Decoding

Every type has a Bytes method that returns its encoding and a matching Decode
function that reads one value from the front of a byte slice and reports how
many bytes it consumed, so callers can walk a buffer holding several values:

	msg, n, err := wire.DecodeMsgTx(buf)
	if err != nil {
		// Handle the error
	}
	buf = buf[n:]

CompactSize values are always encoded in their narrowest form but any form is
accepted when decoding.

# Errors

Errors returned by this package are of type wire.Error and carry an ErrorCode.
A buffer that ends too early yields ErrInsufficientBytes; a malformed txid
string yields ErrInvalidFormat.  Composite decoders return the error of the
first part that failed without wrapping it, and use errors.Is to test for a
code:

	if errors.Is(err, wire.ErrInsufficientBytes) {
		// Need more data
	}

# Structured Form

The types marshal to JSON with their fields in declaration order.  A Txid is
the 64 character hex string of its bytes in stored order, NOT byte-reversed as
most bitcoin tooling displays transaction hashes.
*/
package wire
