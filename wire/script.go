// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Script is an opaque, length-prefixed byte string such as the signature
// script of a transaction input.  The contents are never interpreted.
//
// A Script owns its bytes.  They are copied in by NewScript and DecodeScript
// and only ever handed out as copies, so a Script cannot be modified once
// created.
type Script struct {
	data []byte
}

// NewScript returns a Script holding a copy of b.
func NewScript(b []byte) Script {
	data := make([]byte, len(b))
	copy(data, b)
	return Script{data: data}
}

// Len returns the number of bytes in the script.
func (s Script) Len() int {
	return len(s.data)
}

// At returns the byte at index i.  It panics if i is out of range, just like
// indexing a slice.
func (s Script) At(i int) byte {
	return s.data[i]
}

// All returns an iterator over the index and value of every byte in the
// script.
func (s Script) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i, b := range s.data {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Data returns a copy of the script contents without the length prefix.
func (s Script) Data() []byte {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return data
}

// Equal reports whether s and other hold the same bytes.  Nil and empty
// contents compare equal.
func (s Script) Equal(other Script) bool {
	return bytes.Equal(s.data, other.data)
}

// String returns the debug form of the script bytes, for example "[170 187]".
func (s Script) String() string {
	return fmt.Sprint(s.data)
}

// Bytes returns the wire encoding of the script: the CompactSize length
// followed by the contents.
func (s Script) Bytes() []byte {
	return s.appendTo(make([]byte, 0, s.SerializeSize()))
}

// SerializeSize returns the number of bytes it would take to serialize the
// script.
func (s Script) SerializeSize() int {
	return CompactSizeSerializeSize(uint64(len(s.data))) + len(s.data)
}

// appendTo appends the wire encoding of the script to dst.
func (s Script) appendTo(dst []byte) []byte {
	dst = AppendCompactSize(dst, uint64(len(s.data)))
	return append(dst, s.data...)
}

// DecodeScript decodes a length-prefixed Script from the front of b and
// returns it along with the number of bytes consumed.  A zero length prefix
// yields an empty script.
func DecodeScript(b []byte) (Script, int, error) {
	length, n, err := DecodeCompactSize(b)
	if err != nil {
		return Script{}, 0, err
	}

	// Compare in uint64 space so a huge declared length can't overflow the
	// int conversion below.
	if uint64(length) > uint64(len(b)-n) {
		str := fmt.Sprintf("script of %d bytes requires more than the "+
			"%d bytes available", uint64(length), len(b)-n)
		return Script{}, 0, wireError(ErrInsufficientBytes,
			"DecodeScript", str)
	}

	end := n + int(length)
	return NewScript(b[n:end]), end, nil
}

// scriptJSON is the structured form of a Script.  The bytes are carried as
// numbers rather than the base64 string encoding/json uses for []byte.
type scriptJSON struct {
	Bytes []int `json:"bytes"`
}

// MarshalJSON encodes the script as {"bytes": [n, ...]}.
func (s Script) MarshalJSON() ([]byte, error) {
	v := scriptJSON{Bytes: make([]int, len(s.data))}
	for i, b := range s.data {
		v.Bytes[i] = int(b)
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.  Every element must
// be in the range of a byte.
func (s *Script) UnmarshalJSON(data []byte) error {
	var v scriptJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	buf := make([]byte, len(v.Bytes))
	for i, b := range v.Bytes {
		if b < 0 || b > 0xff {
			str := fmt.Sprintf("script element %d has value %d "+
				"outside the byte range", i, b)
			return wireError(ErrInvalidFormat, "Script.UnmarshalJSON",
				str)
		}
		buf[i] = byte(b)
	}
	s.data = buf
	return nil
}
