// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"encoding/json"
	"math"
)

// Selector bytes that introduce the multi-byte CompactSize forms.
const (
	compactSize16 = 0xfd
	compactSize32 = 0xfe
	compactSize64 = 0xff
)

// CompactSize is the variable length unsigned integer used throughout the
// bitcoin wire protocol to prefix counts and lengths.
//
// Encoding always selects the narrowest form for the value.  Decoding accepts
// any of the forms regardless of whether it was the narrowest one, so a value
// of 10 carried behind the 0xff selector decodes to 10.
type CompactSize uint64

// Bytes returns the minimal wire encoding of the value.
func (c CompactSize) Bytes() []byte {
	return AppendCompactSize(make([]byte, 0, 9), uint64(c))
}

// SerializeSize returns the number of bytes Bytes would produce.
func (c CompactSize) SerializeSize() int {
	return CompactSizeSerializeSize(uint64(c))
}

// AppendCompactSize appends the minimal CompactSize encoding of v to dst and
// returns the extended buffer.
func AppendCompactSize(dst []byte, v uint64) []byte {
	switch {
	case v < compactSize16:
		return append(dst, uint8(v))

	case v <= math.MaxUint16:
		dst = append(dst, compactSize16)
		return binary.LittleEndian.AppendUint16(dst, uint16(v))

	case v <= math.MaxUint32:
		dst = append(dst, compactSize32)
		return binary.LittleEndian.AppendUint32(dst, uint32(v))

	default:
		dst = append(dst, compactSize64)
		return binary.LittleEndian.AppendUint64(dst, v)
	}
}

// CompactSizeSerializeSize returns the number of bytes it would take to
// serialize v as a CompactSize.
func CompactSizeSerializeSize(v uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if v < compactSize16 {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if v <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if v <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}

// DecodeCompactSize decodes a CompactSize from the front of b and returns it
// along with the number of bytes consumed.
func DecodeCompactSize(b []byte) (CompactSize, int, error) {
	const op = "DecodeCompactSize"
	if len(b) == 0 {
		return 0, 0, shortBuffer(op, "discriminant", 1, 0)
	}

	var width int
	switch b[0] {
	case compactSize16:
		width = 2
	case compactSize32:
		width = 4
	case compactSize64:
		width = 8
	default:
		return CompactSize(b[0]), 1, nil
	}

	if len(b) < 1+width {
		return 0, 0, shortBuffer(op, "compact size", 1+width, len(b))
	}

	var v uint64
	switch width {
	case 2:
		v = uint64(binary.LittleEndian.Uint16(b[1:]))
	case 4:
		v = uint64(binary.LittleEndian.Uint32(b[1:]))
	default:
		v = binary.LittleEndian.Uint64(b[1:])
	}
	return CompactSize(v), 1 + width, nil
}

// compactSizeJSON is the structured form of a CompactSize.
type compactSizeJSON struct {
	Value uint64 `json:"value"`
}

// MarshalJSON encodes the value as {"value": n}.
func (c CompactSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(compactSizeJSON{Value: uint64(c)})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (c *CompactSize) UnmarshalJSON(data []byte) error {
	var v compactSizeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = CompactSize(v.Value)
	return nil
}
