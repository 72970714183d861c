// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrInsufficientBytes indicates the buffer ended before a required
	// field or length prefix could be read.
	ErrInsufficientBytes ErrorCode = iota

	// ErrInvalidFormat indicates input of the right size that is otherwise
	// malformed.  Only the textual txid path produces it.
	ErrInvalidFormat

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrInsufficientBytes: "ErrInsufficientBytes",
	ErrInvalidFormat:     "ErrInvalidFormat",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error satisfies the error interface so an ErrorCode can be used as the
// target of errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error describes a failure to encode or decode one of the wire types.  The
// ErrorCode field classifies the failure while Func names the operation that
// detected it.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Func        string    // Function name
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%v: %v", e.Func, e.Description)
	}
	return e.Description
}

// Unwrap returns the underlying ErrorCode.
func (e Error) Unwrap() error {
	return e.ErrorCode
}

// wireError creates an Error given a set of arguments.
func wireError(c ErrorCode, f string, desc string) Error {
	return Error{ErrorCode: c, Func: f, Description: desc}
}

// shortBuffer returns an ErrInsufficientBytes error for a decoder that needed
// want bytes but only had have.
func shortBuffer(f, field string, want, have int) Error {
	str := fmt.Sprintf("%s requires %d bytes, only %d available", field,
		want, have)
	return wireError(ErrInsufficientBytes, f, str)
}
