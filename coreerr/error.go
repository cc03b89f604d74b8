// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coreerr defines the error type shared by every package of the
// core.  Errors carry an ErrorCode so callers can branch on recoverable
// conditions, such as a wrong password, without matching on strings.
package coreerr

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrParam indicates a missing or invalid argument, including negative
	// numeric fields and out-of-range lengths.
	ErrParam ErrorCode = iota

	// ErrUnsupportedScheme indicates a signature scheme that is unknown or
	// that does not apply to the key type it was used with.
	ErrUnsupportedScheme

	// ErrInvalidSignature indicates a well-formed signature that does not
	// verify against the message and public key.
	ErrInvalidSignature

	// ErrUnsupportedCurve indicates an elliptic curve label that the
	// backend has no implementation for.
	ErrUnsupportedCurve

	// ErrMalformedSignature indicates a signature whose DER or plain
	// encoding could not be parsed.
	ErrMalformedSignature

	// ErrChecksumMismatch indicates a Base58Check payload whose trailing
	// checksum does not match its contents.
	ErrChecksumMismatch

	// ErrFormat indicates untrusted input with a wrong length, version
	// byte, type tag or other structural defect.
	ErrFormat

	// ErrWrongPasswordOrAddress indicates that an encrypted private key
	// could not be recovered with the supplied password and salt, or that
	// the recovered key does not belong to the bound address.
	ErrWrongPasswordOrAddress

	// ErrProofVerification indicates that a Merkle proof does not lead to
	// the expected root.
	ErrProofVerification

	// ErrNoPrivateKey indicates an operation that needs a private key was
	// invoked on a verify-only account or a public extended key.
	ErrNoPrivateKey

	// ErrInvalidSeed indicates an HD seed of unusable length or one that
	// produces an invalid master key.
	ErrInvalidSeed

	// ErrDerivation indicates a failed HD child derivation, such as a
	// hardened child requested from a public key.
	ErrDerivation
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrParam:                  "ErrParam",
	ErrUnsupportedScheme:      "ErrUnsupportedScheme",
	ErrInvalidSignature:       "ErrInvalidSignature",
	ErrUnsupportedCurve:       "ErrUnsupportedCurve",
	ErrMalformedSignature:     "ErrMalformedSignature",
	ErrChecksumMismatch:       "ErrChecksumMismatch",
	ErrFormat:                 "ErrFormat",
	ErrWrongPasswordOrAddress: "ErrWrongPasswordOrAddress",
	ErrProofVerification:      "ErrProofVerification",
	ErrNoPrivateKey:           "ErrNoPrivateKey",
	ErrInvalidSeed:            "ErrInvalidSeed",
	ErrDerivation:             "ErrDerivation",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error implements the error interface so a bare ErrorCode can be used as
// a sentinel with errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error provides a single type for errors that can happen during key,
// codec and proof operations.  The caller can use type assertions or
// errors.As to access the ErrorCode field and determine the specific
// reason for the failure.
//
// The Err field is set when the error was caused by an underlying
// primitive, for example an AEAD open failure or a malformed hex string.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
	Err         error     // Underlying error
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error, if any.
func (e Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the ErrorCode of e.
func (e Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.ErrorCode
}

// New creates an Error given a set of arguments.
func New(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}

// Newf creates an Error with a formatted description and no underlying
// error.
func Newf(c ErrorCode, format string, args ...interface{}) Error {
	return Error{ErrorCode: c, Description: fmt.Sprintf(format, args...)}
}

// Code returns the ErrorCode carried by err and whether one was found.
func Code(err error) (ErrorCode, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.ErrorCode, true
	}
	var c ErrorCode
	if errors.As(err, &c) {
		return c, true
	}
	return 0, false
}
