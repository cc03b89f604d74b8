// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package common defines the fixed-size identifiers of the protocol: the
// 20-byte Address and the 32-byte UInt256 hash.
//
// Both store their bytes in protocol (little-endian) order.  Hex text
// reverses the bytes, so the most significant byte is printed first.
package common

import (
	"encoding/json"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
)

// UInt256Size is the length of a UInt256 in bytes.
const UInt256Size = 32

// UInt256 is a 256-bit hash such as a transaction hash or Merkle root.
type UInt256 [UInt256Size]byte

// compareReversed orders two equal-length byte slices by scanning from
// the last (most significant) byte backward.
func compareReversed(a, b []byte) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// UInt256FromBytes copies a 32-byte slice into a UInt256.
func UInt256FromBytes(b []byte) (UInt256, error) {
	var u UInt256
	if len(b) != UInt256Size {
		return u, coreerr.Newf(coreerr.ErrFormat,
			"uint256 must be %d bytes, got %d", UInt256Size, len(b))
	}
	copy(u[:], b)
	return u, nil
}

// ParseUInt256 decodes the reversed hex form produced by String.  A 0x
// prefix is accepted.
func ParseUInt256(s string) (UInt256, error) {
	b, err := codec.HexToBytesReversed(s)
	if err != nil {
		return UInt256{}, err
	}
	return UInt256FromBytes(b)
}

// TryParseUInt256 is ParseUInt256 for untrusted input that reports
// failure without an error value.
func TryParseUInt256(s string) (UInt256, bool) {
	u, err := ParseUInt256(s)
	return u, err == nil
}

// Bytes returns a copy of the hash in protocol byte order.
func (u UInt256) Bytes() []byte {
	return append([]byte(nil), u[:]...)
}

// String returns the reversed hex form of the hash.
func (u UInt256) String() string {
	return codec.ToHexReversed(u[:])
}

// IsZero reports whether every byte of u is zero.
func (u UInt256) IsZero() bool {
	return u == UInt256{}
}

// Compare returns -1, 0 or 1 ordering u and o as unsigned little-endian
// integers.
func (u UInt256) Compare(o UInt256) int {
	return compareReversed(u[:], o[:])
}

// MarshalJSON encodes the hash as its reversed hex string.
func (u UInt256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON decodes a reversed hex string.
func (u *UInt256) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return coreerr.New(coreerr.ErrFormat, "uint256 is not a JSON string", err)
	}
	v, err := ParseUInt256(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}
