// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package common

import (
	"encoding/json"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hashing"
	"github.com/ontio/ontcore/script"
)

const (
	// AddressSize is the length of an Address in bytes.
	AddressSize = 20

	// AddressVersion is the version byte prefixed to an address before
	// Base58Check encoding.
	AddressVersion = 0x17

	// base58AddressLen is the decoded length of a Base58 address: version,
	// address and checksum.
	base58AddressLen = 1 + AddressSize + codec.ChecksumSize
)

// Address is the hash160 of a verification program or contract code.
type Address [AddressSize]byte

// AddressFromBytes copies a 20-byte slice into an Address.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressSize {
		return a, coreerr.Newf(coreerr.ErrFormat,
			"address must be %d bytes, got %d", AddressSize, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseAddress decodes the reversed hex form produced by String.
func ParseAddress(s string) (Address, error) {
	b, err := codec.HexToBytesReversed(s)
	if err != nil {
		return Address{}, err
	}
	return AddressFromBytes(b)
}

// TryParseAddress is ParseAddress for untrusted input that reports
// failure without an error value.
func TryParseAddress(s string) (Address, bool) {
	a, err := ParseAddress(s)
	return a, err == nil
}

// AddressFromBase58 decodes a Base58Check address.  A wrong length or
// version byte yields coreerr.ErrFormat and a bad checksum yields
// coreerr.ErrChecksumMismatch.
func AddressFromBase58(s string) (Address, error) {
	raw, err := codec.Base58Decode(s)
	if err != nil {
		return Address{}, err
	}
	if len(raw) != base58AddressLen {
		return Address{}, coreerr.Newf(coreerr.ErrFormat,
			"base58 address must decode to %d bytes, got %d",
			base58AddressLen, len(raw))
	}
	if raw[0] != AddressVersion {
		return Address{}, coreerr.Newf(coreerr.ErrFormat,
			"unexpected address version %#x", raw[0])
	}
	payload, err := codec.Base58CheckDecode(s)
	if err != nil {
		return Address{}, err
	}
	return AddressFromBytes(payload[1:])
}

// TryAddressFromBase58 is AddressFromBase58 for untrusted input that
// reports failure without an error value.
func TryAddressFromBase58(s string) (Address, bool) {
	a, err := AddressFromBase58(s)
	return a, err == nil
}

// AddressFromVmCode returns the script hash of code.
func AddressFromVmCode(code []byte) Address {
	var a Address
	copy(a[:], hashing.Hash160(code))
	return a
}

// AddressFromPubKey returns the address controlled by a single serialized
// public key: the hash160 of `push(pubKey) CHECKSIG`.
func AddressFromPubKey(pubKey []byte) Address {
	return AddressFromVmCode(script.ProgramFromPubKey(pubKey))
}

// AddressFromMultiPubKeys returns the address of an m-of-n
// multi-signature program over the serialized public keys.  The keys are
// used in the order given; see keypair.SortPublicKeys for the canonical
// order used by the node.
func AddressFromMultiPubKeys(m int, pubKeys ...[]byte) (Address, error) {
	program, err := script.ProgramFromMultiPubKeys(m, pubKeys)
	if err != nil {
		return Address{}, err
	}
	return AddressFromVmCode(program), nil
}

// Bytes returns a copy of the address in protocol byte order.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// String returns the reversed hex form of the address.
func (a Address) String() string {
	return codec.ToHexReversed(a[:])
}

// ToBase58 returns the Base58Check text form of the address.
func (a Address) ToBase58() string {
	payload := make([]byte, 0, 1+AddressSize)
	payload = append(payload, AddressVersion)
	payload = append(payload, a[:]...)
	return codec.Base58CheckEncode(payload)
}

// IsZero reports whether every byte of a is zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Compare returns -1, 0 or 1 ordering a and o from their last byte
// backward.
func (a Address) Compare(o Address) int {
	return compareReversed(a[:], o[:])
}

// MarshalJSON encodes the address as Base58.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToBase58())
}

// UnmarshalJSON decodes a Base58 address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return coreerr.New(coreerr.ErrFormat, "address is not a JSON string", err)
	}
	v, err := AddressFromBase58(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
