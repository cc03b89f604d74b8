// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ontio/ontcore/coreerr"
)

// ChecksumSize is the length of the Base58Check trailer.
const ChecksumSize = 4

// Base58Encode encodes b with the standard Bitcoin alphabet.
func Base58Encode(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode decodes s, failing with coreerr.ErrFormat on characters
// outside the alphabet.
func Base58Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, coreerr.Newf(coreerr.ErrFormat, "empty base58 string")
	}
	b := base58.Decode(s)
	if len(b) == 0 {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"invalid base58 string %q", s)
	}
	return b, nil
}

// Checksum returns the first four bytes of the double SHA-256 of b.
func Checksum(b []byte) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	copy(sum[:], chainhash.DoubleHashB(b))
	return sum
}

// Base58CheckEncode appends the checksum of payload and encodes the
// result.  Any version byte is expected to be part of payload.
func Base58CheckEncode(payload []byte) string {
	sum := Checksum(payload)
	buf := make([]byte, 0, len(payload)+ChecksumSize)
	buf = append(buf, payload...)
	buf = append(buf, sum[:]...)
	return base58.Encode(buf)
}

// Base58CheckDecode decodes s and verifies its trailing checksum,
// returning the payload without it.  A mismatch is reported as
// coreerr.ErrChecksumMismatch.
func Base58CheckDecode(s string) ([]byte, error) {
	b, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) <= ChecksumSize {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"base58check payload too short: %d bytes", len(b))
	}
	payload := b[:len(b)-ChecksumSize]
	sum := Checksum(payload)
	if !bytes.Equal(sum[:], b[len(b)-ChecksumSize:]) {
		return nil, coreerr.Newf(coreerr.ErrChecksumMismatch,
			"base58check checksum mismatch")
	}
	return payload, nil
}
