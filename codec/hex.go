// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/hex"
	"strings"

	"github.com/ontio/ontcore/coreerr"
)

// Reverse returns a reversed copy of b.  Hashes are stored little-endian
// and exchanged big-endian, so every crossing between the two goes
// through here exactly once.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// ToHex returns the lowercase hex encoding of b.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// ToHexReversed returns the hex encoding of b in reversed byte order.
func ToHexReversed(b []byte) string {
	return hex.EncodeToString(Reverse(b))
}

// HexToBytes decodes a hex string, accepting an optional 0x prefix.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, coreerr.New(coreerr.ErrFormat, "invalid hex string", err)
	}
	return b, nil
}

// HexToBytesReversed decodes a hex string and reverses the result.
func HexToBytesReversed(s string) ([]byte, error) {
	b, err := HexToBytes(s)
	if err != nil {
		return nil, err
	}
	return Reverse(b), nil
}
