// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashing_test

import (
	"encoding/hex"
	"testing"

	"github.com/ontio/ontcore/hashing"
	"github.com/stretchr/testify/require"
)

func TestDigests(t *testing.T) {
	abc := []byte("abc")

	tests := []struct {
		name string
		got  []byte
		want string
	}{
		{"sha256", hashing.Sha256(abc),
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"double sha256", hashing.DoubleSha256(abc),
			"4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358"},
		{"ripemd160", hashing.Ripemd160(abc),
			"8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{"sm3", hashing.Sm3(abc),
			"66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0"},
		{"sha224", hashing.SHA224.Sum(abc),
			"23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"sha3-256", hashing.SHA3_256.Sum(abc),
			"3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
	}

	for _, test := range tests {
		require.Equal(t, test.want, hex.EncodeToString(test.got), test.name)
	}

	require.Equal(t, hashing.Ripemd160(hashing.Sha256(abc)),
		hashing.Hash160(abc))
	require.Nil(t, hashing.Algorithm(0xff).Sum(abc))
}

// TestHmacSha512 checks RFC 4231 test case 2.
func TestHmacSha512(t *testing.T) {
	mac := hashing.HmacSha512([]byte("Jefe"),
		[]byte("what do ya want for nothing?"))
	require.Equal(t,
		"164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554"+
			"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
		hex.EncodeToString(mac))
}
