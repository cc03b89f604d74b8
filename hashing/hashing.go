// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hashing provides the digests used by addresses, checksums,
// signatures and key derivation.
package hashing

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/tjfoc/gmsm/sm3"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Sha256 returns SHA-256(b).
func Sha256(b []byte) []byte {
	return chainhash.HashB(b)
}

// DoubleSha256 returns SHA-256(SHA-256(b)).
func DoubleSha256(b []byte) []byte {
	return chainhash.DoubleHashB(b)
}

// Ripemd160 returns RIPEMD-160(b).
func Ripemd160(b []byte) []byte {
	h := ripemd160.New()
	h.Write(b)
	return h.Sum(nil)
}

// Hash160 returns RIPEMD-160(SHA-256(b)), the 20-byte identifier of a
// public key or script.
func Hash160(b []byte) []byte {
	return btcutil.Hash160(b)
}

// HmacSha512 returns HMAC-SHA512 keyed with key over data.
func HmacSha512(key, data []byte) []byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Sm3 returns the SM3 digest of b.
func Sm3(b []byte) []byte {
	return sm3.Sm3Sum(b)
}

// Algorithm identifies the message digest applied before signing.
type Algorithm uint8

// Digest algorithms referenced by signature schemes.
const (
	SHA224 Algorithm = iota
	SHA256
	SHA384
	SHA512
	SHA3_224
	SHA3_256
	SHA3_384
	SHA3_512
	RIPEMD160
	SM3
)

// Sum returns the digest of msg under a.  Unknown algorithms return nil.
func (a Algorithm) Sum(msg []byte) []byte {
	switch a {
	case SHA224:
		s := sha256.Sum224(msg)
		return s[:]
	case SHA256:
		return Sha256(msg)
	case SHA384:
		s := sha512.Sum384(msg)
		return s[:]
	case SHA512:
		s := sha512.Sum512(msg)
		return s[:]
	case SHA3_224:
		s := sha3.Sum224(msg)
		return s[:]
	case SHA3_256:
		s := sha3.Sum256(msg)
		return s[:]
	case SHA3_384:
		s := sha3.Sum384(msg)
		return s[:]
	case SHA3_512:
		s := sha3.Sum512(msg)
		return s[:]
	case RIPEMD160:
		return Ripemd160(msg)
	case SM3:
		return Sm3(msg)
	}
	return nil
}
