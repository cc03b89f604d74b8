// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"fmt"

	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hashing"
)

// KeyType is the algorithm label carried in serialized public keys.
type KeyType byte

// Key type labels.
const (
	ECDSA KeyType = 0x12
	SM2   KeyType = 0x13
	EdDSA KeyType = 0x14
)

// String returns the label name of t.
func (t KeyType) String() string {
	switch t {
	case ECDSA:
		return "ECDSA"
	case SM2:
		return "SM2"
	case EdDSA:
		return "EdDSA"
	}
	return fmt.Sprintf("KeyType(%#x)", byte(t))
}

// Curve is the elliptic curve label carried in serialized public keys.
type Curve byte

// Curve labels.
const (
	P224      Curve = 1
	P256      Curve = 2
	P384      Curve = 3
	P521      Curve = 4
	SM2P256V1 Curve = 20
	ED25519   Curve = 25
)

var curveNames = map[Curve]string{
	P224:      "P-224",
	P256:      "P-256",
	P384:      "P-384",
	P521:      "P-521",
	SM2P256V1: "sm2p256v1",
	ED25519:   "ed25519",
}

// String returns the conventional curve name.
func (c Curve) String() string {
	if s, ok := curveNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Curve(%d)", byte(c))
}

// Scheme identifies a signature scheme: a digest paired with a signing
// algorithm.  Its value is the byte written in front of every serialized
// signature.
type Scheme byte

// Signature schemes.
const (
	SHA224withECDSA Scheme = iota
	SHA256withECDSA
	SHA384withECDSA
	SHA512withECDSA
	SHA3_224withECDSA
	SHA3_256withECDSA
	SHA3_384withECDSA
	SHA3_512withECDSA
	RIPEMD160withECDSA
	SM3withSM2
	SHA512withEdDSA
)

type schemeInfo struct {
	name    string
	keyType KeyType
	digest  hashing.Algorithm
}

var schemes = []schemeInfo{
	SHA224withECDSA:    {"SHA224withECDSA", ECDSA, hashing.SHA224},
	SHA256withECDSA:    {"SHA256withECDSA", ECDSA, hashing.SHA256},
	SHA384withECDSA:    {"SHA384withECDSA", ECDSA, hashing.SHA384},
	SHA512withECDSA:    {"SHA512withECDSA", ECDSA, hashing.SHA512},
	SHA3_224withECDSA:  {"SHA3-224withECDSA", ECDSA, hashing.SHA3_224},
	SHA3_256withECDSA:  {"SHA3-256withECDSA", ECDSA, hashing.SHA3_256},
	SHA3_384withECDSA:  {"SHA3-384withECDSA", ECDSA, hashing.SHA3_384},
	SHA3_512withECDSA:  {"SHA3-512withECDSA", ECDSA, hashing.SHA3_512},
	RIPEMD160withECDSA: {"RIPEMD160withECDSA", ECDSA, hashing.RIPEMD160},
	SM3withSM2:         {"SM3withSM2", SM2, hashing.SM3},
	SHA512withEdDSA:    {"SHA512withEdDSA", EdDSA, hashing.SHA512},
}

// Valid reports whether s is a known scheme.
func (s Scheme) Valid() bool {
	return int(s) < len(schemes)
}

// String returns the scheme name, e.g. "SHA256withECDSA".
func (s Scheme) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Scheme(%d)", byte(s))
	}
	return schemes[s].name
}

// KeyType returns the key algorithm s signs with.
func (s Scheme) KeyType() KeyType {
	if !s.Valid() {
		return 0
	}
	return schemes[s].keyType
}

// Digest returns the hash applied to the message before signing.  It must
// only be called on a valid scheme.
func (s Scheme) Digest() hashing.Algorithm {
	return schemes[s].digest
}

// SchemeFromName looks up a scheme by its String form.
func SchemeFromName(name string) (Scheme, error) {
	for i, info := range schemes {
		if info.name == name {
			return Scheme(i), nil
		}
	}
	return 0, coreerr.Newf(coreerr.ErrUnsupportedScheme,
		"unknown signature scheme %q", name)
}

// MarshalText encodes the scheme by name.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, coreerr.Newf(coreerr.ErrUnsupportedScheme,
			"unknown signature scheme %d", byte(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a scheme name.
func (s *Scheme) UnmarshalText(text []byte) error {
	v, err := SchemeFromName(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
