// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/elliptic"
	"math/big"
	"sort"

	"github.com/ontio/ontcore/internal/zero"
)

const (
	// PrivateKeySize is the length of a serialized private scalar.
	PrivateKeySize = 32

	// CompressedPubKeySize is the length of a compressed curve point.
	CompressedPubKeySize = 33

	// labeledPubKeySize is a compressed point preceded by key type and
	// curve labels.
	labeledPubKeySize = 2 + CompressedPubKeySize
)

// PublicKey is a point on the curve of its algorithm.
type PublicKey struct {
	X, Y *big.Int

	alg algorithm
}

// PrivateKey is a scalar together with its public point.
type PrivateKey struct {
	PublicKey
	D *big.Int
}

// Type returns the key algorithm label.
func (k *PublicKey) Type() KeyType {
	return k.alg.keyType()
}

// Curve returns the curve label.
func (k *PublicKey) Curve() Curve {
	return k.alg.curveLabel()
}

// Supports reports whether the key can sign or verify with scheme s.
func (k *PublicKey) Supports(s Scheme) bool {
	return s.Valid() && s.KeyType() == k.alg.keyType()
}

// Compressed returns the 33-byte compressed encoding of the point.
func (k *PublicKey) Compressed() []byte {
	return elliptic.MarshalCompressed(k.alg.curve(), k.X, k.Y)
}

// Serialize returns the protocol encoding of the key.  ECDSA keys on
// P-256 are the bare compressed point; every other key is prefixed by
// its key type and curve labels.
func (k *PublicKey) Serialize() []byte {
	point := k.Compressed()
	if k.Type() == ECDSA && k.Curve() == P256 {
		return point
	}
	out := make([]byte, 0, labeledPubKeySize)
	out = append(out, byte(k.Type()), byte(k.Curve()))
	return append(out, point...)
}

// Equal reports whether k and o are the same point on the same curve.
func (k *PublicKey) Equal(o *PublicKey) bool {
	return k.Type() == o.Type() && k.Curve() == o.Curve() &&
		k.X.Cmp(o.X) == 0 && k.Y.Cmp(o.Y) == 0
}

// Public returns the public half of k.
func (k *PrivateKey) Public() *PublicKey {
	return &k.PublicKey
}

// Serialize returns the 32-byte big-endian scalar.  The caller owns the
// returned slice and should wipe it after use.
func (k *PrivateKey) Serialize() []byte {
	return k.D.FillBytes(make([]byte, PrivateKeySize))
}

// Zero clears the private scalar.  The key is unusable afterwards.
func (k *PrivateKey) Zero() {
	zero.BigInt(k.D)
}

// SortPublicKeys returns serialized public keys in canonical order: by
// key type label, then by X, then by Y.  The input is not modified.
// Multi-signature programs use the order they are given; callers that
// want an order independent of how keys were collected sort them here
// first.
func (b *Backend) SortPublicKeys(pubKeys [][]byte) ([][]byte, error) {
	keys := make([]*PublicKey, len(pubKeys))
	for i, raw := range pubKeys {
		k, err := b.ParsePublicKey(raw)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, o := keys[idx[i]], keys[idx[j]]
		if a.Type() != o.Type() {
			return a.Type() < o.Type()
		}
		if c := a.X.Cmp(o.X); c != 0 {
			return c < 0
		}
		return a.Y.Cmp(o.Y) < 0
	})

	sorted := make([][]byte, len(idx))
	for i, j := range idx {
		sorted[i] = pubKeys[j]
	}
	return sorted, nil
}
