// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hdkey implements hierarchical deterministic extended keys in the
// manner of BIP0032 over secp256r1, the curve of Ontology wallets, and
// secp256k1.
package hdkey

import (
	"bytes"
	"crypto/elliptic"
	"encoding/binary"
	"math/big"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hashing"
	"github.com/ontio/ontcore/internal/zero"
	"github.com/ontio/ontcore/netparams"
)

const (
	// RecommendedSeedLen is the recommended length in bytes for a seed
	// to a master node.
	RecommendedSeedLen = 32 // 256 bits

	// HardenedKeyStart is the index at which a hardened key starts.  Each
	// extended key has 2^31 normal child keys and 2^31 hardened child
	// keys.  Thus the range for normal child keys is [0, 2^31 - 1] and
	// the range for hardened child keys is [2^31, 2^32 - 1].
	HardenedKeyStart = 0x80000000 // 2^31

	// MinSeedBytes is the minimum number of bytes allowed for a seed to
	// a master node.
	MinSeedBytes = 16 // 128 bits

	// MaxSeedBytes is the maximum number of bytes allowed for a seed to
	// a master node.
	MaxSeedBytes = 64 // 512 bits

	// serializedKeyLen is the length of a serialized public or private
	// extended key.
	serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33 // 78 bytes

	maxUint8 = 1<<8 - 1
)

// ExtendedKey houses all the information needed to support a hierarchical
// deterministic extended key.  Keys are immutable: deriving a child or
// neutering returns a new key.
type ExtendedKey struct {
	curve     *Curve
	net       *netparams.Params
	key       []byte // 32-byte scalar or 33-byte compressed point
	pubKey    []byte
	chainCode []byte
	parentFP  []byte
	depth     uint8
	childNum  uint32
	isPrivate bool
}

func newExtendedKey(curve *Curve, net *netparams.Params, key, chainCode,
	parentFP []byte, depth uint8, childNum uint32,
	isPrivate bool) *ExtendedKey {

	k := &ExtendedKey{
		curve:     curve,
		net:       net,
		key:       key,
		chainCode: chainCode,
		parentFP:  parentFP,
		depth:     depth,
		childNum:  childNum,
		isPrivate: isPrivate,
	}
	if isPrivate {
		k.pubKey = curve.pubKey(key)
	} else {
		k.pubKey = key
	}
	return k
}

// NewMaster creates a new master node for use in creating a hierarchical
// deterministic key chain.  The seed must be between 128 and 512 bits.
// tag keys the HMAC that splits the seed into master key and chain code;
// a nil tag selects the curve's default.
func NewMaster(seed, tag []byte, curve *Curve,
	net *netparams.Params) (*ExtendedKey, error) {

	if curve == nil || net == nil {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"curve and network are required")
	}
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, coreerr.Newf(coreerr.ErrInvalidSeed,
			"seed length must be between %d and %d bits",
			MinSeedBytes*8, MaxSeedBytes*8)
	}
	if tag == nil {
		tag = curve.seedKey
	}

	// First take the HMAC-SHA512 of the tag and seed.
	lr := hashing.HmacSha512(tag, seed)
	defer zero.Bytes(lr)

	// Split "I" into two 32-byte sequences Il and Ir where:
	//   Il = master secret key
	//   Ir = master chain code
	secretKey := append([]byte(nil), lr[:len(lr)/2]...)
	chainCode := append([]byte(nil), lr[len(lr)/2:]...)

	// Ensure the key is usable.
	keyNum := new(big.Int).SetBytes(secretKey)
	if keyNum.Cmp(curve.order()) >= 0 || keyNum.Sign() == 0 {
		zero.Bytes(secretKey)
		return nil, coreerr.Newf(coreerr.ErrInvalidSeed,
			"seed produces an invalid master key")
	}

	parentFP := []byte{0x00, 0x00, 0x00, 0x00}
	return newExtendedKey(curve, net, secretKey, chainCode, parentFP, 0,
		0, true), nil
}

// Child returns a derived child extended key at the given index.  When
// this extended key is a private extended key, a private extended key is
// returned; otherwise a public one.  Hardened indices (i >=
// HardenedKeyStart) can only be derived from a private extended key.
//
// When the derived scalar for index i is invalid, which has a probability
// lower than 1 in 2^127, derivation moves on to i+1.  The child index of
// the returned key reflects the index actually used.
func (k *ExtendedKey) Child(i uint32) (*ExtendedKey, error) {
	if k.depth == maxUint8 {
		return nil, coreerr.Newf(coreerr.ErrDerivation,
			"cannot derive a key with more than 255 indices in its path")
	}

	isChildHardened := i >= HardenedKeyStart
	if !k.isPrivate && isChildHardened {
		return nil, coreerr.Newf(coreerr.ErrDerivation,
			"cannot derive a hardened key from a public key")
	}

	for {
		child, err := k.deriveChild(i)
		if err == nil {
			return child, nil
		}
		if code, _ := coreerr.Code(err); code != coreerr.ErrDerivation {
			return nil, err
		}

		log.Debugf("Skipping invalid child %d of %x: %v", i,
			k.Fingerprint(), err)

		// Wrapping around or leaving the hardened range would change
		// the meaning of the index.
		next := i + 1
		if next == 0 || (next >= HardenedKeyStart) != isChildHardened {
			return nil, coreerr.Newf(coreerr.ErrDerivation,
				"no valid child at or after index %d", i)
		}
		i = next
	}
}

// deriveChild derives the child at exactly index i.  An unusable
// intermediate value is reported as coreerr.ErrDerivation.
func (k *ExtendedKey) deriveChild(i uint32) (*ExtendedKey, error) {
	// The data used to derive the child key depends on whether or not
	// the child is hardened per BIP0032.
	//
	// For hardened children:
	//   0x00 || ser256(parentKey) || ser32(i)
	//
	// For normal children:
	//   serP(parentPubKey) || ser32(i)
	keyLen := 33
	data := make([]byte, keyLen+4)
	defer zero.Bytes(data)
	if i >= HardenedKeyStart {
		copy(data[1:], k.key)
	} else {
		copy(data, k.pubKey)
	}
	binary.BigEndian.PutUint32(data[keyLen:], i)

	// Take the HMAC-SHA512 of the current key's chain code and the
	// derived data:
	//   I = HMAC-SHA512(Key = chainCode, Data = data)
	ilr := hashing.HmacSha512(k.chainCode, data)
	defer zero.Bytes(ilr)

	// Split "I" into two 32-byte sequences Il and Ir where:
	//   Il = intermediate key used to derive the child
	//   Ir = child chain code
	il := ilr[:len(ilr)/2]
	childChainCode := append([]byte(nil), ilr[len(ilr)/2:]...)

	ilNum := new(big.Int).SetBytes(il)
	defer zero.BigInt(ilNum)
	n := k.curve.order()
	if ilNum.Cmp(n) >= 0 {
		return nil, coreerr.Newf(coreerr.ErrDerivation,
			"intermediate key is not below the curve order")
	}

	var childKey []byte
	if k.isPrivate {
		// childKey = parse256(Il) + parentKey mod n
		keyNum := new(big.Int).SetBytes(k.key)
		keyNum.Add(keyNum, ilNum)
		keyNum.Mod(keyNum, n)
		if keyNum.Sign() == 0 {
			return nil, coreerr.Newf(coreerr.ErrDerivation,
				"derived private key is zero")
		}
		childKey = make([]byte, 32)
		keyNum.FillBytes(childKey)
		zero.BigInt(keyNum)
	} else {
		// childKey = serP(point(parse256(Il)) + parentKey)
		ec := k.curve.ec
		ilx, ily := ec.ScalarBaseMult(il)
		px, py, err := k.curve.decompress(k.key)
		if err != nil {
			return nil, err
		}
		cx, cy := ec.Add(ilx, ily, px, py)
		if cx.Sign() == 0 && cy.Sign() == 0 {
			return nil, coreerr.Newf(coreerr.ErrDerivation,
				"derived public key is the point at infinity")
		}
		childKey = elliptic.MarshalCompressed(ec, cx, cy)
	}

	parentFP := k.Fingerprint()
	return newExtendedKey(k.curve, k.net, childKey, childChainCode,
		parentFP, k.depth+1, i, k.isPrivate), nil
}

// Neuter returns a new extended public key from this extended private
// key.  The same extended key is returned unaltered if it is already an
// extended public key.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k
	}
	return newExtendedKey(k.curve, k.net, k.ECPubKey(), k.ChainCode(),
		append([]byte(nil), k.parentFP...), k.depth, k.childNum, false)
}

// IsPrivate returns whether or not the extended key is a private extended
// key.
func (k *ExtendedKey) IsPrivate() bool { return k.isPrivate }

// Depth returns the current derivation level with respect to the root.
// The root key has depth zero, and the field has a maximum of 255 due to
// how depth is serialized.
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ChildIndex returns the index at which the child extended key was
// derived.  Extended keys with depth 0 will always return 0.
func (k *ExtendedKey) ChildIndex() uint32 { return k.childNum }

// ParentFingerprint returns a fingerprint of the parent extended key from
// which this one was derived.
func (k *ExtendedKey) ParentFingerprint() uint32 {
	return binary.BigEndian.Uint32(k.parentFP)
}

// Fingerprint returns the first four bytes of the hash160 of this key's
// compressed public key, the value its children carry as parent
// fingerprint.
func (k *ExtendedKey) Fingerprint() []byte {
	return hashing.Hash160(k.pubKey)[:4]
}

// ChainCode returns a copy of the chain code.
func (k *ExtendedKey) ChainCode() []byte {
	return append([]byte(nil), k.chainCode...)
}

// Curve returns the curve the key lives on.
func (k *ExtendedKey) Curve() *Curve { return k.curve }

// Net returns the network the key is serialized for.
func (k *ExtendedKey) Net() *netparams.Params { return k.net }

// ECPubKey returns a copy of the 33-byte compressed public key.
func (k *ExtendedKey) ECPubKey() []byte {
	return append([]byte(nil), k.pubKey...)
}

// ECPrivKey returns a copy of the 32-byte private scalar.  It fails with
// coreerr.ErrNoPrivateKey for public extended keys.
func (k *ExtendedKey) ECPrivKey() ([]byte, error) {
	if !k.isPrivate {
		return nil, coreerr.Newf(coreerr.ErrNoPrivateKey,
			"extended key is public")
	}
	return append([]byte(nil), k.key...), nil
}

// version returns the serialization version bytes of the key.
func (k *ExtendedKey) version() [4]byte {
	if k.isPrivate {
		return k.net.HDPrivateKeyID
	}
	return k.net.HDPublicKeyID
}

// String returns the extended key as a human-readable base58-encoded
// string.
func (k *ExtendedKey) String() string {
	if len(k.key) == 0 {
		return "zeroed extended key"
	}

	var childNumBytes [4]byte
	binary.BigEndian.PutUint32(childNumBytes[:], k.childNum)
	version := k.version()

	// The serialized format is:
	//   version (4) || depth (1) || parent fingerprint (4)) ||
	//   child num (4) || chain code (32) || key data (33)
	serializedBytes := make([]byte, 0, serializedKeyLen)
	serializedBytes = append(serializedBytes, version[:]...)
	serializedBytes = append(serializedBytes, k.depth)
	serializedBytes = append(serializedBytes, k.parentFP...)
	serializedBytes = append(serializedBytes, childNumBytes[:]...)
	serializedBytes = append(serializedBytes, k.chainCode...)
	if k.isPrivate {
		serializedBytes = append(serializedBytes, 0x00)
	}
	serializedBytes = append(serializedBytes, k.key...)
	defer zero.Bytes(serializedBytes)

	return codec.Base58CheckEncode(serializedBytes)
}

// NewKeyFromString returns a new extended key instance from a
// base58-encoded extended key over curve.  A nil curve selects NIST256P1.
// The network is taken from the version bytes and must be registered in
// netparams.
func NewKeyFromString(key string, curve *Curve) (*ExtendedKey, error) {
	if curve == nil {
		curve = NIST256P1
	}

	decoded, err := codec.Base58CheckDecode(key)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(decoded)
	if len(decoded) != serializedKeyLen {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"extended key length %d, want %d", len(decoded),
			serializedKeyLen)
	}

	// Deserialize each of the payload fields.
	var version [4]byte
	copy(version[:], decoded[:4])
	depth := decoded[4:5][0]
	parentFP := append([]byte(nil), decoded[5:9]...)
	childNum := binary.BigEndian.Uint32(decoded[9:13])
	chainCode := append([]byte(nil), decoded[13:45]...)
	keyData := decoded[45:78]

	net, isPrivate, ok := netparams.ForHDKeyID(version)
	if !ok {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"unknown extended key version %x", version)
	}

	if depth == 0 && (childNum != 0 ||
		!bytes.Equal(parentFP, []byte{0, 0, 0, 0})) {

		return nil, coreerr.Newf(coreerr.ErrFormat,
			"master key with non-zero parent fingerprint or index")
	}

	if isPrivate {
		// Ensure the private key is padded and valid.
		if keyData[0] != 0x00 {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"private key data is not zero padded")
		}
		keyNum := new(big.Int).SetBytes(keyData[1:])
		defer zero.BigInt(keyNum)
		if keyNum.Cmp(curve.order()) >= 0 || keyNum.Sign() == 0 {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"private key is out of range")
		}
		return newExtendedKey(curve, net,
			append([]byte(nil), keyData[1:]...), chainCode, parentFP,
			depth, childNum, true), nil
	}

	// Ensure the public key parses correctly and is actually on the
	// curve.
	if keyData[0] != 0x02 && keyData[0] != 0x03 {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"public key is not compressed")
	}
	if _, _, err := curve.decompress(keyData); err != nil {
		return nil, err
	}
	return newExtendedKey(curve, net, append([]byte(nil), keyData...),
		chainCode, parentFP, depth, childNum, false), nil
}

// Zero manually clears all fields and bytes in the extended key.  This
// can be used to explicitly clear key material from memory for enhanced
// security against memory scraping.
func (k *ExtendedKey) Zero() {
	zero.Bytes(k.key, k.pubKey, k.chainCode, k.parentFP)
	k.key = nil
	k.depth = 0
	k.childNum = 0
	k.isPrivate = false
}
