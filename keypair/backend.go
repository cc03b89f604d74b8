// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/elliptic"
	crand "crypto/rand"
	"io"
	"math/big"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/ontio/ontcore/coreerr"
	"github.com/tjfoc/gmsm/sm2"
)

// Backend is the crypto context used to create, parse and sign with keys.
// It owns the randomness source and the table of supported curves.  A
// Backend holds no mutable state and may be shared between goroutines as
// long as its reader may.
type Backend struct {
	rand io.Reader
	algs []algorithm
}

// NewBackend returns a Backend drawing randomness from rand, or from
// crypto/rand when rand is nil.  It supports ECDSA over P-256 and SM2 over
// sm2p256v1.
func NewBackend(rand io.Reader) *Backend {
	if rand == nil {
		rand = crand.Reader
	}
	return &Backend{
		rand: rand,
		algs: []algorithm{
			&ecdsaAlgorithm{label: P256, ec: elliptic.P256()},
			&sm2Algorithm{ec: sm2.P256Sm2()},
		},
	}
}

// Rand returns the randomness source of the backend.
func (b *Backend) Rand() io.Reader {
	return b.rand
}

// EllipticCurve returns the curve implementation for a label.
func (b *Backend) EllipticCurve(c Curve) (elliptic.Curve, error) {
	for _, alg := range b.algs {
		if alg.curveLabel() == c {
			return alg.curve(), nil
		}
	}
	return nil, coreerr.Newf(coreerr.ErrUnsupportedCurve,
		"unsupported curve %v", c)
}

func (b *Backend) lookup(t KeyType, c Curve) (algorithm, error) {
	known := false
	for _, alg := range b.algs {
		if alg.keyType() != t {
			continue
		}
		known = true
		if alg.curveLabel() == c {
			return alg, nil
		}
	}
	if !known {
		return nil, coreerr.Newf(coreerr.ErrUnsupportedScheme,
			"unsupported key type %v", t)
	}
	return nil, coreerr.Newf(coreerr.ErrUnsupportedCurve,
		"unsupported curve %v for %v keys", c, t)
}

// forScheme returns the algorithm of the default curve of the scheme's
// key type.
func (b *Backend) forScheme(s Scheme) (algorithm, error) {
	if !s.Valid() {
		return nil, coreerr.Newf(coreerr.ErrUnsupportedScheme,
			"unknown signature scheme %d", byte(s))
	}
	switch s.KeyType() {
	case ECDSA:
		return b.lookup(ECDSA, P256)
	case SM2:
		return b.lookup(SM2, SM2P256V1)
	}
	return nil, coreerr.Newf(coreerr.ErrUnsupportedScheme,
		"signature scheme %v is not supported", s)
}

// GenerateKey creates a random key usable with scheme s.
func (b *Backend) GenerateKey(s Scheme) (*PrivateKey, error) {
	alg, err := b.forScheme(s)
	if err != nil {
		return nil, err
	}
	d, err := alg.generate(b.rand)
	if err != nil {
		return nil, coreerr.New(coreerr.ErrParam,
			"failed to generate private key", err)
	}
	return newPrivateKey(alg, d), nil
}

// NewPrivateKey rebuilds a key usable with scheme s from its 32-byte
// big-endian scalar.  The scalar must lie in [1, n-1].  raw is not
// retained.
func (b *Backend) NewPrivateKey(raw []byte, s Scheme) (*PrivateKey, error) {
	alg, err := b.forScheme(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != PrivateKeySize {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"private key must be %d bytes, got %d", PrivateKeySize,
			len(raw))
	}
	d := new(big.Int).SetBytes(raw)
	if d.Sign() == 0 || d.Cmp(alg.curve().Params().N) >= 0 {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"private key is out of range for %v", alg.curveLabel())
	}
	return newPrivateKey(alg, d), nil
}

func newPrivateKey(alg algorithm, d *big.Int) *PrivateKey {
	x, y := alg.curve().ScalarBaseMult(d.FillBytes(make([]byte, PrivateKeySize)))
	return &PrivateKey{
		PublicKey: PublicKey{X: x, Y: y, alg: alg},
		D:         d,
	}
}

// ParsePublicKey decodes a serialized public key.  A 33-byte input is an
// ECDSA P-256 compressed point; longer input starts with key type and
// curve labels followed by the compressed point.
func (b *Backend) ParsePublicKey(data []byte) (*PublicKey, error) {
	var (
		alg   algorithm
		point []byte
		err   error
	)
	switch len(data) {
	case CompressedPubKeySize:
		alg, err = b.lookup(ECDSA, P256)
		point = data

	case labeledPubKeySize:
		alg, err = b.lookup(KeyType(data[0]), Curve(data[1]))
		point = data[2:]

	default:
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"unexpected public key length %d", len(data))
	}
	if err != nil {
		return nil, err
	}

	x, y := elliptic.UnmarshalCompressed(alg.curve(), point)
	if x == nil {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"invalid compressed point for %v", alg.curveLabel())
	}
	return &PublicKey{X: x, Y: y, alg: alg}, nil
}

// SignOption customizes Sign.
type SignOption func(*signOptions)

type signOptions struct {
	userID fn.Option[[]byte]
}

// WithUserID sets the SM2 user ID.  It is ignored by other schemes.
func WithUserID(id []byte) SignOption {
	return func(o *signOptions) {
		o.userID = fn.Some(id)
	}
}

// Sign signs msg with k under scheme s.  ECDSA schemes hash msg with the
// scheme digest; SM2 hashes it with SM3 under the user ID, which defaults
// to DefaultSM2UserID.
func (b *Backend) Sign(k *PrivateKey, s Scheme, msg []byte,
	opts ...SignOption) (*Signature, error) {

	if !k.Supports(s) {
		return nil, coreerr.Newf(coreerr.ErrUnsupportedScheme,
			"scheme %v cannot be used with %v keys", s, k.Type())
	}

	var o signOptions
	for _, opt := range opts {
		opt(&o)
	}

	sig := &Signature{Scheme: s}
	if s == SM3withSM2 {
		sig.UserID = o.userID.UnwrapOr([]byte(DefaultSM2UserID))
	}

	r, ss, err := k.alg.sign(b.rand, k, s, msg, sig.UserID)
	if err != nil {
		return nil, coreerr.New(coreerr.ErrParam, "signing failed", err)
	}
	sig.Value = plainFromRS(r, ss)
	return sig, nil
}

// Verify checks sig over msg against k.  It returns nil for a valid
// signature, coreerr.ErrInvalidSignature for one that does not verify and
// coreerr.ErrUnsupportedScheme or coreerr.ErrMalformedSignature when sig
// cannot be checked with k at all.
func Verify(k *PublicKey, msg []byte, sig *Signature) error {
	if !k.Supports(sig.Scheme) {
		return coreerr.Newf(coreerr.ErrUnsupportedScheme,
			"scheme %v cannot be used with %v keys", sig.Scheme, k.Type())
	}
	if len(sig.Value) == 0 || len(sig.Value)%2 != 0 {
		return coreerr.Newf(coreerr.ErrMalformedSignature,
			"plain signature has odd or zero length %d", len(sig.Value))
	}

	userID := sig.UserID
	if sig.Scheme == SM3withSM2 && len(userID) == 0 {
		userID = []byte(DefaultSM2UserID)
	}
	if !k.alg.verify(k, sig.Scheme, msg, userID, sig.R(), sig.S()) {
		return coreerr.Newf(coreerr.ErrInvalidSignature,
			"signature does not verify")
	}
	return nil
}
