// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"io"
	"math/big"

	"github.com/tjfoc/gmsm/sm2"
)

// algorithm is the implementation behind one (key type, curve) pair.  It
// is chosen when a key is created or parsed and travels with the key, so
// signing and verification never branch on labels again.
type algorithm interface {
	keyType() KeyType
	curveLabel() Curve
	curve() elliptic.Curve

	// generate returns a fresh private scalar.
	generate(rand io.Reader) (*big.Int, error)

	sign(rand io.Reader, k *PrivateKey, scheme Scheme, msg,
		userID []byte) (r, s *big.Int, err error)

	verify(k *PublicKey, scheme Scheme, msg, userID []byte,
		r, s *big.Int) bool
}

// ecdsaAlgorithm signs the scheme digest of the message with ECDSA.  The
// standard library produces DER which is parsed strictly.
type ecdsaAlgorithm struct {
	label Curve
	ec    elliptic.Curve
}

func (a *ecdsaAlgorithm) keyType() KeyType      { return ECDSA }
func (a *ecdsaAlgorithm) curveLabel() Curve     { return a.label }
func (a *ecdsaAlgorithm) curve() elliptic.Curve { return a.ec }

func (a *ecdsaAlgorithm) generate(rand io.Reader) (*big.Int, error) {
	k, err := ecdsa.GenerateKey(a.ec, rand)
	if err != nil {
		return nil, err
	}
	return k.D, nil
}

func (a *ecdsaAlgorithm) sign(rand io.Reader, k *PrivateKey, scheme Scheme,
	msg, _ []byte) (*big.Int, *big.Int, error) {

	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: a.ec, X: k.X, Y: k.Y},
		D:         k.D,
	}
	der, err := ecdsa.SignASN1(rand, priv, scheme.Digest().Sum(msg))
	if err != nil {
		return nil, nil, err
	}
	return parseDER(der)
}

func (a *ecdsaAlgorithm) verify(k *PublicKey, scheme Scheme, msg, _ []byte,
	r, s *big.Int) bool {

	der, err := encodeDER(r, s)
	if err != nil {
		return false
	}
	pub := &ecdsa.PublicKey{Curve: a.ec, X: k.X, Y: k.Y}
	return ecdsa.VerifyASN1(pub, scheme.Digest().Sum(msg), der)
}

// sm2Algorithm implements SM2 over sm2p256v1.  The SM3 digest, including
// the user ID prefix, is computed inside gmsm.
type sm2Algorithm struct {
	ec elliptic.Curve
}

func (a *sm2Algorithm) keyType() KeyType      { return SM2 }
func (a *sm2Algorithm) curveLabel() Curve     { return SM2P256V1 }
func (a *sm2Algorithm) curve() elliptic.Curve { return a.ec }

func (a *sm2Algorithm) generate(rand io.Reader) (*big.Int, error) {
	k, err := sm2.GenerateKey(rand)
	if err != nil {
		return nil, err
	}
	return k.D, nil
}

func (a *sm2Algorithm) sign(rand io.Reader, k *PrivateKey, _ Scheme,
	msg, userID []byte) (*big.Int, *big.Int, error) {

	priv := &sm2.PrivateKey{
		PublicKey: sm2.PublicKey{Curve: a.ec, X: k.X, Y: k.Y},
		D:         k.D,
	}
	return sm2.Sm2Sign(priv, msg, userID, rand)
}

func (a *sm2Algorithm) verify(k *PublicKey, _ Scheme, msg, userID []byte,
	r, s *big.Int) bool {

	pub := &sm2.PublicKey{Curve: a.ec, X: k.X, Y: k.Y}
	return sm2.Sm2Verify(pub, msg, userID, r, s)
}
