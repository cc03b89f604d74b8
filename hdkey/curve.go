// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"crypto/elliptic"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ontio/ontcore/coreerr"
)

// Curve is an elliptic curve extended keys can be derived over, together
// with the HMAC key that turns a seed into its master key.
type Curve struct {
	name    string
	seedKey []byte
	ec      elliptic.Curve

	// decompress parses a 33-byte compressed point.  The generic
	// elliptic decompression assumes a = -3 and cannot serve secp256k1.
	decompress func([]byte) (x, y *big.Int, err error)
}

var (
	// NIST256P1 is secp256r1 (P-256), the curve of Ontology HD wallets.
	NIST256P1 = &Curve{
		name:       "nist256p1",
		seedKey:    []byte("Nist256p1 seed"),
		ec:         elliptic.P256(),
		decompress: decompressP256,
	}

	// Secp256k1 is the curve of Bitcoin BIP32 wallets.
	Secp256k1 = &Curve{
		name:       "secp256k1",
		seedKey:    []byte("Bitcoin seed"),
		ec:         btcec.S256(),
		decompress: decompressSecp256k1,
	}
)

// Name returns the curve name.
func (c *Curve) Name() string { return c.name }

// SeedKey returns the default HMAC key used to derive master keys.
func (c *Curve) SeedKey() []byte {
	return append([]byte(nil), c.seedKey...)
}

func (c *Curve) order() *big.Int { return c.ec.Params().N }

// pubKey returns the compressed public point of scalar k.
func (c *Curve) pubKey(k []byte) []byte {
	x, y := c.ec.ScalarBaseMult(k)
	return elliptic.MarshalCompressed(c.ec, x, y)
}

func decompressP256(b []byte) (*big.Int, *big.Int, error) {
	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), b)
	if x == nil {
		return nil, nil, coreerr.Newf(coreerr.ErrFormat,
			"invalid nist256p1 public key")
	}
	return x, y, nil
}

func decompressSecp256k1(b []byte) (*big.Int, *big.Int, error) {
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return nil, nil, coreerr.New(coreerr.ErrFormat,
			"invalid secp256k1 public key", err)
	}
	return pub.X(), pub.Y(), nil
}
