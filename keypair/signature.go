// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"math/big"

	"github.com/ontio/ontcore/coreerr"
	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// DefaultSM2UserID is the user ID mixed into SM2 signatures when the
// signer does not supply one.
const DefaultSM2UserID = "1234567812345678"

// plainSigLen is the length of a plain P-256 signature.  A bare blob of
// this length is accepted as SHA256withECDSA when deserializing.
const plainSigLen = 64

// Signature is a scheme tag plus the fixed-width plain encoding r || s.
// UserID is only meaningful for SM3withSM2.
type Signature struct {
	Scheme Scheme
	Value  []byte
	UserID []byte
}

// R returns the r component of the signature.
func (sig *Signature) R() *big.Int {
	return new(big.Int).SetBytes(sig.Value[:len(sig.Value)/2])
}

// S returns the s component of the signature.
func (sig *Signature) S() *big.Int {
	return new(big.Int).SetBytes(sig.Value[len(sig.Value)/2:])
}

// Serialize returns the wire form: scheme byte, then for SM2 the user ID
// terminated by 0x00, then the plain signature.
func (sig *Signature) Serialize() []byte {
	buf := make([]byte, 0, 1+len(sig.UserID)+1+len(sig.Value))
	buf = append(buf, byte(sig.Scheme))
	if sig.Scheme == SM3withSM2 {
		buf = append(buf, sig.UserID...)
		buf = append(buf, 0)
	}
	return append(buf, sig.Value...)
}

// DeserializeSignature parses the wire form produced by Serialize.
func DeserializeSignature(data []byte) (*Signature, error) {
	if len(data) == plainSigLen {
		return &Signature{
			Scheme: SHA256withECDSA,
			Value:  append([]byte(nil), data...),
		}, nil
	}
	if len(data) < 2 {
		return nil, coreerr.Newf(coreerr.ErrMalformedSignature,
			"signature too short: %d bytes", len(data))
	}

	sig := &Signature{Scheme: Scheme(data[0])}
	if !sig.Scheme.Valid() {
		return nil, coreerr.Newf(coreerr.ErrUnsupportedScheme,
			"unknown signature scheme %d", data[0])
	}
	rest := data[1:]
	if sig.Scheme == SM3withSM2 {
		i := bytes.IndexByte(rest, 0)
		if i < 0 {
			return nil, coreerr.Newf(coreerr.ErrMalformedSignature,
				"unterminated SM2 user ID")
		}
		sig.UserID = append([]byte(nil), rest[:i]...)
		rest = rest[i+1:]
	}
	if len(rest) == 0 || len(rest)%2 != 0 {
		return nil, coreerr.Newf(coreerr.ErrMalformedSignature,
			"plain signature has odd or zero length %d", len(rest))
	}
	sig.Value = append([]byte(nil), rest...)
	return sig, nil
}

// plainFromRS encodes r and s right-aligned in two halves of equal width,
// the width being the longer of the two unsigned encodings.
func plainFromRS(r, s *big.Int) []byte {
	l := max(len(r.Bytes()), len(s.Bytes()))
	out := make([]byte, 2*l)
	r.FillBytes(out[:l])
	s.FillBytes(out[l:])
	return out
}

// DERToPlain converts a DER SEQUENCE{INTEGER r, INTEGER s} into the plain
// form.  Anything that is not the canonical DER encoding of two positive
// integers is rejected with coreerr.ErrMalformedSignature.
func DERToPlain(der []byte) ([]byte, error) {
	r, s, err := parseDER(der)
	if err != nil {
		return nil, err
	}
	return plainFromRS(r, s), nil
}

// PlainToDER is the inverse of DERToPlain.
func PlainToDER(plain []byte) ([]byte, error) {
	if len(plain) == 0 || len(plain)%2 != 0 {
		return nil, coreerr.Newf(coreerr.ErrMalformedSignature,
			"plain signature has odd or zero length %d", len(plain))
	}
	h := len(plain) / 2
	r := new(big.Int).SetBytes(plain[:h])
	s := new(big.Int).SetBytes(plain[h:])
	return encodeDER(r, s)
}

func encodeDER(r, s *big.Int) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1BigInt(r)
		b.AddASN1BigInt(s)
	})
	der, err := b.Bytes()
	if err != nil {
		return nil, coreerr.New(coreerr.ErrMalformedSignature,
			"cannot encode DER signature", err)
	}
	return der, nil
}

func parseDER(der []byte) (*big.Int, *big.Int, error) {
	var (
		r, s  = new(big.Int), new(big.Int)
		inner cryptobyte.String
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(r) || !inner.ReadASN1Integer(s) ||
		!inner.Empty() {

		return nil, nil, coreerr.Newf(coreerr.ErrMalformedSignature,
			"signature is not a DER sequence of two integers")
	}
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return nil, nil, coreerr.Newf(coreerr.ErrMalformedSignature,
			"signature integers must be positive")
	}

	canonical, err := encodeDER(r, s)
	if err != nil {
		return nil, nil, err
	}
	if !bytes.Equal(canonical, der) {
		return nil, nil, coreerr.Newf(coreerr.ErrMalformedSignature,
			"non-canonical DER signature")
	}
	return r, s, nil
}
