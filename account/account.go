// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account holds the key material of a single signer: a scheme, a
// public key, its address and, unless the account is verify-only, the
// private key.  It also implements WIF and the three password-based
// private key encryptions used by Ontology wallets.
package account

import (
	"bytes"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/keypair"
)

// Account is a signer identity.  The address is computed once from the
// serialized public key when the account is created, and nothing but Wipe
// changes an account afterwards.
type Account struct {
	backend *keypair.Backend
	scheme  keypair.Scheme
	pub     *keypair.PublicKey
	priv    fn.Option[*keypair.PrivateKey]
	address common.Address
}

func newAccount(b *keypair.Backend, s keypair.Scheme,
	pub *keypair.PublicKey, priv fn.Option[*keypair.PrivateKey]) *Account {

	return &Account{
		backend: b,
		scheme:  s,
		pub:     pub,
		priv:    priv,
		address: common.AddressFromPubKey(pub.Serialize()),
	}
}

// Generate creates an account with a fresh random key for scheme s.
func Generate(b *keypair.Backend, s keypair.Scheme) (*Account, error) {
	if err := checkScheme(s); err != nil {
		return nil, err
	}
	k, err := b.GenerateKey(s)
	if err != nil {
		return nil, err
	}
	log.Debugf("Generated %v account", s)
	return newAccount(b, s, k.Public(), fn.Some(k)), nil
}

// FromPrivateKey rebuilds an account from a 32-byte big-endian private
// scalar.  The caller keeps ownership of raw.
func FromPrivateKey(b *keypair.Backend, raw []byte,
	s keypair.Scheme) (*Account, error) {

	if err := checkScheme(s); err != nil {
		return nil, err
	}
	k, err := b.NewPrivateKey(raw, s)
	if err != nil {
		return nil, err
	}
	return newAccount(b, s, k.Public(), fn.Some(k)), nil
}

// FromPublicKey creates a verify-only account from a serialized public
// key.  The scheme is the default one of the key type: SHA256withECDSA
// for ECDSA keys and SM3withSM2 for SM2 keys.
func FromPublicKey(b *keypair.Backend, data []byte) (*Account, error) {
	pub, err := b.ParsePublicKey(data)
	if err != nil {
		return nil, err
	}
	s := keypair.SHA256withECDSA
	if pub.Type() == keypair.SM2 {
		s = keypair.SM3withSM2
	}
	return newAccount(b, s, pub, fn.None[*keypair.PrivateKey]()), nil
}

// checkScheme rejects schemes no account can be created for.
func checkScheme(s keypair.Scheme) error {
	switch s.KeyType() {
	case keypair.ECDSA, keypair.SM2:
		return nil
	}
	return coreerr.Newf(coreerr.ErrParam,
		"unsupported signature scheme %v", s)
}

// Scheme returns the signature scheme fixed at creation.
func (a *Account) Scheme() keypair.Scheme {
	return a.scheme
}

// Address returns the address of the single-key program of the account.
func (a *Account) Address() common.Address {
	return a.address
}

// PublicKey returns the public key.
func (a *Account) PublicKey() *keypair.PublicKey {
	return a.pub
}

// PublicKeyBytes returns the serialized public key.
func (a *Account) PublicKeyBytes() []byte {
	return a.pub.Serialize()
}

// HasPrivateKey reports whether the account can sign.
func (a *Account) HasPrivateKey() bool {
	return a.priv.IsSome()
}

func (a *Account) privateKey() (*keypair.PrivateKey, error) {
	return a.priv.UnwrapOrErr(coreerr.Newf(coreerr.ErrNoPrivateKey,
		"account %v is verify-only", a.address.ToBase58()))
}

// PrivateKeyBytes returns a copy of the 32-byte private scalar.  The
// caller should wipe it with zero.Bytes when done.
func (a *Account) PrivateKeyBytes() ([]byte, error) {
	k, err := a.privateKey()
	if err != nil {
		return nil, err
	}
	return k.Serialize(), nil
}

// Sign signs msg with the account scheme.
func (a *Account) Sign(msg []byte, opts ...keypair.SignOption) (
	*keypair.Signature, error) {

	if len(msg) == 0 {
		return nil, coreerr.Newf(coreerr.ErrParam, "empty message")
	}
	k, err := a.privateKey()
	if err != nil {
		return nil, err
	}
	return a.backend.Sign(k, a.scheme, msg, opts...)
}

// SignBytes signs msg and returns the serialized signature.
func (a *Account) SignBytes(msg []byte, opts ...keypair.SignOption) (
	[]byte, error) {

	sig, err := a.Sign(msg, opts...)
	if err != nil {
		return nil, err
	}
	return sig.Serialize(), nil
}

// Verify checks sig over msg against the account public key.
func (a *Account) Verify(msg []byte, sig *keypair.Signature) error {
	if len(msg) == 0 {
		return coreerr.Newf(coreerr.ErrParam, "empty message")
	}
	return keypair.Verify(a.pub, msg, sig)
}

// VerifyBytes checks a serialized signature over msg.
func (a *Account) VerifyBytes(msg, sig []byte) error {
	s, err := keypair.DeserializeSignature(sig)
	if err != nil {
		return err
	}
	return a.Verify(msg, s)
}

// Compare orders accounts by their serialized public keys.
func (a *Account) Compare(o *Account) int {
	return bytes.Compare(a.PublicKeyBytes(), o.PublicKeyBytes())
}

// Wipe clears the private key.  Signing fails afterwards.
func (a *Account) Wipe() {
	a.priv.WhenSome(func(k *keypair.PrivateKey) {
		k.Zero()
	})
	a.priv = fn.None[*keypair.PrivateKey]()
}
