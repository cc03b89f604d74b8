// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hdkey"
	"github.com/ontio/ontcore/internal/zero"
	"github.com/ontio/ontcore/keypair"
	"github.com/ontio/ontcore/netparams"
)

// FromExtendedKey turns a private extended key over NIST256P1 into a
// SHA256withECDSA account.
func FromExtendedKey(b *keypair.Backend, key *hdkey.ExtendedKey) (*Account,
	error) {

	if key.Curve() != hdkey.NIST256P1 {
		return nil, coreerr.Newf(coreerr.ErrUnsupportedCurve,
			"accounts cannot be derived over %s", key.Curve().Name())
	}
	raw, err := key.ECPrivKey()
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(raw)

	return FromPrivateKey(b, raw, keypair.SHA256withECDSA)
}

// FromMnemonic derives the account at path from a mnemonic sentence.  An
// empty path selects hdkey.DefaultPath.
func FromMnemonic(b *keypair.Backend, mnemonic, passphrase, path string,
	net *netparams.Params) (*Account, error) {

	if path == "" {
		path = hdkey.DefaultPath
	}
	indices, err := hdkey.ParsePath(path)
	if err != nil {
		return nil, err
	}

	seed := hdkey.SeedFromMnemonic(mnemonic, passphrase)
	defer zero.Bytes(seed)

	master, err := hdkey.NewMaster(seed, nil, hdkey.NIST256P1, net)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	key, err := hdkey.DerivePath(master, indices)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	log.Debugf("Derived account at %s", path)
	return FromExtendedKey(b, key)
}
