// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/subtle"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/internal/zero"
	"github.com/ontio/ontcore/keypair"
)

const (
	// wifVersion prefixes the private key in WIF.
	wifVersion = 0x80

	// wifCompressed marks the key as belonging to a compressed public
	// key.  Ontology WIF always carries it.
	wifCompressed = 0x01

	wifLen = 1 + keypair.PrivateKeySize + 1 + codec.ChecksumSize
)

// ExportWIF returns the private key in Wallet Import Format.
func (a *Account) ExportWIF() (string, error) {
	k, err := a.privateKey()
	if err != nil {
		return "", err
	}

	data := make([]byte, wifLen-codec.ChecksumSize)
	data[0] = wifVersion
	k.D.FillBytes(data[1 : 1+keypair.PrivateKeySize])
	data[len(data)-1] = wifCompressed
	defer zero.Bytes(data)

	return codec.Base58CheckEncode(data), nil
}

// PrivateKeyFromWIF decodes a WIF string into the 32-byte private scalar.
// The caller should wipe the result when done.
func PrivateKeyFromWIF(wif string) ([]byte, error) {
	data, err := codec.Base58Decode(wif)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(data)

	if len(data) != wifLen || data[0] != wifVersion ||
		data[1+keypair.PrivateKeySize] != wifCompressed {

		return nil, coreerr.Newf(coreerr.ErrFormat,
			"malformed WIF private key")
	}
	body := data[:len(data)-codec.ChecksumSize]
	sum := codec.Checksum(body)
	if subtle.ConstantTimeCompare(sum[:], data[len(body):]) != 1 {
		return nil, coreerr.Newf(coreerr.ErrChecksumMismatch,
			"WIF checksum mismatch")
	}

	key := make([]byte, keypair.PrivateKeySize)
	copy(key, data[1:])
	return key, nil
}

// FromWIF rebuilds an account from a WIF private key.
func FromWIF(b *keypair.Backend, wif string, s keypair.Scheme) (*Account,
	error) {

	key, err := PrivateKeyFromWIF(wif)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(key)

	return FromPrivateKey(b, key, s)
}
