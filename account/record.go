// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"io"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/keypair"
)

// Names of the encryption schemes as written in the enc-alg field.
const (
	EncAlgECB = "aes-256-ecb"
	EncAlgCTR = "aes-256-ctr"
	EncAlgGCM = "aes-256-gcm"
)

// KeyParameters describe the curve of a stored key.
type KeyParameters struct {
	Curve string `json:"curve"`
}

// EncryptedKeyRecord is the at-rest form of an account: the encrypted
// private key together with everything needed to decrypt it and check
// the result.  It marshals to the JSON layout of Ontology wallet
// accounts; Salt is Base64 encoded.
type EncryptedKeyRecord struct {
	Address    common.Address `json:"address"`
	Algorithm  string         `json:"algorithm"`
	Parameters KeyParameters  `json:"parameters"`
	Key        string         `json:"key"`
	EncAlg     string         `json:"enc-alg"`
	Salt       []byte         `json:"salt"`
	Scheme     keypair.Scheme `json:"signatureScheme"`
	Scrypt     ScryptParams   `json:"scrypt"`
}

// Export encrypts the account private key into a record.  An empty encAlg
// selects GCM, which draws a fresh 16-byte salt from the backend.
func (a *Account) Export(password []byte, encAlg string,
	params ScryptParams) (*EncryptedKeyRecord, error) {

	rec := &EncryptedKeyRecord{
		Address:    a.address,
		Algorithm:  a.pub.Type().String(),
		Parameters: KeyParameters{Curve: a.pub.Curve().String()},
		EncAlg:     encAlg,
		Scheme:     a.scheme,
		Scrypt:     params,
	}

	var err error
	switch encAlg {
	case "", EncAlgGCM:
		rec.EncAlg = EncAlgGCM
		rec.Salt = make([]byte, GCMSaltLen)
		if _, err := io.ReadFull(a.backend.Rand(), rec.Salt); err != nil {
			return nil, coreerr.New(coreerr.ErrParam,
				"cannot read salt", err)
		}
		rec.Key, err = a.EncryptGCM(password, rec.Salt, params)

	case EncAlgCTR:
		rec.Salt = AddressHash(a.address)
		rec.Key, err = a.EncryptCTR(password, rec.Salt, params)

	case EncAlgECB:
		rec.Salt = AddressHash(a.address)
		rec.Key, err = a.EncryptECB(password, params)

	default:
		return nil, coreerr.Newf(coreerr.ErrParam,
			"unknown encryption algorithm %q", encAlg)
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Import decrypts a record into an account.  A wrong password, or a
// record whose key does not belong to its address, fails with
// coreerr.ErrWrongPasswordOrAddress.
func Import(b *keypair.Backend, rec *EncryptedKeyRecord,
	password []byte) (*Account, error) {

	if rec.Algorithm != "" && rec.Algorithm != rec.Scheme.KeyType().String() {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"algorithm %q does not match scheme %v", rec.Algorithm,
			rec.Scheme)
	}

	var (
		acct *Account
		err  error
	)
	switch rec.EncAlg {
	case EncAlgGCM:
		acct, err = DecryptGCM(b, rec.Key, password, rec.Salt,
			rec.Address, rec.Scrypt, rec.Scheme)

	case EncAlgCTR:
		acct, err = DecryptCTR(b, rec.Key, password, rec.Salt,
			rec.Address, rec.Scrypt, rec.Scheme)

	case EncAlgECB:
		acct, err = DecryptECB(b, rec.Key, password, rec.Scrypt,
			rec.Scheme)
		if err == nil && acct.address != rec.Address {
			acct.Wipe()
			err = coreerr.Newf(coreerr.ErrWrongPasswordOrAddress,
				"decrypted key belongs to %v", acct.address.ToBase58())
		}

	default:
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"unknown encryption algorithm %q", rec.EncAlg)
	}
	if err != nil {
		log.Debugf("Import of %v failed: %v", rec.Address.ToBase58(), err)
		return nil, err
	}
	return acct, nil
}
