// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hashing"
	"github.com/ontio/ontcore/internal/zero"
	"github.com/ontio/ontcore/keypair"
	"golang.org/x/crypto/scrypt"
)

const (
	// derivedKeyLen is the scrypt output length every scheme splits into
	// a mask or IV half and an AES-256 key half.
	derivedKeyLen = 64

	// addressHashLen is the length of the address-derived salt.
	addressHashLen = 4

	// GCMSaltLen is the salt length required by the GCM scheme.
	GCMSaltLen = 16

	ecbBlobLen = 3 + addressHashLen + keypair.PrivateKeySize
)

// ecbPrefix starts every legacy ECB blob.
var ecbPrefix = []byte{0x01, 0x42, 0xe0}

// ScryptParams are the cost parameters of the password key derivation.
type ScryptParams struct {
	N     int `json:"n"`
	R     int `json:"r"`
	P     int `json:"p"`
	DKLen int `json:"dkLen"`
}

// DefaultScryptParams are the parameters written by Ontology wallets.
var DefaultScryptParams = ScryptParams{
	N:     16384,
	R:     8,
	P:     8,
	DKLen: derivedKeyLen,
}

// deriveKey runs scrypt over password and salt.  The caller must wipe the
// result.
func (p *ScryptParams) deriveKey(password, salt []byte) ([]byte, error) {
	if p.DKLen != derivedKeyLen {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"scrypt dkLen must be %d, got %d", derivedKeyLen, p.DKLen)
	}
	if p.N < 2 || p.N&(p.N-1) != 0 || p.R <= 0 || p.P <= 0 {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"invalid scrypt parameters n=%d r=%d p=%d", p.N, p.R, p.P)
	}
	dk, err := scrypt.Key(password, salt, p.N, p.R, p.P, p.DKLen)
	if err != nil {
		return nil, coreerr.New(coreerr.ErrParam, "scrypt failed", err)
	}
	return dk, nil
}

// AddressHash returns the first four bytes of the double SHA-256 of the
// Base58 form of addr.  It salts the ECB and CTR schemes.
func AddressHash(addr common.Address) []byte {
	return hashing.DoubleSha256([]byte(addr.ToBase58()))[:addressHashLen]
}

// recoverAccount rebuilds an account from a decrypted key and accepts it
// only when check approves it.  Every failure, including a scalar that is
// out of range, is reported as a wrong password.
func recoverAccount(b *keypair.Backend, raw []byte, s keypair.Scheme,
	what string, check func(*Account) bool) (*Account, error) {

	acct, err := FromPrivateKey(b, raw, s)
	if err == nil && check(acct) {
		return acct, nil
	}
	if acct != nil {
		acct.Wipe()
	}
	log.Debugf("Decrypted %s key does not match its binding", what)
	return nil, coreerr.New(coreerr.ErrWrongPasswordOrAddress,
		"wrong password or address", err)
}

// EncryptECB encrypts the private key with the legacy scheme: the key is
// masked with the first half of the derived key and AES-256-ECB
// encrypted under the second half.  The result is a Base58Check blob that
// embeds the address hash used as salt.
func (a *Account) EncryptECB(password []byte, params ScryptParams) (string,
	error) {

	k, err := a.privateKey()
	if err != nil {
		return "", err
	}
	salt := AddressHash(a.address)

	dk, err := params.deriveKey(password, salt)
	if err != nil {
		return "", err
	}
	defer zero.Bytes(dk)

	block, err := aes.NewCipher(dk[32:])
	if err != nil {
		return "", coreerr.New(coreerr.ErrParam, "aes", err)
	}

	masked := k.Serialize()
	defer zero.Bytes(masked)
	for i := range masked {
		masked[i] ^= dk[i]
	}

	blob := make([]byte, ecbBlobLen)
	copy(blob, ecbPrefix)
	copy(blob[3:], salt)
	enc := blob[3+addressHashLen:]
	for i := 0; i < len(masked); i += aes.BlockSize {
		block.Encrypt(enc[i:i+aes.BlockSize], masked[i:i+aes.BlockSize])
	}

	return codec.Base58CheckEncode(blob), nil
}

// DecryptECB reverses EncryptECB.  The recovered key must hash to the
// embedded address salt.
func DecryptECB(b *keypair.Backend, encrypted string, password []byte,
	params ScryptParams, s keypair.Scheme) (*Account, error) {

	if err := checkScheme(s); err != nil {
		return nil, err
	}
	blob, err := codec.Base58CheckDecode(encrypted)
	if err != nil {
		return nil, err
	}
	if len(blob) != ecbBlobLen || !bytes.Equal(blob[:3], ecbPrefix) {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"malformed ECB encrypted key")
	}
	salt := blob[3 : 3+addressHashLen]
	enc := blob[3+addressHashLen:]

	dk, err := params.deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(dk)

	block, err := aes.NewCipher(dk[32:])
	if err != nil {
		return nil, coreerr.New(coreerr.ErrParam, "aes", err)
	}

	raw := make([]byte, keypair.PrivateKeySize)
	defer zero.Bytes(raw)
	for i := 0; i < len(raw); i += aes.BlockSize {
		block.Decrypt(raw[i:i+aes.BlockSize], enc[i:i+aes.BlockSize])
	}
	for i := range raw {
		raw[i] ^= dk[i]
	}

	return recoverAccount(b, raw, s, "ECB", func(acct *Account) bool {
		return bytes.Equal(AddressHash(acct.address), salt)
	})
}

// ctrStream returns the AES-256-CTR keystream of the CTR scheme: IV is
// the first 16 derived bytes, the key the last 32.
func ctrStream(dk []byte) (cipher.Stream, error) {
	block, err := aes.NewCipher(dk[32:])
	if err != nil {
		return nil, coreerr.New(coreerr.ErrParam, "aes", err)
	}
	return cipher.NewCTR(block, dk[:aes.BlockSize]), nil
}

// EncryptCTR encrypts the private key with AES-256-CTR and returns it in
// Base64.  A nil salt selects the address hash; otherwise salt must be
// four bytes.
func (a *Account) EncryptCTR(password, salt []byte, params ScryptParams) (
	string, error) {

	k, err := a.privateKey()
	if err != nil {
		return "", err
	}
	if salt == nil {
		salt = AddressHash(a.address)
	}
	if len(salt) != addressHashLen {
		return "", coreerr.Newf(coreerr.ErrParam,
			"CTR salt must be %d bytes, got %d", addressHashLen, len(salt))
	}

	dk, err := params.deriveKey(password, salt)
	if err != nil {
		return "", err
	}
	defer zero.Bytes(dk)

	stream, err := ctrStream(dk)
	if err != nil {
		return "", err
	}
	enc := k.Serialize()
	stream.XORKeyStream(enc, enc)

	return base64.StdEncoding.EncodeToString(enc), nil
}

// DecryptCTR reverses EncryptCTR.  The recovered key must belong to addr.
func DecryptCTR(b *keypair.Backend, encrypted string, password, salt []byte,
	addr common.Address, params ScryptParams, s keypair.Scheme) (*Account,
	error) {

	if err := checkScheme(s); err != nil {
		return nil, err
	}
	if len(salt) != addressHashLen {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"CTR salt must be %d bytes, got %d", addressHashLen, len(salt))
	}
	enc, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, coreerr.New(coreerr.ErrFormat,
			"encrypted key is not base64", err)
	}

	dk, err := params.deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(dk)

	stream, err := ctrStream(dk)
	if err != nil {
		return nil, err
	}
	raw := make([]byte, len(enc))
	defer zero.Bytes(raw)
	stream.XORKeyStream(raw, enc)

	return recoverAccount(b, raw, s, "CTR", func(acct *Account) bool {
		return acct.address == addr
	})
}

// gcmAEAD returns the AES-256-GCM cipher of the GCM scheme together with
// its nonce, the first 12 derived bytes.
func gcmAEAD(dk []byte) (cipher.AEAD, []byte, error) {
	block, err := aes.NewCipher(dk[32:])
	if err != nil {
		return nil, nil, coreerr.New(coreerr.ErrParam, "aes", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, coreerr.New(coreerr.ErrParam, "gcm", err)
	}
	return aead, dk[:aead.NonceSize()], nil
}

// EncryptGCM encrypts the private key with AES-256-GCM, authenticating the
// Base58 address as associated data, and returns ciphertext and tag in
// Base64.  salt must be 16 bytes.
func (a *Account) EncryptGCM(password, salt []byte, params ScryptParams) (
	string, error) {

	k, err := a.privateKey()
	if err != nil {
		return "", err
	}
	if len(salt) != GCMSaltLen {
		return "", coreerr.Newf(coreerr.ErrParam,
			"GCM salt must be %d bytes, got %d", GCMSaltLen, len(salt))
	}

	dk, err := params.deriveKey(password, salt)
	if err != nil {
		return "", err
	}
	defer zero.Bytes(dk)

	aead, nonce, err := gcmAEAD(dk)
	if err != nil {
		return "", err
	}
	plain := k.Serialize()
	defer zero.Bytes(plain)
	sealed := aead.Seal(nil, nonce, plain, []byte(a.address.ToBase58()))

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptGCM reverses EncryptGCM.  An authentication failure and a key
// that does not belong to addr are both reported as
// coreerr.ErrWrongPasswordOrAddress.
func DecryptGCM(b *keypair.Backend, encrypted string, password, salt []byte,
	addr common.Address, params ScryptParams, s keypair.Scheme) (*Account,
	error) {

	if err := checkScheme(s); err != nil {
		return nil, err
	}
	if len(salt) != GCMSaltLen {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"GCM salt must be %d bytes, got %d", GCMSaltLen, len(salt))
	}
	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return nil, coreerr.New(coreerr.ErrFormat,
			"encrypted key is not base64", err)
	}

	dk, err := params.deriveKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer zero.Bytes(dk)

	aead, nonce, err := gcmAEAD(dk)
	if err != nil {
		return nil, err
	}
	raw, err := aead.Open(nil, nonce, sealed, []byte(addr.ToBase58()))
	if err != nil {
		log.Debugf("GCM authentication failed for %v", addr.ToBase58())
		return nil, coreerr.New(coreerr.ErrWrongPasswordOrAddress,
			"wrong password or address", err)
	}
	defer zero.Bytes(raw)

	return recoverAccount(b, raw, s, "GCM", func(acct *Account) bool {
		return acct.address == addr
	})
}
