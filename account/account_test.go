// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"testing"

	"github.com/ontio/ontcore/account"
	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/keypair"
	"github.com/stretchr/testify/require"
)

const (
	privKeyHex = "0bc8c1f75a028672cd42c221bf81709dfc7abbbaf0d87cb6fdeaf9a20492c194"
	pubKeyHex  = "03419e59679af106f22023185f20f5a5c30c5c241661a023194934083c234ad857"
	otherPub   = "0266874dc6ade47b3ecd096745ca09bcd29638dd52c2c12117b11ed3e458cfa9e8"
	ecdsaAddr  = "ASsJfab7N4fRJYjNxfhZigSbbQZrB6MLY9"
	sm2Addr    = "ATwmvMDEAg1bSjwCK8R214Ln8prFpnBWhz"
	testWIF    = "KwccngdicZ28FfQGZt9oNXcyyZydJHkbpxdMYd7Yt4aGA3WViZwT"
)

// fastScrypt keeps key derivation cheap in tests.
var fastScrypt = account.ScryptParams{N: 16, R: 8, P: 8, DKLen: 64}

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func testAccount(t *testing.T, s keypair.Scheme) *account.Account {
	t.Helper()

	acct, err := account.FromPrivateKey(keypair.NewBackend(nil),
		hexToBytes(privKeyHex), s)
	require.NoError(t, err)
	return acct
}

func TestFromPrivateKey(t *testing.T) {
	acct := testAccount(t, keypair.SHA256withECDSA)
	require.Equal(t, ecdsaAddr, acct.Address().ToBase58())
	require.Equal(t, pubKeyHex, hex.EncodeToString(acct.PublicKeyBytes()))
	require.True(t, acct.HasPrivateKey())

	raw, err := acct.PrivateKeyBytes()
	require.NoError(t, err)
	require.Equal(t, privKeyHex, hex.EncodeToString(raw))

	sm2 := testAccount(t, keypair.SM3withSM2)
	require.Equal(t, sm2Addr, sm2.Address().ToBase58())
	require.Equal(t, keypair.SM3withSM2, sm2.Scheme())

	b := keypair.NewBackend(nil)
	_, err = account.FromPrivateKey(b, hexToBytes(privKeyHex),
		keypair.SHA512withEdDSA)
	require.ErrorIs(t, err, coreerr.ErrParam)

	_, err = account.FromPrivateKey(b, hexToBytes(privKeyHex),
		keypair.Scheme(99))
	require.ErrorIs(t, err, coreerr.ErrParam)

	_, err = account.FromPrivateKey(b, make([]byte, 32),
		keypair.SHA256withECDSA)
	require.ErrorIs(t, err, coreerr.ErrParam)
}

func TestFromPublicKey(t *testing.T) {
	b := keypair.NewBackend(nil)

	for _, signer := range []*account.Account{
		testAccount(t, keypair.SHA256withECDSA),
		testAccount(t, keypair.SM3withSM2),
	} {
		verifier, err := account.FromPublicKey(b, signer.PublicKeyBytes())
		require.NoError(t, err)
		require.False(t, verifier.HasPrivateKey())
		require.Equal(t, signer.Address(), verifier.Address())
		require.Equal(t, signer.Scheme(), verifier.Scheme())
		require.Equal(t, 0, signer.Compare(verifier))

		msg := []byte("transfer 1 ONT")
		sig, err := signer.SignBytes(msg)
		require.NoError(t, err)
		require.NoError(t, verifier.VerifyBytes(msg, sig))

		_, err = verifier.Sign(msg)
		require.ErrorIs(t, err, coreerr.ErrNoPrivateKey)
		_, err = verifier.PrivateKeyBytes()
		require.ErrorIs(t, err, coreerr.ErrNoPrivateKey)
		_, err = verifier.ExportWIF()
		require.ErrorIs(t, err, coreerr.ErrNoPrivateKey)
		_, err = verifier.EncryptGCM([]byte("pw"), make([]byte, 16), fastScrypt)
		require.ErrorIs(t, err, coreerr.ErrNoPrivateKey)
	}

	_, err := account.FromPublicKey(b, []byte{0x02, 0x03})
	require.ErrorIs(t, err, coreerr.ErrFormat)
}

func TestGenerate(t *testing.T) {
	b := keypair.NewBackend(nil)

	for _, s := range []keypair.Scheme{
		keypair.SHA256withECDSA, keypair.SM3withSM2,
	} {
		acct, err := account.Generate(b, s)
		require.NoError(t, err)

		msg := []byte("message")
		sig, err := acct.Sign(msg)
		require.NoError(t, err)
		require.Equal(t, s, sig.Scheme)
		require.NoError(t, acct.Verify(msg, sig))
		require.ErrorIs(t, acct.Verify([]byte("other"), sig),
			coreerr.ErrInvalidSignature)
	}

	_, err := account.Generate(b, keypair.SHA512withEdDSA)
	require.ErrorIs(t, err, coreerr.ErrParam)
}

func TestSignEmptyMessage(t *testing.T) {
	acct := testAccount(t, keypair.SHA256withECDSA)

	_, err := acct.Sign(nil)
	require.ErrorIs(t, err, coreerr.ErrParam)

	sig, err := acct.Sign([]byte("x"))
	require.NoError(t, err)
	require.ErrorIs(t, acct.Verify(nil, sig), coreerr.ErrParam)
}

func TestCompare(t *testing.T) {
	b := keypair.NewBackend(nil)
	a := testAccount(t, keypair.SHA256withECDSA)
	o, err := account.FromPublicKey(b, hexToBytes(otherPub))
	require.NoError(t, err)

	require.Equal(t, 1, a.Compare(o))
	require.Equal(t, -1, o.Compare(a))
}

func TestWipe(t *testing.T) {
	acct := testAccount(t, keypair.SHA256withECDSA)
	acct.Wipe()

	require.False(t, acct.HasPrivateKey())
	_, err := acct.Sign([]byte("m"))
	require.ErrorIs(t, err, coreerr.ErrNoPrivateKey)
	require.Equal(t, ecdsaAddr, acct.Address().ToBase58())

	// Wiping twice is harmless.
	acct.Wipe()
}

func TestWIF(t *testing.T) {
	acct := testAccount(t, keypair.SHA256withECDSA)

	wif, err := acct.ExportWIF()
	require.NoError(t, err)
	require.Equal(t, testWIF, wif)

	raw, err := account.PrivateKeyFromWIF(wif)
	require.NoError(t, err)
	require.Equal(t, privKeyHex, hex.EncodeToString(raw))

	imported, err := account.FromWIF(keypair.NewBackend(nil), wif,
		keypair.SHA256withECDSA)
	require.NoError(t, err)
	require.Equal(t, acct.Address(), imported.Address())

	// Corrupt the checksum.
	data, err := codec.Base58Decode(wif)
	require.NoError(t, err)
	data[len(data)-1] ^= 0x01
	_, err = account.PrivateKeyFromWIF(codec.Base58Encode(data))
	require.ErrorIs(t, err, coreerr.ErrChecksumMismatch)

	// Uncompressed flag missing.
	short := codec.Base58CheckEncode(append([]byte{0x80}, hexToBytes(privKeyHex)...))
	_, err = account.PrivateKeyFromWIF(short)
	require.ErrorIs(t, err, coreerr.ErrFormat)

	// Wrong version byte.
	payload := append([]byte{0xef}, hexToBytes(privKeyHex)...)
	payload = append(payload, 0x01)
	_, err = account.PrivateKeyFromWIF(codec.Base58CheckEncode(payload))
	require.ErrorIs(t, err, coreerr.ErrFormat)

	_, err = account.PrivateKeyFromWIF("0OIl")
	require.ErrorIs(t, err, coreerr.ErrFormat)
}
