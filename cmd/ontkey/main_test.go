// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ontio/ontcore/account"
	"github.com/ontio/ontcore/keypair"
	"github.com/stretchr/testify/require"
)

const (
	testPubKey = "03419e59679af106f22023185f20f5a5c30c5c241661a023194934083c234ad857"
	testAddr   = "ASsJfab7N4fRJYjNxfhZigSbbQZrB6MLY9"
	testWIF    = "KwccngdicZ28FfQGZt9oNXcyyZydJHkbpxdMYd7Yt4aGA3WViZwT"

	// seedPub is the master public key of the 000102...0f seed.
	seedPub = "0266874dc6ade47b3ecd096745ca09bcd29638dd52c2c12117b11ed3e458cfa9e8"

	testProof = `{
		"Type": "MerkleProof",
		"TransactionsRoot": "f332c8ede11799137f28b10e40200063353dfc3233da6cea689e0637231ad1a7",
		"BlockHeight": 1277,
		"CurBlockRoot": "ba64746f650b7be0ac89fbf8defeceeb63821272d8096d83d3764b7ae9eb4a21",
		"CurBlockHeight": 1277,
		"TargetHashes": [
			"0000000000000000000000000000000000000000000000000000000000000000",
			"e14172c8a6e193943465648e1c586a9186a3784ee7ee29db9edbf6afe04f5390",
			"f440531999c547db08f516677c152215475a69dccb82176e4bca1b726261a1be",
			"ef4d3c0debb66bb15af8b82e1b9463d3039f6a95bf91c349e7df1b34ef5f7630",
			"d6dd5266af7407b89d00b1a11044cd4eb30f94dabbdf440b03f9173384b16d67",
			"17100c09ef2d19689c85cc7038b6654037045fc83b3951439634e5d2074998c6",
			"584aa3a421020a07710a2bc16e7865ea9ee0860692ad509515fb8caa837d27df",
			"192eed54084fbe94a8c34c1274168f38ac02abe01c94f9b425e58f26fe93d598"
		]
	}`
)

// harness runs ontkey against files in a temporary directory.
type harness struct {
	t        *testing.T
	dir      string
	conf     string
	passFile string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dir := t.TempDir()
	h := &harness{
		t:        t,
		dir:      dir,
		conf:     filepath.Join(dir, "ontkey.conf"),
		passFile: filepath.Join(dir, "pass"),
	}
	h.write("ontkey.conf", "scryptn=16\ndebuglevel=critical\n")
	h.write("pass", "correct horse\nignored\n")

	oldIn, oldOut := stdin, stdout
	t.Cleanup(func() {
		stdin, stdout = oldIn, oldOut
	})
	return h
}

func (h *harness) path(name string) string {
	return filepath.Join(h.dir, name)
}

func (h *harness) write(name, data string) {
	h.t.Helper()
	require.NoError(h.t, os.WriteFile(h.path(name), []byte(data), 0600))
}

// run executes a command with the harness config and input, returning
// standard output.
func (h *harness) run(input string, args ...string) (string, error) {
	var out bytes.Buffer
	stdin = bufio.NewReader(strings.NewReader(input))
	stdout = &out

	all := append([]string{
		"-C", h.conf, "--nologfile", "--passfile", h.passFile,
	}, args...)
	err := ontkeyMain(all)
	return out.String(), err
}

func (h *harness) mustRun(input string, args ...string) string {
	h.t.Helper()
	out, err := h.run(input, args...)
	require.NoError(h.t, err)
	return out
}

func (h *harness) record(name string) *account.EncryptedKeyRecord {
	h.t.Helper()
	rec, err := readRecord(h.path(name))
	require.NoError(h.t, err)
	return rec
}

func TestNewAndWIF(t *testing.T) {
	h := newHarness(t)

	h.mustRun("", "--scheme", "SM3withSM2", "new", "-o", h.path("sm2.json"))
	rec := h.record("sm2.json")
	require.Equal(t, account.EncAlgGCM, rec.EncAlg)
	require.Equal(t, keypair.SM3withSM2, rec.Scheme)
	require.Equal(t, 16, rec.Scrypt.N)

	out := h.mustRun("", "address", h.path("sm2.json"))
	require.Equal(t, rec.Address.ToBase58()+"\n", out)

	out = h.mustRun("", "wif", h.path("sm2.json"))
	acct, err := account.FromWIF(keypair.NewBackend(nil),
		strings.TrimSpace(out), keypair.SM3withSM2)
	require.NoError(t, err)
	require.Equal(t, rec.Address, acct.Address())

	// The record file is never overwritten.
	_, err = h.run("", "new", "-o", h.path("sm2.json"))
	require.Error(t, err)
	require.Equal(t, rec, h.record("sm2.json"))

	// Without -o the record goes to stdout.
	out = h.mustRun("", "new")
	require.Contains(t, out, `"enc-alg": "aes-256-gcm"`)
}

func TestImport(t *testing.T) {
	h := newHarness(t)
	h.write("key.wif", testWIF+"\n")

	h.mustRun("", "--encalg", account.EncAlgCTR, "import",
		h.path("key.wif"), "-o", h.path("ctr.json"))
	rec := h.record("ctr.json")
	require.Equal(t, testAddr, rec.Address.ToBase58())
	require.Equal(t, account.EncAlgCTR, rec.EncAlg)

	out := h.mustRun("", "wif", h.path("ctr.json"))
	require.Equal(t, testWIF+"\n", out)

	// A wrong passphrase does not decrypt.
	h.write("pass", "wrong\n")
	_, err := h.run("", "wif", h.path("ctr.json"))
	require.Error(t, err)

	h.write("bad.wif", "not a key")
	_, err = h.run("", "import", h.path("bad.wif"))
	require.Error(t, err)
}

func TestDerive(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("not hex\n000102030405060708090a0b0c0d0e0f\n",
		"derive", "--seed", "--path", "m", "--xpub", "-o",
		h.path("hd.json"))
	require.Contains(t, out, "Path:       m\n")
	require.Contains(t, out, "Public key: "+seedPub+"\n")
	require.Contains(t, out, "Extended public key: xpub")

	acct, err := account.FromPublicKey(keypair.NewBackend(nil),
		mustHex(t, seedPub))
	require.NoError(t, err)
	require.Contains(t, out, "Address:    "+acct.Address().ToBase58()+"\n")
	require.Equal(t, acct.Address(), h.record("hd.json").Address)

	// Testnet keys serialize with their own version bytes.
	mnemonic := strings.Repeat("abandon ", 11) + "about\n\n"
	out = h.mustRun(mnemonic, "--testnet", "derive", "--xpub")
	require.Contains(t, out, "Path:       m/44'/1024'/0'/0/0\n")
	require.Contains(t, out, "Extended public key: tpub")

	_, err = h.run(mnemonic, "derive", "--path", "44/0")
	require.Error(t, err)
}

func TestAddress(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("", "address", "--pubkey", testPubKey)
	require.Equal(t, testAddr+"\n", out)

	_, err := h.run("", "address")
	require.Error(t, err)
	_, err = h.run("", "address", "--pubkey", "zz")
	require.Error(t, err)
	_, err = h.run("", "address", h.path("missing.json"))
	require.Error(t, err)
}

func TestVerifyProof(t *testing.T) {
	h := newHarness(t)
	h.write("proof.json", testProof)

	txHash := "6d917f9509a56d4ed5e9b04edf2b152ede178bea385285027422040fbc0ea2d8"
	out := h.mustRun("", "verifyproof", "--txhash", txHash,
		h.path("proof.json"))
	require.Contains(t, out, "of block 1277 is committed")
	require.Contains(t, out, `"Type": "MerkleProof"`)
	require.Contains(t, out, `"TxnHash": "`+txHash+`"`)

	// The proof can also be piped in.
	out = h.mustRun(testProof, "verifyproof")
	require.Contains(t, out, "at height 1277")

	tampered := strings.Replace(testProof, "e14172c8", "e14172c9", 1)
	_, err := h.run(tampered, "verifyproof")
	require.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("", "--encalg", "rot13", "new")
	require.Error(t, err)
	_, err = h.run("", "--scryptn", "1000", "new")
	require.Error(t, err)
	_, err = h.run("", "--scheme", "SHA512withEdDSA", "new")
	require.Error(t, err)
	_, err = h.run("", "new", "extra")
	require.Error(t, err)

	err = ontkeyMain([]string{"-C", h.path("missing.conf"), "address"})
	require.Error(t, err)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels("critical")

	require.NoError(t, parseAndSetDebugLevels("warn"))
	require.NoError(t, parseAndSetDebugLevels("ACCT=debug,HDKY=trace"))

	require.Error(t, parseAndSetDebugLevels("loud"))
	require.Error(t, parseAndSetDebugLevels("ACCT"))
	require.Error(t, parseAndSetDebugLevels("ACCT=debug,MRKL"))
	require.Error(t, parseAndSetDebugLevels("WLLT=debug"))
	require.Error(t, parseAndSetDebugLevels("NODE=loud"))
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
