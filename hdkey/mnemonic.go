// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hdkey

import (
	"crypto/sha512"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	seedIterations  = 2048
	mnemonicSeedLen = 64
)

// SeedFromMnemonic stretches a BIP0039 mnemonic sentence into a 64-byte
// seed with PBKDF2-HMAC-SHA512 salted with "mnemonic" and the passphrase.
// Words are joined by single spaces; the word list and its checksum are
// not checked.
func SeedFromMnemonic(mnemonic, passphrase string) []byte {
	sentence := strings.Join(strings.Fields(mnemonic), " ")
	return pbkdf2.Key([]byte(sentence), []byte("mnemonic"+passphrase),
		seedIterations, mnemonicSeedLen, sha512.New)
}
