// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package zero scrubs private key material, derived symmetric keys and
// decrypted plaintext from memory once callers are done with them.
package zero

import "math/big"

// Bytes overwrites every passed slice with zeros.  Nil slices are skipped.
func Bytes(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}

// BigInt clears the words backing x and then sets it to 0.  Setting the
// value alone would leave the old words in the reused backing array.
func BigInt(x *big.Int) {
	if x == nil {
		return
	}
	clear(x.Bits())
	x.SetInt64(0)
}
