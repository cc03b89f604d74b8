// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"math/big"

	"github.com/ontio/ontcore/codec"
)

// BigIntToBytes returns the minimal little-endian two's complement
// encoding of v used for NeoVM integers.  Zero encodes to an empty slice.
func BigIntToBytes(v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		return []byte{}
	case 1:
		be := v.Bytes()
		if be[0]&0x80 != 0 {
			be = append([]byte{0}, be...)
		}
		return codec.Reverse(be)
	}

	// The smallest width n satisfies -2^(8n-1) <= v, i.e. it is wide
	// enough to hold |v|-1 with a clear sign bit.
	mag := new(big.Int).Neg(v)
	mag.Sub(mag, big.NewInt(1))
	n := mag.BitLen()/8 + 1

	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	twos := new(big.Int).Add(mod, v).Bytes()
	be := make([]byte, n)
	copy(be[n-len(twos):], twos)
	return codec.Reverse(be)
}

// BigIntFromBytes decodes a little-endian two's complement integer.
func BigIntFromBytes(b []byte) *big.Int {
	if len(b) == 0 {
		return new(big.Int)
	}
	v := new(big.Int).SetBytes(codec.Reverse(b))
	if b[len(b)-1]&0x80 != 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(b)))
		v.Sub(v, mod)
	}
	return v
}
