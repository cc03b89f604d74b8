// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ontio/ontcore/common"
)

// Hasher defines how leaves and interior nodes of a tree are hashed.
type Hasher interface {
	// HashLeaf returns the hash of a leaf holding data.
	HashLeaf(data []byte) common.UInt256

	// HashChildren returns the hash of an interior node.
	HashChildren(left, right common.UInt256) common.UInt256
}

// DoubleSHA256Hasher hashes leaves and nodes with double SHA-256 and no
// domain separation, as transaction roots are computed.  Its trees pair
// an unpaired last node with itself.
type DoubleSHA256Hasher struct{}

// oddPairer is implemented by hashers whose trees pair an unpaired last
// node with itself instead of promoting it.
type oddPairer interface {
	pairsOddLast() bool
}

func (DoubleSHA256Hasher) pairsOddLast() bool { return true }

// pairsOddLast reports whether trees hashed by h duplicate an unpaired
// last node.
func pairsOddLast(h Hasher) bool {
	p, ok := h.(oddPairer)
	return ok && p.pairsOddLast()
}

// HashLeaf returns SHA-256(SHA-256(data)).
func (DoubleSHA256Hasher) HashLeaf(data []byte) common.UInt256 {
	return common.UInt256(chainhash.DoubleHashH(data))
}

// HashChildren returns SHA-256(SHA-256(left || right)).
func (DoubleSHA256Hasher) HashChildren(left, right common.UInt256) common.UInt256 {
	var buf [2 * common.UInt256Size]byte
	copy(buf[:], left[:])
	copy(buf[common.UInt256Size:], right[:])
	return common.UInt256(chainhash.DoubleHashH(buf[:]))
}

// TreeHasher is the RFC 6962 hasher of the block root tree: leaves are
// SHA-256(0x00 || data) and nodes SHA-256(0x01 || left || right).
type TreeHasher struct{}

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// HashLeaf returns SHA-256(0x00 || data).
func (TreeHasher) HashLeaf(data []byte) common.UInt256 {
	buf := make([]byte, 1+len(data))
	buf[0] = leafPrefix
	copy(buf[1:], data)
	return common.UInt256(chainhash.HashH(buf))
}

// HashChildren returns SHA-256(0x01 || left || right).
func (TreeHasher) HashChildren(left, right common.UInt256) common.UInt256 {
	var buf [1 + 2*common.UInt256Size]byte
	buf[0] = nodePrefix
	copy(buf[1:], left[:])
	copy(buf[1+common.UInt256Size:], right[:])
	return common.UInt256(chainhash.HashH(buf[:]))
}
