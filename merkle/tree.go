// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
)

// ComputeRoot returns the transactions root of a block: hashes are paired
// with double SHA-256 and an odd last hash is paired with itself.
func ComputeRoot(hashes []common.UInt256) (common.UInt256, error) {
	if len(hashes) == 0 {
		return common.UInt256{}, coreerr.Newf(coreerr.ErrParam,
			"no hashes to compute a root from")
	}

	return RootFromLeafHashes(DoubleSHA256Hasher{}, hashes), nil
}

// RootFromLeafHashes returns the root of the tree over already hashed
// leaves.  An empty tree has the zero root.
func RootFromLeafHashes(h Hasher, leaves []common.UInt256) common.UInt256 {
	if len(leaves) == 0 {
		return common.UInt256{}
	}
	level := leaves
	for len(level) > 1 {
		level = nextLevel(h, level)
	}
	return level[0]
}

// HashFullTree hashes each of leaves and returns the root of the tree
// over them.
func HashFullTree(h Hasher, leaves [][]byte) common.UInt256 {
	hashes := make([]common.UInt256, len(leaves))
	for i, leaf := range leaves {
		hashes[i] = h.HashLeaf(leaf)
	}
	return RootFromLeafHashes(h, hashes)
}
