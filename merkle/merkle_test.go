// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/merkle"
	"github.com/stretchr/testify/require"
)

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func mustParse(t *testing.T, s string) common.UInt256 {
	t.Helper()

	u, err := common.ParseUInt256(s)
	require.NoError(t, err)
	return u
}

// rfc6962Leaves are the inputs of the RFC 6962 reference trees, whose
// roots for the first n leaves are listed in rfc6962Roots.
var (
	rfc6962Leaves = []string{
		"", "00", "10", "2021", "3031", "40414243",
		"5051525354555657", "606162636465666768696a6b6c6d6e6f",
	}
	rfc6962Roots = []string{
		"6e340b9cffb37a989ca544e6bb780a2c78901d3fb33738768511a30617afa01d",
		"fac54203e7cc696cf0dfcb42c92a1d9dbaf70ad9e621f4bd8d98662f00e3c125",
		"aeb6bcfe274b70a14fb067a5e5578264db0fa9b51af5e0ba159158f329e06e77",
		"d37ee418976dd95753c1c73862b9398fa2a2cf9b4ff0fdfe8b30cd95209614b7",
		"4e3bbb1f7b478dcfe71fb631631519a3bca12c9aefca1612bfce4c13a86264d4",
		"76e67dadbcdf1e10e1b74ddc608abd2f98dfb16fbce75277b5232a127f2087ef",
		"ddb89be403809e325750d3d263cd78929c2942b7942a34b77e122c9594a74c8c",
		"5dc9da79a70659a9ad559cb701ded9a2ab9d823aad2f4960cfe370eff4604328",
	}
)

func TestHashFullTree(t *testing.T) {
	var h merkle.TreeHasher
	for n := 1; n <= len(rfc6962Leaves); n++ {
		leaves := make([][]byte, n)
		for i := range leaves {
			leaves[i] = hexToBytes(rfc6962Leaves[i])
		}
		root := merkle.HashFullTree(h, leaves)
		require.Equal(t, rfc6962Roots[n-1], hex.EncodeToString(root[:]),
			"%d leaves", n)
	}

	require.True(t, merkle.HashFullTree(h, nil).IsZero())
}

// TestProofsMatchTree builds a proof for every leaf of trees of several
// sizes and checks each proof form against the tree root.
func TestProofsMatchTree(t *testing.T) {
	for _, h := range []merkle.Hasher{
		merkle.TreeHasher{}, merkle.DoubleSHA256Hasher{},
	} {
		_, rfc6962 := h.(merkle.TreeHasher)

		for size := 1; size <= 21; size++ {
			leaves := make([]common.UInt256, size)
			for i := range leaves {
				leaves[i] = h.HashLeaf([]byte{byte(i)})
			}
			want := merkle.RootFromLeafHashes(h, leaves)

			// Transaction roots and proofs share one tree shape.
			if !rfc6962 {
				txRoot, err := merkle.ComputeRoot(leaves)
				require.NoError(t, err)
				require.Equal(t, txRoot, want, "size %d", size)
			}

			for index := 0; index < size; index++ {
				name := fmt.Sprintf("%T size %d index %d", h, size, index)

				nodes, root, err := merkle.BuildProof(h, leaves, index)
				require.NoError(t, err, name)
				require.Equal(t, want, root, name)
				require.NoError(t, merkle.Verify(h, leaves[index], nodes,
					root), name)

				if size > 1 {
					other := leaves[(index+1)%size]
					err = merkle.Verify(h, other, nodes, root)
					require.ErrorIs(t, err, coreerr.ErrProofVerification,
						name)
				}

				if !rfc6962 {
					continue
				}
				path := make([]common.UInt256, len(nodes))
				for i, n := range nodes {
					path[i] = n.TargetHash
				}
				fromPath, err := merkle.AuditPathProof(index, path, size)
				require.NoError(t, err, name)
				require.Equal(t, nodes, fromPath, name)

				err = merkle.VerifyLeafHashInclusion(h, leaves[index],
					index, path, root, size)
				require.NoError(t, err, name)
			}
		}
	}
}

// TestTxProofOddCount checks that a proof over an odd number of
// transaction hashes verifies against the transactions root.
func TestTxProofOddCount(t *testing.T) {
	var h merkle.DoubleSHA256Hasher
	leaves := make([]common.UInt256, 5)
	for i := range leaves {
		leaves[i] = h.HashLeaf([]byte{byte(i)})
	}
	txRoot, err := merkle.ComputeRoot(leaves)
	require.NoError(t, err)

	nodes, root, err := merkle.BuildProof(h, leaves, 4)
	require.NoError(t, err)
	require.Equal(t, txRoot, root)
	require.Equal(t, merkle.Node{Direction: merkle.Right,
		TargetHash: leaves[4]}, nodes[0])
	require.NoError(t, merkle.Verify(h, leaves[4], nodes, txRoot))
}

// TestProofByteFlip checks a proof over the five leaf reference tree
// against its known root and rejects every single byte change to it.
func TestProofByteFlip(t *testing.T) {
	var h merkle.TreeHasher
	leaves := make([]common.UInt256, 5)
	for i := range leaves {
		leaves[i] = h.HashLeaf(hexToBytes(rfc6962Leaves[i]))
	}

	const index = 2
	nodes, root, err := merkle.BuildProof(h, leaves, index)
	require.NoError(t, err)
	require.Equal(t, rfc6962Roots[4], hex.EncodeToString(root[:]))
	require.Len(t, nodes, 3)
	require.NoError(t, merkle.Verify(h, leaves[index], nodes, root))

	for i := range nodes {
		for j := 0; j < common.UInt256Size; j++ {
			flipped := append([]merkle.Node(nil), nodes...)
			flipped[i].TargetHash[j] ^= 0x01
			err := merkle.Verify(h, leaves[index], flipped, root)
			require.ErrorIs(t, err, coreerr.ErrProofVerification,
				"node %d byte %d", i, j)
		}
	}
}

// TestLiveAuditPath checks an audit path returned by a node for the
// transactions root of block 1277 against the block root at that height.
func TestLiveAuditPath(t *testing.T) {
	leaf := mustParse(t, "f332c8ede11799137f28b10e40200063353dfc3233da6cea689e0637231ad1a7")
	root := mustParse(t, "ba64746f650b7be0ac89fbf8defeceeb63821272d8096d83d3764b7ae9eb4a21")
	var path []common.UInt256
	for _, s := range []string{
		"0000000000000000000000000000000000000000000000000000000000000000",
		"e14172c8a6e193943465648e1c586a9186a3784ee7ee29db9edbf6afe04f5390",
		"f440531999c547db08f516677c152215475a69dccb82176e4bca1b726261a1be",
		"ef4d3c0debb66bb15af8b82e1b9463d3039f6a95bf91c349e7df1b34ef5f7630",
		"d6dd5266af7407b89d00b1a11044cd4eb30f94dabbdf440b03f9173384b16d67",
		"17100c09ef2d19689c85cc7038b6654037045fc83b3951439634e5d2074998c6",
		"584aa3a421020a07710a2bc16e7865ea9ee0860692ad509515fb8caa837d27df",
		"192eed54084fbe94a8c34c1274168f38ac02abe01c94f9b425e58f26fe93d598",
	} {
		path = append(path, mustParse(t, s))
	}
	const height = 1277

	var h merkle.TreeHasher
	require.NoError(t, merkle.VerifyLeafHashInclusion(h, leaf, height, path,
		root, height+1))

	nodes, err := merkle.AuditPathProof(height, path, height+1)
	require.NoError(t, err)
	require.Len(t, nodes, len(path))
	for _, n := range nodes {
		require.Equal(t, merkle.Left, n.Direction)
	}

	// The same path does not hold once the tree has grown.
	err = merkle.VerifyLeafHashInclusion(h, leaf, height, path, root,
		height+2)
	require.Error(t, err)

	// Nor for another root.
	err = merkle.VerifyLeafHashInclusion(h, leaf, height, path, leaf,
		height+1)
	require.ErrorIs(t, err, coreerr.ErrProofVerification)
}

func TestAuditPathErrors(t *testing.T) {
	path := make([]common.UInt256, 3)

	_, err := merkle.AuditPathProof(8, path, 8)
	require.ErrorIs(t, err, coreerr.ErrParam)
	_, err = merkle.AuditPathProof(-1, path, 8)
	require.ErrorIs(t, err, coreerr.ErrParam)

	_, err = merkle.AuditPathProof(0, path[:2], 8)
	require.ErrorIs(t, err, coreerr.ErrFormat)
	_, err = merkle.AuditPathProof(0, append(path, path[0]), 8)
	require.ErrorIs(t, err, coreerr.ErrFormat)

	_, _, err = merkle.BuildProof(merkle.TreeHasher{}, nil, 0)
	require.ErrorIs(t, err, coreerr.ErrParam)
}

func TestVerifyZeroRoot(t *testing.T) {
	// A proof that computes the zero hash never verifies.
	var zero common.UInt256
	err := merkle.Verify(merkle.TreeHasher{}, zero, nil, zero)
	require.ErrorIs(t, err, coreerr.ErrProofVerification)

	err = merkle.Verify(merkle.TreeHasher{}, zero,
		[]merkle.Node{{Direction: 7}}, zero)
	require.ErrorIs(t, err, coreerr.ErrFormat)
}

func TestComputeRoot(t *testing.T) {
	var h merkle.DoubleSHA256Hasher
	hashes := []common.UInt256{
		h.HashLeaf([]byte("a")), h.HashLeaf([]byte("b")),
		h.HashLeaf([]byte("c")),
	}
	require.Equal(t,
		"bf5d3affb73efd2ec6c36ad3112dd933efed63c4e1cbffcfa88e2759c144f2d8",
		hex.EncodeToString(hashes[0][:]))

	root, err := merkle.ComputeRoot(hashes)
	require.NoError(t, err)
	require.Equal(t,
		"74449b8328cb6e97d305adb2fca5e90993fdf9c667fa40cb625f40508da40cbf",
		hex.EncodeToString(root[:]))

	root, err = merkle.ComputeRoot(hashes[:1])
	require.NoError(t, err)
	require.Equal(t, hashes[0], root)

	_, err = merkle.ComputeRoot(nil)
	require.ErrorIs(t, err, coreerr.ErrParam)
}

func TestNodeJSON(t *testing.T) {
	target := mustParse(t, "e14172c8a6e193943465648e1c586a9186a3784ee7ee29db9edbf6afe04f5390")
	nodes := []merkle.Node{
		{Direction: merkle.Left, TargetHash: target},
		{Direction: merkle.Right, TargetHash: common.UInt256{}},
	}

	data, err := json.Marshal(nodes)
	require.NoError(t, err)
	require.JSONEq(t, `[
		{"Direction": "Left", "TargetHash": "e14172c8a6e193943465648e1c586a9186a3784ee7ee29db9edbf6afe04f5390"},
		{"Direction": "Right", "TargetHash": "0000000000000000000000000000000000000000000000000000000000000000"}
	]`, string(data))

	var decoded []merkle.Node
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, nodes, decoded)

	err = json.Unmarshal([]byte(`[{"Direction": "Up"}]`), &decoded)
	require.ErrorIs(t, err, coreerr.ErrFormat)

	_, err = json.Marshal(merkle.Node{Direction: 3})
	require.Error(t, err)
}
