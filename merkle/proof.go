// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle builds and verifies Merkle inclusion proofs.
//
// Trees are built level by level.  Adjacent nodes are paired left to
// right.  With TreeHasher an unpaired last node is promoted to the next
// level as is, which yields the RFC 6962 tree shape.  With
// DoubleSHA256Hasher it is paired with itself, as in transaction roots.
// A proof lists, from the leaf upward, the sibling of each node on the
// path and whether that sibling sits on the left or the right.  Promoted
// levels contribute no node; a duplicated node is its own right sibling.
//
// A proof only holds against the root of the tree size it was built
// for; nodes append leaves as blocks are added, so callers must compare
// against the root observed at the proof's height.
package merkle

import (
	"encoding/json"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
)

// Direction says on which side of the running hash a proof node goes.
type Direction int

// Proof node directions.
const (
	Left Direction = iota
	Right
)

// String returns "Left" or "Right".
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "Direction(?)"
}

// MarshalJSON encodes the direction as its name.
func (d Direction) MarshalJSON() ([]byte, error) {
	if d != Left && d != Right {
		return nil, coreerr.Newf(coreerr.ErrParam, "invalid direction %d",
			int(d))
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes "Left" or "Right".
func (d *Direction) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return coreerr.New(coreerr.ErrFormat,
			"direction is not a JSON string", err)
	}
	switch s {
	case "Left":
		*d = Left
	case "Right":
		*d = Right
	default:
		return coreerr.Newf(coreerr.ErrFormat, "unknown direction %q", s)
	}
	return nil
}

// Node is one step of a proof.
type Node struct {
	Direction  Direction      `json:"Direction"`
	TargetHash common.UInt256 `json:"TargetHash"`
}

// BuildProof returns the proof of leaves[index] and the root of the tree
// over leaves.  The leaves are already hashed.
func BuildProof(h Hasher, leaves []common.UInt256, index int) ([]Node,
	common.UInt256, error) {

	if index < 0 || index >= len(leaves) {
		return nil, common.UInt256{}, coreerr.Newf(coreerr.ErrParam,
			"leaf index %d outside tree of %d leaves", index, len(leaves))
	}

	dup := pairsOddLast(h)
	level := append([]common.UInt256(nil), leaves...)
	nodes := make([]Node, 0)
	for len(level) > 1 {
		last := len(level) - 1
		switch {
		case index%2 == 1:
			nodes = append(nodes, Node{Left, level[index-1]})
		case index < last:
			nodes = append(nodes, Node{Right, level[index+1]})
		case dup:
			nodes = append(nodes, Node{Right, level[index]})
		}
		level = nextLevel(h, level)
		index /= 2
	}
	return nodes, level[0], nil
}

// nextLevel pairs adjacent hashes.  An unpaired last one is promoted, or
// paired with itself when h says so.
func nextLevel(h Hasher, level []common.UInt256) []common.UInt256 {
	next := make([]common.UInt256, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i == len(level)-1 {
			if pairsOddLast(h) {
				next = append(next, h.HashChildren(level[i], level[i]))
			} else {
				next = append(next, level[i])
			}
			break
		}
		next = append(next, h.HashChildren(level[i], level[i+1]))
	}
	return next
}

// AuditPathProof turns an audit path, the bare sibling hashes a node
// returns for leaf index of an RFC 6962 tree of treeSize leaves, into a
// proof.
func AuditPathProof(index int, path []common.UInt256, treeSize int) ([]Node,
	error) {

	if index < 0 || index >= treeSize {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"leaf index %d outside tree of %d leaves", index, treeSize)
	}

	nodes := make([]Node, 0, len(path))
	for last := treeSize - 1; last > 0; last /= 2 {
		var d Direction
		switch {
		case index%2 == 1:
			d = Left
		case index < last:
			d = Right
		default:
			index /= 2
			continue
		}
		if len(nodes) == len(path) {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"audit path of %d hashes is too short", len(path))
		}
		nodes = append(nodes, Node{d, path[len(nodes)]})
		index /= 2
	}
	if len(nodes) != len(path) {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"audit path has %d hashes, tree needs %d", len(path),
			len(nodes))
	}
	return nodes, nil
}

// RootFromProof folds nodes into leaf and returns the resulting root.
func RootFromProof(h Hasher, leaf common.UInt256, nodes []Node) (
	common.UInt256, error) {

	acc := leaf
	for i, n := range nodes {
		switch n.Direction {
		case Left:
			acc = h.HashChildren(n.TargetHash, acc)
		case Right:
			acc = h.HashChildren(acc, n.TargetHash)
		default:
			return common.UInt256{}, coreerr.Newf(coreerr.ErrFormat,
				"proof node %d has invalid direction %d", i,
				int(n.Direction))
		}
	}
	return acc, nil
}

// Verify checks that nodes lead from leaf to root.  A mismatch is
// reported as coreerr.ErrProofVerification.
func Verify(h Hasher, leaf common.UInt256, nodes []Node,
	root common.UInt256) error {

	got, err := RootFromProof(h, leaf, nodes)
	if err != nil {
		return err
	}
	if got.IsZero() || got != root {
		log.Debugf("Proof of %v computes root %v, want %v", leaf, got, root)
		return coreerr.Newf(coreerr.ErrProofVerification,
			"computed root %v differs from %v", got, root)
	}
	return nil
}

// VerifyLeafHashInclusion checks the audit path of leaf, the index'th
// leaf hash of a tree of treeSize leaves, against root.
func VerifyLeafHashInclusion(h Hasher, leaf common.UInt256, index int,
	path []common.UInt256, root common.UInt256, treeSize int) error {

	nodes, err := AuditPathProof(index, path, treeSize)
	if err != nil {
		return err
	}
	return Verify(h, leaf, nodes, root)
}
