// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"context"
	"encoding/json"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/merkle"
)

// MerkleProof is a node's proof that the transactions root of the block
// at BlockHeight is part of the block root tree at CurBlockHeight.
type MerkleProof struct {
	Type             string           `json:"Type"`
	TransactionsRoot common.UInt256   `json:"TransactionsRoot"`
	BlockHeight      uint32           `json:"BlockHeight"`
	CurBlockRoot     common.UInt256   `json:"CurBlockRoot"`
	CurBlockHeight   uint32           `json:"CurBlockHeight"`
	TargetHashes     []common.UInt256 `json:"TargetHashes"`
}

// DecodeMerkleProof parses the JSON proof returned by a node.
func DecodeMerkleProof(data string) (*MerkleProof, error) {
	var p MerkleProof
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, coreerr.New(coreerr.ErrFormat, "malformed merkle proof",
			err)
	}
	if p.BlockHeight > p.CurBlockHeight {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"proof for block %d is newer than its root at %d",
			p.BlockHeight, p.CurBlockHeight)
	}
	return &p, nil
}

// Nodes returns the directional proof nodes of the audit path.
func (p *MerkleProof) Nodes() ([]merkle.Node, error) {
	return merkle.AuditPathProof(int(p.BlockHeight), p.TargetHashes,
		int(p.CurBlockHeight)+1)
}

// Verify checks the audit path against CurBlockRoot.  The block root tree
// holds one leaf per block, so it has CurBlockHeight+1 leaves.
func (p *MerkleProof) Verify() error {
	return merkle.VerifyLeafHashInclusion(merkle.TreeHasher{},
		p.TransactionsRoot, int(p.BlockHeight), p.TargetHashes,
		p.CurBlockRoot, int(p.CurBlockHeight)+1)
}

// Document returns the self-contained proof that the transaction txHash
// was included in the proof's block, in the form attached to claims.
func (p *MerkleProof) Document(txHash common.UInt256) (*ProofDocument,
	error) {

	nodes, err := p.Nodes()
	if err != nil {
		return nil, err
	}
	return &ProofDocument{
		Type:        "MerkleProof",
		TxnHash:     txHash,
		BlockHeight: p.BlockHeight,
		MerkleRoot:  p.CurBlockRoot,
		Nodes:       nodes,
	}, nil
}

// ProofDocument is a Merkle proof in directional form, independent of
// the audit path layout.
type ProofDocument struct {
	Type        string         `json:"Type"`
	TxnHash     common.UInt256 `json:"TxnHash"`
	BlockHeight uint32         `json:"BlockHeight"`
	MerkleRoot  common.UInt256 `json:"MerkleRoot"`
	Nodes       []merkle.Node  `json:"Nodes"`
}

// Verify checks that the nodes lead from txRoot, the transactions root
// of the block at BlockHeight, to MerkleRoot.
func (d *ProofDocument) Verify(txRoot common.UInt256) error {
	return merkle.Verify(merkle.TreeHasher{}, txRoot, d.Nodes, d.MerkleRoot)
}

// VerifyTransactionInBlock fetches the proof of the block the node
// reports for txHash and verifies it.  It establishes that the block's
// transactions root is committed to by the current block root; checking
// that the transaction is part of that root is up to the caller.
func VerifyTransactionInBlock(ctx context.Context, q Querier,
	txHash common.UInt256) (*MerkleProof, error) {

	raw, err := q.GetMerkleProof(ctx, txHash.String())
	if err != nil {
		return nil, err
	}
	p, err := DecodeMerkleProof(raw)
	if err != nil {
		return nil, err
	}
	if err := p.Verify(); err != nil {
		log.Debugf("Merkle proof of %v at height %d failed: %v", txHash,
			p.BlockHeight, err)
		return nil, err
	}
	return p, nil
}
