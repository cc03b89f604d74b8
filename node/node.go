// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node defines what the core needs from a connection to an
// Ontology node and decodes the answers it gets back.
//
// The transport itself, REST, RPC or WebSocket, lives outside this module
// and is reached through the Sender and Querier interfaces.  Errors they
// return are passed to the caller unchanged.
package node

import (
	"context"
	"encoding/json"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/transaction"
)

// Sender submits transactions to a node.
type Sender interface {
	// SendRawTransaction submits a hex encoded transaction and reports
	// whether the node accepted it.
	SendRawTransaction(ctx context.Context, txHex string) (bool, error)
}

// Querier reads chain state from a node.
type Querier interface {
	// Query returns the raw answer for key, a request path such as
	// "balance/<address>".
	Query(ctx context.Context, key string) (string, error)

	// GetMerkleProof returns the JSON Merkle proof of the block holding
	// the transaction with the given reversed hex hash.
	GetMerkleProof(ctx context.Context, txHash string) (string, error)
}

// SendTransaction serializes tx and submits it.
func SendTransaction(ctx context.Context, s Sender,
	tx *transaction.Transaction) (bool, error) {

	txHex, err := tx.ToHex()
	if err != nil {
		return false, err
	}
	ok, err := s.SendRawTransaction(ctx, txHex)
	if err != nil {
		return false, err
	}
	if hash, err := tx.Hash(); err == nil {
		log.Debugf("Sent transaction %v, accepted %v", hash, ok)
	}
	return ok, nil
}

// Balance is the native asset balance of an address, as decimal strings.
type Balance struct {
	ONT string `json:"ont"`
	ONG string `json:"ong"`
}

// GetBalance queries the native balances of addr.
func GetBalance(ctx context.Context, q Querier, addr common.Address) (
	*Balance, error) {

	raw, err := q.Query(ctx, "balance/"+addr.ToBase58())
	if err != nil {
		return nil, err
	}
	var b Balance
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, coreerr.New(coreerr.ErrFormat, "malformed balance", err)
	}
	return &b, nil
}
