// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/binary"
	"io"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/keypair"
	"github.com/ontio/ontcore/params"
)

// randomNonce draws a nonce from the backend's random source.
func randomNonce(b *keypair.Backend) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(b.Rand(), buf[:]); err != nil {
		return 0, coreerr.New(coreerr.ErrParam, "cannot read nonce", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// MakeTransaction returns an unsigned transaction carrying payload with
// a random nonce and no attributes.
func MakeTransaction(b *keypair.Backend, payload Payload,
	payer common.Address, gasLimit, gasPrice uint64) (*Transaction, error) {

	nonce, err := randomNonce(b)
	if err != nil {
		return nil, err
	}
	tx := New(payload, nonce, payer, gasLimit, gasPrice)
	tx.Attributes = []*Attribute{}
	return tx, nil
}

// MakeInvokeTransaction returns an unsigned transaction that runs code.
func MakeInvokeTransaction(b *keypair.Backend, code []byte,
	payer common.Address, gasLimit, gasPrice uint64) (*Transaction, error) {

	return MakeTransaction(b, &InvokeCode{Code: code}, payer, gasLimit,
		gasPrice)
}

// MakeNativeInvokeTransaction returns an unsigned transaction calling
// method of a native contract.
func MakeNativeInvokeTransaction(b *keypair.Backend, contract common.Address,
	version byte, method string, args params.List, payer common.Address,
	gasLimit, gasPrice uint64) (*Transaction, error) {

	code, err := params.BuildNativeInvokeCode(contract, version, method, args)
	if err != nil {
		return nil, err
	}
	return MakeInvokeTransaction(b, code, payer, gasLimit, gasPrice)
}

// MakeNeoVMInvokeTransaction returns an unsigned transaction calling a
// deployed NeoVM contract.
func MakeNeoVMInvokeTransaction(b *keypair.Backend, contract common.Address,
	args params.List, payer common.Address, gasLimit,
	gasPrice uint64) (*Transaction, error) {

	code, err := params.BuildNeoVMInvokeCode(contract, args)
	if err != nil {
		return nil, err
	}
	return MakeInvokeTransaction(b, code, payer, gasLimit, gasPrice)
}

// MakeDeployTransaction returns an unsigned transaction deploying a
// contract.  The contract's address is common.AddressFromVmCode of its
// code.
func MakeDeployTransaction(b *keypair.Backend, deploy *DeployCode,
	payer common.Address, gasLimit, gasPrice uint64) (*Transaction, error) {

	if len(deploy.Code) == 0 {
		return nil, coreerr.Newf(coreerr.ErrParam, "empty contract code")
	}
	return MakeTransaction(b, deploy, payer, gasLimit, gasPrice)
}
