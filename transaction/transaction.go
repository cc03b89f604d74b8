// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction implements the Ontology transaction: its canonical
// byte layout, hash and signature list.
//
// A transaction is written as
//
//	version u8 | type u8 | nonce u32 | gasPrice u64 | gasLimit u64 |
//	payer [20] | payload | attributes | sigs
//
// with little-endian integers and varint-prefixed arrays.  Everything
// before the signature list is the unsigned form, whose double SHA-256 is
// the transaction hash and the message every signer signs.
package transaction

import (
	"encoding/json"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/hashing"
)

const (
	// MaxSigs is the largest number of entries in a signature list.
	MaxSigs = 16

	// maxAttributes bounds the attribute count read from untrusted
	// input.
	maxAttributes = 1024
)

// Transaction is an Ontology transaction.  The zero Version is the only
// one in use.
type Transaction struct {
	Version    byte
	Nonce      uint32
	GasPrice   uint64
	GasLimit   uint64
	Payer      common.Address
	Payload    Payload
	Attributes []*Attribute
	Sigs       []*Sig
}

// New returns an unsigned transaction carrying payload.
func New(payload Payload, nonce uint32, payer common.Address, gasLimit,
	gasPrice uint64) *Transaction {

	return &Transaction{
		Nonce:    nonce,
		GasPrice: gasPrice,
		GasLimit: gasLimit,
		Payer:    payer,
		Payload:  payload,
	}
}

// TxType returns the type of the payload.
func (tx *Transaction) TxType() TxType {
	return tx.Payload.TxType()
}

func (tx *Transaction) writeUnsigned(w *codec.Writer) error {
	if tx.Payload == nil {
		return coreerr.Newf(coreerr.ErrParam, "transaction has no payload")
	}
	w.WriteUint8(tx.Version)
	w.WriteUint8(byte(tx.Payload.TxType()))
	w.WriteUint32(tx.Nonce)
	w.WriteUint64(tx.GasPrice)
	w.WriteUint64(tx.GasLimit)
	w.WriteBytes(tx.Payer.Bytes())
	if err := tx.Payload.serialize(w); err != nil {
		return err
	}
	w.WriteVarUint(uint64(len(tx.Attributes)))
	for _, a := range tx.Attributes {
		if err := a.serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// SerializeUnsigned returns the transaction without its signatures.
func (tx *Transaction) SerializeUnsigned() ([]byte, error) {
	w := codec.NewWriter()
	if err := tx.writeUnsigned(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Serialize returns the full wire form of the transaction.
func (tx *Transaction) Serialize() ([]byte, error) {
	if len(tx.Sigs) > MaxSigs {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"%d signature entries exceed %d", len(tx.Sigs), MaxSigs)
	}
	w := codec.NewWriter()
	if err := tx.writeUnsigned(w); err != nil {
		return nil, err
	}
	w.WriteVarUint(uint64(len(tx.Sigs)))
	for _, s := range tx.Sigs {
		if err := s.serialize(w); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// Hash returns the double SHA-256 of the unsigned form.  It does not
// change as signatures are added.
func (tx *Transaction) Hash() (common.UInt256, error) {
	unsigned, err := tx.SerializeUnsigned()
	if err != nil {
		return common.UInt256{}, err
	}
	return common.UInt256(hashing.DoubleSha256(unsigned)), nil
}

// ToHex returns the hex encoding of the serialized transaction, the form
// a node accepts.
func (tx *Transaction) ToHex() (string, error) {
	raw, err := tx.Serialize()
	if err != nil {
		return "", err
	}
	return codec.ToHex(raw), nil
}

// Deserialize decodes a full transaction.  Trailing bytes are an error.
func Deserialize(data []byte) (*Transaction, error) {
	r := codec.NewReader(data)
	tx, err := readTransaction(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"%d trailing bytes after transaction", r.Len())
	}
	return tx, nil
}

// ParseHex decodes a hex encoded transaction.
func ParseHex(s string) (*Transaction, error) {
	raw, err := codec.HexToBytes(s)
	if err != nil {
		return nil, err
	}
	return Deserialize(raw)
}

func readTransaction(r *codec.Reader) (*Transaction, error) {
	tx := new(Transaction)

	var err error
	if tx.Version, err = r.ReadUint8(); err != nil {
		return nil, err
	}
	t, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if tx.Payload, err = newPayload(TxType(t)); err != nil {
		return nil, err
	}
	if tx.Nonce, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if tx.GasPrice, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if tx.GasLimit, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	payer, err := r.ReadBytes(common.AddressSize)
	if err != nil {
		return nil, err
	}
	copy(tx.Payer[:], payer)

	if err := tx.Payload.deserialize(r); err != nil {
		return nil, err
	}

	n, err := r.ReadCount(maxAttributes)
	if err != nil {
		return nil, err
	}
	tx.Attributes = make([]*Attribute, 0, n)
	for i := 0; i < n; i++ {
		a, err := readAttribute(r)
		if err != nil {
			return nil, err
		}
		tx.Attributes = append(tx.Attributes, a)
	}

	n, err = r.ReadCount(MaxSigs)
	if err != nil {
		return nil, err
	}
	tx.Sigs = make([]*Sig, 0, n)
	for i := 0; i < n; i++ {
		s, err := readSig(r)
		if err != nil {
			return nil, err
		}
		tx.Sigs = append(tx.Sigs, s)
	}
	return tx, nil
}

type jsonAttribute struct {
	Usage AttributeUsage `json:"usage"`
	Data  string         `json:"data"`
}

type jsonSig struct {
	M       int      `json:"M"`
	PubKeys []string `json:"PubKeys"`
	SigData []string `json:"SigData"`
}

type jsonTransaction struct {
	Hash       common.UInt256  `json:"Hash"`
	Version    byte            `json:"Version"`
	Nonce      uint32          `json:"Nonce"`
	TxType     TxType          `json:"TxType"`
	GasPrice   uint64          `json:"GasPrice"`
	GasLimit   uint64          `json:"GasLimit"`
	Payer      common.Address  `json:"Payer"`
	Attributes []jsonAttribute `json:"Attributes"`
	Sigs       []jsonSig       `json:"Sigs"`
}

func hexAll(bs [][]byte) []string {
	out := make([]string, len(bs))
	for i, b := range bs {
		out[i] = codec.ToHex(b)
	}
	return out
}

// MarshalJSON renders the transaction the way a node reports it: hash
// reversed, payer in Base58 and binary fields in hex.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	hash, err := tx.Hash()
	if err != nil {
		return nil, err
	}
	v := jsonTransaction{
		Hash:       hash,
		Version:    tx.Version,
		Nonce:      tx.Nonce,
		TxType:     tx.TxType(),
		GasPrice:   tx.GasPrice,
		GasLimit:   tx.GasLimit,
		Payer:      tx.Payer,
		Attributes: make([]jsonAttribute, 0, len(tx.Attributes)),
		Sigs:       make([]jsonSig, 0, len(tx.Sigs)),
	}
	for _, a := range tx.Attributes {
		v.Attributes = append(v.Attributes, jsonAttribute{
			Usage: a.Usage,
			Data:  codec.ToHex(a.Data),
		})
	}
	for _, s := range tx.Sigs {
		v.Sigs = append(v.Sigs, jsonSig{
			M:       s.M,
			PubKeys: hexAll(s.PubKeys),
			SigData: hexAll(s.SigData),
		})
	}
	return json.Marshal(v)
}
