// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"crypto/elliptic"
	"math/big"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
)

// Payload is the type-specific part of a transaction, written between the
// payer and the attributes.
type Payload interface {
	// TxType returns the transaction type the payload belongs to.
	TxType() TxType

	serialize(w *codec.Writer) error
	deserialize(r *codec.Reader) error
}

// newPayload returns an empty payload for t.
func newPayload(t TxType) (Payload, error) {
	switch t {
	case Invoke:
		return new(InvokeCode), nil
	case Deploy:
		return new(DeployCode), nil
	case Bookkeeping:
		return new(BookkeepingPayload), nil
	case Bookkeeper:
		return new(BookkeeperPayload), nil
	case Enrollment:
		return new(EnrollmentPayload), nil
	case Claim, Vote:
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"%v transactions have no payload encoding", t)
	}
	return nil, coreerr.Newf(coreerr.ErrFormat,
		"unknown transaction type %v", t)
}

// InvokeCode carries the script of a contract invocation.
type InvokeCode struct {
	Code []byte
}

// TxType returns Invoke.
func (p *InvokeCode) TxType() TxType { return Invoke }

func (p *InvokeCode) serialize(w *codec.Writer) error {
	w.WriteVarBytes(p.Code)
	return nil
}

func (p *InvokeCode) deserialize(r *codec.Reader) error {
	code, err := r.ReadVarBytes()
	if err != nil {
		return err
	}
	p.Code = code
	return nil
}

// DeployCode publishes a contract together with its metadata.
type DeployCode struct {
	Code        []byte
	NeedStorage bool
	Name        string
	Version     string
	Author      string
	Email       string
	Description string
}

// TxType returns Deploy.
func (p *DeployCode) TxType() TxType { return Deploy }

func (p *DeployCode) serialize(w *codec.Writer) error {
	w.WriteVarBytes(p.Code)
	w.WriteBool(p.NeedStorage)
	w.WriteVarString(p.Name)
	w.WriteVarString(p.Version)
	w.WriteVarString(p.Author)
	w.WriteVarString(p.Email)
	w.WriteVarString(p.Description)
	return nil
}

func (p *DeployCode) deserialize(r *codec.Reader) error {
	var err error
	if p.Code, err = r.ReadVarBytes(); err != nil {
		return err
	}
	if p.NeedStorage, err = r.ReadBool(); err != nil {
		return err
	}
	for _, s := range []*string{
		&p.Name, &p.Version, &p.Author, &p.Email, &p.Description,
	} {
		if *s, err = r.ReadVarString(); err != nil {
			return err
		}
	}
	return nil
}

// BookkeepingPayload is the payload of the block reward transaction.
type BookkeepingPayload struct {
	Nonce uint64
}

// TxType returns Bookkeeping.
func (p *BookkeepingPayload) TxType() TxType { return Bookkeeping }

func (p *BookkeepingPayload) serialize(w *codec.Writer) error {
	w.WriteUint64(p.Nonce)
	return nil
}

func (p *BookkeepingPayload) deserialize(r *codec.Reader) error {
	var err error
	p.Nonce, err = r.ReadUint64()
	return err
}

// BookkeeperAction says whether a bookkeeper is added or removed.
type BookkeeperAction byte

// Bookkeeper actions.
const (
	BookkeeperAdd BookkeeperAction = 0x00
	BookkeeperSub BookkeeperAction = 0x01
)

// BookkeeperPayload changes the bookkeeper set.  Issuer is a compressed
// P-256 public key.
type BookkeeperPayload struct {
	Issuer []byte
	Action BookkeeperAction
	Cert   []byte
}

// TxType returns Bookkeeper.
func (p *BookkeeperPayload) TxType() TxType { return Bookkeeper }

func (p *BookkeeperPayload) serialize(w *codec.Writer) error {
	if err := writePoint(w, p.Issuer); err != nil {
		return err
	}
	w.WriteUint8(byte(p.Action))
	w.WriteVarBytes(p.Cert)
	return nil
}

func (p *BookkeeperPayload) deserialize(r *codec.Reader) error {
	issuer, err := readPoint(r)
	if err != nil {
		return err
	}
	action, err := r.ReadUint8()
	if err != nil {
		return err
	}
	if BookkeeperAction(action) != BookkeeperAdd &&
		BookkeeperAction(action) != BookkeeperSub {

		return coreerr.Newf(coreerr.ErrFormat,
			"unknown bookkeeper action %#x", action)
	}
	cert, err := r.ReadVarBytes()
	if err != nil {
		return err
	}
	p.Issuer, p.Action, p.Cert = issuer, BookkeeperAction(action), cert
	return nil
}

// EnrollmentPayload registers a consensus public key, a compressed P-256
// point.
type EnrollmentPayload struct {
	PubKey []byte
}

// TxType returns Enrollment.
func (p *EnrollmentPayload) TxType() TxType { return Enrollment }

func (p *EnrollmentPayload) serialize(w *codec.Writer) error {
	return writePoint(w, p.PubKey)
}

func (p *EnrollmentPayload) deserialize(r *codec.Reader) error {
	pub, err := readPoint(r)
	if err != nil {
		return err
	}
	p.PubKey = pub
	return nil
}

// writePoint writes a compressed P-256 key as its affine coordinates, each
// a big-endian integer without leading zeros.
func writePoint(w *codec.Writer, compressed []byte) error {
	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), compressed)
	if x == nil {
		return coreerr.Newf(coreerr.ErrParam,
			"%x is not a compressed P-256 key", compressed)
	}
	w.WriteVarBytes(x.Bytes())
	w.WriteVarBytes(y.Bytes())
	return nil
}

func readPoint(r *codec.Reader) ([]byte, error) {
	xb, err := r.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	yb, err := r.ReadVarBytes()
	if err != nil {
		return nil, err
	}
	curve := elliptic.P256()
	x, y := new(big.Int).SetBytes(xb), new(big.Int).SetBytes(yb)
	if !curve.IsOnCurve(x, y) {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"coordinates are not a P-256 point")
	}
	return elliptic.MarshalCompressed(curve, x, y), nil
}
