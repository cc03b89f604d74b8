// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
)

// MaxAttributeData is the largest attribute data accepted.
const MaxAttributeData = 255

// Attribute is a tagged piece of data attached to a transaction.
type Attribute struct {
	Usage AttributeUsage
	Data  []byte
}

func (a *Attribute) serialize(w *codec.Writer) error {
	if !a.Usage.Valid() {
		return coreerr.Newf(coreerr.ErrParam,
			"unknown attribute usage %v", a.Usage)
	}
	if len(a.Data) > MaxAttributeData {
		return coreerr.Newf(coreerr.ErrParam,
			"%v attribute holds %d bytes, limit is %d", a.Usage,
			len(a.Data), MaxAttributeData)
	}
	w.WriteUint8(byte(a.Usage))
	w.WriteVarBytes(a.Data)
	return nil
}

func readAttribute(r *codec.Reader) (*Attribute, error) {
	u, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	usage := AttributeUsage(u)
	if !usage.Valid() {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"unknown attribute usage %v", usage)
	}
	data, err := r.ReadVarBytesMax(MaxAttributeData)
	if err != nil {
		return nil, err
	}
	return &Attribute{Usage: usage, Data: data}, nil
}
