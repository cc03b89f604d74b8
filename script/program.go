// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/coreerr"
)

// MaxMultiSigKeys is the largest number of public keys a multi-signature
// program may reference.
const MaxMultiSigKeys = 16

// ProgramFromPubKey returns the single-key verification program
// `push(pubKey) CHECKSIG`.
func ProgramFromPubKey(pubKey []byte) []byte {
	return NewBuilder().AddData(pubKey).AddOp(CHECKSIG).Script()
}

// ProgramFromMultiPubKeys returns the m-of-n verification program
// `PUSH m, push(key)..., PUSH n, CHECKMULTISIG`.  Keys are written in the
// order given.
func ProgramFromMultiPubKeys(m int, pubKeys [][]byte) ([]byte, error) {
	n := len(pubKeys)
	if m < 1 || m > n || n > MaxMultiSigKeys {
		return nil, coreerr.Newf(coreerr.ErrParam,
			"invalid multi-signature parameters m=%d n=%d", m, n)
	}
	b := NewBuilder().AddInt64(int64(m))
	for _, k := range pubKeys {
		b.AddData(k)
	}
	return b.AddInt64(int64(n)).AddOp(CHECKMULTISIG).Script(), nil
}

// ProgramFromParams returns the invocation script pushing each signature
// in order.
func ProgramFromParams(sigs [][]byte) []byte {
	b := NewBuilder()
	for _, s := range sigs {
		b.AddData(s)
	}
	return b.Script()
}

// token is one parsed script element: either pushed data or a small
// integer opcode.
type token struct {
	data  []byte
	op    OpCode
	isInt bool
}

func tokenize(program []byte) ([]token, error) {
	r := codec.NewReader(program)
	var toks []token
	for r.Len() > 0 {
		b, _ := r.ReadUint8()
		op := OpCode(b)
		var (
			n   int
			err error
		)
		switch {
		case op.IsSmallInt():
			toks = append(toks, token{op: op, isInt: true})
			continue
		case op >= PUSHBYTES1 && op <= PUSHBYTES75:
			n = int(op)
		case op == PUSHDATA1:
			var l uint8
			l, err = r.ReadUint8()
			n = int(l)
		case op == PUSHDATA2:
			var l uint16
			l, err = r.ReadUint16()
			n = int(l)
		case op == PUSHDATA4:
			var l uint32
			l, err = r.ReadUint32()
			n = int(l)
		default:
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"unexpected opcode %#x at offset %d", b, r.Pos()-1)
		}
		if err != nil {
			return nil, err
		}
		data, err := r.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		toks = append(toks, token{data: data})
	}
	return toks, nil
}

// ParseParams returns the data pushed by an invocation script.
func ParseParams(invocation []byte) ([][]byte, error) {
	toks, err := tokenize(invocation)
	if err != nil {
		return nil, err
	}
	params := make([][]byte, 0, len(toks))
	for _, t := range toks {
		if t.isInt {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"invocation script contains opcode %#x", byte(t.op))
		}
		params = append(params, t.data)
	}
	return params, nil
}

// ProgramInfo describes a parsed verification program.
type ProgramInfo struct {
	M       int
	PubKeys [][]byte
}

// ParseProgram decodes a single-key or multi-signature verification
// program.
func ParseProgram(program []byte) (*ProgramInfo, error) {
	if len(program) < 2 {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"verification program too short")
	}
	end := OpCode(program[len(program)-1])
	toks, err := tokenize(program[:len(program)-1])
	if err != nil {
		return nil, err
	}

	switch end {
	case CHECKSIG:
		if len(toks) != 1 || toks[0].isInt {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"malformed single-key program")
		}
		return &ProgramInfo{M: 1, PubKeys: [][]byte{toks[0].data}}, nil

	case CHECKMULTISIG:
		if len(toks) < 3 || !toks[0].isInt || !toks[len(toks)-1].isInt {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"malformed multi-signature program")
		}
		m := toks[0].op.SmallInt()
		n := toks[len(toks)-1].op.SmallInt()
		keys := toks[1 : len(toks)-1]
		if n != len(keys) || m < 1 || m > n {
			return nil, coreerr.Newf(coreerr.ErrFormat,
				"multi-signature program m=%d n=%d with %d keys",
				m, n, len(keys))
		}
		info := &ProgramInfo{M: m, PubKeys: make([][]byte, 0, n)}
		for _, k := range keys {
			if k.isInt {
				return nil, coreerr.Newf(coreerr.ErrFormat,
					"multi-signature key is not pushed data")
			}
			info.PubKeys = append(info.PubKeys, k.data)
		}
		return info, nil
	}
	return nil, coreerr.Newf(coreerr.ErrFormat,
		"unknown verification program terminator %#x", byte(end))
}
