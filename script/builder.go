// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script builds and parses the NeoVM scripts that appear in
// Ontology transactions: single-key and multi-signature verification
// programs, invocation scripts carrying signatures, and native contract
// call code.
package script

import (
	"math/big"

	"github.com/ontio/ontcore/codec"
)

// Builder provides a facility for building custom scripts.  It allows you
// to push opcodes, ints, and data while respecting canonical encoding.
//
// For example, the following would build a single-key verification
// program:
//
//	builder := script.NewBuilder()
//	builder.AddData(pubKey).AddOp(script.CHECKSIG)
//	program := builder.Script()
type Builder struct {
	w codec.Writer
}

// NewBuilder returns a new instance of a script builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddOp pushes the passed opcode to the end of the script.
func (b *Builder) AddOp(op OpCode) *Builder {
	b.w.WriteUint8(byte(op))
	return b
}

// AddOps pushes the passed opcodes to the end of the script.
func (b *Builder) AddOps(ops ...OpCode) *Builder {
	for _, op := range ops {
		b.AddOp(op)
	}
	return b
}

// AddRaw appends already encoded script bytes.
func (b *Builder) AddRaw(raw []byte) *Builder {
	b.w.WriteBytes(raw)
	return b
}

// AddData pushes data using the smallest push form for its length:
// a direct length byte up to 75 bytes, then PUSHDATA1, PUSHDATA2 and
// PUSHDATA4 with little-endian lengths.
func (b *Builder) AddData(data []byte) *Builder {
	n := len(data)
	switch {
	case n <= int(PUSHBYTES75):
		b.w.WriteUint8(byte(n))
	case n < 0x100:
		b.AddOp(PUSHDATA1)
		b.w.WriteUint8(byte(n))
	case n < 0x10000:
		b.AddOp(PUSHDATA2)
		b.w.WriteUint16(uint16(n))
	default:
		b.AddOp(PUSHDATA4)
		b.w.WriteUint32(uint32(n))
	}
	b.w.WriteBytes(data)
	return b
}

// AddInt64 pushes v, using the single-byte opcodes for -1 through 16.
func (b *Builder) AddInt64(v int64) *Builder {
	return b.AddBigInt(big.NewInt(v))
}

// AddBigInt pushes v, using the single-byte opcodes for -1 through 16 and
// the little-endian two's complement form otherwise.
func (b *Builder) AddBigInt(v *big.Int) *Builder {
	if v.IsInt64() {
		switch n := v.Int64(); {
		case n == -1:
			return b.AddOp(PUSHM1)
		case n == 0:
			return b.AddOp(PUSH0)
		case n > 0 && n <= 16:
			return b.AddOp(PUSH1 - 1 + OpCode(n))
		}
	}
	return b.AddData(BigIntToBytes(v))
}

// AddBool pushes PUSH1 for true and PUSH0 for false.
func (b *Builder) AddBool(v bool) *Builder {
	if v {
		return b.AddOp(PUSH1)
	}
	return b.AddOp(PUSH0)
}

// AddSysCall appends a SYSCALL to the named interop service.
func (b *Builder) AddSysCall(api string) *Builder {
	b.AddOp(SYSCALL)
	b.w.WriteVarString(api)
	return b
}

// Script returns a copy of the currently built script.
func (b *Builder) Script() []byte {
	return append([]byte(nil), b.w.Bytes()...)
}
