// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

// OpCode is a NeoVM instruction byte.
type OpCode byte

// Opcodes used to build verification, invocation and native call scripts.
const (
	PUSH0       OpCode = 0x00
	PUSHBYTES1  OpCode = 0x01
	PUSHBYTES75 OpCode = 0x4b
	PUSHDATA1   OpCode = 0x4c
	PUSHDATA2   OpCode = 0x4d
	PUSHDATA4   OpCode = 0x4e
	PUSHM1      OpCode = 0x4f
	PUSH1       OpCode = 0x51
	PUSH16      OpCode = 0x60
	NOP         OpCode = 0x61

	APPCALL         OpCode = 0x67
	SYSCALL         OpCode = 0x68
	DUPFROMALTSTACK OpCode = 0x6a
	TOALTSTACK      OpCode = 0x6b
	FROMALTSTACK    OpCode = 0x6c
	DROP            OpCode = 0x75
	DUP             OpCode = 0x76
	SWAP            OpCode = 0x7c

	CHECKSIG      OpCode = 0xac
	VERIFY        OpCode = 0xad
	CHECKMULTISIG OpCode = 0xae

	ARRAYSIZE OpCode = 0xc0
	PACK      OpCode = 0xc1
	UNPACK    OpCode = 0xc2
	PICKITEM  OpCode = 0xc3
	SETITEM   OpCode = 0xc4
	NEWARRAY  OpCode = 0xc5
	NEWSTRUCT OpCode = 0xc6
	NEWMAP    OpCode = 0xc7
	APPEND    OpCode = 0xc8
)

// IsSmallInt reports whether op pushes one of the integers 0, -1 or 1
// through 16 without data.
func (op OpCode) IsSmallInt() bool {
	return op == PUSH0 || op == PUSHM1 || (op >= PUSH1 && op <= PUSH16)
}

// SmallInt returns the integer pushed by a small-int opcode.  The result
// is meaningless unless IsSmallInt reports true.
func (op OpCode) SmallInt() int {
	switch {
	case op == PUSH0:
		return 0
	case op == PUSHM1:
		return -1
	}
	return int(op) - int(PUSH1) + 1
}
