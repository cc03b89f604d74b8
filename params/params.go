// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package params encodes the arguments of contract invocations.
//
// Arguments are ordinary Go values.  The supported kinds are []byte,
// string, bool, int, int64, uint64, *big.Int, common.Address, *Struct and
// List; anything else is rejected with coreerr.ErrParam.  Values are
// turned into NeoVM push scripts for invocation code, or into the tagged
// stack-item form contracts exchange as serialized data.
package params

import (
	"math/big"

	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/script"
)

// NativeInvokeAPI is the interop service that dispatches a call to a
// native contract.
const NativeInvokeAPI = "Ontology.Native.Invoke"

// Struct is an ordered tuple of argument values.  Native contracts read
// their parameters as structs.
type Struct struct {
	Fields []interface{}
}

// NewStruct returns a struct holding fields in order.
func NewStruct(fields ...interface{}) *Struct {
	return &Struct{Fields: fields}
}

// Add appends fields and returns the struct for chaining.
func (s *Struct) Add(fields ...interface{}) *Struct {
	s.Fields = append(s.Fields, fields...)
	return s
}

// List is an ordered array of argument values.
type List []interface{}

// emit pushes v so that executing the script leaves v on top of the
// evaluation stack.
func emit(b *script.Builder, v interface{}) error {
	switch v := v.(type) {
	case []byte:
		b.AddData(v)
	case string:
		b.AddData([]byte(v))
	case bool:
		b.AddBool(v)
	case int:
		b.AddInt64(int64(v))
	case int64:
		b.AddInt64(v)
	case uint64:
		b.AddBigInt(new(big.Int).SetUint64(v))
	case *big.Int:
		if v == nil {
			return coreerr.Newf(coreerr.ErrParam, "nil integer argument")
		}
		b.AddBigInt(v)
	case common.Address:
		b.AddData(v.Bytes())

	case *Struct:
		// An empty struct is kept on the alt stack while each field is
		// pushed and appended to it.
		b.AddOps(script.PUSH0, script.NEWSTRUCT, script.TOALTSTACK)
		for _, f := range v.Fields {
			if err := emit(b, f); err != nil {
				return err
			}
			b.AddOps(script.DUPFROMALTSTACK, script.SWAP, script.APPEND)
		}
		b.AddOp(script.FROMALTSTACK)

	case List:
		if err := emitReversed(b, v); err != nil {
			return err
		}
		b.AddInt64(int64(len(v))).AddOp(script.PACK)

	default:
		return coreerr.Newf(coreerr.ErrParam,
			"unsupported argument type %T", v)
	}
	return nil
}

// emitReversed pushes the values last to first so that the first value
// ends up on top of the stack.
func emitReversed(b *script.Builder, args List) error {
	for i := len(args) - 1; i >= 0; i-- {
		if err := emit(b, args[i]); err != nil {
			return err
		}
	}
	return nil
}

// BuildArgs returns the push script of args as passed to a contract
// entry point: each argument is pushed in reverse order with no array
// wrapper.
func BuildArgs(args List) ([]byte, error) {
	b := script.NewBuilder()
	if err := emitReversed(b, args); err != nil {
		return nil, err
	}
	return b.Script(), nil
}

// BuildNativeInvokeCode returns the code that calls method of a native
// contract with args.
func BuildNativeInvokeCode(contract common.Address, version byte,
	method string, args List) ([]byte, error) {

	b := script.NewBuilder()
	if err := emitReversed(b, args); err != nil {
		return nil, err
	}
	b.AddData([]byte(method))
	b.AddData(contract.Bytes())
	b.AddInt64(int64(version))
	b.AddSysCall(NativeInvokeAPI)
	return b.Script(), nil
}

// BuildNeoVMInvokeCode returns the code that calls a deployed NeoVM
// contract with args, conventionally the method name followed by a List
// of its parameters.
func BuildNeoVMInvokeCode(contract common.Address, args List) ([]byte,
	error) {

	b := script.NewBuilder()
	if err := emitReversed(b, args); err != nil {
		return nil, err
	}
	b.AddOp(script.APPCALL).AddRaw(contract.Bytes())
	return b.Script(), nil
}
