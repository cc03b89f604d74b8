// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import (
	"fmt"
	"math/big"

	"github.com/ontio/ontcore/codec"
	"github.com/ontio/ontcore/common"
	"github.com/ontio/ontcore/coreerr"
	"github.com/ontio/ontcore/script"
)

// ItemType tags each element of a serialized stack item.
type ItemType byte

// Stack item tags.
const (
	ByteArrayType ItemType = 0x00
	BooleanType   ItemType = 0x01
	IntegerType   ItemType = 0x02
	ArrayType     ItemType = 0x80
	StructType    ItemType = 0x81
	MapType       ItemType = 0x82
)

// Map of ItemType values back to their names for pretty printing.
var itemTypeStrings = map[ItemType]string{
	ByteArrayType: "ByteArray",
	BooleanType:   "Boolean",
	IntegerType:   "Integer",
	ArrayType:     "Array",
	StructType:    "Struct",
	MapType:       "Map",
}

// String returns the ItemType as a human-readable name.
func (t ItemType) String() string {
	if s, ok := itemTypeStrings[t]; ok {
		return s
	}
	return fmt.Sprintf("ItemType(%#x)", byte(t))
}

const (
	// MaxItemDepth bounds the nesting of arrays, structs and maps.
	MaxItemDepth = 32

	// MaxItemCount bounds the number of elements of one array, struct or
	// map.
	MaxItemCount = 1024
)

// MapEntry is one key/value pair of a Map.
type MapEntry struct {
	Key   interface{}
	Value interface{}
}

// Map is an ordered sequence of key/value pairs.  Keys must be primitive
// values: byte strings, booleans or integers.
type Map []MapEntry

// SerializeItem encodes v in tagged stack-item form.  Strings and
// addresses are written as byte arrays and all integer kinds as
// integers.
func SerializeItem(v interface{}) ([]byte, error) {
	w := codec.NewWriter()
	if err := writeItem(w, v, 0); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func writeItem(w *codec.Writer, v interface{}, depth int) error {
	if depth > MaxItemDepth {
		return coreerr.Newf(coreerr.ErrParam,
			"stack item nested deeper than %d", MaxItemDepth)
	}

	writeInt := func(i *big.Int) {
		w.WriteUint8(byte(IntegerType))
		w.WriteVarBytes(script.BigIntToBytes(i))
	}
	writeSeq := func(t ItemType, items []interface{}) error {
		if len(items) > MaxItemCount {
			return coreerr.Newf(coreerr.ErrParam,
				"%v with %d elements exceeds %d", t, len(items),
				MaxItemCount)
		}
		w.WriteUint8(byte(t))
		w.WriteVarUint(uint64(len(items)))
		for _, item := range items {
			if err := writeItem(w, item, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	switch v := v.(type) {
	case []byte:
		w.WriteUint8(byte(ByteArrayType))
		w.WriteVarBytes(v)
	case string:
		w.WriteUint8(byte(ByteArrayType))
		w.WriteVarString(v)
	case common.Address:
		w.WriteUint8(byte(ByteArrayType))
		w.WriteVarBytes(v.Bytes())
	case bool:
		w.WriteUint8(byte(BooleanType))
		w.WriteBool(v)
	case int:
		writeInt(big.NewInt(int64(v)))
	case int64:
		writeInt(big.NewInt(v))
	case uint64:
		writeInt(new(big.Int).SetUint64(v))
	case *big.Int:
		if v == nil {
			return coreerr.Newf(coreerr.ErrParam, "nil integer item")
		}
		writeInt(v)
	case List:
		return writeSeq(ArrayType, v)
	case *Struct:
		return writeSeq(StructType, v.Fields)

	case Map:
		if len(v) > MaxItemCount {
			return coreerr.Newf(coreerr.ErrParam,
				"map with %d entries exceeds %d", len(v), MaxItemCount)
		}
		w.WriteUint8(byte(MapType))
		w.WriteVarUint(uint64(len(v)))
		for _, e := range v {
			if !isPrimitive(e.Key) {
				return coreerr.Newf(coreerr.ErrParam,
					"map key of type %T is not primitive", e.Key)
			}
			if err := writeItem(w, e.Key, depth+1); err != nil {
				return err
			}
			if err := writeItem(w, e.Value, depth+1); err != nil {
				return err
			}
		}

	default:
		return coreerr.Newf(coreerr.ErrParam,
			"unsupported stack item type %T", v)
	}
	return nil
}

func isPrimitive(v interface{}) bool {
	switch v.(type) {
	case []byte, string, common.Address, bool, int, int64, uint64,
		*big.Int:

		return true
	}
	return false
}

// DeserializeItem decodes a tagged stack item.  Byte arrays decode to
// []byte, booleans to bool, integers to *big.Int, arrays to List,
// structs to *Struct and maps to Map.  Trailing bytes are an error.
func DeserializeItem(data []byte) (interface{}, error) {
	r := codec.NewReader(data)
	v, err := readItem(r, 0)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"%d trailing bytes after stack item", r.Len())
	}
	return v, nil
}

func readItem(r *codec.Reader, depth int) (interface{}, error) {
	if depth > MaxItemDepth {
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"stack item nested deeper than %d", MaxItemDepth)
	}

	tag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}

	readSeq := func() ([]interface{}, error) {
		n, err := r.ReadCount(MaxItemCount)
		if err != nil {
			return nil, err
		}
		items := make([]interface{}, 0, n)
		for i := 0; i < n; i++ {
			item, err := readItem(r, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	switch t := ItemType(tag); t {
	case ByteArrayType:
		return r.ReadVarBytes()

	case BooleanType:
		return r.ReadBool()

	case IntegerType:
		b, err := r.ReadVarBytes()
		if err != nil {
			return nil, err
		}
		return script.BigIntFromBytes(b), nil

	case ArrayType:
		items, err := readSeq()
		if err != nil {
			return nil, err
		}
		return List(items), nil

	case StructType:
		items, err := readSeq()
		if err != nil {
			return nil, err
		}
		return NewStruct(items...), nil

	case MapType:
		n, err := r.ReadCount(MaxItemCount)
		if err != nil {
			return nil, err
		}
		m := make(Map, 0, n)
		for i := 0; i < n; i++ {
			key, err := readItem(r, depth+1)
			if err != nil {
				return nil, err
			}
			if !isPrimitive(key) {
				return nil, coreerr.Newf(coreerr.ErrFormat,
					"map key of type %T is not primitive", key)
			}
			value, err := readItem(r, depth+1)
			if err != nil {
				return nil, err
			}
			m = append(m, MapEntry{Key: key, Value: value})
		}
		return m, nil

	default:
		return nil, coreerr.Newf(coreerr.ErrFormat,
			"unknown stack item type %v", t)
	}
}
