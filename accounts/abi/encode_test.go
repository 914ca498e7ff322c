// Copyright 2025 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
	"github.com/sunyihoo/abi-decoder/common"
)

// The package is decode-only; this encoder exists to drive round-trip tests.

func encodeWord(b []byte) []byte {
	return common.LeftPadBytes(b, 32)
}

func encodeSize(n int) []byte {
	return encodeWord(big.NewInt(int64(n)).Bytes())
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
func packBytesSlice(bytes []byte) []byte {
	return append(encodeSize(len(bytes)), common.RightPadBytes(bytes, (len(bytes)+31)/32*32)...)
}

// encodeSequence lays values out head/tail in declaration order.
func encodeSequence(types []*Type, values []Value) []byte {
	offset := 0
	for _, t := range types {
		offset += t.headSize
	}
	var head, tail []byte
	for i, t := range types {
		packed := encodeValue(t, values[i])
		if t.dynamic {
			head = append(head, encodeSize(offset)...)
			offset += len(packed)
			tail = append(tail, packed...)
		} else {
			head = append(head, packed...)
		}
	}
	return append(head, tail...)
}

func repeatType(t *Type, n int) []*Type {
	types := make([]*Type, n)
	for i := range types {
		types[i] = t
	}
	return types
}

func encodeValue(t *Type, v Value) []byte {
	switch t.T {
	case IntTy, UintTy:
		u, _ := uint256.FromBig(new(big.Int).Abs(v.Int))
		if v.Int.Sign() < 0 {
			u.Neg(u)
		}
		word := u.Bytes32()
		return word[:]
	case BoolTy:
		if v.Bool {
			return encodeSize(1)
		}
		return encodeSize(0)
	case AddressTy:
		return encodeWord(v.Address.Bytes())
	case FixedBytesTy, FunctionTy:
		return common.RightPadBytes(v.Bytes, 32)
	case BytesTy:
		return packBytesSlice(v.Bytes)
	case StringTy:
		return packBytesSlice([]byte(v.Str))
	case SliceTy:
		return append(encodeSize(len(v.List)), encodeSequence(repeatType(t.Elem, len(v.List)), v.List)...)
	case ArrayTy:
		return encodeSequence(repeatType(t.Elem, t.Size), v.List)
	case TupleTy:
		return encodeSequence(t.TupleElems, v.List)
	}
	panic("unknown type")
}

// encode packs values of the given types the way a contract call would.
func encode(t *testing.T, types []Type, values ...Value) []byte {
	t.Helper()
	require.Len(t, values, len(types))
	ptrs := make([]*Type, len(types))
	for i := range types {
		ptrs[i] = &types[i]
	}
	return encodeSequence(ptrs, values)
}

func mustType(t *testing.T, typ string) Type {
	t.Helper()
	ty, err := NewType(typ, "", nil)
	require.NoError(t, err)
	return ty
}

func mustTuple(t *testing.T, typ string, components ...ArgumentMarshaling) Type {
	t.Helper()
	ty, err := NewType(typ, "", components)
	require.NoError(t, err)
	return ty
}

func intVal(s string) Value {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad integer " + s)
	}
	return Value{Kind: IntValue, Int: n}
}

func addrVal(s string) Value {
	return Value{Kind: AddressValue, Address: common.HexToAddress(s)}
}

func strVal(s string) Value {
	return Value{Kind: StringValue, Str: s}
}

func bytesVal(b []byte) Value {
	return Value{Kind: BytesValue, Bytes: b}
}

func boolVal(b bool) Value {
	return Value{Kind: BoolValue, Bool: b}
}

func listVal(elems ...Value) Value {
	return Value{Kind: ListValue, List: elems}
}
