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
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/sunyihoo/abi-decoder/common"
	"github.com/sunyihoo/abi-decoder/common/hexutil"
)

// ValueKind tags the variant held by a Value.
type ValueKind byte

const (
	IntValue     ValueKind = iota // Int holds a signed or unsigned integer
	BoolValue                     // Bool
	AddressValue                  // Address
	BytesValue                    // Bytes holds bytes, bytesN or a 24 byte function reference
	StringValue                   // Str
	HashValue                     // Hash holds the topic word of an unrecoverable indexed value
	ListValue                     // List holds array elements or tuple members
)

// Value is a single decoded ABI value.
// Value 是一个解码后的 ABI 值。
type Value struct {
	Kind    ValueKind
	Int     *big.Int
	Bool    bool
	Address common.Address
	Bytes   []byte
	Str     string
	Hash    common.Hash
	List    []Value
}

// Interface renders the value into plain Go types: integers become base-10
// strings, addresses and byte strings become lowercase 0x-prefixed hex, and
// lists become []interface{}.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case IntValue:
		if v.Int == nil {
			return "0"
		}
		return v.Int.String()
	case BoolValue:
		return v.Bool
	case AddressValue:
		return v.Address.Hex()
	case BytesValue:
		return hexutil.Encode(v.Bytes)
	case StringValue:
		return v.Str
	case HashValue:
		return v.Hash.Hex()
	case ListValue:
		out := make([]interface{}, len(v.List))
		for i, elem := range v.List {
			out[i] = elem.Interface()
		}
		return out
	default:
		panic(fmt.Sprintf("abi: unknown value kind %d", v.Kind))
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.Kind {
	case ListValue:
		parts := make([]string, len(v.List))
		for i, elem := range v.List {
			parts[i] = elem.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case BoolValue:
		return fmt.Sprint(v.Bool)
	default:
		return v.Interface().(string)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// Param is a decoded argument: its declared name, its type as written in the
// ABI and its value.
// Param 是一个解码后的参数：声明的名称、ABI 中书写的类型以及值。
type Param struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value Value  `json:"value"`
}
