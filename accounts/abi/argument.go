// Copyright 2015 The go-ethereum Authors
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
	"strings"
)

// Argument holds the name of the argument and the corresponding type.
// Argument 结构体保存参数的名称和对应的类型。
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events (仅适用于事件)
}

type Arguments []Argument

// ArgumentMarshaling is the JSON form of an argument.
type ArgumentMarshaling struct {
	Name         string               `json:"name"`
	Type         string               `json:"type"`
	InternalType string               `json:"internalType,omitempty"`
	Components   []ArgumentMarshaling `json:"components,omitempty"`
	Indexed      bool                 `json:"indexed,omitempty"`
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 方法实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}

	// 使用 NewType 方法解析参数类型。
	argument.Type, err = NewType(arg.Type, arg.InternalType, arg.Components)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed

	return nil
}

// MarshalJSON implements json.Marshaler interface.
func (argument Argument) MarshalJSON() ([]byte, error) {
	return json.Marshal(ArgumentMarshaling{
		Name:         argument.Name,
		Type:         argument.Type.Declared(),
		InternalType: argument.Type.InternalType(),
		Components:   argument.Type.components(),
		Indexed:      argument.Indexed,
	})
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 方法返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Indexed returns the indexed arguments in declaration order.
func (arguments Arguments) Indexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Types returns the canonical type names of the arguments, as used in signatures.
func (arguments Arguments) Types() []string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type.String()
	}
	return types
}

// Unpack decodes the non-indexed arguments from data.
// Unpack 方法将 ABI 编码数据解包为值列表。
func (arguments Arguments) Unpack(data []byte) ([]Value, error) {
	nonIndexed := arguments.NonIndexed()
	if len(data) == 0 {
		if len(nonIndexed) != 0 {
			return nil, &MalformedEncodingError{Type: "(" + joinTypes(nonIndexed) + ")", Reason: errEmptyData.Error(), err: errEmptyData}
		}
		return make([]Value, 0), nil
	}
	return nonIndexed.UnpackValues(data)
}

// UnpackValues decodes every argument, indexed or not, from data.
func (arguments Arguments) UnpackValues(data []byte) ([]Value, error) {
	types := make([]*Type, len(arguments))
	for i := range arguments {
		types[i] = &arguments[i].Type
	}
	return newDecoder(data, types).sequence(types, data, 0)
}

// UnpackParams decodes the non-indexed arguments and pairs each value with its
// argument name and declared type.
func (arguments Arguments) UnpackParams(data []byte) ([]Param, error) {
	values, err := arguments.Unpack(data)
	if err != nil {
		return nil, err
	}
	return arguments.NonIndexed().Params(values), nil
}

// Params zips values with the arguments they were decoded from.
func (arguments Arguments) Params(values []Value) []Param {
	params := make([]Param, len(values))
	for i, v := range values {
		params[i] = Param{Name: arguments[i].Name, Type: arguments[i].Type.Declared(), Value: v}
	}
	return params
}

func joinTypes(arguments Arguments) string {
	return strings.Join(arguments.Types(), ",")
}
