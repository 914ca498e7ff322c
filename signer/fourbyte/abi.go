// Copyright 2019 The go-ethereum Authors
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

package fourbyte

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/abi-decoder/accounts/abi"
)

// decodedCallData is an internal type to represent a method call parsed according
// to an ABI method signature.
//
// decodedCallData 是一个内部类型，用于表示根据 ABI 方法签名解析的方法调用。
type decodedCallData struct {
	name   string      // 方法名称
	inputs []abi.Param // 按声明顺序解码的参数
}

// String implements stringer interface for decodedCallData, rendering each
// argument as "type: value".
// 返回格式为 "方法名(类型: 值,...)" 的字符串
func (cd decodedCallData) String() string {
	args := make([]string, len(cd.inputs))
	for i, arg := range cd.inputs {
		args[i] = fmt.Sprintf("%v: %v", arg.Type, arg.Value)
	}
	return fmt.Sprintf("%s(%s)", cd.name, strings.Join(args, ",")) // "transfer(address: 0x123, uint256: 100)"
}

// verifySelector checks whether the ABI encoded data blob matches the requested
// function signature.
//
// verifySelector 检查 ABI 编码的数据块是否与请求的函数签名匹配。
func verifySelector(selector string, calldata []byte) (*decodedCallData, error) {
	method, err := abi.NewEntryFromSignature(selector, abi.Function)
	if err != nil {
		return nil, fmt.Errorf("failed to parse selector: %v", err)
	}
	return parseCallData(calldata, method)
}

// parseCallData matches the provided call data against the method and returns
// the decoded arguments.
//
// parseCallData 将提供的调用数据与方法定义进行匹配，并返回解码后的参数。
func parseCallData(calldata []byte, method abi.Entry) (*decodedCallData, error) {
	// Validate the call data that it has the 4byte prefix and the rest divisible by 32 bytes
	// 验证调用数据，确保它有 4 字节的前缀，其余部分可被 32 字节整除
	if len(calldata) < 4 {
		return nil, fmt.Errorf("invalid call data, incomplete method signature (%d bytes < 4)", len(calldata))
	}
	sigdata, argdata := calldata[:4], calldata[4:]
	if len(argdata)%32 != 0 {
		return nil, fmt.Errorf("invalid call data; length should be a multiple of 32 bytes (was %d)", len(argdata))
	}
	if id := method.Selector(abi.Keccak256); !bytes.Equal(id, sigdata) {
		return nil, fmt.Errorf("method %q has selector %x, call data has %x", method.Sig(), id, sigdata)
	}
	params, err := method.Inputs.UnpackParams(argdata)
	if err != nil {
		return nil, fmt.Errorf("signature %q matches, but arguments mismatch: %w", method.Sig(), err)
	}
	return &decodedCallData{name: method.Name, inputs: params}, nil
}

// DecodeCallData looks up the selector of calldata in the database and decodes
// the arguments against the stored signature. The result renders the call as
// "name(type: value,...)".
//
// DecodeCallData 在数据库中查找调用数据的选择器，并按存储的签名解码参数。
func (db *Database) DecodeCallData(calldata []byte) (string, error) {
	selector, err := db.Selector(calldata)
	if err != nil {
		return "", err
	}
	decoded, err := verifySelector(selector, calldata)
	if err != nil {
		return "", err
	}
	return decoded.String(), nil
}
